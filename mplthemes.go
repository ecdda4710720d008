// Package mplthemes makes plots look consistent: it derives colormaps and
// style defaults from a handful of brand colors and activates them as the
// current plotting defaults.
//
// Typical usage:
//
//	if err := mplthemes.SetTheme("mpl-themes-green"); err != nil {
//		// unknown theme name
//	}
package mplthemes

import (
	"github.com/spf13/viper"

	"github.com/mplthemes/mplthemes/constant"
	"github.com/mplthemes/mplthemes/key"
	"github.com/mplthemes/mplthemes/theme"
)

// Version is the library version.
func Version() string {
	return constant.Version
}

// SetTheme activates the named built-in theme as the current global
// default style.
func SetTheme(name string) error {
	return theme.Set(name)
}

// SetDefaultTheme activates the theme configured under theme.default,
// falling back to the green built-in when configuration is absent.
func SetDefaultTheme() error {
	name := viper.GetString(key.ThemeDefault)
	if name == "" {
		name = theme.GreenGeneric
	}
	return theme.Set(name)
}

// RegisterTheme publishes the named built-in theme as an available style
// without activating it.
func RegisterTheme(name string) error {
	return theme.Register(name)
}

// Themes lists the built-in theme names.
func Themes() []string {
	return theme.Builtins()
}
