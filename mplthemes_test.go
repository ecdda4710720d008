package mplthemes

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/mplthemes/mplthemes/filesystem"
	"github.com/mplthemes/mplthemes/key"
	"github.com/mplthemes/mplthemes/registry"
	"github.com/mplthemes/mplthemes/theme"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestThemes(t *testing.T) {
	Convey("Themes", t, func() {
		names := Themes()
		So(names, ShouldContain, theme.GreenGeneric)
		So(names, ShouldContain, theme.BlueGeneric)
	})
}

func TestSetTheme(t *testing.T) {
	Convey("SetTheme", t, func() {
		Convey("Should activate a built-in theme", func() {
			So(SetTheme(theme.GreenGeneric), ShouldBeNil)
			So(registry.Default().ActiveStyle(), ShouldEqual, theme.GreenGeneric)
		})

		Convey("Should reject unknown names", func() {
			So(SetTheme("solarized"), ShouldNotBeNil)
		})
	})
}

func TestSetDefaultTheme(t *testing.T) {
	Convey("SetDefaultTheme", t, func() {
		Convey("Should follow the configured default", func() {
			viper.Set(key.ThemeDefault, theme.BlueGeneric)
			defer viper.Set(key.ThemeDefault, "")

			So(SetDefaultTheme(), ShouldBeNil)
			So(registry.Default().ActiveStyle(), ShouldEqual, theme.BlueGeneric)
		})

		Convey("Should fall back to the green theme", func() {
			viper.Set(key.ThemeDefault, "")
			So(SetDefaultTheme(), ShouldBeNil)
			So(registry.Default().ActiveStyle(), ShouldEqual, theme.GreenGeneric)
		})
	})
}

func TestRegisterTheme(t *testing.T) {
	Convey("RegisterTheme", t, func() {
		So(RegisterTheme(theme.BlueGeneric), ShouldBeNil)
		So(registry.Default().AvailableStyles(), ShouldContain, theme.BlueGeneric)
	})
}
