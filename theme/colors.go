// Package theme assembles named colors, a font and derived colormaps into
// complete plotting themes, and activates them against a style registry.
package theme

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/mplthemes/mplthemes/color"
)

// Color group identifiers accepted by ThemeColors.Get.
const (
	GroupBackground = "background"
	GroupText       = "text"
	GroupAccent     = "accent"
)

// Source is the one capability shared by all color collections: produce an
// ordered sequence of colors.
type Source interface {
	Colors() []color.Color
}

// ThemeColors holds the ten mandatory semantic color slots of a theme:
// two backgrounds, two text colors and six accents.
type ThemeColors struct {
	Background1, Background2 color.Color
	Text1, Text2             color.Color
	Accent1, Accent2         color.Color
	Accent3, Accent4         color.Color
	Accent5, Accent6         color.Color
}

// Get returns the colors of the requested groups, always in background,
// text, accent group order with declaration order inside each group. With
// no groups it returns all ten colors.
func (tc ThemeColors) Get(groups ...string) []color.Color {
	if len(groups) == 0 {
		groups = []string{GroupBackground, GroupText, GroupAccent}
	}
	var out []color.Color
	if lo.Contains(groups, GroupBackground) {
		out = append(out, tc.Background1, tc.Background2)
	}
	if lo.Contains(groups, GroupText) {
		out = append(out, tc.Text1, tc.Text2)
	}
	if lo.Contains(groups, GroupAccent) {
		out = append(out, tc.Accent1, tc.Accent2, tc.Accent3, tc.Accent4, tc.Accent5, tc.Accent6)
	}
	return out
}

// Colors implements Source.
func (tc ThemeColors) Colors() []color.Color {
	return tc.Get()
}

// validate checks that every mandatory slot is populated.
func (tc ThemeColors) validate() error {
	slots := map[string]color.Color{
		"background1": tc.Background1,
		"background2": tc.Background2,
		"text1":       tc.Text1,
		"text2":       tc.Text2,
		"accent1":     tc.Accent1,
		"accent2":     tc.Accent2,
		"accent3":     tc.Accent3,
		"accent4":     tc.Accent4,
		"accent5":     tc.Accent5,
		"accent6":     tc.Accent6,
	}
	for slot, c := range slots {
		if c.Name == "" {
			return fmt.Errorf("theme color slot %s is not populated", slot)
		}
	}
	return nil
}

// Traffic-light colors shared by every theme.
var (
	TrafficLightGreen  = color.New("traffic_light_green", 41, 186, 116)
	TrafficLightOrange = color.New("traffic_light_orange", 212, 223, 51)
	TrafficLightRed    = color.New("traffic_light_red", 231, 28, 87)
)

// CommonColors is the fixed collection of colors available regardless of
// the chosen theme.
type CommonColors struct{}

// Colors implements Source.
func (CommonColors) Colors() []color.Color {
	return []color.Color{TrafficLightGreen, TrafficLightOrange, TrafficLightRed}
}

// CustomColors is an open-ended ordered list of theme-specific extras. It
// may be empty.
type CustomColors []color.Color

// Colors implements Source.
func (cc CustomColors) Colors() []color.Color {
	return cc
}
