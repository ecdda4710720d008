package theme

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPreview(t *testing.T) {
	Convey("Preview", t, func() {
		th, err := New(testConfig())
		So(err, ShouldBeNil)
		out := th.Preview()

		Convey("All sections are present", func() {
			for _, section := range []string{
				"Theme Colors", "Common Colors",
				"Discrete Color Maps", "Continuous Color Maps",
			} {
				So(out, ShouldContainSubstring, section)
			}
		})

		Convey("Colors and colormaps are named", func() {
			So(out, ShouldContainSubstring, "forest_green")
			So(out, ShouldContainSubstring, "traffic_light_red")
			So(out, ShouldContainSubstring, "test:d_default")
			So(out, ShouldContainSubstring, "test:c_green_blue")
		})

		Convey("Custom colors only appear when the theme carries some", func() {
			So(out, ShouldNotContainSubstring, "Custom Colors")

			cfg := testConfig()
			cfg.CustomColors = append(cfg.CustomColors, TrafficLightGreen)
			withCustom, err := New(cfg)
			So(err, ShouldBeNil)
			So(withCustom.Preview(), ShouldContainSubstring, "Custom Colors")
		})
	})
}
