package style

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/mplthemes/mplthemes/color"
)

func TestSwatch(t *testing.T) {
	Convey("Swatch", t, func() {
		out := Swatch(color.New("forest_green", 3, 82, 45))
		So(out, ShouldContainSubstring, "forest_green")
	})
}

func TestStrip(t *testing.T) {
	Convey("Strip", t, func() {
		gray := func(t float64) []float64 { return []float64{t, t, t} }

		Convey("Should render one cell per sample", func() {
			So(Strip(gray, 8), ShouldNotBeEmpty)
		})

		Convey("Should render nothing for zero cells", func() {
			So(Strip(gray, 0), ShouldBeEmpty)
		})
	})
}

func TestGrid(t *testing.T) {
	Convey("Grid", t, func() {
		colors := []color.Color{
			color.New("a", 1, 2, 3),
			color.New("b", 4, 5, 6),
			color.New("c", 7, 8, 9),
		}

		Convey("Should wrap into rows of ncols", func() {
			out := Grid(colors, 2)
			So(strings.Count(out, "\n"), ShouldBeGreaterThanOrEqualTo, 1)
			for _, c := range colors {
				So(out, ShouldContainSubstring, c.Name)
			}
		})

		Convey("Should tolerate a non-positive column count", func() {
			So(Grid(colors, 0), ShouldContainSubstring, "a")
		})
	})
}
