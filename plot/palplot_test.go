package plot

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/mplthemes/mplthemes/cmap"
	"github.com/mplthemes/mplthemes/color"
)

var pngMagic = []byte("\x89PNG")

func TestToDrawing(t *testing.T) {
	Convey("toDrawing", t, func() {
		Convey("Channels are scaled to 8 bits with rounding", func() {
			c := toDrawing([]float64{1, 0.5, 0})
			So(c.R, ShouldEqual, 255)
			So(c.G, ShouldEqual, 128)
			So(c.B, ShouldEqual, 0)
			So(c.A, ShouldEqual, 255)
		})

		Convey("A fourth channel sets the alpha", func() {
			So(toDrawing([]float64{0, 0, 0, 0.5}).A, ShouldEqual, 128)
		})
	})
}

func TestStrips(t *testing.T) {
	Convey("Strips", t, func() {
		Convey("DiscreteStrip yields a PNG", func() {
			m := cmap.FromCuts("test:d_gray", color.RGB{R: 87, G: 87, B: 87}, nil)
			data, err := DiscreteStrip(m)
			So(err, ShouldBeNil)
			So(bytes.HasPrefix(data, pngMagic), ShouldBeTrue)
		})

		Convey("ContinuousStrip yields a PNG", func() {
			m, err := cmap.NewLinear("test:c_gray",
				[][]float64{{0, 0, 0}, {1, 1, 1}}, []float64{0, 1})
			So(err, ShouldBeNil)
			data, err := ContinuousStrip(m)
			So(err, ShouldBeNil)
			So(bytes.HasPrefix(data, pngMagic), ShouldBeTrue)
		})
	})
}

func TestSwatches(t *testing.T) {
	Convey("Swatches", t, func() {
		data, err := Swatches("Theme Colors", []color.Color{
			color.New("forest_green", 3, 82, 45),
			color.New("true_blue", 41, 94, 126),
		})
		So(err, ShouldBeNil)
		So(bytes.HasPrefix(data, pngMagic), ShouldBeTrue)
	})
}
