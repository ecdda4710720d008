package registry

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/mplthemes/mplthemes/cmap"
	"github.com/mplthemes/mplthemes/key"
)

func TestColors(t *testing.T) {
	Convey("Color table", t, func() {
		r := New()

		Convey("Lookups miss until a color is set", func() {
			_, ok := r.Color("forest_green")
			So(ok, ShouldBeFalse)
		})

		Convey("Later writes win", func() {
			r.SetColor("forest_green", []float64{0, 0.5, 0})
			r.SetColor("forest_green", []float64{0, 0.3, 0.1})
			v, ok := r.Color("forest_green")
			So(ok, ShouldBeTrue)
			So(v, ShouldResemble, []float64{0, 0.3, 0.1})
		})

		Convey("Stored values are detached from the caller's slice", func() {
			value := []float64{0, 0.5, 0}
			r.SetColor("forest_green", value)
			value[0] = 1
			v, _ := r.Color("forest_green")
			So(v[0], ShouldEqual, 0.0)
		})
	})
}

func TestColormaps(t *testing.T) {
	Convey("Colormap table", t, func() {
		r := New()
		first := cmap.NewDiscrete("test:d_default", [][]float64{{0, 0, 0}})
		second := cmap.NewDiscrete("test:d_default", [][]float64{{1, 1, 1}})

		Convey("The first registration under a name wins", func() {
			So(r.RegisterColormap(first), ShouldBeTrue)
			So(r.RegisterColormap(second), ShouldBeFalse)
			m, ok := r.Colormap("test:d_default")
			So(ok, ShouldBeTrue)
			So(m.At(0), ShouldResemble, []float64{0, 0, 0})
		})
	})
}

func TestStyles(t *testing.T) {
	Convey("Style library", t, func() {
		r := New()

		Convey("A fresh registry holds the library defaults", func() {
			So(r.ActiveStyle(), ShouldBeEmpty)
			So(r.Param(key.LinesLinewidth), ShouldEqual, 1.0)
			So(r.Param(key.ImageCmap), ShouldEqual, "viridis")
		})

		Convey("RegisterStyle publishes without activating", func() {
			r.RegisterStyle("quiet", map[string]any{key.FontSize: 9.0})
			So(r.AvailableStyles(), ShouldResemble, []string{"quiet"})
			So(r.ActiveStyle(), ShouldBeEmpty)
			So(r.Param(key.FontSize), ShouldNotEqual, 9.0)
		})

		Convey("SetActiveStyle overlays on fresh defaults", func() {
			r.SetActiveStyle("loud", map[string]any{key.FontSize: 20.0})
			So(r.ActiveStyle(), ShouldEqual, "loud")
			So(r.Param(key.FontSize), ShouldEqual, 20.0)
			So(r.AvailableStyles(), ShouldBeEmpty)

			// Activating another style must not inherit the previous overlay.
			r.SetActiveStyle("plain", map[string]any{key.LinesLinewidth: 2.0})
			So(r.Param(key.FontSize), ShouldNotEqual, 20.0)
			So(r.Param(key.LinesLinewidth), ShouldEqual, 2.0)
		})

		Convey("Style names come back sorted", func() {
			r.RegisterStyle("b", nil)
			r.RegisterStyle("a", nil)
			r.RegisterStyle("c", nil)
			So(r.AvailableStyles(), ShouldResemble, []string{"a", "b", "c"})
		})

		Convey("Published styles are copied both ways", func() {
			params := map[string]any{key.FontSize: 9.0}
			r.RegisterStyle("quiet", params)
			params[key.FontSize] = 11.0
			s, ok := r.Style("quiet")
			So(ok, ShouldBeTrue)
			So(s[key.FontSize], ShouldEqual, 9.0)
		})
	})
}
