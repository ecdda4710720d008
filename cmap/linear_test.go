package cmap

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func grayscale() *Linear {
	m, err := NewLinear("test:c_gray",
		[][]float64{{0, 0, 0}, {0.5, 0.5, 0.5}, {1, 1, 1}},
		[]float64{0, 0.5, 1})
	So(err, ShouldBeNil)
	return m
}

func TestNewLinear(t *testing.T) {
	Convey("NewLinear", t, func() {
		Convey("Colors and stops must be parallel", func() {
			_, err := NewLinear("bad", [][]float64{{0, 0, 0}}, []float64{0, 1})
			So(err, ShouldNotBeNil)
		})

		Convey("Colors need at least three channels", func() {
			_, err := NewLinear("bad", [][]float64{{0, 0}}, []float64{0})
			So(err, ShouldNotBeNil)
		})

		Convey("Sampling hits the stops and interpolates between them", func() {
			m := grayscale()
			So(m.At(0), ShouldResemble, []float64{0, 0, 0})
			So(m.At(0.5), ShouldResemble, []float64{0.5, 0.5, 0.5})
			So(m.At(1), ShouldResemble, []float64{1, 1, 1})
			So(m.At(0.25)[0], ShouldAlmostEqual, 0.25)
			So(m.At(0.75)[2], ShouldAlmostEqual, 0.75)
		})

		Convey("Sampling clamps outside the unit interval", func() {
			m := grayscale()
			So(m.At(-1), ShouldResemble, []float64{0, 0, 0})
			So(m.At(2), ShouldResemble, []float64{1, 1, 1})
		})
	})
}

func TestLinearReverse(t *testing.T) {
	Convey("Reverse", t, func() {
		m, err := NewLinear("test:c_ramp",
			[][]float64{{1, 0, 0}, {1, 1, 0}, {0, 1, 1}},
			[]float64{0, 0.3, 1})
		So(err, ShouldBeNil)
		r := m.Reverse("")

		Convey("An empty name gets the _r suffix", func() {
			So(r.Name(), ShouldEqual, "test:c_ramp_r")
		})

		Convey("Reversed map at t matches the original at 1-t", func() {
			for _, t := range []float64{0, 0.25, 0.5, 0.75, 1} {
				got := r.At(t)
				want := m.At(1 - t)
				So(got[0], ShouldAlmostEqual, want[0])
				So(got[1], ShouldAlmostEqual, want[1])
				So(got[2], ShouldAlmostEqual, want[2])
			}
		})

		Convey("Reversing twice restores the segment tables", func() {
			rr := r.Reverse(m.Name())
			gotR, gotG, gotB := rr.Segments()
			wantR, wantG, wantB := m.Segments()
			So(gotR, ShouldResemble, wantR)
			So(gotG, ShouldResemble, wantG)
			So(gotB, ShouldResemble, wantB)
		})
	})
}

func TestResample(t *testing.T) {
	Convey("Resample", t, func() {
		m := grayscale()

		Convey("Endpoints are included", func() {
			out := m.Resample(3)
			So(out, ShouldHaveLength, 3)
			So(out[0], ShouldResemble, []float64{0, 0, 0})
			So(out[2], ShouldResemble, []float64{1, 1, 1})
		})

		Convey("A single sample takes the start of the map", func() {
			So(m.Resample(1), ShouldResemble, [][]float64{{0, 0, 0}})
		})
	})
}
