package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(5, 0, 10), ShouldEqual, 5)
		So(Clamp(-3, 0, 10), ShouldEqual, 0)
		So(Clamp(42, 0, 10), ShouldEqual, 10)
		So(Clamp(1.5, 0.0, 1.0), ShouldEqual, 1.0)
	})
}

func TestCm2Inch(t *testing.T) {
	Convey("Cm2Inch", t, func() {
		Convey("Should divide each value by 2.54", func() {
			out := Cm2Inch(2.54, 25.4)
			So(out, ShouldHaveLength, 2)
			So(out[0], ShouldAlmostEqual, 1.0)
			So(out[1], ShouldAlmostEqual, 10.0)
		})
		Convey("Should handle no arguments", func() {
			So(Cm2Inch(), ShouldBeEmpty)
		})
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/file.ttf"), ShouldEqual, "file")
		So(FileStem("Trebuchet MS.ttf"), ShouldEqual, "Trebuchet MS")
		So(FileStem("file"), ShouldEqual, "file")
	})
}

func TestIgnore(t *testing.T) {
	Convey("Ignore", t, func() {
		called := false
		Ignore(func() error {
			called = true
			return nil
		})
		So(called, ShouldBeTrue)
	})
}
