package theme

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/mplthemes/mplthemes/registry"
)

func TestBuiltins(t *testing.T) {
	Convey("Builtins", t, func() {
		So(Builtins(), ShouldResemble, []string{BlueGeneric, GreenGeneric})
	})
}

func TestLookup(t *testing.T) {
	Convey("Lookup", t, func() {
		Convey("Known names resolve", func() {
			th, err := Lookup(GreenGeneric)
			So(err, ShouldBeNil)
			So(th.Name(), ShouldEqual, GreenGeneric)
		})

		Convey("Unknown names fail", func() {
			_, err := Lookup("blabla")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})

		Convey("Near misses get a suggestion", func() {
			_, err := Lookup("mpl-themes-gren")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "did you mean")
			So(err.Error(), ShouldContainSubstring, GreenGeneric)
		})
	})
}

func TestSetAndRegister(t *testing.T) {
	Convey("Set and Register", t, func() {
		std := registry.Default()

		Convey("Set activates a built-in theme", func() {
			So(Set(GreenGeneric), ShouldBeNil)
			So(std.ActiveStyle(), ShouldEqual, GreenGeneric)
			_, ok := std.Color("forest_green")
			So(ok, ShouldBeTrue)
		})

		Convey("Set rejects unknown names", func() {
			err := Set("blabla")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})

		Convey("Register publishes without activating", func() {
			So(Set(GreenGeneric), ShouldBeNil)
			So(Register(BlueGeneric), ShouldBeNil)
			So(std.AvailableStyles(), ShouldContain, BlueGeneric)
			So(std.ActiveStyle(), ShouldEqual, GreenGeneric)
		})
	})
}
