package constant

import "github.com/mplthemes/mplthemes/util"

// Named physical figure dimensions in inches, converted from the
// centimeter measurements of standard presentation page layouts.
var (
	SizeLarge          = util.Cm2Inch(26.76, 10.01)
	SizeMedium         = util.Cm2Inch(21.85, 10.01)
	SizeSmall          = util.Cm2Inch(17, 9.91)
	SizeHalf           = util.Cm2Inch(12.85, 9.91)
	SizeTwoThird       = util.Cm2Inch(17.00, 10.01)
	SizeOneThird       = util.Cm2Inch(9.69, 9.91)
	SizeOneThirdSpaced = util.Cm2Inch(8.76, 9.91)
)

// Sizes maps a human-chosen preset name to its figure dimensions.
var Sizes = map[string][]float64{
	"large":            SizeLarge,
	"medium":           SizeMedium,
	"small":            SizeSmall,
	"half":             SizeHalf,
	"two_third":        SizeTwoThird,
	"one_third":        SizeOneThird,
	"one_third_spaced": SizeOneThirdSpaced,
}
