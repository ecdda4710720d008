package cmap

import (
	"math"

	"github.com/samber/lo"

	"github.com/mplthemes/mplthemes/color"
	"github.com/mplthemes/mplthemes/util"
)

// DefaultCuts are the five fixed brightness steps used when no explicit
// cuts are requested, mirroring the palette generator of common
// presentation software. Positive values lighten, negative values darken.
var DefaultCuts = []float64{0.8, 0.6, 0.4, -0.25, -0.5}

// Discrete is a fixed, finite ordered list of colors sampled for
// categorical data. Colors are never interpolated.
type Discrete struct {
	name   string
	colors [][]float64
}

// NewDiscrete wraps an ordered list of normalized colors under a name.
func NewDiscrete(name string, colors [][]float64) *Discrete {
	return &Discrete{name: name, colors: colors}
}

// FromCuts derives a discrete map from a single 8-bit reference color by
// applying luminance cuts: every non-negative cut c lightens the base by c,
// every negative cut c darkens it by -c. All lightened colors come first,
// then all darkened ones, each group in its original cut order.
func FromCuts(name string, base color.RGB, cuts []float64) *Discrete {
	if cuts == nil {
		cuts = DefaultCuts
	}
	lightened := lo.Filter(cuts, func(c float64, _ int) bool { return c >= 0 })
	darkened := lo.Filter(cuts, func(c float64, _ int) bool { return c < 0 })

	colors := make([][]float64, 0, len(cuts))
	for _, c := range lightened {
		colors = append(colors, color.Lighten(base, c).Normalized())
	}
	for _, c := range darkened {
		colors = append(colors, color.Darken(base, -c).Normalized())
	}
	return NewDiscrete(name, colors)
}

// FromCutCount derives a discrete map with n evenly spaced cuts spanning
// the full -0.5..0.8 luminance range of DefaultCuts, brightest first.
func FromCutCount(name string, base color.RGB, n int) *Discrete {
	return FromCuts(name, base, SpacedCuts(n))
}

// SpacedCuts returns n evenly spaced cut values between -0.5 and 0.8
// inclusive, rounded to two decimals and ordered brightest first.
func SpacedCuts(n int) []float64 {
	if n < 1 {
		return nil
	}
	cuts := make([]float64, n)
	for i := 0; i < n; i++ {
		v := -50.0
		if n > 1 {
			v += float64(i) * 130.0 / float64(n-1)
		}
		// Reversed order: the largest (lightest) cut comes first.
		cuts[n-1-i] = math.Round(v) / 100.0
	}
	return cuts
}

// Name reports the colormap name, by convention "<theme>:d_<id>".
func (d *Discrete) Name() string { return d.name }

// Colors returns the underlying ordered color list.
func (d *Discrete) Colors() [][]float64 { return d.colors }

// Len reports the number of colors in the map.
func (d *Discrete) Len() int { return len(d.colors) }

// At maps a position in [0, 1] onto the color list by index.
func (d *Discrete) At(t float64) []float64 {
	if len(d.colors) == 0 {
		return nil
	}
	i := util.Clamp(int(t*float64(len(d.colors))), 0, len(d.colors)-1)
	return d.colors[i]
}

// AtIndex returns the color at index i, wrapping around the list. Handy
// when assigning one color per series in a loop.
func (d *Discrete) AtIndex(i int) []float64 {
	if len(d.colors) == 0 {
		return nil
	}
	return d.colors[i%len(d.colors)]
}
