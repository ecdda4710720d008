// Package color provides the named color values and luminance math backing all themes.
package color

import (
	"errors"
	"fmt"
)

// RGB stores explicit 8-bit color channels, decoupled from any rendering backend.
type RGB struct {
	R, G, B uint8
}

// Normalized returns the three channels scaled to the [0, 1] range.
func (c RGB) Normalized() []float64 {
	return []float64{float64(c.R) / 255.0, float64(c.G) / 255.0, float64(c.B) / 255.0}
}

// Hex returns the color as a "#rrggbb" string, suitable for terminal styling backends.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Color is an immutable named color. Identity within a collection is by name;
// collections assume no duplicate-name collisions but do not enforce it.
type Color struct {
	Name string
	RGB
	Alpha float64
}

// New initializes a fully opaque Color from 8-bit channels.
func New(name string, r, g, b uint8) Color {
	return Color{Name: name, RGB: RGB{R: r, G: g, B: b}, Alpha: 1.0}
}

// NewAlpha initializes a Color with an explicit alpha in [0, 1].
func NewAlpha(name string, r, g, b uint8, alpha float64) Color {
	return Color{Name: name, RGB: RGB{R: r, G: g, B: b}, Alpha: alpha}
}

// NormalizedRGBA returns the normalized channels with the alpha passed through unchanged.
func (c Color) NormalizedRGBA() []float64 {
	return append(c.Normalized(), c.Alpha)
}

// ErrTooFewChannels is reported when a channel slice holds fewer than the
// three mandatory red, green and blue entries.
var ErrTooFewChannels = errors.New("color value needs at least 3 channels")

func scaleChannels(rgb []float64, scale func(float64) float64) ([]float64, error) {
	if len(rgb) < 3 {
		return nil, fmt.Errorf("%w, got %d", ErrTooFewChannels, len(rgb))
	}
	out := []float64{scale(rgb[0]), scale(rgb[1]), scale(rgb[2])}
	if len(rgb) >= 4 {
		// Alpha is already a fraction; it never gets rescaled.
		out = append(out, rgb[3])
	}
	return out, nil
}

// Normalize divides the first three channels by 255, passing alpha through
// unchanged when a fourth channel is present.
func Normalize(rgb []float64) ([]float64, error) {
	return scaleChannels(rgb, func(v float64) float64 { return v / 255.0 })
}

// Denormalize is the inverse of Normalize.
func Denormalize(rgb []float64) ([]float64, error) {
	return scaleChannels(rgb, func(v float64) float64 { return v * 255.0 })
}
