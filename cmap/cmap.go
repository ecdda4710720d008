// Package cmap implements the two colormap flavors derived by themes:
// discrete (listed) maps for categorical data and linear (segmented) maps
// for continuous data.
//
// All colors handled by this package are normalized RGB(A) channel slices
// in the [0, 1] range.
package cmap

// Colormap maps normalized positions in [0, 1] to colors.
type Colormap interface {
	Name() string
	At(t float64) []float64
}
