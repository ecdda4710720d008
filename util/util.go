// Package util provides a collection of domain-agnostic utility functions and cross-platform helpers.
package util

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

// Clamp constrains v to the inclusive [lo, hi] range.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Cm2Inch converts physical centimeter dimensions to inches.
func Cm2Inch(values ...float64) []float64 {
	const inch = 2.54
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v / inch
	}
	return out
}

// TerminalSize retrieves the current character dimensions of the terminal window.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// FileStem extracts the base filename from a path, excluding all file extensions.
func FileStem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// Ignore invokes a cleanup function, deliberately discarding its error.
func Ignore(f func() error) {
	_ = f()
}
