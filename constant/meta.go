// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// MplThemes is the canonical application identifier used for filesystem paths and env prefixes.
	MplThemes = "mplthemes"

	// Version is the current library semantic version string.
	Version = "0.1.0"

	// DefaultFont is the font requested by the built-in themes when the caller supplies none.
	DefaultFont = "Trebuchet MS"
)
