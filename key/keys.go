// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Theme Selection - these keys govern which built-in theme is used by default.
const (
	ThemeDefault = "theme.default"
)

// Palette Preview - these keys define the layout of terminal palette previews.
const (
	PreviewColumns = "preview.columns"
)

// Font Discovery - these keys extend the directories scanned for installed fonts.
const (
	FontsPaths = "fonts.paths"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)
