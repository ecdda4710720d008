package theme

import (
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/mplthemes/mplthemes/key"
	"github.com/mplthemes/mplthemes/style"
	"github.com/mplthemes/mplthemes/util"
)

// stripCells is the sample count for continuous map previews.
const stripCells = 48

// Preview renders a colored terminal summary of the theme for human
// inspection: all color collections followed by every derived colormap.
func (t *Theme) Preview() string {
	cols := viper.GetInt(key.PreviewColumns)
	if cols < 1 {
		cols = 4
	}
	if width, _, err := util.TerminalSize(); err == nil && width/28 < cols && width >= 28 {
		cols = width / 28
	}

	var b strings.Builder
	section := func(title string, body string) {
		b.WriteString(style.Bold(title))
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n\n")
	}

	section("Theme Colors", style.Grid(t.colors.Colors(), cols))
	if len(t.custom) > 0 {
		section("Custom Colors", style.Grid(t.custom.Colors(), cols))
	}
	section("Common Colors", style.Grid(CommonColors{}.Colors(), cols))

	var rows []string
	for _, name := range sortedKeys(t.discrete) {
		m := t.discrete[name]
		rows = append(rows, style.Strip(m.At, m.Len()*4)+" "+style.Faint(name))
	}
	section("Discrete Color Maps", strings.Join(rows, "\n"))

	rows = rows[:0]
	for _, name := range sortedKeys(t.continuous) {
		m := t.continuous[name]
		rows = append(rows, style.Strip(m.At, stripCells)+" "+style.Faint(name))
	}
	section("Continuous Color Maps", strings.Join(rows, "\n"))

	return strings.TrimRight(b.String(), "\n")
}

func sortedKeys[V any](m map[string]V) []string {
	names := lo.Keys(m)
	sort.Strings(names)
	return names
}
