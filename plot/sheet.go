package plot

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/samber/lo"

	"github.com/mplthemes/mplthemes/cmap"
	"github.com/mplthemes/mplthemes/filesystem"
	"github.com/mplthemes/mplthemes/log"
	"github.com/mplthemes/mplthemes/theme"
)

// rowGap separates stacked colormap strips on a sheet panel.
const rowGap = 8

// renderStack paints every colormap of ms on one panel, one labeled strip
// per row in sorted name order.
func renderStack[M cmap.Colormap](ms map[string]M, cells func(M) int) ([]byte, error) {
	names := lo.Keys(ms)
	sort.Strings(names)

	rowHeight := stripHeight + rowGap
	r, err := newRenderer(stripWidth, len(names)*rowHeight)
	if err != nil {
		return nil, err
	}
	for i, name := range names {
		drawStrip(r, ms[name], i*rowHeight, stripWidth, cells(ms[name]))
	}
	return save(r)
}

// Sheet bundles the rendered PNG panels of a full theme summary.
type Sheet struct {
	ThemeColors    []byte
	CustomColors   []byte
	CommonColors   []byte
	DiscreteMaps   []byte
	ContinuousMaps []byte
}

// ThemeSheet renders a complete visual summary of t: its color
// collections and every derived colormap.
func ThemeSheet(t *theme.Theme) (*Sheet, error) {
	var s Sheet
	var err error

	if s.ThemeColors, err = Swatches("Theme Colors", t.ThemeColors().Colors()); err != nil {
		return nil, err
	}
	if custom := t.CustomColors().Colors(); len(custom) > 0 {
		if s.CustomColors, err = Swatches("Custom Colors", custom); err != nil {
			return nil, err
		}
	}
	if s.CommonColors, err = Swatches("Common Colors", t.CommonColors().Colors()); err != nil {
		return nil, err
	}

	if s.DiscreteMaps, err = renderStack(t.DiscreteCmaps(), func(m *cmap.Discrete) int {
		return m.Len()
	}); err != nil {
		return nil, err
	}
	if s.ContinuousMaps, err = renderStack(t.ContinuousCmaps(), func(*cmap.Linear) int {
		return stripWidth
	}); err != nil {
		return nil, err
	}

	return &s, nil
}

// Save writes every panel of the sheet as <prefix>_<panel>.png under dir
// through the virtualized filesystem, returning the written paths.
func (s *Sheet) Save(dir, prefix string) ([]string, error) {
	panels := []struct {
		id   string
		data []byte
	}{
		{"theme_colors", s.ThemeColors},
		{"custom_colors", s.CustomColors},
		{"common_colors", s.CommonColors},
		{"discrete_cmaps", s.DiscreteMaps},
		{"continuous_cmaps", s.ContinuousMaps},
	}

	if err := filesystem.API().MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	var paths []string
	for _, p := range panels {
		if len(p.data) == 0 {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", prefix, p.id))
		if err := filesystem.API().WriteFile(path, p.data, 0644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		log.Debugf("wrote %s", path)
		paths = append(paths, path)
	}
	return paths, nil
}
