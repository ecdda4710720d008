package theme

import (
	"fmt"
	"maps"
	"strings"

	"github.com/samber/lo"

	"github.com/mplthemes/mplthemes/cmap"
	"github.com/mplthemes/mplthemes/color"
	"github.com/mplthemes/mplthemes/constant"
	"github.com/mplthemes/mplthemes/font"
	"github.com/mplthemes/mplthemes/key"
	"github.com/mplthemes/mplthemes/log"
	"github.com/mplthemes/mplthemes/registry"
)

// Config collects everything needed to build a Theme: the ten mandatory
// theme colors, the four semantic default accents reused across derived
// gradients, a font and optional custom colors.
type Config struct {
	Name   string
	Colors ThemeColors

	// The default accents usually alias one of the theme colors above.
	DefaultRed    color.Color
	DefaultGreen  color.Color
	DefaultBlue   color.Color
	DefaultYellow color.Color

	// Font requested for plots; defaults to constant.DefaultFont.
	Font string

	CustomColors []color.Color
}

// Theme is an immutable bundle of colors and a font together with the
// colormaps and style parameters derived from them. All derived
// dictionaries are computed once at construction; nothing is mutated
// afterwards.
type Theme struct {
	name   string
	font   string
	colors ThemeColors
	custom CustomColors

	defaultRed    color.Color
	defaultGreen  color.Color
	defaultBlue   color.Color
	defaultYellow color.Color

	discrete      map[string]*cmap.Discrete
	continuous    map[string]*cmap.Linear
	continuousRev map[string]*cmap.Linear
	rc            map[string]any
}

// New builds a Theme and derives its colormap dictionaries and style
// parameters. It fails when the name is empty or any mandatory color slot
// is unpopulated.
func New(cfg Config) (*Theme, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("theme needs a name")
	}
	if err := cfg.Colors.validate(); err != nil {
		return nil, fmt.Errorf("theme %q: %w", cfg.Name, err)
	}
	for slot, c := range map[string]color.Color{
		"default_red":    cfg.DefaultRed,
		"default_green":  cfg.DefaultGreen,
		"default_blue":   cfg.DefaultBlue,
		"default_yellow": cfg.DefaultYellow,
	} {
		if c.Name == "" {
			return nil, fmt.Errorf("theme %q: %s is not populated", cfg.Name, slot)
		}
	}

	t := &Theme{
		name:          cfg.Name,
		font:          cfg.Font,
		colors:        cfg.Colors,
		custom:        CustomColors(cfg.CustomColors),
		defaultRed:    cfg.DefaultRed,
		defaultGreen:  cfg.DefaultGreen,
		defaultBlue:   cfg.DefaultBlue,
		defaultYellow: cfg.DefaultYellow,
	}
	if t.font == "" {
		t.font = constant.DefaultFont
	}

	// Continuous maps borrow their light gray midpoint from the discrete
	// gray map, so the discrete dictionary has to exist first.
	t.discrete = t.buildDiscrete()
	t.continuous = t.buildContinuous()
	t.continuousRev = make(map[string]*cmap.Linear, len(t.continuous))
	for _, m := range t.continuous {
		rev := m.Reverse("")
		t.continuousRev[rev.Name()] = rev
	}
	t.rc = t.buildRC()

	return t, nil
}

// Name reports the theme name, used as registry key and colormap prefix.
func (t *Theme) Name() string { return t.name }

// Font reports the font requested by the theme.
func (t *Theme) Font() string { return t.font }

// ThemeColors returns the collection of the ten mandatory colors.
func (t *Theme) ThemeColors() ThemeColors { return t.colors }

// CustomColors returns the theme's optional extra colors.
func (t *Theme) CustomColors() CustomColors { return t.custom }

// CommonColors returns the theme-independent traffic-light colors.
func (t *Theme) CommonColors() CommonColors { return CommonColors{} }

// DiscreteCmaps returns the derived discrete colormaps keyed by their full
// "<name>:d_<id>" names.
func (t *Theme) DiscreteCmaps() map[string]*cmap.Discrete {
	return maps.Clone(t.discrete)
}

// ContinuousCmaps returns the derived continuous colormaps keyed by their
// full "<name>:c_<id>" names.
func (t *Theme) ContinuousCmaps() map[string]*cmap.Linear {
	return maps.Clone(t.continuous)
}

// ContinuousCmapsReversed returns the "_r" mirrored variant of every
// continuous colormap.
func (t *Theme) ContinuousCmapsReversed() map[string]*cmap.Linear {
	return maps.Clone(t.continuousRev)
}

// RC returns a copy of the theme's style parameter dictionary.
func (t *Theme) RC() map[string]any {
	return maps.Clone(t.rc)
}

func (t *Theme) discreteName(id string) string {
	return t.name + ":d_" + id
}

func (t *Theme) continuousName(id string) string {
	return t.name + ":c_" + id
}

func (t *Theme) buildDiscrete() map[string]*cmap.Discrete {
	normalized := func(c color.Color, _ int) []float64 { return c.Normalized() }

	d := map[string]*cmap.Discrete{
		t.discreteName("default"): cmap.NewDiscrete(
			t.discreteName("default"),
			lo.Map(t.colors.Get(GroupText, GroupAccent), normalized),
		),
		t.discreteName("highlight"): cmap.NewDiscrete(
			t.discreteName("highlight"),
			lo.Map([]color.Color{t.defaultGreen, t.defaultYellow, t.defaultRed}, normalized),
		),
		t.discreteName("gray"):  cmap.FromCuts(t.discreteName("gray"), t.colors.Text1.RGB, nil),
		t.discreteName("green"): cmap.FromCuts(t.discreteName("green"), t.colors.Text2.RGB, nil),
	}
	for _, c := range t.colors.Get(GroupAccent) {
		name := t.discreteName(c.Name)
		d[name] = cmap.FromCuts(name, c.RGB, nil)
	}
	return d
}

func (t *Theme) buildContinuous() map[string]*cmap.Linear {
	lightGray := t.discrete[t.discreteName("gray")].Colors()[0]
	centered := []float64{0, 0.5, 1}

	mk := func(id string, colors [][]float64, stops []float64) *cmap.Linear {
		// Stop and color counts are fixed here, construction cannot fail.
		return lo.Must(cmap.NewLinear(t.continuousName(id), colors, stops))
	}
	through := func(from, to color.Color) [][]float64 {
		return [][]float64{from.Normalized(), lightGray, to.Normalized()}
	}

	built := []*cmap.Linear{
		mk("default", through(t.defaultGreen, t.defaultYellow), centered),
		mk("gray", [][]float64{t.colors.Text1.Normalized(), lightGray}, []float64{0, 1}),
		mk("highlight", t.discrete[t.discreteName("highlight")].Colors(), centered),
		mk("red_yellow", through(t.defaultRed, t.defaultYellow), centered),
		mk("red_blue", through(t.defaultRed, t.defaultBlue), centered),
		mk("green_yellow", through(t.defaultGreen, t.defaultYellow), centered),
		mk("green_red", through(t.defaultGreen, t.defaultRed), centered),
		mk("green_blue", through(t.defaultGreen, t.defaultBlue), centered),
		mk("blue_yellow", through(t.defaultBlue, t.defaultYellow), centered),
	}
	return lo.SliceToMap(built, func(m *cmap.Linear) (string, *cmap.Linear) {
		return m.Name(), m
	})
}

func (t *Theme) buildRC() map[string]any {
	text1 := t.colors.Text1.NormalizedRGBA()
	text2 := t.colors.Text2.NormalizedRGBA()

	return map[string]any{
		key.FontSize:      12.0,
		key.FontFamily:    t.font,
		key.FontSansSerif: t.font,

		key.LegendFontSize: 12.0,

		key.LinesColor:           text2,
		key.LinesLinewidth:       1.4,
		key.LinesMarkerFaceColor: text2,
		key.LinesMarkerEdgeWidth: 0.0,
		key.LinesMarkerSize:      5.6,
		key.LinesSolidCapstyle:   "round",
		key.PatchLinewidth:       0.75,

		key.XTickLabelSize:  10.0,
		key.XTickMajorPad:   5.6,
		key.XTickMajorWidth: 0.75,
		key.XTickMinorWidth: 0.75,
		key.YTickLabelSize:  10.0,
		key.YTickMajorPad:   5.6,
		key.YTickMajorWidth: 0.75,
		key.YTickMinorWidth: 0.75,

		key.AxesLabelSize:  16.0,
		key.AxesTitleSize:  16.0,
		key.AxesAxisBelow:  true,
		key.AxesEdgeColor:  text1,
		key.AxesLabelColor: text1,
		key.AxesFaceColor:  "white",
		key.AxesGrid:       true,
		key.AxesGridAxis:   "both",
		key.AxesGridWhich:  "both",
		key.AxesLinewidth:  0.0,

		key.FigureFaceColor:  "white",
		key.FigureFigsize:    constant.SizeLarge,
		key.FigureDPI:        100.0,
		key.FigureAutolayout: false,

		key.SaveFigDPI:         100.0,
		key.SaveFigFormat:      "png",
		key.SaveFigBBox:        "standard",
		key.SaveFigTransparent: true,

		key.ImageCmap: t.discreteName("default"),

		key.LegendNumPoints:     1,
		key.LegendScatterPoints: 1,
		key.LegendFancybox:      false,
		key.LegendLoc:           "best",
		key.LegendFrameOn:       true,
		key.LegendFrameAlpha:    0.7,
		key.LegendFaceColor:     t.colors.Background1.NormalizedRGBA(),
		key.LegendEdgeColor:     "none",

		key.TextColor: text1,

		key.XTickColor:     text1,
		key.XTickDirection: "out",
		key.XTickMajorSize: 1.0,
		key.XTickMinorSize: 0.5,
		key.YTickColor:     text1,
		key.YTickDirection: "out",
		key.YTickMajorSize: 0.0,
		key.YTickMinorSize: 0.0,
	}
}

// Set activates the theme against sink: the requested font is honored when
// installed, every color and colormap is published, and the style
// parameters become the active defaults. Steps are not transactional; a
// missing font degrades to the library default with a warning and the
// remaining steps still run.
func (t *Theme) Set(sink registry.Sink) {
	params := maps.Clone(t.rc)

	log.Debugf("registering font %q...", t.font)
	available := font.Available()
	if resolved, ok := font.ResolveFrom(t.font, available).Get(); ok {
		params[key.FontFamily] = resolved
		params[key.FontSansSerif] = resolved
	} else {
		log.Warnf("could not find font %q. Using default. Available font names are: %s",
			t.font, strings.Join(available, ", "))
		params[key.FontFamily] = "sans-serif"
		params[key.FontSansSerif] = "sans-serif"
	}

	log.Debug("registering colors...")
	for _, src := range []Source{t.colors, t.custom, CommonColors{}} {
		for _, c := range src.Colors() {
			sink.SetColor(c.Name, c.Normalized())
		}
	}

	log.Debug("registering cmaps...")
	for _, m := range t.discrete {
		sink.RegisterColormap(m)
	}
	for _, m := range t.continuous {
		sink.RegisterColormap(m)
	}
	for _, m := range t.continuousRev {
		sink.RegisterColormap(m)
	}

	log.Debug("registering rc params...")
	// The directory always carries the theme's own parameters; the font
	// substitution lives only in the active set.
	sink.RegisterStyle(t.name, t.rc)
	sink.SetActiveStyle(t.name, params)
}

// Register publishes the theme's style parameters under its name without
// activating them.
func (t *Theme) Register(sink registry.Sink) {
	sink.RegisterStyle(t.name, t.rc)
}
