package registry

import (
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/mplthemes/mplthemes/key"
)

// LibraryDefaults returns the baseline parameter dictionary active styles
// are reset to before a theme's own parameters are applied. Sizing values
// come from the plotting library's own defaults.
func LibraryDefaults() map[string]any {
	dpi := chart.DefaultDPI
	return map[string]any{
		key.FontSize:      chart.DefaultFontSize,
		key.FontFamily:    "sans-serif",
		key.FontSansSerif: "sans-serif",

		key.LinesColor:           []float64{0, 0, 0, 1},
		key.LinesLinewidth:       1.0,
		key.LinesMarkerFaceColor: []float64{0, 0, 0, 1},
		key.LinesMarkerEdgeWidth: 1.0,
		key.LinesMarkerSize:      6.0,
		key.LinesSolidCapstyle:   "butt",
		key.PatchLinewidth:       1.0,

		key.XTickLabelSize:  chart.DefaultFontSize,
		key.XTickMajorPad:   3.5,
		key.XTickMajorWidth: 0.8,
		key.XTickMinorWidth: 0.6,
		key.XTickColor:      []float64{0, 0, 0, 1},
		key.XTickDirection:  "out",
		key.XTickMajorSize:  3.5,
		key.XTickMinorSize:  2.0,
		key.YTickLabelSize:  chart.DefaultFontSize,
		key.YTickMajorPad:   3.5,
		key.YTickMajorWidth: 0.8,
		key.YTickMinorWidth: 0.6,
		key.YTickColor:      []float64{0, 0, 0, 1},
		key.YTickDirection:  "out",
		key.YTickMajorSize:  3.5,
		key.YTickMinorSize:  2.0,

		key.AxesLabelSize:  chart.DefaultFontSize,
		key.AxesTitleSize:  chart.DefaultTitleFontSize,
		key.AxesAxisBelow:  false,
		key.AxesEdgeColor:  []float64{0, 0, 0, 1},
		key.AxesLabelColor: []float64{0, 0, 0, 1},
		key.AxesFaceColor:  "white",
		key.AxesGrid:       false,
		key.AxesGridAxis:   "both",
		key.AxesGridWhich:  "major",
		key.AxesLinewidth:  0.8,

		key.FigureFaceColor: "white",
		key.FigureFigsize: []float64{
			float64(chart.DefaultChartWidth) / dpi,
			float64(chart.DefaultChartHeight) / dpi,
		},
		key.FigureDPI:        dpi,
		key.FigureAutolayout: false,

		key.SaveFigDPI:         dpi,
		key.SaveFigFormat:      "png",
		key.SaveFigBBox:        "standard",
		key.SaveFigTransparent: false,

		key.ImageCmap: "viridis",

		key.LegendFontSize:      chart.DefaultFontSize,
		key.LegendNumPoints:     1,
		key.LegendScatterPoints: 1,
		key.LegendFancybox:      true,
		key.LegendLoc:           "best",
		key.LegendFrameOn:       true,
		key.LegendFrameAlpha:    0.8,
		key.LegendFaceColor:     "inherit",
		key.LegendEdgeColor:     []float64{0.8, 0.8, 0.8, 1},

		key.TextColor: []float64{0, 0, 0, 1},
	}
}
