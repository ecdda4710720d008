package plot

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mplthemes/mplthemes/cmap"
	"github.com/mplthemes/mplthemes/key"
	"github.com/mplthemes/mplthemes/registry"
)

// paramFloat reads a numeric active parameter, tolerating the int values
// some defaults carry.
func paramFloat(r *registry.Registry, k string, fallback float64) float64 {
	switch v := r.Param(k).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return fallback
	}
}

// paramColor reads an active color parameter. Colors are stored either as
// normalized channel slices or as the literal names "white" and "none".
func paramColor(r *registry.Registry, k string, fallback drawing.Color) drawing.Color {
	switch v := r.Param(k).(type) {
	case []float64:
		if len(v) >= 3 {
			return toDrawing(v)
		}
	case string:
		switch v {
		case "white":
			return drawing.ColorWhite
		case "none":
			return drawing.ColorTransparent
		}
	}
	return fallback
}

// StyledChart builds a chart preconfigured from the active style
// parameters of r: face colors, font sizes, tick and label colors, and
// grid visibility all follow the current theme. A nil registry uses the
// shared default.
func StyledChart(r *registry.Registry) chart.Chart {
	if r == nil {
		r = registry.Default()
	}

	face := paramColor(r, key.FigureFaceColor, drawing.ColorWhite)
	canvas := paramColor(r, key.AxesFaceColor, drawing.ColorWhite)
	text := paramColor(r, key.TextColor, drawing.ColorBlack)
	edge := paramColor(r, key.AxesEdgeColor, drawing.ColorBlack)

	dpi := paramFloat(r, key.FigureDPI, chart.DefaultDPI)
	width := chart.DefaultChartWidth
	height := chart.DefaultChartHeight
	if size, ok := r.Param(key.FigureFigsize).([]float64); ok && len(size) == 2 {
		width = int(size[0] * dpi)
		height = int(size[1] * dpi)
	}

	axisStyle := func(tickColorKey, tickSizeKey string) chart.Style {
		return chart.Style{
			FontColor:   paramColor(r, tickColorKey, text),
			FontSize:    paramFloat(r, tickSizeKey, chart.DefaultFontSize),
			StrokeColor: edge,
		}
	}

	gridStyle := chart.Style{Hidden: true}
	if on, ok := r.Param(key.AxesGrid).(bool); ok && on {
		gridStyle = chart.Style{
			StrokeColor: edge.WithAlpha(64),
			StrokeWidth: paramFloat(r, key.XTickMajorWidth, 1.0),
		}
	}

	return chart.Chart{
		Width:  width,
		Height: height,
		DPI:    dpi,
		Background: chart.Style{
			FillColor: face,
			FontColor: text,
			FontSize:  paramFloat(r, key.FontSize, chart.DefaultFontSize),
		},
		Canvas: chart.Style{
			FillColor: canvas,
		},
		TitleStyle: chart.Style{
			FontColor: text,
			FontSize:  paramFloat(r, key.AxesTitleSize, chart.DefaultTitleFontSize),
		},
		XAxis: chart.XAxis{
			Style:          axisStyle(key.XTickColor, key.XTickLabelSize),
			GridMajorStyle: gridStyle,
			GridMinorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Style:          axisStyle(key.YTickColor, key.YTickLabelSize),
			GridMajorStyle: gridStyle,
			GridMinorStyle: gridStyle,
		},
	}
}

// SeriesStyle assigns the i-th series its color from the active default
// colormap, with the theme's default line width.
func SeriesStyle(r *registry.Registry, i int) chart.Style {
	if r == nil {
		r = registry.Default()
	}

	stroke := paramColor(r, key.LinesColor, drawing.ColorBlack)
	if name, ok := r.Param(key.ImageCmap).(string); ok {
		if m, found := r.Colormap(name); found {
			if discrete, isDiscrete := m.(*cmap.Discrete); isDiscrete && discrete.Len() > 0 {
				stroke = toDrawing(discrete.AtIndex(i))
			}
		}
	}

	return chart.Style{
		StrokeColor: stroke,
		StrokeWidth: paramFloat(r, key.LinesLinewidth, 1.0),
		DotColor:    stroke,
		DotWidth:    paramFloat(r, key.LinesMarkerSize, 5.0) / 2.0,
	}
}
