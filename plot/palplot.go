// Package plot renders palette sheets for human inspection and bridges
// the active style parameters into go-chart defaults.
package plot

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mplthemes/mplthemes/cmap"
	"github.com/mplthemes/mplthemes/color"
)

// Strip geometry shared by the palette renderers.
const (
	stripWidth  = 640
	stripHeight = 48
	labelHeight = 18
	labelSize   = 10.0
)

// toDrawing converts a normalized RGB(A) channel slice to a drawing color.
func toDrawing(c []float64) drawing.Color {
	out := drawing.Color{
		R: uint8(c[0]*255.0 + 0.5),
		G: uint8(c[1]*255.0 + 0.5),
		B: uint8(c[2]*255.0 + 0.5),
		A: 255,
	}
	if len(c) >= 4 {
		out.A = uint8(c[3]*255.0 + 0.5)
	}
	return out
}

func fillRect(r chart.Renderer, x0, y0, x1, y1 int) {
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.Close()
	r.Fill()
}

func newRenderer(width, height int) (chart.Renderer, error) {
	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("load default font: %w", err)
	}
	r.SetFont(font)
	r.SetFillColor(drawing.ColorWhite)
	fillRect(r, 0, 0, width, height)
	return r, nil
}

func save(r chart.Renderer) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawStrip paints one labeled colormap row onto r, with the row's top
// edge at y.
func drawStrip(r chart.Renderer, m cmap.Colormap, y, width int, cells int) {
	r.SetFontColor(drawing.ColorBlack)
	r.SetFontSize(labelSize)
	r.Text(m.Name(), 0, y+labelHeight-4)

	cellWidth := float64(width) / float64(cells)
	for i := 0; i < cells; i++ {
		t := 0.0
		if cells > 1 {
			t = float64(i) / float64(cells-1)
		}
		r.SetFillColor(toDrawing(m.At(t)))
		x0 := int(float64(i) * cellWidth)
		x1 := int(float64(i+1) * cellWidth)
		fillRect(r, x0, y+labelHeight, x1, y+stripHeight)
	}
}

// DiscreteStrip renders a discrete map as one labeled cell per color.
func DiscreteStrip(m *cmap.Discrete) ([]byte, error) {
	r, err := newRenderer(stripWidth, stripHeight)
	if err != nil {
		return nil, err
	}
	drawStrip(r, m, 0, stripWidth, m.Len())
	return save(r)
}

// ContinuousStrip renders a continuous map as a horizontal gradient, one
// sample per pixel column.
func ContinuousStrip(m *cmap.Linear) ([]byte, error) {
	r, err := newRenderer(stripWidth, stripHeight)
	if err != nil {
		return nil, err
	}
	drawStrip(r, m, 0, stripWidth, stripWidth)
	return save(r)
}

// Swatch grid geometry.
const (
	swatchCols      = 4
	swatchRowHeight = 28
	swatchBarWidth  = 40
	swatchBarHeight = 14
)

// Swatches renders a collection of named colors as a grid of bars with
// their names alongside, in declaration order.
func Swatches(title string, colors []color.Color) ([]byte, error) {
	rows := (len(colors) + swatchCols - 1) / swatchCols
	height := labelHeight + (rows+1)*swatchRowHeight
	r, err := newRenderer(stripWidth, height)
	if err != nil {
		return nil, err
	}

	r.SetFontColor(drawing.ColorBlack)
	r.SetFontSize(labelSize)
	r.Text(title, 0, labelHeight-4)

	colWidth := stripWidth / swatchCols
	for i, c := range colors {
		col := i % swatchCols
		row := i / swatchCols
		x := col * colWidth
		y := labelHeight + (row+1)*swatchRowHeight

		r.SetFillColor(toDrawing(c.NormalizedRGBA()))
		fillRect(r, x, y-swatchBarHeight, x+swatchBarWidth, y)

		r.SetFontColor(drawing.ColorBlack)
		r.SetFontSize(labelSize)
		r.Text(c.Name, x+swatchBarWidth+6, y-2)
	}
	return save(r)
}
