package cmap

import (
	"fmt"
	"sort"
)

// Stop is one control entry of a channel segment table. Between two
// consecutive stops the channel ramps linearly from the first stop's Y1 to
// the second stop's Y0; distinct Y0/Y1 values produce a hard break at T.
type Stop struct {
	T, Y0, Y1 float64
}

// Linear is a continuous colormap interpolating the red, green and blue
// channels independently between ordered stops.
type Linear struct {
	name             string
	red, green, blue []Stop
}

// NewLinear builds a continuous map from an ordered list of normalized
// colors and a parallel list of stop positions in [0, 1]. Only the first
// three channels of each color participate in the interpolation.
func NewLinear(name string, colors [][]float64, stops []float64) (*Linear, error) {
	if len(colors) != len(stops) {
		return nil, fmt.Errorf("colormap %q: %d colors for %d stops", name, len(colors), len(stops))
	}
	m := &Linear{name: name}
	for i, c := range colors {
		if len(c) < 3 {
			return nil, fmt.Errorf("colormap %q: color %d has %d channels", name, i, len(c))
		}
		m.red = append(m.red, Stop{T: stops[i], Y0: c[0], Y1: c[0]})
		m.green = append(m.green, Stop{T: stops[i], Y0: c[1], Y1: c[1]})
		m.blue = append(m.blue, Stop{T: stops[i], Y0: c[2], Y1: c[2]})
	}
	return m, nil
}

// Name reports the colormap name, by convention "<theme>:c_<id>".
func (m *Linear) Name() string { return m.name }

// Segments returns the per-channel stop tables in red, green, blue order.
func (m *Linear) Segments() (red, green, blue []Stop) {
	return m.red, m.green, m.blue
}

// At samples the map at position t, clamping outside [0, 1].
func (m *Linear) At(t float64) []float64 {
	return []float64{sample(m.red, t), sample(m.green, t), sample(m.blue, t)}
}

func sample(stops []Stop, t float64) float64 {
	if len(stops) == 0 {
		return 0
	}
	if t <= stops[0].T {
		return stops[0].Y1
	}
	last := stops[len(stops)-1]
	if t >= last.T {
		return last.Y0
	}
	for i := 0; i < len(stops)-1; i++ {
		lo, hi := stops[i], stops[i+1]
		if t > hi.T {
			continue
		}
		if hi.T == lo.T {
			return hi.Y0
		}
		frac := (t - lo.T) / (hi.T - lo.T)
		return lo.Y1 + frac*(hi.Y0-lo.Y1)
	}
	return last.Y0
}

// Reverse produces the mirrored map: every channel entry (t, y0, y1)
// becomes (1-t, y1, y0) and the entries are re-sorted ascending, so the
// reversed map's color at t equals the original's at 1-t. Reversing twice
// restores the original. An empty name defaults to "<name>_r".
func (m *Linear) Reverse(name string) *Linear {
	if name == "" {
		name = m.name + "_r"
	}
	return &Linear{
		name:  name,
		red:   reverseStops(m.red),
		green: reverseStops(m.green),
		blue:  reverseStops(m.blue),
	}
}

func reverseStops(stops []Stop) []Stop {
	out := make([]Stop, len(stops))
	for i, s := range stops {
		out[i] = Stop{T: 1.0 - s.T, Y0: s.Y1, Y1: s.Y0}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].T < out[j].T })
	return out
}

// Resample returns n colors evenly sampled across the map, for plots that
// need one color per series out of a continuum.
func (m *Linear) Resample(n int) [][]float64 {
	if n < 1 {
		return nil
	}
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = m.At(t)
	}
	return out
}
