// Package registry holds the process-wide styling state a theme activates
// into: a named color table, a named colormap table and a named style
// library with one active parameter set.
//
// The tables are exposed behind the Sink interface so theme activation can
// be pointed at an isolated instance under test instead of the shared
// default. The design assumes a single caller configuring defaults near
// session startup; there is no locking.
package registry

import (
	"maps"
	"sort"

	"github.com/samber/lo"

	"github.com/mplthemes/mplthemes/cmap"
)

// Sink receives the colors, colormaps and style parameters published by a
// theme.
type Sink interface {
	// SetColor writes a named normalized RGB(A) value. Later writes win.
	SetColor(name string, value []float64)
	// RegisterColormap adds a colormap unless its name is already taken,
	// reporting whether the map was added. Existing names are never
	// overwritten.
	RegisterColormap(m cmap.Colormap) bool
	// RegisterStyle publishes a parameter dictionary under a style name
	// without activating it. Re-registering overwrites.
	RegisterStyle(name string, params map[string]any)
	// SetActiveStyle resets the active parameters to the library defaults,
	// applies params on top and records name as the active style. The
	// style directory is left untouched; publishing is RegisterStyle's job.
	SetActiveStyle(name string, params map[string]any)
	// AvailableStyles lists the published style names in sorted order.
	AvailableStyles() []string
}

// Registry is the concrete Sink backing the default styling state.
type Registry struct {
	colors map[string][]float64
	cmaps  map[string]cmap.Colormap
	styles map[string]map[string]any
	active string
	params map[string]any
}

// New returns an empty Registry whose active parameters hold the library
// defaults.
func New() *Registry {
	return &Registry{
		colors: make(map[string][]float64),
		cmaps:  make(map[string]cmap.Colormap),
		styles: make(map[string]map[string]any),
		params: LibraryDefaults(),
	}
}

var std = New()

// Default returns the shared process-wide registry.
func Default() *Registry {
	return std
}

// SetColor writes a named normalized RGB(A) value, overwriting any earlier
// entry of the same name.
func (r *Registry) SetColor(name string, value []float64) {
	r.colors[name] = append([]float64(nil), value...)
}

// Color looks up a registered color by name.
func (r *Registry) Color(name string) ([]float64, bool) {
	v, ok := r.colors[name]
	return v, ok
}

// RegisterColormap adds m under its own name, skipping registration when
// the name already exists.
func (r *Registry) RegisterColormap(m cmap.Colormap) bool {
	if _, taken := r.cmaps[m.Name()]; taken {
		return false
	}
	r.cmaps[m.Name()] = m
	return true
}

// Colormap looks up a registered colormap by name.
func (r *Registry) Colormap(name string) (cmap.Colormap, bool) {
	m, ok := r.cmaps[name]
	return m, ok
}

// RegisterStyle publishes params under name without touching the active
// parameters.
func (r *Registry) RegisterStyle(name string, params map[string]any) {
	r.styles[name] = maps.Clone(params)
}

// SetActiveStyle makes name the active style: the active parameters are
// reset to the library defaults and params are applied as a full overlay.
// The style directory is not written to.
func (r *Registry) SetActiveStyle(name string, params map[string]any) {
	r.params = LibraryDefaults()
	maps.Copy(r.params, params)
	r.active = name
}

// ActiveStyle reports the currently active style name; empty when only the
// library defaults apply.
func (r *Registry) ActiveStyle() string {
	return r.active
}

// Param reads a single active parameter value.
func (r *Registry) Param(key string) any {
	return r.params[key]
}

// Params returns a copy of the full active parameter dictionary.
func (r *Registry) Params() map[string]any {
	return maps.Clone(r.params)
}

// Style looks up a published style's parameter dictionary by name.
func (r *Registry) Style(name string) (map[string]any, bool) {
	s, ok := r.styles[name]
	if !ok {
		return nil, false
	}
	return maps.Clone(s), true
}

// AvailableStyles lists every published style name in sorted order.
func (r *Registry) AvailableStyles() []string {
	names := lo.Keys(r.styles)
	sort.Strings(names)
	return names
}
