package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"

	"github.com/mplthemes/mplthemes/log"
	"github.com/mplthemes/mplthemes/registry"
)

// Names of the built-in themes.
const (
	GreenGeneric = "mpl-themes-green"
	BlueGeneric  = "mpl-themes-blue"
)

// builtins is the closed set of known themes, constructed and validated at
// package initialization.
var builtins = map[string]*Theme{
	GreenGeneric: lo.Must(newGreenGeneric()),
	BlueGeneric:  lo.Must(newBlueGeneric()),
}

// ErrNotFound is reported when a theme name is not in the built-in set.
var ErrNotFound = errors.New("theme not found")

// Builtins lists the known theme names in sorted order.
func Builtins() []string {
	names := lo.Keys(builtins)
	sort.Strings(names)
	return names
}

// Lookup resolves a built-in theme by name. Unknown names fail with
// ErrNotFound, enumerating the valid names and suggesting the closest
// match when one exists.
func Lookup(name string) (*Theme, error) {
	if t, ok := builtins[name]; ok {
		return t, nil
	}
	msg := fmt.Sprintf("%q; available themes are %s", name, strings.Join(Builtins(), ", "))
	if ranks := fuzzy.RankFindFold(name, Builtins()); len(ranks) > 0 {
		sort.Sort(ranks)
		msg += fmt.Sprintf(" (did you mean %q?)", ranks[0].Target)
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, msg)
}

// Set resolves a built-in theme by name and activates it against the
// default registry.
func Set(name string) error {
	log.Infof("setting %q as the default theme", name)
	t, err := Lookup(name)
	if err != nil {
		return err
	}
	t.Set(registry.Default())
	return nil
}

// Register resolves a built-in theme by name and publishes its style
// parameters without activating them.
func Register(name string) error {
	log.Infof("registering %q in the styles library", name)
	t, err := Lookup(name)
	if err != nil {
		return err
	}
	t.Register(registry.Default())
	return nil
}
