package strategy

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Names of the built-in strategies, accepted by Lookup.
const (
	SortName    = "sort"
	ReverseName = "reverse"
)

var builtin = map[string]Strategy{
	SortName:    Sort{},
	ReverseName: Reverse{},
}

// Lookup returns the built-in strategy registered under name.
func Lookup(name string) (Strategy, error) {
	s, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

// Names lists the built-in strategy names in sorted order.
func Names() []string {
	names := maps.Keys(builtin)
	slices.Sort(names)
	return names
}

func nameOf(s Strategy) string {
	for name, b := range builtin {
		if b == s {
			return name
		}
	}
	return fmt.Sprintf("%T", s)
}
