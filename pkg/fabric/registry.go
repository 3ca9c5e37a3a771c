package fabric

import (
	errs "github.com/matzehuels/fabricgen/pkg/errors"
)

// Registry collects tile type definitions. It is not safe for concurrent use.
type Registry struct {
	builders []*Builder
	byName   map[string]int
	frozen   bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Create starts the definition of a new tile type. Names are unique; a second
// Create with the same name fails with ErrCodeDuplicateTileType.
func (r *Registry) Create(name string) (*Builder, error) {
	if r.frozen {
		return nil, errs.New(errs.ErrCodeFrozen, "registry is frozen, cannot add %q", name)
	}
	if err := errs.ValidateName("tile type", name); err != nil {
		return nil, err
	}
	if _, ok := r.byName[name]; ok {
		return nil, errs.New(errs.ErrCodeDuplicateTileType, "tile type %q already defined", name)
	}
	b := newBuilder(name)
	r.byName[name] = len(r.builders)
	r.builders = append(r.builders, b)
	return b, nil
}

// Len returns the number of registered tile types.
func (r *Registry) Len() int { return len(r.builders) }

// Freeze freezes every builder and returns the resulting library in
// definition order.
func (r *Registry) Freeze() (*Library, error) {
	if len(r.builders) == 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "no tile types defined")
	}
	r.frozen = true
	lib := &Library{
		types:  make([]*TileType, len(r.builders)),
		byName: make(map[string]int, len(r.builders)),
	}
	for i, b := range r.builders {
		lib.types[i] = b.Freeze()
		lib.byName[b.Name()] = i
	}
	return lib, nil
}

// Library is a frozen, ordered set of tile types.
type Library struct {
	types  []*TileType
	byName map[string]int
}

// Lookup returns the tile type with the given name.
func (l *Library) Lookup(name string) (*TileType, bool) {
	i, ok := l.byName[name]
	if !ok {
		return nil, false
	}
	return l.types[i], true
}

// Index returns the definition-order index of the named tile type.
func (l *Library) Index(name string) (int, bool) {
	i, ok := l.byName[name]
	return i, ok
}

// Types returns the tile types in definition order. The returned slice must
// not be modified.
func (l *Library) Types() []*TileType { return l.types }

// Len returns the number of tile types.
func (l *Library) Len() int { return len(l.types) }

// Totals sums the counts of every tile type.
func (l *Library) Totals() Counts {
	var c Counts
	for _, t := range l.types {
		tc := t.Counts()
		c.Wires += tc.Wires
		c.Pips += tc.Pips
		c.Bels += tc.Bels
		c.Pins += tc.Pins
	}
	return c
}
