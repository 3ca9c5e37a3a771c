package fabric

import (
	"fmt"

	errs "github.com/matzehuels/fabricgen/pkg/errors"
)

// NodeWire references wire Wire of the tile at (X, Y).
type NodeWire struct {
	X    int
	Y    int
	Wire string
}

func (w NodeWire) String() string {
	return fmt.Sprintf("X%dY%d/%s", w.X, w.Y, w.Wire)
}

// Node is a set of electrically identical wire references spanning tiles.
type Node []NodeWire

// Validate rejects empty nodes and duplicate members.
func (n Node) Validate() error {
	if len(n) == 0 {
		return errs.New(errs.ErrCodeStitch, "empty node")
	}
	seen := make(map[NodeWire]struct{}, len(n))
	for _, w := range n {
		if _, ok := seen[w]; ok {
			return errs.New(errs.ErrCodeStitch, "node lists %s twice", w)
		}
		seen[w] = struct{}{}
	}
	return nil
}

// Contains reports whether w is a member of the node.
func (n Node) Contains(w NodeWire) bool {
	for _, m := range n {
		if m == w {
			return true
		}
	}
	return false
}

// ValidateNode checks that every member of n is a routable wire that exists
// on the tile type placed at its coordinate.
func ValidateNode(g *Grid, lib *Library, n Node) error {
	if err := n.Validate(); err != nil {
		return err
	}
	for _, m := range n {
		if !g.InBounds(m.X, m.Y) {
			return errs.New(errs.ErrCodeStitch, "node member %s outside %dx%d grid", m, g.Width(), g.Height())
		}
		name := g.At(m.X, m.Y)
		tt, ok := lib.Lookup(name)
		if !ok {
			return errs.New(errs.ErrCodeUnknownTileType, "node member %s on unknown tile type %q", m, name)
		}
		w, ok := tt.Wire(m.Wire)
		if !ok {
			return errs.New(errs.ErrCodeStitch, "tile type %s at (%d,%d) has no wire %q", name, m.X, m.Y, m.Wire)
		}
		if !w.Class.Routable() {
			return errs.New(errs.ErrCodeStitch, "wire %s of class %s cannot join an inter-tile node", m, w.Class)
		}
	}
	return nil
}
