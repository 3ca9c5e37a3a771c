// Package stitch joins tile-local routing wires across tile boundaries.
//
// Only channel tiles (QCB) probe their neighbours. Each switch tile (QSB)
// found to the left, right, above or below yields one two-member node per
// channel index, pairing the channel tile's boundary wire with the switch
// wire that faces it:
//
//	left   QSB1_i <-> E_i
//	right  QSB2_i <-> W_i
//	above  QSB1_i <-> S_i
//	below  QSB2_i <-> N_i
//
// The four inner corners have no channel tile between the two channel tiles
// flanking them, so those are paired directly and reported separately in
// [Result.Corners].
package stitch

import (
	"fmt"

	"github.com/matzehuels/fabricgen/pkg/device"
	errs "github.com/matzehuels/fabricgen/pkg/errors"
	"github.com/matzehuels/fabricgen/pkg/fabric"
)

// Traversal is the order in which grid cells are visited.
type Traversal int

const (
	// ColumnMajor visits x in the outer loop and y in the inner loop.
	ColumnMajor Traversal = iota
	// RowMajor visits y in the outer loop and x in the inner loop.
	RowMajor
)

func (t Traversal) String() string {
	switch t {
	case ColumnMajor:
		return "column"
	case RowMajor:
		return "row"
	}
	return fmt.Sprintf("Traversal(%d)", int(t))
}

// ParseTraversal maps "column" or "row" to a Traversal.
func ParseTraversal(s string) (Traversal, error) {
	switch s {
	case "", "column":
		return ColumnMajor, nil
	case "row":
		return RowMajor, nil
	}
	return 0, errs.New(errs.ErrCodeInvalidInput, "unknown traversal %q (want column or row)", s)
}

// Options configures Stitch.
type Options struct {
	Channels  int       // parallel tracks per direction, at least 1
	Traversal Traversal // cell visiting order; does not change the node set
}

// Result holds the stitched nodes.
type Result struct {
	Nodes   []fabric.Node // channel/switch boundary pairs in traversal order
	Corners []fabric.Node // direct pairs across the four inner corners
}

// All returns the ordinary nodes followed by the corner nodes.
func (r *Result) All() []fabric.Node {
	out := make([]fabric.Node, 0, len(r.Nodes)+len(r.Corners))
	out = append(out, r.Nodes...)
	return append(out, r.Corners...)
}

// Len returns the total number of nodes.
func (r *Result) Len() int { return len(r.Nodes) + len(r.Corners) }

type probe struct {
	dx, dy   int
	boundary device.Boundary
	facing   device.Side
}

// Neighbour offsets in the order they are probed.
var probes = [...]probe{
	{-1, 0, device.First, device.East},
	{1, 0, device.Second, device.West},
	{0, -1, device.First, device.South},
	{0, 1, device.Second, device.North},
}

// Stitch computes the inter-tile nodes of g. Every member of every node must
// name a routable wire of the tile type at its coordinate; a missing wire
// aborts stitching with ErrCodeStitch.
func Stitch(g *fabric.Grid, lib *fabric.Library, opts Options) (*Result, error) {
	if err := errs.ValidateCount("channels", opts.Channels); err != nil {
		return nil, err
	}
	if err := g.Validate(lib); err != nil {
		return nil, err
	}

	res := &Result{}
	visit := func(x, y int) error {
		if g.At(x, y) != device.TileChannel {
			return nil
		}
		for _, p := range probes {
			nx, ny := x+p.dx, y+p.dy
			if !g.InBounds(nx, ny) || g.At(nx, ny) != device.TileSwitch {
				continue
			}
			for ch := 0; ch < opts.Channels; ch++ {
				n := fabric.Node{
					{X: x, Y: y, Wire: device.ChannelWire(p.boundary, ch)},
					{X: nx, Y: ny, Wire: device.SwitchWire(p.facing, ch)},
				}
				if err := fabric.ValidateNode(g, lib, n); err != nil {
					return err
				}
				res.Nodes = append(res.Nodes, n)
			}
		}
		return nil
	}

	w, h := g.Width(), g.Height()
	switch opts.Traversal {
	case ColumnMajor:
		for x := 0; x < w; x++ {
			for y := 0; y < h; y++ {
				if err := visit(x, y); err != nil {
					return nil, err
				}
			}
		}
	case RowMajor:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if err := visit(x, y); err != nil {
					return nil, err
				}
			}
		}
	default:
		return nil, errs.New(errs.ErrCodeInvalidInput, "unknown traversal %s", opts.Traversal)
	}

	corners, err := cornerNodes(g, lib, opts.Channels)
	if err != nil {
		return nil, err
	}
	res.Corners = corners
	return res, nil
}

// cornerNodes pairs the channel tiles on either side of each inner corner,
// in the order top left, top right, bottom left, bottom right. Only odd
// grids of at least 5x5 place channel tiles there; other sizes yield no
// corner nodes.
func cornerNodes(g *fabric.Grid, lib *fabric.Library, channels int) ([]fabric.Node, error) {
	w, h := g.Width(), g.Height()
	if w < 5 || h < 5 || w%2 == 0 || h%2 == 0 {
		return nil, nil
	}
	type end struct {
		x, y int
		b    device.Boundary
	}
	pairs := [...][2]end{
		{{1, 2, device.First}, {2, 1, device.First}},
		{{w - 2, 2, device.First}, {w - 3, 1, device.Second}},
		{{1, h - 3, device.Second}, {2, h - 2, device.First}},
		{{w - 2, h - 3, device.Second}, {w - 3, h - 2, device.Second}},
	}
	var out []fabric.Node
	for ch := 0; ch < channels; ch++ {
		for _, p := range pairs {
			n := fabric.Node{
				{X: p[0].x, Y: p[0].y, Wire: device.ChannelWire(p[0].b, ch)},
				{X: p[1].x, Y: p[1].y, Wire: device.ChannelWire(p[1].b, ch)},
			}
			if err := fabric.ValidateNode(g, lib, n); err != nil {
				return nil, errs.Wrap(errs.ErrCodeStitch, err, "corner node %d", len(out))
			}
			out = append(out, n)
		}
	}
	return out, nil
}
