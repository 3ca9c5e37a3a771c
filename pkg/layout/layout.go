// Package layout assigns a tile type to every coordinate of the fabric grid.
//
// The assignment is a pure function of the grid size. Rules are applied in a
// fixed order: the four inner corners first, then the I/O frame on the outer
// border, then a parity checkerboard over the interior.
//
//	grid, err := layout.Layout(7, 7)
//	if err != nil {
//		return err
//	}
//	fmt.Print(layout.Describe(grid))
package layout

import (
	"github.com/matzehuels/fabricgen/pkg/device"
	errs "github.com/matzehuels/fabricgen/pkg/errors"
	"github.com/matzehuels/fabricgen/pkg/fabric"
)

// Layout builds the w×h grid. Any positive size is accepted; the generator
// itself restricts sizes further when validating its options.
func Layout(w, h int) (*fabric.Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, errs.New(errs.ErrCodeInvalidDimensions, "grid size %dx%d must be positive", w, h)
	}
	rows := make([][]string, h)
	for y := range rows {
		rows[y] = make([]string, w)
		for x := range rows[y] {
			rows[y][x] = Classify(x, y, w, h)
		}
	}
	g, err := fabric.NewGrid(rows)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeLayout, err, "layout %dx%d", w, h)
	}
	return g, nil
}

// Classify returns the tile type placed at (x, y) of a w×h grid.
func Classify(x, y, w, h int) string {
	switch {
	case IsCorner(x, y, w, h):
		return device.TileCorner
	case x == 0 || x == w-1:
		if y > 1 && y < h-2 && y%2 == 0 {
			return device.TileIO
		}
		return device.TileNull
	case y == 0 || y == h-1:
		if x > 1 && x < w-2 && x%2 == 0 {
			return device.TileIO
		}
		return device.TileNull
	case x%2 == 1 && y%2 == 1:
		return device.TileSwitch
	case x%2 == 0 && y%2 == 0:
		return device.TileLogic
	default:
		return device.TileChannel
	}
}

// IsCorner reports whether (x, y) is one of the four inner corner positions,
// one row and column in from each edge.
func IsCorner(x, y, w, h int) bool {
	return (x == 1 || x == w-2) && (y == 1 || y == h-2)
}

// Corners returns the inner corner coordinates in the order top-left,
// top-right, bottom-left, bottom-right.
func Corners(w, h int) [4][2]int {
	return [4][2]int{{1, 1}, {w - 2, 1}, {1, h - 2}, {w - 2, h - 2}}
}

// Describe renders the diagnostic architecture listing with empty cells
// blanked out.
func Describe(g *fabric.Grid) string {
	return "Device Architecture:\n" + g.Format(device.TileNull)
}
