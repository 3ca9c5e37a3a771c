package fabric

import (
	"strings"

	errs "github.com/matzehuels/fabricgen/pkg/errors"
)

// Grid is an immutable W×H assignment of tile type names, indexed as
// cells[y][x] with y = 0 the top row.
type Grid struct {
	width  int
	height int
	cells  []string // row-major
}

// NewGrid copies rows into a grid. Rows must be rectangular and every cell
// must hold a tile type name; an empty cell is a layout invariant violation.
func NewGrid(rows [][]string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errs.New(errs.ErrCodeInvalidDimensions, "grid must have at least one cell")
	}
	g := &Grid{
		width:  len(rows[0]),
		height: len(rows),
		cells:  make([]string, 0, len(rows)*len(rows[0])),
	}
	for y, row := range rows {
		if len(row) != g.width {
			return nil, errs.New(errs.ErrCodeLayout, "row %d has %d cells, want %d", y, len(row), g.width)
		}
		for x, name := range row {
			if name == "" {
				return nil, errs.New(errs.ErrCodeLayout, "cell (%d,%d) has no tile type", x, y)
			}
		}
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) is a grid coordinate.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns the tile type name at (x, y). It panics if the coordinate is
// out of bounds.
func (g *Grid) At(x, y int) string {
	if !g.InBounds(x, y) {
		panic("fabric: grid coordinate out of range")
	}
	return g.cells[y*g.width+x]
}

// Rows returns a copy of the grid as [y][x] rows.
func (g *Grid) Rows() [][]string {
	out := make([][]string, g.height)
	for y := range out {
		out[y] = append([]string(nil), g.cells[y*g.width:(y+1)*g.width]...)
	}
	return out
}

// Count returns how many cells reference the named tile type.
func (g *Grid) Count(name string) int {
	n := 0
	for _, c := range g.cells {
		if c == name {
			n++
		}
	}
	return n
}

// Equal reports whether two grids have the same size and assignment.
func (g *Grid) Equal(o *Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Validate checks that every cell names a tile type in lib.
func (g *Grid) Validate(lib *Library) error {
	for i, name := range g.cells {
		if _, ok := lib.Lookup(name); !ok {
			return errs.New(errs.ErrCodeUnknownTileType, "cell (%d,%d) references unknown tile type %q",
				i%g.width, i/g.width, name)
		}
	}
	return nil
}

// Format renders the grid one row per line with cells separated by a space.
// Tile types named blank are printed as spaces of the same width as the
// widest other name so columns stay aligned.
func (g *Grid) Format(blank string) string {
	width := 0
	for _, c := range g.cells {
		if c != blank {
			width = max(width, len(c))
		}
	}
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			name := g.At(x, y)
			if name == blank {
				name = ""
			}
			sb.WriteString(name)
			sb.WriteString(strings.Repeat(" ", width-len(name)))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
