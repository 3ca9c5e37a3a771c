package archive

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/matzehuels/fabricgen/pkg/constids"
	errs "github.com/matzehuels/fabricgen/pkg/errors"
	"github.com/matzehuels/fabricgen/pkg/fabric"
)

// Chip database header values.
const (
	ChipMagic   = 0x00ca7ca7
	ChipVersion = 1
)

// BBAWriter emits the BBA text stream. Names are written as constids; names
// the table does not know are interned and listed in the extra_ids table so
// the reader can recover them.
type BBAWriter struct {
	// IDs is the base name table. Nil means constids.Default(). The writer
	// works on a copy and never modifies it.
	IDs *constids.Table
}

// Format implements Writer.
func (*BBAWriter) Format() string { return FormatBBA }

// Write implements Writer.
func (bw *BBAWriter) Write(w io.Writer, chip *fabric.Chip) error {
	if err := checkChip(chip); err != nil {
		return err
	}
	ids := bw.IDs
	if ids == nil {
		ids = constids.Default()
	} else {
		ids = ids.Clone()
	}

	e := &emitter{w: bufio.NewWriter(w), ids: ids}
	e.pre("// fabricgen chip database")
	e.pre(fmt.Sprintf("// %s %s %s", chip.Name, chip.Device, chip.ID))
	e.push("chipdb")

	types := chip.Library.Types()
	for i, tt := range types {
		e.tileType(i, tt)
	}
	e.label("tile_types", "")
	for i, tt := range types {
		c := tt.Counts()
		e.id(tt.Name())
		e.ref(fmt.Sprintf("tt%d_wires", i), "")
		e.u32(c.Wires, "wire count")
		e.ref(fmt.Sprintf("tt%d_pips", i), "")
		e.u32(c.Pips, "pip count")
		e.ref(fmt.Sprintf("tt%d_bels", i), "")
		e.u32(c.Bels, "bel count")
	}

	g := chip.Grid
	e.label("tiles", "")
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			idx, ok := chip.Library.Index(g.At(x, y))
			if !ok {
				return errs.New(errs.ErrCodeArchive, "tile (%d,%d) uses unknown tile type %q", x, y, g.At(x, y))
			}
			e.u32(idx, fmt.Sprintf("X%dY%d %s", x, y, g.At(x, y)))
		}
	}

	for k, n := range chip.Nodes {
		e.label(fmt.Sprintf("node%d", k), "")
		for _, m := range n {
			wi, err := resolve(chip, m)
			if err != nil {
				return errs.Wrap(errs.ErrCodeArchive, err, "node %d", k)
			}
			e.u16(m.X, "x")
			e.u16(m.Y, "y")
			e.u32(int(wi), m.Wire)
		}
	}
	e.label("nodes", "")
	for k, n := range chip.Nodes {
		e.ref(fmt.Sprintf("node%d", k), "")
		e.u32(len(n), "members")
	}

	extra := ids.Extra()
	e.label("extra_ids", "")
	for _, name := range extra {
		e.str(name)
	}

	e.label("chip_info", "")
	e.u32(ChipMagic, "magic")
	e.u32(ChipVersion, "version")
	e.u16(g.Width(), "width")
	e.u16(g.Height(), "height")
	e.ref("tile_types", "")
	e.u32(len(types), "tile type count")
	e.ref("tiles", "")
	e.ref("nodes", "")
	e.u32(len(chip.Nodes), "node count")
	e.ref("extra_ids", "")
	e.u32(len(extra), "extra id count")
	e.u32(ids.Known()+1, "first extra id")
	e.str(chip.Name)
	e.str(chip.Device)
	e.str(chip.ID.String())
	e.pop()
	e.post("// end of chip database")

	return e.flush()
}

// resolve maps a node member to the wire index on its tile's type.
func resolve(chip *fabric.Chip, m fabric.NodeWire) (fabric.WireIndex, error) {
	if !chip.Grid.InBounds(m.X, m.Y) {
		return 0, errs.New(errs.ErrCodeArchive, "%s is outside the grid", m)
	}
	tt, ok := chip.Library.Lookup(chip.Grid.At(m.X, m.Y))
	if !ok {
		return 0, errs.New(errs.ErrCodeUnknownTileType, "%s is on unknown tile type %q", m, chip.Grid.At(m.X, m.Y))
	}
	wi, ok := tt.WireIndex(m.Wire)
	if !ok {
		return 0, errs.New(errs.ErrCodeUnknownWire, "%s is not a wire of %s", m, tt.Name())
	}
	return wi, nil
}

func (e *emitter) tileType(i int, tt *fabric.TileType) {
	wires := tt.Wires()
	e.label(fmt.Sprintf("tt%d_wires", i), tt.Name())
	for _, w := range wires {
		e.id(w.Name)
		e.id(w.Class.String())
		e.u32(int(uint32(int32(w.Channel))), "channel")
	}

	e.label(fmt.Sprintf("tt%d_pips", i), "")
	for _, p := range tt.Pips() {
		e.u32(int(p.Src), wires[p.Src].Name)
		e.u32(int(p.Dst), wires[p.Dst].Name)
	}

	bels := tt.Bels()
	for j, b := range bels {
		e.label(fmt.Sprintf("tt%d_bel%d_pins", i, j), b.Name)
		for _, p := range b.Pins {
			e.id(p.Name)
			e.u32(int(p.Wire), wires[p.Wire].Name)
			e.u32(int(p.Dir), p.Dir.String())
		}
	}
	e.label(fmt.Sprintf("tt%d_bels", i), "")
	for j, b := range bels {
		e.id(b.Name)
		e.id(string(b.Kind))
		e.u16(b.Z, "z")
		e.u16(0, "padding")
		e.ref(fmt.Sprintf("tt%d_bel%d_pins", i, j), "")
		e.u32(len(b.Pins), "pin count")
	}
}

// emitter writes BBA directives and keeps the first write error.
type emitter struct {
	w   *bufio.Writer
	ids *constids.Table
	err error
}

// directive writes one line; comment is dropped when empty.
func (e *emitter) directive(cmd, arg, comment string) {
	if e.err != nil {
		return
	}
	line := cmd
	if arg != "" {
		line += " " + arg
	}
	if comment != "" {
		line += " " + comment
	}
	_, e.err = e.w.WriteString(line + "\n")
}

func (e *emitter) pre(s string)            { e.directive("pre", s, "") }
func (e *emitter) post(s string)           { e.directive("post", s, "") }
func (e *emitter) push(name string)        { e.directive("push", name, "") }
func (e *emitter) pop()                    { e.directive("pop", "", "") }
func (e *emitter) label(l, comment string) { e.directive("label", l, comment) }
func (e *emitter) ref(l, comment string)   { e.directive("ref", l, comment) }
func (e *emitter) str(s string)            { e.directive("str", s, "") }

func (e *emitter) u16(v int, comment string) {
	e.directive("u16", strconv.Itoa(v), comment)
}

func (e *emitter) u32(v int, comment string) {
	e.directive("u32", strconv.Itoa(v), comment)
}

// id writes the constid of name, interning it when needed.
func (e *emitter) id(name string) {
	e.u32(e.ids.Intern(name), name)
}

func (e *emitter) flush() error {
	if e.err != nil {
		return e.err
	}
	return e.w.Flush()
}
