package fabric

import (
	errs "github.com/matzehuels/fabricgen/pkg/errors"
)

// BelIndex is the position of a bel in its tile type's bel table.
type BelIndex int

// BelPin binds one pin of a bel to a wire of the enclosing tile type.
type BelPin struct {
	Name string
	Wire WireIndex
	Dir  PinDir
}

// Bel is a primitive instance placed at sub-location Z of a tile type.
type Bel struct {
	Name string
	Kind PrimitiveKind
	Z    int
	Pins []BelPin
}

// Pin returns the bound pin with the given name.
func (b Bel) Pin(name string) (BelPin, bool) {
	for _, p := range b.Pins {
		if p.Name == name {
			return p, true
		}
	}
	return BelPin{}, false
}

// TileType is an immutable tile template. The zero value is an empty tile type
// without a name; use a [Registry] to create real ones.
type TileType struct {
	name   string
	wires  []Wire
	byName map[string]WireIndex
	pips   []PIP
	bels   []Bel
}

// Name returns the tile type name.
func (t *TileType) Name() string { return t.name }

// Wires returns the wire table. The returned slice must not be modified.
func (t *TileType) Wires() []Wire { return t.wires }

// Pips returns the pip table. The returned slice must not be modified.
func (t *TileType) Pips() []PIP { return t.pips }

// Bels returns the bel table. The returned slice must not be modified.
func (t *TileType) Bels() []Bel { return t.bels }

// WireIndex looks up a wire by name.
func (t *TileType) WireIndex(name string) (WireIndex, bool) {
	i, ok := t.byName[name]
	return i, ok
}

// Wire looks up a wire by name.
func (t *TileType) Wire(name string) (Wire, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Wire{}, false
	}
	return t.wires[i], true
}

// HasWire reports whether the tile type defines the named wire.
func (t *TileType) HasWire(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Empty reports whether the tile type has no wires, pips or bels.
func (t *TileType) Empty() bool {
	return len(t.wires) == 0 && len(t.pips) == 0 && len(t.bels) == 0
}

// Counts summarises the tile type's contents.
type Counts struct {
	Wires int
	Pips  int
	Bels  int
	Pins  int
}

// Counts returns the number of wires, pips, bels and bound bel pins.
func (t *TileType) Counts() Counts {
	c := Counts{Wires: len(t.wires), Pips: len(t.pips), Bels: len(t.bels)}
	for _, b := range t.bels {
		c.Pins += len(b.Pins)
	}
	return c
}

// BelsOfKind returns the bels instantiating kind, in definition order.
func (t *TileType) BelsOfKind(kind PrimitiveKind) []Bel {
	var out []Bel
	for _, b := range t.bels {
		if b.Kind == kind {
			out = append(out, b)
		}
	}
	return out
}

// Builder accumulates the definition of one tile type. It is owned by the
// caller that created it and becomes read-only after [Builder.Freeze].
type Builder struct {
	tt     *TileType
	pips   map[PIP]struct{}
	belZ   map[int]BelIndex
	belIdx map[string]BelIndex
	frozen bool
}

func newBuilder(name string) *Builder {
	return &Builder{
		tt:     &TileType{name: name, byName: make(map[string]WireIndex)},
		pips:   make(map[PIP]struct{}),
		belZ:   make(map[int]BelIndex),
		belIdx: make(map[string]BelIndex),
	}
}

// Name returns the name of the tile type being built.
func (b *Builder) Name() string { return b.tt.name }

func (b *Builder) checkOpen() error {
	if b.frozen {
		return errs.New(errs.ErrCodeFrozen, "tile type %s is frozen", b.tt.name)
	}
	return nil
}

// CreateWire defines a wire that does not belong to a channel bundle.
func (b *Builder) CreateWire(name string, class WireClass) (WireIndex, error) {
	return b.CreateChannelWire(name, class, NoChannel)
}

// CreateChannelWire defines a wire carrying parallel track index channel.
func (b *Builder) CreateChannelWire(name string, class WireClass, channel int) (WireIndex, error) {
	if err := b.checkOpen(); err != nil {
		return 0, err
	}
	if err := errs.ValidateName("wire", name); err != nil {
		return 0, err
	}
	if _, ok := b.tt.byName[name]; ok {
		return 0, errs.New(errs.ErrCodeDuplicateWire, "tile %s: wire %q already defined", b.tt.name, name)
	}
	idx := WireIndex(len(b.tt.wires))
	b.tt.wires = append(b.tt.wires, Wire{Name: name, Class: class, Channel: channel})
	b.tt.byName[name] = idx
	return idx, nil
}

func (b *Builder) wire(name string) (WireIndex, error) {
	idx, ok := b.tt.byName[name]
	if !ok {
		return 0, errs.New(errs.ErrCodeUnknownWire, "tile %s: wire %q not defined", b.tt.name, name)
	}
	return idx, nil
}

// CreatePip defines a programmable connection src → dst. Both wires must
// already exist on this tile type and must differ.
func (b *Builder) CreatePip(src, dst string) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	s, err := b.wire(src)
	if err != nil {
		return err
	}
	d, err := b.wire(dst)
	if err != nil {
		return err
	}
	if s == d {
		return errs.New(errs.ErrCodeInvalidPip, "tile %s: pip %s -> %s connects a wire to itself", b.tt.name, src, dst)
	}
	p := PIP{Src: s, Dst: d}
	if _, ok := b.pips[p]; ok {
		return errs.New(errs.ErrCodeDuplicatePip, "tile %s: pip %s -> %s already defined", b.tt.name, src, dst)
	}
	b.pips[p] = struct{}{}
	b.tt.pips = append(b.tt.pips, p)
	return nil
}

// CreateBel places a primitive of the given kind at sub-location z.
func (b *Builder) CreateBel(name string, kind PrimitiveKind, z int) (BelIndex, error) {
	if err := b.checkOpen(); err != nil {
		return 0, err
	}
	if err := errs.ValidateName("bel", name); err != nil {
		return 0, err
	}
	if _, ok := LookupPrimitive(kind); !ok {
		return 0, errs.New(errs.ErrCodeUnknownPrimitive, "tile %s: bel %s has unknown kind %q", b.tt.name, name, kind)
	}
	if _, ok := b.belIdx[name]; ok {
		return 0, errs.New(errs.ErrCodeDuplicateBel, "tile %s: bel %q already defined", b.tt.name, name)
	}
	if other, ok := b.belZ[z]; ok {
		return 0, errs.New(errs.ErrCodeDuplicateBel, "tile %s: bel %s z=%d already used by %s",
			b.tt.name, name, z, b.tt.bels[other].Name)
	}
	idx := BelIndex(len(b.tt.bels))
	b.tt.bels = append(b.tt.bels, Bel{Name: name, Kind: kind, Z: z})
	b.belIdx[name] = idx
	b.belZ[z] = idx
	return idx, nil
}

// AddBelPin binds pin of bel to a wire of this tile type. The pin must be
// part of the primitive's contract with the same direction.
func (b *Builder) AddBelPin(bel BelIndex, pin, wire string, dir PinDir) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	if bel < 0 || int(bel) >= len(b.tt.bels) {
		return errs.New(errs.ErrCodeInternal, "tile %s: bel index %d out of range", b.tt.name, bel)
	}
	bl := &b.tt.bels[bel]
	w, err := b.wire(wire)
	if err != nil {
		return err
	}

	prim, _ := LookupPrimitive(bl.Kind)
	pc, ok := prim.Pin(pin)
	if !ok {
		return errs.New(errs.ErrCodePinContract, "tile %s: %s has no pin %q", b.tt.name, bl.Kind, pin)
	}
	if pc.Dir != dir {
		return errs.New(errs.ErrCodePinContract, "tile %s: %s pin %s is %s, got %s",
			b.tt.name, bl.Kind, pin, pc.Dir, dir)
	}

	for _, p := range bl.Pins {
		if p.Name == pin {
			return errs.New(errs.ErrCodeDuplicatePin, "tile %s: bel %s pin %s already bound", b.tt.name, bl.Name, pin)
		}
		if p.Wire == w {
			return errs.New(errs.ErrCodeDuplicatePin, "tile %s: bel %s wire %s already bound to pin %s",
				b.tt.name, bl.Name, wire, p.Name)
		}
	}
	bl.Pins = append(bl.Pins, BelPin{Name: pin, Wire: w, Dir: dir})
	return nil
}

// Freeze ends the definition phase and returns the immutable tile type.
// Calling Freeze more than once returns the same value.
func (b *Builder) Freeze() *TileType {
	b.frozen = true
	return b.tt
}

// Frozen reports whether Freeze has been called.
func (b *Builder) Frozen() bool { return b.frozen }
