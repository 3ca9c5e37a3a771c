package device

import (
	"fmt"

	"github.com/matzehuels/fabricgen/pkg/fabric"
)

// BuildLibrary defines every tile type of the fabric and freezes them.
func BuildLibrary(p Params) (*fabric.Library, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	reg := fabric.NewRegistry()
	steps := []struct {
		name   string
		define func(*def, Params)
	}{
		{TileNull, func(*def, Params) {}},
		{TileCorner, func(*def, Params) {}},
		{TileIO, defineIO},
		{TileSwitch, defineSwitch},
		{TileLogic, defineLogic},
		{TileChannel, defineChannel},
	}
	for _, s := range steps {
		b, err := reg.Create(s.name)
		if err != nil {
			return nil, err
		}
		d := &def{b: b}
		s.define(d, p)
		if d.err != nil {
			return nil, fmt.Errorf("define %s: %w", s.name, d.err)
		}
	}
	return reg.Freeze()
}

// def wraps a builder and keeps the first definition error so tile
// definitions read as a flat list of statements.
type def struct {
	b   *fabric.Builder
	err error
}

func (d *def) wire(name string, class fabric.WireClass) {
	d.chanWire(name, class, fabric.NoChannel)
}

func (d *def) chanWire(name string, class fabric.WireClass, ch int) {
	if d.err == nil {
		_, d.err = d.b.CreateChannelWire(name, class, ch)
	}
}

func (d *def) pip(src, dst string) {
	if d.err == nil {
		d.err = d.b.CreatePip(src, dst)
	}
}

func (d *def) bel(name string, kind fabric.PrimitiveKind, z int) fabric.BelIndex {
	if d.err != nil {
		return -1
	}
	var idx fabric.BelIndex
	idx, d.err = d.b.CreateBel(name, kind, z)
	return idx
}

func (d *def) pin(bel fabric.BelIndex, pin, wire string, dir fabric.PinDir) {
	if d.err == nil {
		d.err = d.b.AddBelPin(bel, pin, wire, dir)
	}
}

func defineIO(d *def, p Params) {
	for i := 0; i < p.IOPerTile; i++ {
		d.wire(IOWire(i, "EN"), fabric.ClassIOEnable)
		d.wire(IOWire(i, "I"), fabric.ClassIOInput)
		d.wire(IOWire(i, "O"), fabric.ClassIOOutput)
		d.wire(IOWire(i, "PAD"), fabric.ClassIOPad)
	}
	for i := 0; i < p.IOPerTile; i++ {
		io := d.bel(IOBel(i), fabric.KindIOB, i)
		d.pin(io, "I", IOWire(i, "I"), fabric.PinInput)
		d.pin(io, "EN", IOWire(i, "EN"), fabric.PinInput)
		d.pin(io, "O", IOWire(i, "O"), fabric.PinOutput)
		d.pin(io, "PAD", IOWire(i, "PAD"), fabric.PinInout)
	}
}

var switchClass = [...]fabric.WireClass{
	North: fabric.ClassChanN,
	East:  fabric.ClassChanE,
	South: fabric.ClassChanS,
	West:  fabric.ClassChanW,
}

func defineSwitch(d *def, p Params) {
	for ch := 0; ch < p.Channels; ch++ {
		for _, s := range Sides {
			d.chanWire(SwitchWire(s, ch), switchClass[s], ch)
		}
	}
	// Each channel index is switched independently between every pair of sides.
	for _, from := range Sides {
		for _, to := range Sides {
			if from == to {
				continue
			}
			for ch := 0; ch < p.Channels; ch++ {
				d.pip(SwitchWire(from, ch), SwitchWire(to, ch))
			}
		}
	}
}

func defineLogic(d *def, p Params) {
	for i := 0; i < p.SlicesPerCLB; i++ {
		defineSlice(d, Slice(i))
	}
}

func defineSlice(d *def, s Slice) {
	w := s.Wire

	d.wire(w("LUT3_1_I0"), fabric.ClassLUTInput)
	d.wire(w("LUT3_1_I1"), fabric.ClassLUTInput)
	d.wire(w("LUT3_1_I2"), fabric.ClassLUTInput)

	d.wire(w("LUT3_2_I0"), fabric.ClassLUTInput)
	d.wire(w("LUT3_2_I12"), fabric.ClassLUTInput)
	d.wire(w("LUT3_2_I23"), fabric.ClassLUTInput)

	d.wire(w("LUT3_1_RES"), fabric.ClassLUTOutput)
	d.wire(w("LUT3_2_RES"), fabric.ClassLUTOutput)
	d.wire(w("LUT4_F"), fabric.ClassLUT4Output)

	d.wire(w("FF_D"), fabric.ClassFFData)
	d.wire(w("FF_Q"), fabric.ClassFFOutput)

	for i := 0; i < 4; i++ {
		d.wire(w(fmt.Sprintf("I%d", i)), fabric.ClassSliceIn)
	}
	d.wire(w("D"), fabric.ClassSliceIn)

	d.wire(w("GF"), fabric.ClassSliceOut)
	d.wire(w("FQ"), fabric.ClassSliceOut)

	lut := d.bel(s.Bel("LUT3_1"), fabric.KindLUT3, s.Base())
	d.pin(lut, "I0", w("LUT3_1_I0"), fabric.PinInput)
	d.pin(lut, "I1", w("LUT3_1_I1"), fabric.PinInput)
	d.pin(lut, "I2", w("LUT3_1_I2"), fabric.PinInput)
	d.pin(lut, "O", w("LUT3_1_RES"), fabric.PinOutput)

	// Wire names of the second LUT3 follow the LUT4 input pairing.
	lut = d.bel(s.Bel("LUT3_2"), fabric.KindLUT3, s.Base()+1)
	d.pin(lut, "I0", w("LUT3_2_I0"), fabric.PinInput)
	d.pin(lut, "I1", w("LUT3_2_I12"), fabric.PinInput)
	d.pin(lut, "I2", w("LUT3_2_I23"), fabric.PinInput)
	d.pin(lut, "O", w("LUT3_2_RES"), fabric.PinOutput)

	ff := d.bel(s.Bel("FF"), fabric.KindDFF, s.Base()+2)
	d.pin(ff, "D", w("FF_D"), fabric.PinInput)
	d.pin(ff, "Q", w("FF_Q"), fabric.PinOutput)

	// FF D select
	d.pip(w("LUT4_F"), w("FF_D"))
	d.pip(w("D"), w("FF_D"))

	// FQ select
	d.pip(w("LUT4_F"), w("FQ"))
	d.pip(w("FF_Q"), w("FQ"))

	// GF select
	d.pip(w("LUT4_F"), w("GF"))
	d.pip(w("LUT3_2_RES"), w("GF"))
}

func defineChannel(d *def, p Params) {
	for ch := 0; ch < p.Channels; ch++ {
		d.chanWire(TrackWire(ch), fabric.ClassChan, ch)
		d.chanWire(ChannelWire(First, ch), fabric.ClassSwitchFacing, ch)
		d.chanWire(ChannelWire(Second, ch), fabric.ClassSwitchFacing, ch)

		d.pip(ChannelWire(First, ch), TrackWire(ch))
		d.pip(ChannelWire(Second, ch), TrackWire(ch))
		d.pip(TrackWire(ch), ChannelWire(First, ch))
		d.pip(TrackWire(ch), ChannelWire(Second, ch))
	}
}
