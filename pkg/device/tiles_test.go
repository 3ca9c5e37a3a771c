package device

import (
	"testing"

	errs "github.com/matzehuels/fabricgen/pkg/errors"
	"github.com/matzehuels/fabricgen/pkg/fabric"
)

func buildLibrary(t *testing.T, p Params) *fabric.Library {
	t.Helper()
	lib, err := BuildLibrary(p)
	if err != nil {
		t.Fatalf("BuildLibrary(%+v): %v", p, err)
	}
	return lib
}

func lookup(t *testing.T, lib *fabric.Library, name string) *fabric.TileType {
	t.Helper()
	tt, ok := lib.Lookup(name)
	if !ok {
		t.Fatalf("tile type %s not defined", name)
	}
	return tt
}

func TestBuildLibraryTileTypes(t *testing.T) {
	lib := buildLibrary(t, DefaultParams())
	want := []string{TileNull, TileCorner, TileIO, TileSwitch, TileLogic, TileChannel}
	if lib.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", lib.Len(), len(want))
	}
	for i, name := range want {
		if got := lib.Types()[i].Name(); got != name {
			t.Errorf("Types()[%d] = %s, want %s", i, got, name)
		}
	}
	for _, name := range []string{TileNull, TileCorner} {
		if !lookup(t, lib, name).Empty() {
			t.Errorf("%s should be empty", name)
		}
	}
}

func TestLogicTileSlices(t *testing.T) {
	lib := buildLibrary(t, Params{Channels: 1, IOPerTile: 1, SlicesPerCLB: 4})
	clb := lookup(t, lib, TileLogic)

	if got := len(clb.BelsOfKind(fabric.KindDFF)); got != 4 {
		t.Errorf("DFF bels = %d, want 4", got)
	}
	if got := len(clb.BelsOfKind(fabric.KindLUT3)); got != 8 {
		t.Errorf("LUT3 bels = %d, want 8", got)
	}

	zs := make(map[int]string)
	for _, b := range clb.Bels() {
		if other, ok := zs[b.Z]; ok {
			t.Errorf("bels %s and %s share z=%d", other, b.Name, b.Z)
		}
		zs[b.Z] = b.Name
	}

	c := clb.Counts()
	if c.Wires != 4*18 {
		t.Errorf("wires = %d, want %d", c.Wires, 4*18)
	}
	if c.Pips != 4*6 {
		t.Errorf("pips = %d, want %d", c.Pips, 4*6)
	}
	if c.Pins != 4*(4+4+2) {
		t.Errorf("bel pins = %d, want %d", c.Pins, 4*10)
	}
}

func TestSecondLUTPins(t *testing.T) {
	clb := lookup(t, buildLibrary(t, DefaultParams()), TileLogic)
	s := Slice(0)

	var lut *fabric.Bel
	for i, b := range clb.Bels() {
		if b.Name == s.Bel("LUT3_2") {
			lut = &clb.Bels()[i]
		}
	}
	if lut == nil {
		t.Fatalf("bel %s not defined", s.Bel("LUT3_2"))
	}

	want := map[string]string{
		"I0": s.Wire("LUT3_2_I0"),
		"I1": s.Wire("LUT3_2_I12"),
		"I2": s.Wire("LUT3_2_I23"),
		"O":  s.Wire("LUT3_2_RES"),
	}
	if len(lut.Pins) != len(want) {
		t.Fatalf("%s has %d pins, want %d", lut.Name, len(lut.Pins), len(want))
	}
	for _, p := range lut.Pins {
		got := clb.Wires()[p.Wire].Name
		if got != want[p.Name] {
			t.Errorf("pin %s on wire %s, want %s", p.Name, got, want[p.Name])
		}
	}
}

func TestLogicTileSliceGroups(t *testing.T) {
	for _, n := range []int{1, 2, 6} {
		lib := buildLibrary(t, Params{Channels: 1, IOPerTile: 1, SlicesPerCLB: n})
		clb := lookup(t, lib, TileLogic)
		if got := len(clb.BelsOfKind(fabric.KindDFF)); got != n {
			t.Errorf("slices=%d: DFF bels = %d", n, got)
		}
		if got := len(clb.BelsOfKind(fabric.KindLUT3)); got != 2*n {
			t.Errorf("slices=%d: LUT3 bels = %d", n, got)
		}
	}
}

func TestIOTile(t *testing.T) {
	lib := buildLibrary(t, Params{Channels: 1, IOPerTile: 2, SlicesPerCLB: 1})
	iob := lookup(t, lib, TileIO)

	bels := iob.BelsOfKind(fabric.KindIOB)
	if len(bels) != 2 {
		t.Fatalf("IOB bels = %d, want 2", len(bels))
	}
	for i, b := range bels {
		if b.Z != i {
			t.Errorf("%s.Z = %d, want %d", b.Name, b.Z, i)
		}
		pad, ok := b.Pin("PAD")
		if !ok || pad.Dir != fabric.PinInout {
			t.Errorf("%s PAD = %+v, %v", b.Name, pad, ok)
		}
		if got := iob.Wires()[pad.Wire].Name; got != IOWire(i, "PAD") {
			t.Errorf("%s PAD bound to %s", b.Name, got)
		}
	}
}

func TestSwitchTile(t *testing.T) {
	for _, channels := range []int{1, 3} {
		lib := buildLibrary(t, Params{Channels: channels, IOPerTile: 1, SlicesPerCLB: 1})
		qsb := lookup(t, lib, TileSwitch)

		c := qsb.Counts()
		if c.Wires != 4*channels {
			t.Errorf("channels=%d: wires = %d", channels, c.Wires)
		}
		if c.Pips != 12*channels {
			t.Errorf("channels=%d: pips = %d, want %d", channels, c.Pips, 12*channels)
		}
		for ch := 0; ch < channels; ch++ {
			for _, s := range Sides {
				w, ok := qsb.Wire(SwitchWire(s, ch))
				if !ok {
					t.Fatalf("missing %s", SwitchWire(s, ch))
				}
				if w.Channel != ch || !w.Class.Routable() {
					t.Errorf("%s = %+v", w.Name, w)
				}
			}
		}
		// Pips never cross channel indices.
		for _, p := range qsb.Pips() {
			if qsb.Wires()[p.Src].Channel != qsb.Wires()[p.Dst].Channel {
				t.Errorf("pip %s -> %s crosses channels", qsb.Wires()[p.Src].Name, qsb.Wires()[p.Dst].Name)
			}
		}
	}
}

func TestChannelTile(t *testing.T) {
	lib := buildLibrary(t, Params{Channels: 2, IOPerTile: 1, SlicesPerCLB: 1})
	qcb := lookup(t, lib, TileChannel)

	for ch := 0; ch < 2; ch++ {
		for _, name := range []string{TrackWire(ch), ChannelWire(First, ch), ChannelWire(Second, ch)} {
			if !qcb.HasWire(name) {
				t.Errorf("missing wire %s", name)
			}
		}
	}
	if c := qcb.Counts(); c.Pips != 8 {
		t.Errorf("pips = %d, want 8", c.Pips)
	}
}

func TestWireLocality(t *testing.T) {
	lib := buildLibrary(t, Params{Channels: 2, IOPerTile: 2, SlicesPerCLB: 4})
	for _, tt := range lib.Types() {
		n := fabric.WireIndex(len(tt.Wires()))
		for _, p := range tt.Pips() {
			if p.Src < 0 || p.Src >= n || p.Dst < 0 || p.Dst >= n {
				t.Errorf("%s: pip %+v references a wire outside the tile type", tt.Name(), p)
			}
			if p.Src == p.Dst {
				t.Errorf("%s: pip %+v is a self loop", tt.Name(), p)
			}
		}
		for _, b := range tt.Bels() {
			for _, pin := range b.Pins {
				if pin.Wire < 0 || pin.Wire >= n {
					t.Errorf("%s: bel %s pin %s references a wire outside the tile type", tt.Name(), b.Name, pin.Name)
				}
			}
		}
	}
}

func TestBuildLibraryInvalidParams(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{"no channels", Params{Channels: 0, IOPerTile: 1, SlicesPerCLB: 1}},
		{"no io", Params{Channels: 1, IOPerTile: 0, SlicesPerCLB: 1}},
		{"no slices", Params{Channels: 1, IOPerTile: 1, SlicesPerCLB: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildLibrary(tt.p)
			if !errs.Is(err, errs.ErrCodeInvalidInput) {
				t.Errorf("BuildLibrary error = %v, want %s", err, errs.ErrCodeInvalidInput)
			}
		})
	}
}

func TestNames(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{SwitchWire(East, 3), "E_3"},
		{ChannelWire(First, 0), "QSB1_0"},
		{ChannelWire(Second, 2), "QSB2_2"},
		{TrackWire(1), "CHAN_1"},
		{IOWire(1, "PAD"), "IO1_PAD"},
		{IOBel(0), "IO0"},
		{Slice(2).Wire("FF_D"), "SLICE6_FF_D"},
		{Slice(1).Bel("LUT3_2"), "SLICE3_LUT3_2"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
	if West.Opposite() != East || North.Opposite() != South {
		t.Error("Opposite() mismatch")
	}
}
