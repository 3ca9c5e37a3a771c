package fabric

// PinDir is the direction of a bel pin.
type PinDir int

const (
	PinInput PinDir = iota
	PinOutput
	PinInout
)

func (d PinDir) String() string {
	switch d {
	case PinInput:
		return "INPUT"
	case PinOutput:
		return "OUTPUT"
	case PinInout:
		return "INOUT"
	}
	return "UNKNOWN"
}

// PrimitiveKind names a primitive in the catalog.
type PrimitiveKind string

// Primitive kinds known to the catalog.
const (
	KindLUT3 PrimitiveKind = "LUT3"
	KindLUT4 PrimitiveKind = "LUT4"
	KindDFF  PrimitiveKind = "DFF"
	KindIOB  PrimitiveKind = "IOB"
)

// PinContract is one pin a primitive kind exposes.
type PinContract struct {
	Name string
	Dir  PinDir
}

// Primitive describes a primitive kind and its ordered pin contract.
type Primitive struct {
	Kind PrimitiveKind
	Pins []PinContract
}

// Pin returns the contract for the named pin.
func (p Primitive) Pin(name string) (PinContract, bool) {
	for _, pc := range p.Pins {
		if pc.Name == name {
			return pc, true
		}
	}
	return PinContract{}, false
}

// Inputs returns the number of input pins.
func (p Primitive) Inputs() int {
	n := 0
	for _, pc := range p.Pins {
		if pc.Dir == PinInput {
			n++
		}
	}
	return n
}

var catalog = []Primitive{
	{Kind: KindLUT3, Pins: []PinContract{
		{"I0", PinInput}, {"I1", PinInput}, {"I2", PinInput}, {"O", PinOutput},
	}},
	{Kind: KindLUT4, Pins: []PinContract{
		{"I0", PinInput}, {"I1", PinInput}, {"I2", PinInput}, {"I3", PinInput}, {"F", PinOutput},
	}},
	{Kind: KindDFF, Pins: []PinContract{
		{"D", PinInput}, {"Q", PinOutput},
	}},
	{Kind: KindIOB, Pins: []PinContract{
		{"I", PinInput}, {"EN", PinInput}, {"O", PinOutput}, {"PAD", PinInout},
	}},
}

// LookupPrimitive returns the catalog entry for kind.
func LookupPrimitive(kind PrimitiveKind) (Primitive, bool) {
	for _, p := range catalog {
		if p.Kind == kind {
			return p, true
		}
	}
	return Primitive{}, false
}

// Catalog returns a copy of every catalogued primitive in a fixed order.
func Catalog() []Primitive {
	out := make([]Primitive, len(catalog))
	for i, p := range catalog {
		out[i] = Primitive{Kind: p.Kind, Pins: append([]PinContract(nil), p.Pins...)}
	}
	return out
}
