package fabric

// WireClass is the semantic class of a wire.
type WireClass int

const (
	ClassLUTInput WireClass = iota
	ClassLUTOutput
	ClassLUT4Output
	ClassFFData
	ClassFFOutput
	ClassSliceIn
	ClassSliceOut
	ClassIOEnable
	ClassIOInput
	ClassIOOutput
	ClassIOPad
	// ClassChanN to ClassChanW are the four sides of a switch tile.
	ClassChanN
	ClassChanE
	ClassChanS
	ClassChanW
	// ClassChan is the track carried by a channel tile.
	ClassChan
	// ClassSwitchFacing is a channel tile wire facing a neighbouring switch tile.
	ClassSwitchFacing
)

var wireClassNames = [...]string{
	ClassLUTInput:     "LUT_INPUT",
	ClassLUTOutput:    "LUT_OUT",
	ClassLUT4Output:   "LUT4_OUT",
	ClassFFData:       "FF_DATA",
	ClassFFOutput:     "FF_OUT",
	ClassSliceIn:      "SLICE_IN",
	ClassSliceOut:     "SLICE_OUT",
	ClassIOEnable:     "IO_EN",
	ClassIOInput:      "IO_I",
	ClassIOOutput:     "IO_O",
	ClassIOPad:        "IO_PAD",
	ClassChanN:        "CHAN_N",
	ClassChanE:        "CHAN_E",
	ClassChanS:        "CHAN_S",
	ClassChanW:        "CHAN_W",
	ClassChan:         "CHAN",
	ClassSwitchFacing: "QSB",
}

// String returns the class name written to the archive.
func (c WireClass) String() string {
	if c < 0 || int(c) >= len(wireClassNames) {
		return "UNKNOWN"
	}
	return wireClassNames[c]
}

// Routable reports whether wires of this class may be members of an
// inter-tile node.
func (c WireClass) Routable() bool {
	switch c {
	case ClassChanN, ClassChanE, ClassChanS, ClassChanW, ClassChan, ClassSwitchFacing:
		return true
	}
	return false
}

// WireClasses returns every defined class in declaration order.
func WireClasses() []WireClass {
	out := make([]WireClass, len(wireClassNames))
	for i := range wireClassNames {
		out[i] = WireClass(i)
	}
	return out
}

// NoChannel marks a wire that is not part of a parallel track bundle.
const NoChannel = -1

// WireIndex is the position of a wire in its tile type's wire table.
type WireIndex int

// Wire is a tile-type-local signal endpoint.
type Wire struct {
	Name    string
	Class   WireClass
	Channel int // parallel track index, or NoChannel
}

// PIP is a directed programmable connection between two wires of the same
// tile type.
type PIP struct {
	Src WireIndex
	Dst WireIndex
}
