package device

import "fmt"

// Side is one of the four sides of a switch tile.
type Side int

const (
	North Side = iota
	East
	South
	West
)

// Sides lists the four sides in the order their wires are defined.
var Sides = [...]Side{North, East, South, West}

func (s Side) String() string {
	return [...]string{"N", "E", "S", "W"}[s]
}

// Opposite returns the side facing s across a tile boundary.
func (s Side) Opposite() Side {
	return (s + 2) % 4
}

// SwitchWire names the wire on side s of a switch tile for a channel index.
func SwitchWire(s Side, ch int) string {
	return fmt.Sprintf("%s_%d", s, ch)
}

// Boundary selects which end of a channel tile faces a switch tile. First is
// the left or upper end, Second the right or lower end.
type Boundary int

const (
	First Boundary = iota + 1
	Second
)

// ChannelWire names the switch-facing wire at boundary b of a channel tile.
func ChannelWire(b Boundary, ch int) string {
	return fmt.Sprintf("QSB%d_%d", int(b), ch)
}

// TrackWire names the track wire of a channel tile.
func TrackWire(ch int) string {
	return fmt.Sprintf("CHAN_%d", ch)
}

// IOWire names the wire of IO buffer i bound to pin.
func IOWire(i int, pin string) string {
	return fmt.Sprintf("IO%d_%s", i, pin)
}

// IOBel names IO buffer i.
func IOBel(i int) string {
	return fmt.Sprintf("IO%d", i)
}

// Slice identifies a slice group of a logic tile. Its bels occupy
// sub-locations Base(), Base()+1 and Base()+2.
type Slice int

// Base returns the first sub-location used by the slice.
func (s Slice) Base() int { return int(s) * 3 }

// Wire names a slice-local wire; the slice prefix uses the base sub-location.
func (s Slice) Wire(suffix string) string {
	return fmt.Sprintf("SLICE%d_%s", s.Base(), suffix)
}

// Bel names a slice-local bel.
func (s Slice) Bel(suffix string) string {
	return s.Wire(suffix)
}
