package archive

import (
	"encoding/json"
	"io"

	errs "github.com/matzehuels/fabricgen/pkg/errors"
	"github.com/matzehuels/fabricgen/pkg/fabric"
)

// Document is the JSON form of a chip. Wires, pips and pins refer to wires by
// name rather than index.
type Document struct {
	Name      string        `json:"name"`
	Device    string        `json:"device"`
	ID        string        `json:"id"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	TileTypes []TileTypeDoc `json:"tile_types"`
	Grid      [][]string    `json:"grid"`
	Nodes     [][]NodeDoc   `json:"nodes"`
}

// TileTypeDoc describes one tile type.
type TileTypeDoc struct {
	Name  string    `json:"name"`
	Wires []WireDoc `json:"wires"`
	Pips  []PipDoc  `json:"pips,omitempty"`
	Bels  []BelDoc  `json:"bels,omitempty"`
}

// WireDoc describes one wire. Channel is omitted for wires outside a track
// bundle.
type WireDoc struct {
	Name    string `json:"name"`
	Class   string `json:"class"`
	Channel *int   `json:"channel,omitempty"`
}

// PipDoc describes one pip.
type PipDoc struct {
	Src string `json:"src"`
	Dst string `json:"dst"`
}

// BelDoc describes one bel and its bound pins.
type BelDoc struct {
	Name string   `json:"name"`
	Kind string   `json:"kind"`
	Z    int      `json:"z"`
	Pins []PinDoc `json:"pins"`
}

// PinDoc binds a bel pin to a wire.
type PinDoc struct {
	Name string `json:"name"`
	Wire string `json:"wire"`
	Dir  string `json:"dir"`
}

// NodeDoc is one node member.
type NodeDoc struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Wire string `json:"wire"`
}

// NewDocument converts chip to its JSON form.
func NewDocument(chip *fabric.Chip) (*Document, error) {
	if err := checkChip(chip); err != nil {
		return nil, err
	}
	doc := &Document{
		Name:   chip.Name,
		Device: chip.Device,
		ID:     chip.ID.String(),
		Width:  chip.Grid.Width(),
		Height: chip.Grid.Height(),
		Grid:   chip.Grid.Rows(),
		Nodes:  make([][]NodeDoc, 0, len(chip.Nodes)),
	}
	for _, tt := range chip.Library.Types() {
		doc.TileTypes = append(doc.TileTypes, tileTypeDoc(tt))
	}
	for i, n := range chip.Nodes {
		members := make([]NodeDoc, len(n))
		for j, m := range n {
			if _, err := resolve(chip, m); err != nil {
				return nil, errs.Wrap(errs.ErrCodeArchive, err, "node %d", i)
			}
			members[j] = NodeDoc{X: m.X, Y: m.Y, Wire: m.Wire}
		}
		doc.Nodes = append(doc.Nodes, members)
	}
	return doc, nil
}

func tileTypeDoc(tt *fabric.TileType) TileTypeDoc {
	wires := tt.Wires()
	d := TileTypeDoc{Name: tt.Name(), Wires: make([]WireDoc, len(wires))}
	for i, w := range wires {
		d.Wires[i] = WireDoc{Name: w.Name, Class: w.Class.String()}
		if w.Channel != fabric.NoChannel {
			ch := w.Channel
			d.Wires[i].Channel = &ch
		}
	}
	for _, p := range tt.Pips() {
		d.Pips = append(d.Pips, PipDoc{Src: wires[p.Src].Name, Dst: wires[p.Dst].Name})
	}
	for _, b := range tt.Bels() {
		bd := BelDoc{Name: b.Name, Kind: string(b.Kind), Z: b.Z, Pins: make([]PinDoc, len(b.Pins))}
		for i, p := range b.Pins {
			bd.Pins[i] = PinDoc{Name: p.Name, Wire: wires[p.Wire].Name, Dir: p.Dir.String()}
		}
		d.Bels = append(d.Bels, bd)
	}
	return d
}

// JSONWriter emits a [Document].
type JSONWriter struct {
	// Indent is the per-level indentation. Empty means two spaces.
	Indent string
}

// Format implements Writer.
func (*JSONWriter) Format() string { return FormatJSON }

// Write implements Writer.
func (jw *JSONWriter) Write(w io.Writer, chip *fabric.Chip) error {
	doc, err := NewDocument(chip)
	if err != nil {
		return err
	}
	indent := jw.Indent
	if indent == "" {
		indent = "  "
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	if err := enc.Encode(doc); err != nil {
		return errs.Wrap(errs.ErrCodeArchive, err, "encode json")
	}
	return nil
}

// ReadDocument decodes a document written by JSONWriter.
func ReadDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode json")
	}
	return &doc, nil
}
