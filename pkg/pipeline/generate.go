package pipeline

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/matzehuels/fabricgen/pkg/archive"
	"github.com/matzehuels/fabricgen/pkg/device"
	"github.com/matzehuels/fabricgen/pkg/fabric"
	"github.com/matzehuels/fabricgen/pkg/layout"
	"github.com/matzehuels/fabricgen/pkg/render/gridview"
	"github.com/matzehuels/fabricgen/pkg/stitch"
)

// chipNamespace scopes the name-based chip IDs.
var chipNamespace = uuid.MustParse("5b0c8e0e-3f2a-4d7b-9a55-0c7f1c2a9e41")

// ChipID derives the stable chip identity for a fabric hash.
func ChipID(fabricHash string) uuid.UUID {
	return uuid.NewSHA1(chipNamespace, []byte(fabricHash))
}

// Build defines the tile types.
func Build(opts Options) (*fabric.Library, error) {
	return device.BuildLibrary(opts.Params())
}

// Layout builds the grid.
func Layout(opts Options) (*fabric.Grid, error) {
	return layout.Layout(opts.Width, opts.Height)
}

// Stitch computes the nodes of g.
func Stitch(g *fabric.Grid, lib *fabric.Library, opts Options) (*stitch.Result, error) {
	t, err := stitch.ParseTraversal(opts.Traversal)
	if err != nil {
		return nil, err
	}
	return stitch.Stitch(g, lib, stitch.Options{Channels: opts.Channels, Traversal: t})
}

// Generate runs build, layout and stitch without caching or hooks.
func Generate(opts Options) (*fabric.Chip, *stitch.Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, fmt.Errorf("invalid options: %w", err)
	}
	lib, err := Build(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("build: %w", err)
	}
	g, err := Layout(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("layout: %w", err)
	}
	res, err := Stitch(g, lib, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("stitch: %w", err)
	}
	return NewChip(opts, lib, g, res), res, nil
}

// NewChip assembles the chip handed to the writers.
func NewChip(opts Options, lib *fabric.Library, g *fabric.Grid, res *stitch.Result) *fabric.Chip {
	return &fabric.Chip{
		Name:    opts.Name,
		Device:  opts.Device,
		ID:      ChipID(opts.FabricHash()),
		Library: lib,
		Grid:    g,
		Nodes:   res.All(),
	}
}

// Writer returns the writer for an output format.
func Writer(format string, opts Options) (archive.Writer, error) {
	switch format {
	case FormatBBA, FormatJSON:
		return archive.New(format)
	}
	w, err := gridview.NewWriter(format, gridview.Options{Detailed: opts.Detailed})
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Emit serializes chip in every requested format.
func Emit(chip *fabric.Chip, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := emitOne(chip, format, opts)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func emitOne(chip *fabric.Chip, format string, opts Options) ([]byte, error) {
	w, err := Writer(format, opts)
	if err != nil {
		return nil, err
	}
	data, err := archive.Encode(w, chip)
	if err != nil {
		return nil, fmt.Errorf("emit %s: %w", format, err)
	}
	return data, nil
}

// Summarize fills the size fields of Stats.
func Summarize(chip *fabric.Chip, res *stitch.Result) Stats {
	totals := chip.Library.Totals()
	return Stats{
		TileTypes:   chip.Library.Len(),
		Tiles:       chip.Grid.Width()*chip.Grid.Height() - chip.Grid.Count(device.TileNull),
		Wires:       totals.Wires,
		Pips:        totals.Pips,
		Bels:        totals.Bels,
		Nodes:       len(res.Nodes),
		CornerNodes: len(res.Corners),
	}
}
