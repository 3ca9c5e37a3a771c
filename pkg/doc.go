// Package pkg provides the libraries behind fabricgen, a generator for the
// chip database of a small island-style FPGA fabric.
//
// # Overview
//
// A fabric is a grid of tiles. Each tile instantiates a tile type: a fixed
// set of wires, programmable interconnect points (pips) and basic elements
// (bels) with pins bound to wires. Nodes join wires of neighbouring tiles
// into one electrical net. The place-and-route tool reads all of this from a
// binary chip database assembled from the text archive written here.
//
// # Architecture
//
// The data flow through fabricgen:
//
//	device parameters
//	         ↓
//	    [device] package (define tile types in a [fabric.Registry])
//	         ↓
//	    [layout] package (assign a tile type to every coordinate)
//	         ↓
//	    [stitch] package (join channel and switch wires into nodes)
//	         ↓
//	    [archive] / [render/gridview] (BBA, JSON, DOT, SVG, PNG, PDF)
//
// [pipeline] runs these stages with timing, logging and an artifact cache
// ([cache]); [config] loads the same options from a TOML file.
//
// # Quick Start
//
//	chip, _, err := pipeline.Generate(pipeline.Options{Width: 9, Height: 9})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w, _ := archive.New(archive.FormatBBA)
//	data, err := archive.Encode(w, chip)
//
// # Main Packages
//
// [fabric] - Tile type registry, wires, pips, bels, the grid and nodes.
//
// [constids] - The well-known identifier table shared with the
// place-and-route tool.
//
// [errors] - Coded errors and input validation.
//
// [observability] - Pipeline and cache hooks.
//
// [fabric]: https://pkg.go.dev/github.com/matzehuels/fabricgen/pkg/fabric
// [fabric.Registry]: https://pkg.go.dev/github.com/matzehuels/fabricgen/pkg/fabric#Registry
// [device]: https://pkg.go.dev/github.com/matzehuels/fabricgen/pkg/device
// [layout]: https://pkg.go.dev/github.com/matzehuels/fabricgen/pkg/layout
// [stitch]: https://pkg.go.dev/github.com/matzehuels/fabricgen/pkg/stitch
// [archive]: https://pkg.go.dev/github.com/matzehuels/fabricgen/pkg/archive
// [render/gridview]: https://pkg.go.dev/github.com/matzehuels/fabricgen/pkg/render/gridview
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/fabricgen/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/fabricgen/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/fabricgen/pkg/config
// [constids]: https://pkg.go.dev/github.com/matzehuels/fabricgen/pkg/constids
// [errors]: https://pkg.go.dev/github.com/matzehuels/fabricgen/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/fabricgen/pkg/observability
package pkg
