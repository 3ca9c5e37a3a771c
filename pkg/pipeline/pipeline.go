// Package pipeline runs fabric generation end to end.
//
// The pipeline has four stages:
//
//  1. Build: define the tile types for the device parameters
//  2. Layout: assign a tile type to every grid coordinate
//  3. Stitch: join channel and switch tile wires into nodes
//  4. Emit: serialize the chip in each requested format
//
// Generation is deterministic, so emitted artifacts are cached under a hash
// of the options that affect them.
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Width:   9,
//	    Height:  9,
//	    Formats: []string{"bba", "json"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	bba := result.Artifacts["bba"]
package pipeline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fabricgen/pkg/archive"
	"github.com/matzehuels/fabricgen/pkg/buildinfo"
	"github.com/matzehuels/fabricgen/pkg/cache"
	"github.com/matzehuels/fabricgen/pkg/device"
	errs "github.com/matzehuels/fabricgen/pkg/errors"
	"github.com/matzehuels/fabricgen/pkg/fabric"
	"github.com/matzehuels/fabricgen/pkg/render/gridview"
	"github.com/matzehuels/fabricgen/pkg/stitch"
)

const (
	// DefaultName is the chip family name written to the archive.
	DefaultName = "test"

	// DefaultDevice is the device name written to the archive.
	DefaultDevice = "EX1"

	// DefaultWidth is the default number of grid columns.
	DefaultWidth = 7

	// DefaultHeight is the default number of grid rows.
	DefaultHeight = 7

	// DefaultTraversal is the default stitching order.
	DefaultTraversal = "column"
)

// Format constants for output formats.
const (
	FormatBBA  = archive.FormatBBA
	FormatJSON = archive.FormatJSON
	FormatDOT  = gridview.FormatDOT
	FormatSVG  = gridview.FormatSVG
	FormatPNG  = gridview.FormatPNG
	FormatPDF  = gridview.FormatPDF
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatBBA:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
}

// Options configures a generation run.
type Options struct {
	// Identity
	Name   string `json:"name"`
	Device string `json:"device"`

	// Grid
	Width  int `json:"width"`
	Height int `json:"height"`

	// Tile parameters
	Channels     int `json:"channels"`
	IOPerTile    int `json:"io_per_tile"`
	SlicesPerCLB int `json:"slices_per_clb"`

	// Stitching
	Traversal string `json:"traversal,omitempty"`

	// Output
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // label diagram edges with wire names
	Refresh  bool     `json:"refresh,omitempty"`  // ignore cached artifacts

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Chip is the generated fabric.
	Chip *fabric.Chip

	// Stitch holds the nodes split into ordinary and corner nodes.
	Stitch *stitch.Result

	// FabricHash is the hash of the options that determine the fabric.
	FabricHash string

	// Artifacts contains serialized outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TileTypes   int
	Tiles       int // non-empty grid cells
	Wires       int // summed over tile types
	Pips        int
	Bels        int
	Nodes       int
	CornerNodes int
	BuildTime   time.Duration
	LayoutTime  time.Duration
	StitchTime  time.Duration
	EmitTime    time.Duration
}

// CacheInfo tracks cache hits for the emit stage.
type CacheInfo struct {
	ArtifactHits int  // artifacts served from the cache
	EmitHit      bool // whether every artifact came from the cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: bba, json, dot, svg, png, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, dropping blanks and
// duplicates. An empty string yields the default formats.
func ParseFormats(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	if len(out) == 0 {
		return []string{FormatBBA}
	}
	return out
}

// ValidateAndSetDefaults applies defaults and checks every field.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := errs.ValidateName("chip name", o.Name); err != nil {
		return err
	}
	if err := errs.ValidateName("device name", o.Device); err != nil {
		return err
	}
	if err := errs.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	if err := o.Params().Validate(); err != nil {
		return err
	}
	if _, err := stitch.ParseTraversal(o.Traversal); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetDefaults fills zero fields with their defaults.
func (o *Options) SetDefaults() {
	d := device.DefaultParams()
	if o.Name == "" {
		o.Name = DefaultName
	}
	if o.Device == "" {
		o.Device = DefaultDevice
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Channels == 0 {
		o.Channels = d.Channels
	}
	if o.IOPerTile == 0 {
		o.IOPerTile = d.IOPerTile
	}
	if o.SlicesPerCLB == 0 {
		o.SlicesPerCLB = d.SlicesPerCLB
	}
	if o.Traversal == "" {
		o.Traversal = DefaultTraversal
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatBBA}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Params returns the device parameters.
func (o *Options) Params() device.Params {
	return device.Params{
		Channels:     o.Channels,
		IOPerTile:    o.IOPerTile,
		SlicesPerCLB: o.SlicesPerCLB,
	}
}

// fabricKey lists the options that change the generated fabric.
type fabricKey struct {
	Name      string        `json:"name"`
	Device    string        `json:"device"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Params    device.Params `json:"params"`
	Traversal string        `json:"traversal"`
}

// FabricHash hashes the options that determine the fabric.
func (o *Options) FabricHash() string {
	h, err := cache.HashValue(fabricKey{
		Name:      o.Name,
		Device:    o.Device,
		Width:     o.Width,
		Height:    o.Height,
		Params:    o.Params(),
		Traversal: o.Traversal,
	})
	if err != nil {
		panic(fmt.Sprintf("pipeline: hash options: %v", err))
	}
	return h
}

// ArtifactKeyOpts returns cache key options for one output format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format, Version: buildinfo.Short()}
	if format != FormatBBA && format != FormatJSON {
		opts.Detailed = o.Detailed
	}
	return opts
}
