package device

import (
	errs "github.com/matzehuels/fabricgen/pkg/errors"
)

// Tile type names.
const (
	TileNull    = "NULL"
	TileCorner  = "COR"
	TileIO      = "IOB"
	TileSwitch  = "QSB"
	TileLogic   = "CLB"
	TileChannel = "QCB"
)

// TileTypes lists the tile type names in definition order.
var TileTypes = []string{TileNull, TileCorner, TileIO, TileSwitch, TileLogic, TileChannel}

// Default fabric parameters.
const (
	DefaultChannels     = 1
	DefaultIOPerTile    = 1
	DefaultSlicesPerCLB = 4
)

// Params are the per-run fabric parameters.
type Params struct {
	// Channels is the number of parallel routing tracks per direction.
	Channels int `json:"channels" toml:"channels"`
	// IOPerTile is the number of IO buffers per IO tile.
	IOPerTile int `json:"io_per_tile" toml:"io_per_tile"`
	// SlicesPerCLB is the number of slice groups per logic tile.
	SlicesPerCLB int `json:"slices_per_clb" toml:"slices_per_clb"`
}

// DefaultParams returns the parameters of the reference device.
func DefaultParams() Params {
	return Params{
		Channels:     DefaultChannels,
		IOPerTile:    DefaultIOPerTile,
		SlicesPerCLB: DefaultSlicesPerCLB,
	}
}

// Validate checks that every count is positive.
func (p Params) Validate() error {
	if err := errs.ValidateCount("channels", p.Channels); err != nil {
		return err
	}
	if err := errs.ValidateCount("io_per_tile", p.IOPerTile); err != nil {
		return err
	}
	return errs.ValidateCount("slices_per_clb", p.SlicesPerCLB)
}
