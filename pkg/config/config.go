// Package config loads fabricgen settings from a TOML file.
//
// A config file mirrors the command-line flags:
//
//	[fabric]
//	name = "test"
//	device = "EX1"
//	width = 9
//	height = 9
//	channels = 2
//	io_per_tile = 1
//	slices_per_clb = 4
//	traversal = "column"
//
//	[output]
//	formats = ["bba", "json"]
//	detailed = false
//	dir = "out"
//
//	[cache]
//	disabled = false
//	redis_url = "redis://localhost:6379/0"
//	prefix = "fabricgen:"
//
// Fields left out of the file keep the value they already have, so a file
// only needs to name what it changes.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/fabricgen/pkg/errors"
	"github.com/matzehuels/fabricgen/pkg/pipeline"
)

// Config is the parsed contents of a config file.
type Config struct {
	Fabric Fabric `toml:"fabric"`
	Output Output `toml:"output"`
	Cache  Cache  `toml:"cache"`
}

// Fabric holds generation parameters. Pointer fields distinguish "unset"
// from zero.
type Fabric struct {
	Name         *string `toml:"name"`
	Device       *string `toml:"device"`
	Width        *int    `toml:"width"`
	Height       *int    `toml:"height"`
	Channels     *int    `toml:"channels"`
	IOPerTile    *int    `toml:"io_per_tile"`
	SlicesPerCLB *int    `toml:"slices_per_clb"`
	Traversal    *string `toml:"traversal"`
}

// Output holds artifact settings.
type Output struct {
	Formats  []string `toml:"formats"`
	Detailed *bool    `toml:"detailed"`
	Dir      string   `toml:"dir"`
}

// Cache holds cache backend settings.
type Cache struct {
	Disabled bool   `toml:"disabled"`
	RedisURL string `toml:"redis_url"`
	Prefix   string `toml:"prefix"`
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}

// Parse decodes TOML data. Unknown keys are rejected so typos do not pass
// silently.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "invalid TOML")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errs.New(errs.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	return &cfg, nil
}

// Apply overlays the settings present in the file onto opts.
func (c *Config) Apply(opts *pipeline.Options) {
	f := c.Fabric
	setString(&opts.Name, f.Name)
	setString(&opts.Device, f.Device)
	setInt(&opts.Width, f.Width)
	setInt(&opts.Height, f.Height)
	setInt(&opts.Channels, f.Channels)
	setInt(&opts.IOPerTile, f.IOPerTile)
	setInt(&opts.SlicesPerCLB, f.SlicesPerCLB)
	setString(&opts.Traversal, f.Traversal)

	if len(c.Output.Formats) > 0 {
		opts.Formats = append([]string(nil), c.Output.Formats...)
	}
	if c.Output.Detailed != nil {
		opts.Detailed = *c.Output.Detailed
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
