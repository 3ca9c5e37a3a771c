package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/fabricgen/pkg/config"
	"github.com/matzehuels/fabricgen/pkg/device"
	"github.com/matzehuels/fabricgen/pkg/pipeline"
)

// fabricFlags holds the flags shared by every command that builds a fabric.
// Values are layered as defaults, then the config file, then flags the
// user actually set.
type fabricFlags struct {
	config    string
	name      string
	device    string
	width     int
	height    int
	channels  int
	ioPerTile int
	slices    int
	traversal string
}

func (f *fabricFlags) register(fs *pflag.FlagSet) {
	d := device.DefaultParams()
	fs.StringVarP(&f.config, "config", "c", "", "TOML config file")
	fs.StringVar(&f.name, "name", pipeline.DefaultName, "chip family name")
	fs.StringVar(&f.device, "device", pipeline.DefaultDevice, "device name")
	fs.IntVar(&f.width, "width", pipeline.DefaultWidth, "grid columns (odd, at least 5)")
	fs.IntVar(&f.height, "height", pipeline.DefaultHeight, "grid rows (odd, at least 5)")
	fs.IntVar(&f.channels, "channels", d.Channels, "routing channels per switch side")
	fs.IntVar(&f.ioPerTile, "io", d.IOPerTile, "IO blocks per IO tile")
	fs.IntVar(&f.slices, "slices", d.SlicesPerCLB, "slices per logic tile")
	fs.StringVar(&f.traversal, "traversal", pipeline.DefaultTraversal, "stitching order: column, row")
}

// options resolves the flags into pipeline options. cfg is the loaded
// config file, or nil. The result is not validated yet.
func (f *fabricFlags) options(cmd *cobra.Command, cfg *config.Config) pipeline.Options {
	var opts pipeline.Options
	if cfg != nil {
		cfg.Apply(&opts)
	}

	fs := cmd.Flags()
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("name", func() { opts.Name = f.name })
	set("device", func() { opts.Device = f.device })
	set("width", func() { opts.Width = f.width })
	set("height", func() { opts.Height = f.height })
	set("channels", func() { opts.Channels = f.channels })
	set("io", func() { opts.IOPerTile = f.ioPerTile })
	set("slices", func() { opts.SlicesPerCLB = f.slices })
	set("traversal", func() { opts.Traversal = f.traversal })
	return opts
}

// resolve loads the config file and returns validated options.
func (f *fabricFlags) resolve(cmd *cobra.Command) (pipeline.Options, *config.Config, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return pipeline.Options{}, nil, err
	}
	opts := f.options(cmd, cfg)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, cfg, err
	}
	return opts, cfg, nil
}

// loadConfig reads the --config file, if any.
func (f *fabricFlags) loadConfig() (*config.Config, error) {
	if f.config == "" {
		return nil, nil
	}
	return config.Load(f.config)
}
