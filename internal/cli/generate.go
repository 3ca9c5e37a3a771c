package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fabricgen/pkg/config"
	"github.com/matzehuels/fabricgen/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	fabric   fabricFlags
	output   string // output directory
	formats  string // comma-separated output formats
	detailed bool   // label diagram edges with wire names
	noCache  bool
	refresh  bool
	redisURL string
	noGrid   bool
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the chip database and diagrams",
		Long: `Generate builds the fabric and writes one artifact per requested format
into the output directory, named after the device (e.g. ex1.bba).

Formats: bba (default), json, dot, svg, png, pdf. PNG and PDF need
rsvg-convert on the PATH.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, &opts)
		},
	}

	opts.fabric.register(cmd.Flags())
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: current directory)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): bba (default), json, dot, svg, png, pdf (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label diagram edges with wire names")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "regenerate artifacts even if cached")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", "", "shared redis cache URL (or $"+redisURLEnv+")")
	cmd.Flags().BoolVar(&opts.noGrid, "no-grid", false, "do not print the tile grid")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, g *generateOpts) error {
	ctx := cmd.Context()

	cfg, err := g.fabric.loadConfig()
	if err != nil {
		return err
	}
	opts := g.fabric.options(cmd, cfg)
	if cmd.Flags().Changed("format") || len(opts.Formats) == 0 {
		opts.Formats = pipeline.ParseFormats(g.formats)
	}
	if cmd.Flags().Changed("detailed") {
		opts.Detailed = g.detailed
	}
	opts.Refresh = g.refresh
	opts.Logger = c.Logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, g.cacheSettings(cmd, cfg), opts.Name)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Generating %dx%d fabric...", opts.Width, opts.Height))
	spinner.Start()
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()

	dir := g.outputDir(cfg)
	paths, err := writeArtifacts(dir, opts, result.Artifacts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d artifacts", len(paths)))

	if !g.noGrid {
		fmt.Print(renderGrid(result.Chip.Grid, true))
		printNewline()
	}
	printSuccess("Generated %s %s (%dx%d)", opts.Name, opts.Device, opts.Width, opts.Height)
	printStats(result.Stats, result.CacheInfo.EmitHit)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// cacheSettings merges the cache flags over the config file.
func (g *generateOpts) cacheSettings(cmd *cobra.Command, cfg *config.Config) cacheSettings {
	var cs cacheSettings
	if cfg != nil {
		cs = cacheSettings{disabled: cfg.Cache.Disabled, redisURL: cfg.Cache.RedisURL, prefix: cfg.Cache.Prefix}
	}
	if cmd.Flags().Changed("no-cache") {
		cs.disabled = g.noCache
	}
	if g.redisURL != "" {
		cs.redisURL = g.redisURL
	}
	return cs
}

func (g *generateOpts) outputDir(cfg *config.Config) string {
	switch {
	case g.output != "":
		return g.output
	case cfg != nil && cfg.Output.Dir != "":
		return cfg.Output.Dir
	}
	return "."
}

// artifactName returns the file name for one artifact, e.g. "ex1.bba".
func artifactName(device, format string) string {
	return strings.ToLower(device) + "." + format
}

// writeArtifacts writes every artifact into dir in the order of
// opts.Formats and returns the written paths.
func writeArtifacts(dir string, opts pipeline.Options, artifacts map[string][]byte) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	paths := make([]string, 0, len(opts.Formats))
	for _, format := range opts.Formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := filepath.Join(dir, artifactName(opts.Device, format))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

