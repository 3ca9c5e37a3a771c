package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fabricgen/pkg/cache"
	"github.com/matzehuels/fabricgen/pkg/device"
	"github.com/matzehuels/fabricgen/pkg/fabric"
	"github.com/matzehuels/fabricgen/pkg/observability"
	"github.com/matzehuels/fabricgen/pkg/stitch"
)

// Runner executes the pipeline with artifact caching.
//
// The Runner is stateless except for the cache and logger, so one Runner
// may serve several goroutines with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer means the default keyer, a nil
// cache disables caching and a nil logger means the default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// stage runs fn between the start and completion hooks and returns its
// duration.
func stage(ctx context.Context, name string, fn func() error) (time.Duration, error) {
	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, name)
	start := time.Now()
	err := fn()
	d := time.Since(start)
	hooks.OnStageComplete(ctx, name, d, err)
	return d, err
}

// Execute runs the complete build → layout → stitch → emit pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{FabricHash: opts.FabricHash()}

	// Stage 1: Build
	var lib *fabric.Library
	d, err := stage(ctx, observability.StageBuild, func() (err error) {
		lib, err = Build(opts)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Stats.BuildTime = d
	r.Logger.Info("defined tile types",
		"types", lib.Len(),
		"duration", d)

	// Stage 2: Layout
	var g *fabric.Grid
	d, err = stage(ctx, observability.StageLayout, func() (err error) {
		g, err = Layout(opts)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Stats.LayoutTime = d
	r.Logger.Info("laid out grid",
		"width", g.Width(),
		"height", g.Height(),
		"duration", d)
	r.Logger.Debug("grid\n" + g.Format(device.TileNull))

	// Stage 3: Stitch
	var res *stitch.Result
	d, err = stage(ctx, observability.StageStitch, func() (err error) {
		res, err = Stitch(g, lib, opts)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("stitch: %w", err)
	}
	result.Stitch = res
	result.Chip = NewChip(opts, lib, g, res)
	r.Logger.Info("stitched nodes",
		"nodes", len(res.Nodes),
		"corners", len(res.Corners),
		"duration", d)

	stats := Summarize(result.Chip, res)
	stats.BuildTime = result.Stats.BuildTime
	stats.LayoutTime = result.Stats.LayoutTime
	stats.StitchTime = d
	result.Stats = stats

	// Stage 4: Emit
	var hits int
	d, err = stage(ctx, observability.StageEmit, func() (err error) {
		result.Artifacts, hits, err = r.EmitWithCacheInfo(ctx, result.Chip, result.FabricHash, opts)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("emit: %w", err)
	}
	result.Stats.EmitTime = d
	result.CacheInfo.ArtifactHits = hits
	result.CacheInfo.EmitHit = hits == len(opts.Formats)
	r.Logger.Info("emitted artifacts",
		"formats", opts.Formats,
		"cached", hits,
		"duration", d)

	return result, nil
}

// EmitWithCacheInfo serializes chip in every requested format, serving
// artifacts from the cache where possible. It returns the number of cache
// hits. Cache failures are logged and treated as misses.
func (r *Runner) EmitWithCacheInfo(ctx context.Context, chip *fabric.Chip, fabricHash string, opts Options) (map[string][]byte, int, error) {
	r.applyLogger(&opts)
	hooks := observability.Cache()
	artifacts := make(map[string][]byte, len(opts.Formats))
	hits := 0

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(fabricHash, opts.ArtifactKeyOpts(format))

		if !opts.Refresh {
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				r.Logger.Warn("cache read failed", "format", format, "err", err)
			}
			if err == nil && hit {
				hooks.OnCacheHit(ctx, "artifact")
				observability.Pipeline().OnArtifact(ctx, format, len(data), true)
				artifacts[format] = data
				hits++
				continue
			}
			hooks.OnCacheMiss(ctx, "artifact")
		}

		data, err := emitOne(chip, format, opts)
		if err != nil {
			return nil, hits, err
		}
		artifacts[format] = data
		observability.Pipeline().OnArtifact(ctx, format, len(data), false)

		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		hooks.OnCacheSet(ctx, "artifact", len(data))
	}
	return artifacts, hits, nil
}

// Emit is a convenience wrapper that calls EmitWithCacheInfo and discards
// the hit count.
func (r *Runner) Emit(ctx context.Context, chip *fabric.Chip, fabricHash string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.EmitWithCacheInfo(ctx, chip, fabricHash, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
