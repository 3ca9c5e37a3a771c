package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fabricgen/pkg/cache"
	"github.com/matzehuels/fabricgen/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "fabricgen"

	// redisURLEnv names the environment variable holding a shared cache URL.
	redisURLEnv = "FABRICGEN_REDIS_URL"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Runner Factory
// =============================================================================

// cacheSettings selects the artifact cache backend.
type cacheSettings struct {
	disabled bool
	redisURL string
	prefix   string
}

// newRunner creates a pipeline runner for CLI use. Cache keys are scoped by
// chip family so a shared cache lists each family's artifacts together.
func (c *CLI) newRunner(ctx context.Context, cs cacheSettings, family string) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, cs)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(nil, family+":")
	return pipeline.NewRunner(cc, keyer, c.Logger), nil
}

// newCache opens the configured backend. A redis URL wins over the local
// file cache; an unreachable redis falls back to the file cache.
func (c *CLI) newCache(ctx context.Context, cs cacheSettings) (cache.Cache, error) {
	if cs.disabled {
		return cache.NewNullCache(), nil
	}
	url := cs.redisURL
	if url == "" {
		url = os.Getenv(redisURLEnv)
	}
	if url != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{URL: url, Prefix: cs.prefix})
		if err == nil {
			c.Logger.Debug("using redis cache", "url", url)
			return rc, nil
		}
		c.Logger.Warn("redis cache unavailable, using file cache", "err", err)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/fabricgen/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
