package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/fabricgen/pkg/cache"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	// Verify the expected structure: $HOME/.cache/fabricgen
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", "fabricgen")
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != filepath.Join(xdg, appName) {
		t.Errorf("cacheDir() = %q, want under %q", dir, xdg)
	}
}

func TestNewCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv(redisURLEnv, "")
	c := newTestCLI()
	ctx := context.Background()

	cc, err := c.newCache(ctx, cacheSettings{disabled: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cc.(*cache.NullCache); !ok {
		t.Errorf("disabled cache = %T, want *cache.NullCache", cc)
	}

	cc, err = c.newCache(ctx, cacheSettings{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cc.(*cache.FileCache); !ok {
		t.Errorf("default cache = %T, want *cache.FileCache", cc)
	}
}

func TestNewCacheRedisFallback(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Nothing listens on port 1.
	cc, err := newTestCLI().newCache(ctx, cacheSettings{redisURL: "redis://127.0.0.1:1/0"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cc.(*cache.FileCache); !ok {
		t.Errorf("fallback cache = %T, want *cache.FileCache", cc)
	}
}

func TestCacheClearCommand(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)
	t.Setenv(redisURLEnv, "")

	fc, err := cache.NewFileCache(filepath.Join(xdg, appName))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, k := range []string{"a", "b"} {
		if err := fc.Set(ctx, k, []byte(strings.Repeat(k, 4)), time.Hour); err != nil {
			t.Fatal(err)
		}
	}

	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	if err := root.ExecuteContext(ctx); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if _, hit, _ := fc.Get(ctx, "a"); hit {
		t.Error("entry should be gone after cache clear")
	}
}
