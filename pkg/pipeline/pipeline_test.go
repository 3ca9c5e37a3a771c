package pipeline

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fabricgen/pkg/cache"
	"github.com/matzehuels/fabricgen/pkg/device"
	errs "github.com/matzehuels/fabricgen/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"bba", false},
		{"json", false},
		{"dot", false},
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"invalid", true},
		{"BBA", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errs.Is(err, errs.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %v, want invalid format", tt.format, err)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"bba", "svg"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"bba", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"bba"}},
		{"json", []string{"json"}},
		{"bba, JSON ,dot", []string{"bba", "json", "dot"}},
		{"bba,bba,,json", []string{"bba", "json"}},
		{" , ", []string{"bba"}},
	}

	for _, tt := range tests {
		if got := ParseFormats(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("ParseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Zero options should validate: %v", err)
	}

	if opts.Name != DefaultName || opts.Device != DefaultDevice {
		t.Errorf("identity = %q/%q, want %q/%q", opts.Name, opts.Device, DefaultName, DefaultDevice)
	}
	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", opts.Width, opts.Height, DefaultWidth, DefaultHeight)
	}
	if opts.Params() != device.DefaultParams() {
		t.Errorf("Params() = %+v, want %+v", opts.Params(), device.DefaultParams())
	}
	if opts.Traversal != DefaultTraversal {
		t.Errorf("Traversal = %q, want %q", opts.Traversal, DefaultTraversal)
	}
	if !slices.Equal(opts.Formats, []string{FormatBBA}) {
		t.Errorf("Formats = %v, want [bba]", opts.Formats)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discarding logger")
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errs.Code
	}{
		{"even width", Options{Width: 8}, errs.ErrCodeInvalidDimensions},
		{"small height", Options{Height: 3}, errs.ErrCodeInvalidDimensions},
		{"negative width", Options{Width: -7}, errs.ErrCodeInvalidDimensions},
		{"negative channels", Options{Channels: -1}, errs.ErrCodeInvalidInput},
		{"too many slices", Options{SlicesPerCLB: 5000}, errs.ErrCodeInvalidInput},
		{"bad traversal", Options{Traversal: "diagonal"}, errs.ErrCodeInvalidInput},
		{"bad format", Options{Formats: []string{"gds"}}, errs.ErrCodeInvalidFormat},
		{"control char name", Options{Name: "a\nb"}, errs.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errs.Is(err, tt.code) {
				t.Errorf("error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestFabricHash(t *testing.T) {
	base := Options{}
	base.SetDefaults()
	h := base.FabricHash()

	if again := base.FabricHash(); again != h {
		t.Errorf("FabricHash not stable: %s != %s", h, again)
	}

	changed := []func(*Options){
		func(o *Options) { o.Width = 9 },
		func(o *Options) { o.Channels = 2 },
		func(o *Options) { o.SlicesPerCLB = 1 },
		func(o *Options) { o.Traversal = "row" },
		func(o *Options) { o.Device = "EX2" },
	}
	for i, change := range changed {
		o := base
		change(&o)
		if o.FabricHash() == h {
			t.Errorf("change %d did not alter the fabric hash", i)
		}
	}

	// Output options do not change the fabric.
	o := base
	o.Formats = []string{"json", "svg"}
	o.Detailed = true
	o.Refresh = true
	if o.FabricHash() != h {
		t.Error("output options should not alter the fabric hash")
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Detailed: true}
	if got := opts.ArtifactKeyOpts(FormatBBA); got.Detailed {
		t.Error("Detailed should not key archive formats")
	}
	if got := opts.ArtifactKeyOpts(FormatSVG); !got.Detailed || got.Format != FormatSVG {
		t.Errorf("ArtifactKeyOpts(svg) = %+v", got)
	}
}

func TestGenerate(t *testing.T) {
	chip, res, err := Generate(Options{Channels: 2})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if chip.Grid.Width() != 7 || chip.Grid.Height() != 7 {
		t.Errorf("grid = %dx%d, want 7x7", chip.Grid.Width(), chip.Grid.Height())
	}
	if len(res.Nodes) != 32 || len(res.Corners) != 8 {
		t.Errorf("nodes = %d+%d, want 32+8", len(res.Nodes), len(res.Corners))
	}
	if chip.NodeCount() != 40 {
		t.Errorf("chip nodes = %d, want 40", chip.NodeCount())
	}

	again, _, err := Generate(Options{Channels: 2})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if chip.ID != again.ID {
		t.Errorf("chip ID not stable: %s != %s", chip.ID, again.ID)
	}
	other, _, _ := Generate(Options{Channels: 3})
	if other.ID == chip.ID {
		t.Error("different parameters should give a different chip ID")
	}
}

func TestGenerateInvalid(t *testing.T) {
	if _, _, err := Generate(Options{Width: 6}); err == nil {
		t.Error("even width should fail")
	}
}

func TestEmit(t *testing.T) {
	opts := Options{Formats: []string{FormatBBA, FormatJSON, FormatDOT}}
	chip, _, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	artifacts, err := Emit(chip, opts)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	for _, f := range opts.Formats {
		if len(artifacts[f]) == 0 {
			t.Errorf("artifact %s is empty", f)
		}
	}
	if !bytes.Contains(artifacts[FormatBBA], []byte("label chip_info")) {
		t.Error("bba artifact missing chip_info")
	}
	if !bytes.HasPrefix(artifacts[FormatDOT], []byte("graph fabric")) {
		t.Error("dot artifact should be an undirected graph")
	}
}

func TestRunnerExecute(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{Formats: []string{FormatBBA, FormatJSON}})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	s := result.Stats
	if s.TileTypes != 6 {
		t.Errorf("TileTypes = %d, want 6", s.TileTypes)
	}
	if s.Nodes != 16 || s.CornerNodes != 4 {
		t.Errorf("nodes = %d+%d, want 16+4", s.Nodes, s.CornerNodes)
	}
	wantTiles := 49 - result.Chip.Grid.Count(device.TileNull)
	if s.Tiles != wantTiles {
		t.Errorf("Tiles = %d, want %d", s.Tiles, wantTiles)
	}
	if s.Wires == 0 || s.Pips == 0 || s.Bels == 0 {
		t.Errorf("empty totals: %+v", s)
	}
	if len(result.Artifacts) != 2 {
		t.Errorf("got %d artifacts, want 2", len(result.Artifacts))
	}
	if result.CacheInfo.ArtifactHits != 0 || result.CacheInfo.EmitHit {
		t.Errorf("null cache should never hit: %+v", result.CacheInfo)
	}
	if result.FabricHash == "" {
		t.Error("FabricHash should be set")
	}
}

func TestRunnerCachesArtifacts(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(fc, nil, nil)
	defer runner.Close()
	ctx := context.Background()
	opts := Options{Formats: []string{FormatBBA, FormatJSON}}

	first, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.ArtifactHits != 0 {
		t.Errorf("first run hits = %d, want 0", first.CacheInfo.ArtifactHits)
	}

	second, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if second.CacheInfo.ArtifactHits != 2 || !second.CacheInfo.EmitHit {
		t.Errorf("second run cache info = %+v, want 2 hits", second.CacheInfo)
	}
	for f, data := range first.Artifacts {
		if !bytes.Equal(data, second.Artifacts[f]) {
			t.Errorf("cached %s artifact differs", f)
		}
	}

	opts.Refresh = true
	third, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if third.CacheInfo.ArtifactHits != 0 {
		t.Errorf("refresh hits = %d, want 0", third.CacheInfo.ArtifactHits)
	}
}

// failingCache reports an error on every read and write.
type failingCache struct{}

func (failingCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("backend down")
}

func (failingCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("backend down")
}

func (failingCache) Delete(context.Context, string) error { return nil }
func (failingCache) Close() error                         { return nil }

func TestRunnerLogsCacheFailures(t *testing.T) {
	var buf bytes.Buffer
	runner := NewRunner(failingCache{}, nil, log.New(&buf))

	tests := []struct {
		name string
		opts Options
	}{
		{"unvalidated", Options{}},
		{"validated", func() Options {
			o := Options{}
			if err := o.ValidateAndSetDefaults(); err != nil {
				t.Fatalf("ValidateAndSetDefaults: %v", err)
			}
			return o
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			result, err := runner.Execute(context.Background(), tt.opts)
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if len(result.Artifacts) != 1 {
				t.Errorf("got %d artifacts, want 1", len(result.Artifacts))
			}
			out := buf.String()
			for _, want := range []string{"cache read failed", "cache write failed", "backend down"} {
				if !strings.Contains(out, want) {
					t.Errorf("log output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestRunnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewRunner(nil, nil, nil).Execute(ctx, Options{}); err == nil {
		t.Error("cancelled context should fail")
	}
}
