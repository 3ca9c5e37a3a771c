// Package cli implements the fabricgen command-line interface.
//
// The commands generate a fabric from command-line flags and an optional
// TOML config file and then either write the chip database artifacts or
// inspect the result in the terminal. The CLI is built using cobra and logs
// through charmbracelet/log.
//
// # Commands
//
//   - generate: Write the chip database (bba, json) and diagrams (dot, svg, png, pdf)
//   - grid: Print the coloured tile grid
//   - stats: Print a per-tile-type resource table
//   - explore: Browse the grid interactively
//   - cache: Manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Wrote 3 artifacts (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
