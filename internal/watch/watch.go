package watch

import (
	"context"
	"os"
	"time"

	"github.com/stratumcad/ifcgen/core/export"
	"github.com/stratumcad/ifcgen/core/model"
	"github.com/stratumcad/ifcgen/internal/logging"
)

// Injectable functions for testing
var (
	osStatWatch      = os.Stat
	loadDocumentFunc = model.LoadDocument
	generateFunc     = export.Generate
	writeFileFunc    = export.WriteFile
)

// DefaultInterval is the poll interval when none is configured.
const DefaultInterval = 500 * time.Millisecond

// Watcher polls one drawing document and re-exports it on change. The
// debounce policy lives here, outside the generator: the generator is a
// pure function and knows nothing about files or timing.
type Watcher struct {
	// Input is the drawing document path to poll.
	Input string

	// Output is the destination IFC path.
	Output string

	// Interval is the poll interval; DefaultInterval when zero.
	Interval time.Duration

	// Options configure the generator.
	Options export.Options

	// WriteOptions configure the output encoding.
	WriteOptions export.WriteOptions

	// Hub, when set, receives an ExportMessage after every export.
	Hub *Hub

	lastModTime time.Time
}

// Run polls until the context is canceled. The first poll always
// exports, so a fresh watch session produces an output file immediately.
func (w *Watcher) Run(ctx context.Context) error {
	interval := w.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logging.WatchEvent("started", w.Input, "interval", interval.String())
	w.poll()

	for {
		select {
		case <-ctx.Done():
			logging.WatchEvent("stopped", w.Input)
			return ctx.Err()
		case <-ticker.C:
			w.poll()
		}
	}
}

// poll re-exports when the input's modification time moved forward.
func (w *Watcher) poll() {
	info, err := osStatWatch(w.Input)
	if err != nil {
		logging.Warn("input not readable", "path", w.Input, "error", err)
		return
	}
	if !info.ModTime().After(w.lastModTime) {
		return
	}
	w.lastModTime = info.ModTime()
	w.export()
}

func (w *Watcher) export() {
	started := time.Now()

	doc, err := loadDocumentFunc(w.Input)
	if err != nil {
		w.fail("failed to load document", err)
		return
	}

	result, err := generateFunc(doc, w.Options)
	if err != nil {
		w.fail("generation failed", err)
		return
	}

	if err := writeFileFunc(w.Output, result, w.WriteOptions); err != nil {
		w.fail("failed to write output", err)
		return
	}

	logging.ExportEvent(w.Output, result.EntityCount, result.FileSize, time.Since(started))
	if w.Hub != nil {
		w.Hub.Broadcast(ExportMessage{
			Type:        "export",
			Path:        w.Output,
			EntityCount: result.EntityCount,
			FileSize:    result.FileSize,
		})
	}
}

func (w *Watcher) fail(msg string, err error) {
	logging.Error(msg, "path", w.Input, "error", err)
	if w.Hub != nil {
		w.Hub.Broadcast(ExportMessage{
			Type:    "error",
			Path:    w.Output,
			Message: err.Error(),
		})
	}
}
