// Package watch processes ballot documents as they appear in a
// directory.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/washingtonalto/ballotscan/internal/batch"
)

// Config configures a Watcher.
type Config struct {
	Processor *batch.Processor
	InputDir  string
	OutputDir string
	Logger    *slog.Logger // optional
}

// Watcher feeds newly created documents to a batch Processor.
type Watcher struct {
	proc     *batch.Processor
	inputDir string
	logger   *slog.Logger

	// outputDir may be swapped by a config reload while Run is live.
	mu        sync.RWMutex
	outputDir string
}

// New creates a Watcher.
func New(cfg Config) *Watcher {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		proc:      cfg.Processor,
		inputDir:  cfg.InputDir,
		outputDir: cfg.OutputDir,
		logger:    logger,
	}
}

// SetOutputDir redirects subsequent records to dir. Safe to call while
// Run is active; documents already being processed keep the old dir.
func (w *Watcher) SetOutputDir(dir string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if dir != "" && dir != w.outputDir {
		w.logger.Info("output directory changed", "dir", dir)
		w.outputDir = dir
	}
}

func (w *Watcher) currentOutputDir() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.outputDir
}

// Run blocks until ctx is cancelled, processing each document that
// appears in the input directory. Extraction retries while a file
// is still being written; a document that still fails is logged and
// skipped, matching batch semantics.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.inputDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.inputDir, err)
	}
	w.logger.Info("watching for ballots", "dir", w.inputDir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			// Moves into the directory surface as Create for the new name.
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !batch.IsDocument(event.Name) {
				continue
			}

			file := filepath.Base(event.Name)
			if err := w.proc.ProcessFile(ctx, event.Name, w.currentOutputDir()); err != nil {
				w.logger.Error("document failed", "file", file, "error", err)
				continue
			}
			w.logger.Info("document processed", "file", file)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", "error", err)
		}
	}
}
