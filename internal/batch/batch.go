// Package batch processes a directory of ballot documents, writing one
// JSON record per input.
//
// Documents are independent: the parser is a pure function and the
// fixed reference positions are read-only, so a bounded pool of
// workers parses documents in parallel with no synchronization beyond
// result collection. One malformed document fails alone; the run
// continues.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/washingtonalto/ballotscan/internal/extract"
	"github.com/washingtonalto/ballotscan/internal/output"
	"github.com/washingtonalto/ballotscan/internal/parser"
)

// Config configures a Processor.
type Config struct {
	Parser  *parser.Parser
	Workers int          // 0 means one per CPU
	Logger  *slog.Logger // optional
}

// Processor runs ballot documents through extraction and parsing.
type Processor struct {
	parser  *parser.Parser
	workers int
	logger  *slog.Logger
}

// Failure records one document that could not be processed.
type Failure struct {
	Path string `json:"path"`
	Err  string `json:"error"`
}

// Summary reports the outcome of one batch run. Skipped counts input
// entries that are not ballot documents (wrong extension, subdirs).
type Summary struct {
	RunID     string    `json:"run_id"`
	Processed int       `json:"processed"`
	Failed    int       `json:"failed"`
	Skipped   int       `json:"skipped"`
	Failures  []Failure `json:"failures,omitempty"`
}

// New creates a Processor.
func New(cfg Config) *Processor {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &Processor{
		parser:  cfg.Parser,
		workers: workers,
		logger:  logger,
	}
}

// Run processes every ballot document in inputDir and writes one
// <stem>.json per document into outputDir. Per-document failures are
// logged, counted, and skipped; Run itself fails only on setup errors
// or context cancellation.
func (p *Processor) Run(ctx context.Context, inputDir, outputDir string) (*Summary, error) {
	paths, skipped, err := listDocuments(inputDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	summary := &Summary{RunID: uuid.New().String(), Skipped: skipped}
	log := p.logger.With("run_id", summary.RunID)
	log.Info("starting batch", "documents", len(paths), "skipped", skipped, "workers", p.workers)

	jobs := make(chan string)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				err := p.processOne(path, outputDir, extract.Text)

				mu.Lock()
				if err != nil {
					summary.Failed++
					summary.Failures = append(summary.Failures, Failure{Path: path, Err: err.Error()})
				} else {
					summary.Processed++
				}
				done := summary.Processed + summary.Failed
				mu.Unlock()

				if err != nil {
					log.Error("document failed", "file", filepath.Base(path), "error", err)
				} else {
					log.Debug("document processed", "file", filepath.Base(path), "done", done, "of", len(paths))
				}
			}
		}()
	}

feed:
	for _, path := range paths {
		select {
		case jobs <- path:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return summary, err
	}

	sort.Slice(summary.Failures, func(i, j int) bool {
		return summary.Failures[i].Path < summary.Failures[j].Path
	})
	log.Info("batch complete", "processed", summary.Processed, "failed", summary.Failed, "skipped", summary.Skipped)
	return summary, nil
}

// ProcessFile processes a single document, retrying extraction while
// the file may still be written. Used by watch mode.
func (p *Processor) ProcessFile(ctx context.Context, path, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return p.processOne(path, outputDir, func(path string) (string, error) {
		return extract.TextWithRetry(ctx, path)
	})
}

func (p *Processor) processOne(path, outputDir string, textFn func(string) (string, error)) error {
	text, err := textFn(path)
	if err != nil {
		return err
	}

	record, err := p.parser.Parse(path, text)
	if err != nil {
		return err
	}

	outPath := filepath.Join(outputDir, stem(path)+".json")
	return output.WriteJSONFile(outPath, record)
}

// listDocuments returns the processable documents in dir, sorted,
// along with the count of entries that were not ballot documents.
func listDocuments(dir string) ([]string, int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read input directory: %w", err)
	}

	var paths []string
	skipped := 0
	for _, entry := range entries {
		if !entry.IsDir() && IsDocument(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
			continue
		}
		skipped++
	}
	sort.Strings(paths)
	return paths, skipped, nil
}

// IsDocument reports whether name has a processable extension.
func IsDocument(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".txt":
		return true
	default:
		return false
	}
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
