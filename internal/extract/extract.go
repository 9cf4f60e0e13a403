// Package extract turns ballot documents into plain text for the
// parser. PDF inputs are validated with pdfcpu before text extraction;
// plain .txt inputs pass through, which lets upstream extraction tools
// (and tests) hand the parser pre-extracted text.
//
// The extraction backend is configured for top-to-bottom, left-to-right
// reading order; the parser relies on that order and cannot enforce it.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Text extracts the full text of one ballot document.
func Text(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return pdfText(path)
	case ".txt":
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return string(raw), nil
	default:
		return "", fmt.Errorf("unsupported document type %q", filepath.Ext(path))
	}
}

// TextWithRetry extracts text from a document that may still be in
// flight: watch mode hands us paths on create events, often before the
// writer has finished the file.
func TextWithRetry(ctx context.Context, path string) (string, error) {
	var text string
	err := retry.Do(
		func() error {
			var err error
			text, err = Text(path)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(5),
		retry.Delay(200*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	return text, err
}

func pdfText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	pageCount, err := api.PageCount(f, nil)
	f.Close()
	if err != nil {
		return "", fmt.Errorf("invalid PDF: %w", err)
	}
	if pageCount == 0 {
		return "", fmt.Errorf("PDF has no pages")
	}

	rf, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}
	defer rf.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}
	return buf.String(), nil
}
