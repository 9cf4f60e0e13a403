package parser

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument indicates the extracted text was empty or whitespace.
var ErrEmptyDocument = errors.New("document text is empty")

// DocumentError wraps a fatal parse failure with the document it came
// from, so a batch run can report and skip the single document.
type DocumentError struct {
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error { return e.Err }
