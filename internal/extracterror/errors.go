// Package extracterror defines the typed failures of the extraction pipeline.
package extracterror

import "fmt"

// DocumentError represents an input document that is missing, unreadable,
// or not a valid PDF.
type DocumentError struct {
	FilePath string
	Reason   string
	Err      error
}

func (e *DocumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot read document '%s': %s: %v", e.FilePath, e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot read document '%s': %s", e.FilePath, e.Reason)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// WriteError represents an output path that could not be written.
type WriteError struct {
	FilePath string
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write output '%s': %v", e.FilePath, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// PageRangeError represents an inverted or negative page range.
type PageRangeError struct {
	FirstPage int
	LastPage  int
}

func (e *PageRangeError) Error() string {
	return fmt.Sprintf("invalid page range %d-%d", e.FirstPage, e.LastPage)
}
