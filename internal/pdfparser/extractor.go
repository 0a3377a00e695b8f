// Package pdfparser yields the plain text of a PDF document page by page.
//
// NativeExtractor and TabulaExtractor read the document in pure Go,
// PdftotextExtractor shells out to poppler's pdftotext. Callers depend only on
// PDFExtractor so the pipeline can be tested with MockPDFExtractor.
package pdfparser

import (
	"fmt"
	"strings"

	"fjacquet/acholi-books/internal/logging"
)

// Backend names accepted by NewExtractor.
const (
	BackendNative    = "native"
	BackendPdftotext = "pdftotext"
	BackendTabula    = "tabula"
)

// Page is the extracted plain text of one page. Number is 1-based.
type Page struct {
	Number int
	Text   string
}

// PageRange selects an inclusive, 1-based range of pages.
// A zero bound means unbounded on that side.
type PageRange struct {
	First int
	Last  int
}

// Contains reports whether page number n falls inside the range.
func (r PageRange) Contains(n int) bool {
	if r.First > 0 && n < r.First {
		return false
	}
	if r.Last > 0 && n > r.Last {
		return false
	}
	return true
}

// Bounds clamps the range to a document of numPages pages. ok is false when
// no page of the document falls inside the range.
func (r PageRange) Bounds(numPages int) (first, last int, ok bool) {
	first, last = 1, numPages
	if r.First > 1 {
		first = r.First
	}
	if r.Last > 0 && r.Last < last {
		last = r.Last
	}
	return first, last, first <= last
}

// PDFExtractor extracts per-page plain text from a PDF file.
type PDFExtractor interface {
	// ExtractPages returns the pages of pdfPath inside rng, in document order.
	// Failures to open or decode the document are *extracterror.DocumentError.
	ExtractPages(pdfPath string, rng PageRange) ([]Page, error)
}

// NewExtractor returns the extractor for a backend name. pdftotextPath is
// only used by the pdftotext backend; an empty value means "pdftotext" on PATH.
func NewExtractor(backend, pdftotextPath string, logger logging.Logger) (PDFExtractor, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendNative:
		return NewNativeExtractor(logger), nil
	case BackendPdftotext:
		return NewPdftotextExtractor(pdftotextPath, logger), nil
	case BackendTabula:
		return NewTabulaExtractor(logger), nil
	default:
		return nil, fmt.Errorf("unknown PDF backend %q (must be %q, %q or %q)", backend, BackendNative, BackendPdftotext, BackendTabula)
	}
}

// MockPDFExtractor implements PDFExtractor for testing purposes.
// It returns predefined pages instead of reading the file.
type MockPDFExtractor struct {
	MockPages []string
	MockErr   error
	Calls     []string
}

// NewMockPDFExtractor creates a MockPDFExtractor whose pages are numbered from 1.
func NewMockPDFExtractor(mockPages []string, mockErr error) *MockPDFExtractor {
	return &MockPDFExtractor{
		MockPages: mockPages,
		MockErr:   mockErr,
	}
}

// ExtractPages returns the predefined pages inside rng, or the predefined error.
func (e *MockPDFExtractor) ExtractPages(pdfPath string, rng PageRange) ([]Page, error) {
	e.Calls = append(e.Calls, pdfPath)
	if e.MockErr != nil {
		return nil, e.MockErr
	}
	var pages []Page
	for i, text := range e.MockPages {
		if rng.Contains(i + 1) {
			pages = append(pages, Page{Number: i + 1, Text: text})
		}
	}
	return pages, nil
}
