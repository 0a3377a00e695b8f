package books

import (
	"errors"
	"os"
	"time"

	"fjacquet/acholi-books/internal/extracterror"
	"fjacquet/acholi-books/internal/logging"
	"fjacquet/acholi-books/internal/pdfparser"
)

// Result is the outcome of extracting one document.
type Result struct {
	// Books holds the unique headings in ascending order; empty, never nil.
	Books []string
	// Pages is the number of pages read.
	Pages int
	// PagesWithText is the number of pages that produced any text.
	PagesWithText int
}

// Count returns the number of unique headings.
func (r Result) Count() int {
	return len(r.Books)
}

// Extractor runs heading extraction over a PDF using a page source.
type Extractor struct {
	pdf    pdfparser.PDFExtractor
	pages  pdfparser.PageRange
	logger logging.Logger
}

// NewExtractor creates an Extractor reading pages in rng from pdf.
func NewExtractor(pdf pdfparser.PDFExtractor, rng pdfparser.PageRange, logger logging.Logger) (*Extractor, error) {
	if pdf == nil {
		return nil, errors.New("PDF extractor cannot be nil")
	}
	if rng.First < 0 || rng.Last < 0 || (rng.Last > 0 && rng.First > rng.Last) {
		return nil, &extracterror.PageRangeError{FirstPage: rng.First, LastPage: rng.Last}
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Extractor{pdf: pdf, pages: rng, logger: logger}, nil
}

// Extract reads path and returns its headings. A missing or unreadable file
// yields a *extracterror.DocumentError; a document without headings is not
// an error.
func (e *Extractor) Extract(path string) (Result, error) {
	start := time.Now()
	log := e.logger.WithField(logging.FieldInputFile, path)

	info, err := os.Stat(path)
	if err != nil {
		return Result{}, &extracterror.DocumentError{FilePath: path, Reason: "cannot access file", Err: err}
	}
	if info.IsDir() {
		return Result{}, &extracterror.DocumentError{FilePath: path, Reason: "is a directory"}
	}

	pages, err := e.pdf.ExtractPages(path, e.pages)
	if err != nil {
		var docErr *extracterror.DocumentError
		if errors.As(err, &docErr) {
			return Result{}, err
		}
		return Result{}, &extracterror.DocumentError{FilePath: path, Reason: "text extraction failed", Err: err}
	}

	set := make(Set)
	result := Result{Pages: len(pages)}
	for _, page := range pages {
		if page.Text == "" {
			continue
		}
		result.PagesWithText++
		if n := set.Add(page.Text); n > 0 {
			log.Debug("Found headings on page",
				logging.F(logging.FieldPage, page.Number),
				logging.F(logging.FieldCount, n))
		}
	}
	result.Books = set.Sorted()

	log.Info("Extracted book headings",
		logging.F(logging.FieldPages, result.Pages),
		logging.F(logging.FieldCount, result.Count()),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))

	return result, nil
}
