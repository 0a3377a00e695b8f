package pdfparser

import (
	"fmt"

	"fjacquet/acholi-books/internal/extracterror"
	"fjacquet/acholi-books/internal/logging"

	"github.com/tsawler/tabula"
	"github.com/tsawler/tabula/reader"
)

// TabulaExtractor reads PDFs with github.com/tsawler/tabula, which rebuilds
// lines from positioned text fragments and copes better with multi-column
// layouts than NativeExtractor.
type TabulaExtractor struct {
	logger logging.Logger
}

// NewTabulaExtractor creates a TabulaExtractor. A nil logger gets a default one.
func NewTabulaExtractor(logger logging.Logger) *TabulaExtractor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &TabulaExtractor{logger: logger}
}

// ExtractPages opens pdfPath once and returns the text of every page in rng.
// A page that fails to decode is logged and returned empty.
func (e *TabulaExtractor) ExtractPages(pdfPath string, rng PageRange) (pages []Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = &extracterror.DocumentError{
				FilePath: pdfPath,
				Reason:   "malformed PDF",
				Err:      fmt.Errorf("%v", r),
			}
		}
	}()

	r, err := reader.Open(pdfPath)
	if err != nil {
		return nil, &extracterror.DocumentError{
			FilePath: pdfPath,
			Reason:   "not a valid PDF",
			Err:      err,
		}
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			e.logger.WithError(cerr).Warn("Failed to close PDF file",
				logging.F(logging.FieldFile, pdfPath))
		}
	}()

	numPages, err := r.PageCount()
	if err != nil {
		return nil, &extracterror.DocumentError{
			FilePath: pdfPath,
			Reason:   "cannot read page tree",
			Err:      err,
		}
	}
	e.logger.Debug("Opened PDF",
		logging.F(logging.FieldFile, pdfPath),
		logging.F(logging.FieldPages, numPages),
		logging.F(logging.FieldBackend, BackendTabula))

	first, last, ok := rng.Bounds(numPages)
	if !ok {
		return nil, nil
	}

	// the caller owns r, so Text does not close it between pages
	doc := tabula.FromReader(r)
	pages = make([]Page, 0, last-first+1)
	for i := first; i <= last; i++ {
		text, warnings, terr := doc.Pages(i).Text()
		if terr != nil {
			e.logger.WithError(terr).Warn("Failed to extract page text, treating page as empty",
				logging.F(logging.FieldFile, pdfPath),
				logging.F(logging.FieldPage, i))
			text = ""
		}
		if len(warnings) > 0 {
			e.logger.Debug("Page extracted with warnings",
				logging.F(logging.FieldPage, i),
				logging.F(logging.FieldCount, len(warnings)))
		}
		pages = append(pages, Page{Number: i, Text: text})
	}

	return pages, nil
}
