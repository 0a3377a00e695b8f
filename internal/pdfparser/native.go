package pdfparser

import (
	"fmt"
	"math"
	"strings"

	"fjacquet/acholi-books/internal/extracterror"
	"fjacquet/acholi-books/internal/logging"

	"github.com/ledongthuc/pdf"
)

// NativeExtractor reads PDFs with github.com/ledongthuc/pdf. No external
// tools are required.
type NativeExtractor struct {
	logger logging.Logger
}

// NewNativeExtractor creates a NativeExtractor. A nil logger gets a default one.
func NewNativeExtractor(logger logging.Logger) *NativeExtractor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &NativeExtractor{logger: logger}
}

// ExtractPages opens pdfPath and returns the plain text of every page in rng.
// A page whose text cannot be decoded is logged and returned empty.
func (e *NativeExtractor) ExtractPages(pdfPath string, rng PageRange) (pages []Page, err error) {
	// ledongthuc/pdf panics on some malformed documents.
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

	f, reader, err := pdf.Open(pdfPath)
	if err != nil {
		return nil, &extracterror.DocumentError{
			FilePath: pdfPath,
			Reason:   "not a valid PDF",
			Err:      err,
		}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.logger.WithError(cerr).Warn("Failed to close PDF file",
				logging.F(logging.FieldFile, pdfPath))
		}
	}()

	numPages := reader.NumPage()
	e.logger.Debug("Opened PDF",
		logging.F(logging.FieldFile, pdfPath),
		logging.F(logging.FieldPages, numPages),
		logging.F(logging.FieldBackend, BackendNative))

	first, last, ok := rng.Bounds(numPages)
	if !ok {
		return nil, nil
	}

	pages = make([]Page, 0, last-first+1)
	for i := first; i <= last; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, Page{Number: i})
			continue
		}

		text, terr := pageText(page)
		if terr != nil {
			e.logger.WithError(terr).Warn("Failed to extract page text, treating page as empty",
				logging.F(logging.FieldFile, pdfPath),
				logging.F(logging.FieldPage, i))
			text = ""
		}
		pages = append(pages, Page{Number: i, Text: text})
	}

	return pages, nil
}

// pageText rebuilds the lines of a page from its positioned glyphs.
// GetPlainText only breaks lines on T*, which joins lines moved with Td/TD.
func pageText(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return joinLines(page.Content().Text), nil
}

// joinLines walks glyphs in content-stream order and starts a new line
// whenever the baseline moves by more than half the font size.
func joinLines(glyphs []pdf.Text) string {
	var b strings.Builder
	var lastY float64
	for i, g := range glyphs {
		if i > 0 && math.Abs(g.Y-lastY) > lineTolerance(g.FontSize) {
			b.WriteByte('\n')
		}
		lastY = g.Y
		b.WriteString(g.S)
	}
	return b.String()
}

func lineTolerance(fontSize float64) float64 {
	if fontSize <= 2 {
		return 1
	}
	return fontSize / 2
}
