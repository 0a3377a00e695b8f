package pdfparser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/acholi-books/internal/extracterror"
	"fjacquet/acholi-books/internal/logging"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNativeExtractor_InvalidDocuments(t *testing.T) {
	tmpDir := t.TempDir()

	notPDF := filepath.Join(tmpDir, "notes.pdf")
	require.NoError(t, os.WriteFile(notPDF, []byte("This is not a PDF file"), 0600))

	truncated := filepath.Join(tmpDir, "truncated.pdf")
	require.NoError(t, os.WriteFile(truncated, []byte("%PDF-1.4\n1 0 obj\n<<"), 0600))

	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(tmpDir, "missing.pdf")},
		{name: "not a pdf", path: notPDF},
		{name: "truncated pdf", path: truncated},
	}

	e := NewNativeExtractor(logging.NewMockLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, err := e.ExtractPages(tt.path, PageRange{})
			require.Error(t, err)
			assert.Nil(t, pages)

			var docErr *extracterror.DocumentError
			require.True(t, errors.As(err, &docErr))
			assert.Equal(t, tt.path, docErr.FilePath)
		})
	}
}

func TestNewNativeExtractor_DefaultLogger(t *testing.T) {
	e := NewNativeExtractor(nil)
	assert.NotNil(t, e.logger)
}

func TestTabulaExtractor_InvalidDocuments(t *testing.T) {
	tmpDir := t.TempDir()

	notPDF := filepath.Join(tmpDir, "notes.pdf")
	require.NoError(t, os.WriteFile(notPDF, []byte("This is not a PDF file"), 0600))

	e := NewTabulaExtractor(logging.NewMockLogger())
	for _, path := range []string{filepath.Join(tmpDir, "missing.pdf"), notPDF} {
		pages, err := e.ExtractPages(path, PageRange{})
		require.Error(t, err)
		assert.Nil(t, pages)

		var docErr *extracterror.DocumentError
		require.True(t, errors.As(err, &docErr))
		assert.Equal(t, path, docErr.FilePath)
		assert.Equal(t, "not a valid PDF", docErr.Reason)
	}
}

func TestNewTabulaExtractor_DefaultLogger(t *testing.T) {
	e := NewTabulaExtractor(nil)
	assert.NotNil(t, e.logger)
}

// headingsPDF has two pages of Helvetica lines positioned with Td:
// "BAIBUL / Acakki Oryang / 1 Verse one" and "Intro / Acakki Apiyo / Acakki Oryang".
const headingsPDF = "testdata/headings.pdf"

func TestNativeExtractor_PageText(t *testing.T) {
	e := NewNativeExtractor(logging.NewMockLogger())

	pages, err := e.ExtractPages(headingsPDF, PageRange{})
	require.NoError(t, err)
	assert.Equal(t, []Page{
		{Number: 1, Text: "BAIBUL\nAcakki Oryang\n1 Verse one"},
		{Number: 2, Text: "Intro\nAcakki Apiyo\nAcakki Oryang"},
	}, pages)

	pages, err = e.ExtractPages(headingsPDF, PageRange{First: 2, Last: 9})
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, 2, pages[0].Number)

	pages, err = e.ExtractPages(headingsPDF, PageRange{First: 3})
	require.NoError(t, err)
	assert.Empty(t, pages)
}

func TestTabulaExtractor_PageText(t *testing.T) {
	e := NewTabulaExtractor(logging.NewMockLogger())

	pages, err := e.ExtractPages(headingsPDF, PageRange{})
	require.NoError(t, err)
	require.Len(t, pages, 2)

	assert.Equal(t, 1, pages[0].Number)
	for _, line := range []string{"BAIBUL", "Acakki Oryang", "1 Verse one"} {
		assert.Regexp(t, `(?m)^`+line+`\s*$`, pages[0].Text)
	}
	assert.Equal(t, 2, pages[1].Number)
	for _, line := range []string{"Intro", "Acakki Apiyo", "Acakki Oryang"} {
		assert.Regexp(t, `(?m)^`+line+`\s*$`, pages[1].Text)
	}

	pages, err = e.ExtractPages(headingsPDF, PageRange{First: 3})
	require.NoError(t, err)
	assert.Empty(t, pages)
}

func TestJoinLines(t *testing.T) {
	glyph := func(s string, y float64) pdf.Text {
		return pdf.Text{S: s, Y: y, FontSize: 12}
	}

	tests := []struct {
		name   string
		glyphs []pdf.Text
		want   string
	}{
		{name: "no glyphs", want: ""},
		{name: "one line", glyphs: []pdf.Text{glyph("A", 700), glyph("b", 700)}, want: "Ab"},
		{name: "baseline jitter stays on the line", glyphs: []pdf.Text{glyph("A", 700), glyph("b", 702.5)}, want: "Ab"},
		{name: "line move", glyphs: []pdf.Text{glyph("A", 700), glyph("b", 680), glyph("c", 660)}, want: "A\nb\nc"},
		{name: "move back up", glyphs: []pdf.Text{glyph("A", 680), glyph("b", 700)}, want: "A\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, joinLines(tt.glyphs))
		})
	}
}
