package pdfparser

import (
	"errors"
	"testing"

	"fjacquet/acholi-books/internal/extracterror"
	"fjacquet/acholi-books/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeRun(out string, err error, gotArgs *[]string) func(string, ...string) ([]byte, error) {
	return func(name string, args ...string) ([]byte, error) {
		*gotArgs = append([]string{name}, args...)
		if err != nil {
			return nil, err
		}
		return []byte(out), nil
	}
}

func TestPdftotextExtractor_ExtractPages(t *testing.T) {
	var args []string
	e := NewPdftotextExtractor("", logging.NewMockLogger())
	e.run = fakeRun("Acakki Lubanga\n1 Verse\n\fAcakki Apiyo\n\f", nil, &args)

	pages, err := e.ExtractPages("acholi.pdf", PageRange{})
	require.NoError(t, err)

	assert.Equal(t, []string{"pdftotext", "-enc", "UTF-8", "acholi.pdf", "-"}, args)
	assert.Equal(t, []Page{
		{Number: 1, Text: "Acakki Lubanga\n1 Verse\n"},
		{Number: 2, Text: "Acakki Apiyo\n"},
	}, pages)
}

func TestPdftotextExtractor_PageRange(t *testing.T) {
	var args []string
	e := NewPdftotextExtractor("/opt/poppler/pdftotext", logging.NewMockLogger())
	e.run = fakeRun("third\fforth\f", nil, &args)

	pages, err := e.ExtractPages("acholi.pdf", PageRange{First: 3, Last: 4})
	require.NoError(t, err)

	assert.Equal(t, []string{"/opt/poppler/pdftotext", "-enc", "UTF-8", "-f", "3", "-l", "4", "acholi.pdf", "-"}, args)
	require.Len(t, pages, 2)
	assert.Equal(t, 3, pages[0].Number)
	assert.Equal(t, 4, pages[1].Number)
}

func TestPdftotextExtractor_Failure(t *testing.T) {
	var args []string
	e := NewPdftotextExtractor("", nil)
	e.run = fakeRun("", errors.New("exit status 1: I/O Error: Couldn't open file"), &args)

	_, err := e.ExtractPages("missing.pdf", PageRange{})
	require.Error(t, err)

	var docErr *extracterror.DocumentError
	require.True(t, errors.As(err, &docErr))
	assert.Equal(t, "missing.pdf", docErr.FilePath)
	assert.Contains(t, err.Error(), "Couldn't open file")
}

func TestPdftotextExtractor_FirstPagePastEnd(t *testing.T) {
	rangeErr := errors.New("exit status 99: Wrong page range given: the first page (40) can not be after the last page (12).")

	var args []string
	e := NewPdftotextExtractor("", logging.NewMockLogger())
	e.run = fakeRun("", rangeErr, &args)

	pages, err := e.ExtractPages("acholi.pdf", PageRange{First: 40})
	require.NoError(t, err)
	assert.Empty(t, pages)
	assert.Contains(t, args, "-f")

	// without -f the same message is not a range problem of ours
	_, err = e.ExtractPages("acholi.pdf", PageRange{})
	var docErr *extracterror.DocumentError
	require.True(t, errors.As(err, &docErr))
	assert.Equal(t, "pdftotext failed", docErr.Reason)
}

func TestSplitPages(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty output", in: "", want: nil},
		{name: "single page", in: "a\n\f", want: []string{"a\n"}},
		{name: "blank page kept", in: "a\f\fb\f", want: []string{"a", "", "b"}},
		{name: "no trailing form feed", in: "a\fb", want: []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitPages(tt.in))
		})
	}
}
