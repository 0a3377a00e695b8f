// Package export writes extracted book headings to an output file.
package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fjacquet/acholi-books/internal/extracterror"
	"fjacquet/acholi-books/internal/fileutils"
	"fjacquet/acholi-books/internal/logging"

	"github.com/gocarina/gocsv"
)

// Output formats.
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Formats lists the accepted format names.
var Formats = []string{FormatText, FormatCSV, FormatJSON}

// bookRow is the CSV row layout.
type bookRow struct {
	Book string `csv:"book"`
}

// Writer writes a sequence of headings to a file in one format.
type Writer struct {
	format    string
	delimiter rune
	logger    logging.Logger
}

// NewWriter creates a Writer. delimiter is only used by the csv format; zero
// means a comma.
func NewWriter(format string, delimiter rune, logger logging.Logger) (*Writer, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatText
	}
	if !IsValidFormat(format) {
		return nil, fmt.Errorf("unknown output format %q (must be one of %s)", format, strings.Join(Formats, ", "))
	}
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Writer{format: format, delimiter: delimiter, logger: logger}, nil
}

// IsValidFormat reports whether format names a supported output format.
func IsValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Format returns the writer's format name.
func (w *Writer) Format() string {
	return w.format
}

// Extension returns the file extension matching the writer's format.
func (w *Writer) Extension() string {
	switch w.format {
	case FormatCSV:
		return ".csv"
	case FormatJSON:
		return ".json"
	default:
		return ".txt"
	}
}

// Write replaces the content of path with books, in order. The file is
// closed on every path; a failure leaves whatever was written so far.
func (w *Writer) Write(path string, books []string) (err error) {
	file, err := fileutils.CreateFile(path)
	if err != nil {
		return &extracterror.WriteError{FilePath: path, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = &extracterror.WriteError{FilePath: path, Err: cerr}
		}
	}()

	if err := w.encode(file, books); err != nil {
		return &extracterror.WriteError{FilePath: path, Err: err}
	}

	w.logger.Info("Wrote book headings",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldFormat, w.format),
		logging.F(logging.FieldCount, len(books)))
	return nil
}

func (w *Writer) encode(out io.Writer, books []string) error {
	switch w.format {
	case FormatCSV:
		return writeCSV(out, books, w.delimiter)
	case FormatJSON:
		return writeJSON(out, books)
	default:
		return writeText(out, books)
	}
}

func writeText(out io.Writer, books []string) error {
	bw := bufio.NewWriter(out)
	for _, b := range books {
		if _, err := bw.WriteString(b + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeCSV(out io.Writer, books []string, delimiter rune) error {
	rows := make([]bookRow, 0, len(books))
	for _, b := range books {
		rows = append(rows, bookRow{Book: b})
	}

	csvWriter := csv.NewWriter(out)
	csvWriter.Comma = delimiter
	if len(rows) == 0 {
		// header only
		if err := csvWriter.Write([]string{"book"}); err != nil {
			return err
		}
		csvWriter.Flush()
		return csvWriter.Error()
	}
	return gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter))
}

func writeJSON(out io.Writer, books []string) error {
	if books == nil {
		books = []string{}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(books)
}
