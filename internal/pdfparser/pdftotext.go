package pdfparser

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"fjacquet/acholi-books/internal/extracterror"
	"fjacquet/acholi-books/internal/logging"
)

// PdftotextExtractor extracts text by running poppler's pdftotext and
// splitting its output on the form feed it emits after every page.
type PdftotextExtractor struct {
	binary string
	logger logging.Logger

	// run executes the command and returns stdout; replaced in tests.
	run func(name string, args ...string) ([]byte, error)
}

// NewPdftotextExtractor creates a PdftotextExtractor. An empty binary means
// "pdftotext" looked up on PATH.
func NewPdftotextExtractor(binary string, logger logging.Logger) *PdftotextExtractor {
	if binary == "" {
		binary = "pdftotext"
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &PdftotextExtractor{
		binary: binary,
		logger: logger,
		run:    runCommand,
	}
}

func runCommand(name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(name, args...) // #nosec G204 -- binary comes from trusted configuration
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

// ExtractPages runs pdftotext on pdfPath restricted to rng.
func (e *PdftotextExtractor) ExtractPages(pdfPath string, rng PageRange) ([]Page, error) {
	args := []string{"-enc", "UTF-8"}
	first := 1
	if rng.First > 0 {
		first = rng.First
		args = append(args, "-f", strconv.Itoa(rng.First))
	}
	if rng.Last > 0 {
		args = append(args, "-l", strconv.Itoa(rng.Last))
	}
	args = append(args, pdfPath, "-")

	e.logger.Debug("Running pdftotext",
		logging.F(logging.FieldFile, pdfPath),
		logging.F(logging.FieldBackend, BackendPdftotext),
		logging.F("args", strings.Join(args, " ")))

	out, err := e.run(e.binary, args...)
	if err != nil && rng.First > 0 && isPageRangeFailure(err) {
		// pdftotext clamps -l to the page count, so only -f past the end fails
		e.logger.Debug("First page is past the end of the document",
			logging.F(logging.FieldFile, pdfPath),
			logging.F(logging.FieldPage, rng.First))
		return nil, nil
	}
	if err != nil {
		return nil, &extracterror.DocumentError{
			FilePath: pdfPath,
			Reason:   "pdftotext failed",
			Err:      err,
		}
	}

	texts := splitPages(string(out))
	pages := make([]Page, 0, len(texts))
	for i, text := range texts {
		pages = append(pages, Page{Number: first + i, Text: text})
	}
	return pages, nil
}

// wrongPageRange is what poppler prints before exiting with status 99 when
// the first page lies after the last page of the document.
const wrongPageRange = "Wrong page range given"

func isPageRangeFailure(err error) bool {
	return strings.Contains(err.Error(), wrongPageRange)
}

// splitPages splits pdftotext output into page texts. pdftotext terminates
// every page with a form feed, so the trailing empty chunk is dropped.
func splitPages(out string) []string {
	if out == "" {
		return nil
	}
	chunks := strings.Split(out, "\f")
	if strings.TrimSpace(chunks[len(chunks)-1]) == "" {
		chunks = chunks[:len(chunks)-1]
	}
	return chunks
}
