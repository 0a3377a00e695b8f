// Package batch runs heading extraction for every PDF in a directory.
package batch

import (
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/acholi-books/internal/books"
	"fjacquet/acholi-books/internal/fileutils"
	"fjacquet/acholi-books/internal/logging"
)

// Extractor extracts the headings of one document.
type Extractor interface {
	Extract(path string) (books.Result, error)
}

// Writer writes headings to a file.
type Writer interface {
	Write(path string, books []string) error
	Extension() string
}

// FileResult is the outcome for one input file.
type FileResult struct {
	Input  string
	Output string
	Count  int
	Err    error
}

// Result summarises a batch run.
type Result struct {
	Processed int
	Failed    int
	Files     []FileResult
}

// HasFailures reports whether any file failed.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Runner processes directories of PDFs.
type Runner struct {
	extractor Extractor
	writer    Writer
	logger    logging.Logger
}

// NewRunner creates a Runner.
func NewRunner(extractor Extractor, writer Writer, logger logging.Logger) *Runner {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Runner{extractor: extractor, writer: writer, logger: logger}
}

// Run extracts every *.pdf directly inside inputDir and writes one output
// file per input into outputDir. A failing file is recorded and the batch
// continues; only directory-level problems are returned as errors.
func (r *Runner) Run(inputDir, outputDir string) (Result, error) {
	files, err := fileutils.ListFilesWithExtension(inputDir, ".pdf")
	if err != nil {
		return Result{}, fmt.Errorf("failed to read input directory: %w", err)
	}
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return Result{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	if len(files) == 0 {
		r.logger.Warn("No PDF files found in input directory",
			logging.F(logging.FieldDirectory, inputDir))
		return Result{Files: []FileResult{}}, nil
	}

	r.logger.Info("Found files for processing",
		logging.F(logging.FieldDirectory, inputDir),
		logging.F(logging.FieldCount, len(files)))

	result := Result{Files: make([]FileResult, 0, len(files))}
	// a.pdf and a.PDF map to the same output; compared case-insensitively
	// so case-insensitive file systems are covered too
	written := make(map[string]string, len(files))
	for _, input := range files {
		fr := r.claimOutput(input, outputDir, written)
		if fr.Err == nil {
			fr = r.processFile(input, fr.Output)
		}
		result.Files = append(result.Files, fr)
		if fr.Err != nil {
			result.Failed++
			continue
		}
		result.Processed++
	}

	r.logger.Info("Batch processing completed",
		logging.F(logging.FieldCount, result.Processed),
		logging.F(logging.FieldFailed, result.Failed))

	return result, nil
}

// claimOutput reserves the output path of input, failing when an earlier
// input of the batch already produces it.
func (r *Runner) claimOutput(input, outputDir string, written map[string]string) FileResult {
	output := filepath.Join(outputDir, fileutils.ReplaceExtension(input, r.writer.Extension()))
	fr := FileResult{Input: input, Output: output}

	key := strings.ToLower(output)
	if prev, ok := written[key]; ok {
		fr.Err = fmt.Errorf("output %s is already produced by %s", output, prev)
		r.logger.Error("Output name collides with another input",
			logging.F(logging.FieldInputFile, input),
			logging.F(logging.FieldOutputFile, output))
		return fr
	}
	written[key] = input
	return fr
}

func (r *Runner) processFile(input, output string) FileResult {
	fr := FileResult{Input: input, Output: output}

	extracted, err := r.extractor.Extract(input)
	if err != nil {
		r.logger.WithError(err).Error("Failed to extract headings",
			logging.F(logging.FieldInputFile, input))
		fr.Err = err
		return fr
	}

	if err := r.writer.Write(output, extracted.Books); err != nil {
		r.logger.WithError(err).Error("Failed to write headings",
			logging.F(logging.FieldOutputFile, output))
		fr.Err = err
		return fr
	}

	fr.Count = extracted.Count()
	return fr
}
