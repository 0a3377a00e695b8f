// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/acholi-books/internal/books"
)

// Extractor extracts the headings of one document.
type Extractor interface {
	Extract(path string) (books.Result, error)
}

// Writer writes headings to a file.
type Writer interface {
	Write(path string, books []string) error
}

// ProcessFile extracts the headings of inputFile, writes them to outputFile
// and prints the progress notices to out. On failure the error notice is
// printed and the error returned.
func ProcessFile(e Extractor, w Writer, inputFile, outputFile string, out io.Writer) (books.Result, error) {
	if e == nil || w == nil {
		err := errors.New("extractor and writer must be configured")
		fmt.Fprintf(out, "Error processing PDF: %v\n", err)
		return books.Result{}, err
	}

	fmt.Fprintln(out, "Extracting book names...")

	result, err := e.Extract(inputFile)
	if err != nil {
		fmt.Fprintf(out, "Error processing PDF: %v\n", err)
		return books.Result{}, err
	}

	if err := w.Write(outputFile, result.Books); err != nil {
		fmt.Fprintf(out, "Error processing PDF: %v\n", err)
		return books.Result{}, err
	}

	fmt.Fprintf(out, "Books extracted and saved to '%s'\n", outputFile)
	fmt.Fprintf(out, "Extracted Books: %q\n", result.Books)
	return result, nil
}
