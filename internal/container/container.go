// Package container provides dependency injection for the acholi-books
// application. It builds the logger, the PDF page source, the heading
// extractor and the output writer from one Config.
package container

import (
	"fmt"

	"fjacquet/acholi-books/internal/books"
	"fjacquet/acholi-books/internal/config"
	"fjacquet/acholi-books/internal/export"
	"fjacquet/acholi-books/internal/logging"
	"fjacquet/acholi-books/internal/pdfparser"
)

// Container holds all application dependencies. It is immutable after
// creation; dependencies are reached through getters.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	pdf       pdfparser.PDFExtractor
	extractor *books.Extractor
	writer    *export.Writer
}

// Option customises a Container before its components are built.
type Option func(*Container)

// WithLogger replaces the logger built from the configuration.
func WithLogger(logger logging.Logger) Option {
	return func(c *Container) {
		c.logger = logger
	}
}

// WithPDFExtractor replaces the page source selected by pdf.backend.
func WithPDFExtractor(pdf pdfparser.PDFExtractor) Option {
	return func(c *Container) {
		c.pdf = pdf
	}
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	c := &Container{config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	}

	if c.pdf == nil {
		pdf, err := pdfparser.NewExtractor(cfg.PDF.Backend, cfg.PDF.PdftotextPath, c.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create PDF extractor: %w", err)
		}
		c.pdf = pdf
	}

	rng := pdfparser.PageRange{First: cfg.Extract.FirstPage, Last: cfg.Extract.LastPage}
	extractor, err := books.NewExtractor(c.pdf, rng, c.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create extractor: %w", err)
	}
	c.extractor = extractor

	writer, err := export.NewWriter(cfg.Output.Format, cfg.Delimiter(), c.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create writer: %w", err)
	}
	c.writer = writer

	c.logger.Debug("Container initialized",
		logging.F(logging.FieldBackend, cfg.PDF.Backend),
		logging.F(logging.FieldFormat, writer.Format()))

	return c, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetPDFExtractor returns the PDF page source.
func (c *Container) GetPDFExtractor() pdfparser.PDFExtractor {
	return c.pdf
}

// GetExtractor returns the heading extractor.
func (c *Container) GetExtractor() *books.Extractor {
	return c.extractor
}

// GetWriter returns the output writer.
func (c *Container) GetWriter() *export.Writer {
	return c.writer
}
