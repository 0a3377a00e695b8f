// Package root contains the root command for the application
package root

import (
	"errors"

	"fjacquet/acholi-books/internal/config"
	"fjacquet/acholi-books/internal/container"
	"fjacquet/acholi-books/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input      string
	Output     string
	ConfigFile string
	FirstPage  int
	LastPage   int
	Format     string
	Backend    string
	Debug      bool
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppContainer holds the wired dependencies. Tests may set it before
	// running a command; it is then used as is.
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "acholi-books",
		Short: "Extract Acakki book headings from a PDF into a text file.",
		Long: `acholi-books reads the text of a PDF page by page, collects every line that
starts with "Acakki <word>", removes duplicates and writes the sorted list to
an output file, one heading per line.

Run without a subcommand to extract ./acholi.pdf into acholi_books.txt.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initContainer,
	}

	// SharedFlags holds the persistent flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command flags
func Init() {
	flags := Cmd.PersistentFlags()
	flags.StringVarP(&SharedFlags.Input, "input", "i", "", "Input PDF file (directory for batch)")
	flags.StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (directory for batch)")
	flags.StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default search: $HOME/.acholi-books, .acholi-books, .)")
	flags.IntVar(&SharedFlags.FirstPage, "first-page", 0, "First page to read, 1-based (0 = first page of the document)")
	flags.IntVar(&SharedFlags.LastPage, "last-page", 0, "Last page to read, inclusive (0 = last page of the document)")
	flags.StringVar(&SharedFlags.Format, "format", "", "Output format: text, csv or json")
	flags.StringVar(&SharedFlags.Backend, "backend", "", "PDF backend: native, pdftotext or tabula")
	flags.BoolVar(&SharedFlags.Debug, "debug", false, "Enable debug logging")
}

func initContainer(cmd *cobra.Command, args []string) error {
	if AppContainer != nil {
		Log = AppContainer.GetLogger()
		return nil
	}

	cfg, err := config.InitializeConfig(SharedFlags.ConfigFile)
	if err != nil {
		return err
	}
	if err := ApplyFlags(cmd, cfg); err != nil {
		return err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

// ApplyFlags overrides configuration values with the flags set on cmd and
// validates the result.
func ApplyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Extract.Input = SharedFlags.Input
	}
	if flags.Changed("output") {
		cfg.Extract.Output = SharedFlags.Output
	}
	if flags.Changed("first-page") {
		cfg.Extract.FirstPage = SharedFlags.FirstPage
	}
	if flags.Changed("last-page") {
		cfg.Extract.LastPage = SharedFlags.LastPage
	}
	if flags.Changed("format") {
		cfg.Output.Format = SharedFlags.Format
	}
	if flags.Changed("backend") {
		cfg.PDF.Backend = SharedFlags.Backend
	}
	if SharedFlags.Debug {
		cfg.Log.Level = "debug"
	}
	return config.ValidateConfig(cfg)
}

// GetContainer returns the application container, or nil before initialization
func GetContainer() *container.Container {
	return AppContainer
}

// GetLogger returns the shared logger
func GetLogger() logging.Logger {
	if AppContainer != nil {
		return AppContainer.GetLogger()
	}
	return Log
}

// ReportedError wraps an error that a command has already shown to the user.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string {
	return e.Err.Error()
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}

// Reported marks err as already shown to the user.
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return &ReportedError{Err: err}
}

// IsReported reports whether err was already shown to the user.
func IsReported(err error) bool {
	var reported *ReportedError
	return errors.As(err, &reported)
}
