// Package extract handles the single-document extraction command
package extract

import (
	"errors"

	"fjacquet/acholi-books/cmd/common"
	"fjacquet/acholi-books/cmd/root"
	"fjacquet/acholi-books/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the extract command
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract Acakki book headings from a PDF",
	Long: `Extract every line starting with "Acakki <word>" from a PDF, deduplicate the
matches and write them sorted to the output file.

Examples:
  acholi-books extract
  acholi-books extract -i baibul.pdf -o books.txt --first-page 3 --last-page 1990
  acholi-books extract --format json -o books.json`,
	RunE: Run,
}

// Run executes the extraction for the configured input and output.
func Run(cmd *cobra.Command, args []string) error {
	appContainer := root.GetContainer()
	if appContainer == nil {
		return errors.New("container not initialized")
	}

	cfg := appContainer.GetConfig()
	logger := appContainer.GetLogger()
	logger.Debug("Extract command called",
		logging.F(logging.FieldInputFile, cfg.Extract.Input),
		logging.F(logging.FieldOutputFile, cfg.Extract.Output))

	result, err := common.ProcessFile(
		appContainer.GetExtractor(),
		appContainer.GetWriter(),
		cfg.Extract.Input,
		cfg.Extract.Output,
		cmd.OutOrStdout(),
	)
	if err != nil {
		logger.WithError(err).Error("Extraction failed",
			logging.F(logging.FieldInputFile, cfg.Extract.Input))
		return root.Reported(err)
	}

	logger.Info("Books found",
		logging.F(logging.FieldCount, result.Count()),
		logging.F(logging.FieldPages, result.Pages))
	return nil
}
