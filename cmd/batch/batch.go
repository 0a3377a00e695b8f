// Package batch handles batch processing of files
package batch

import (
	"errors"
	"fmt"

	"fjacquet/acholi-books/cmd/root"
	"fjacquet/acholi-books/internal/batch"
	"fjacquet/acholi-books/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch extract headings from a directory of PDFs",
	Long: `Batch extract Acakki book headings from every PDF in an input directory.

Each <name>.pdf produces <name>.txt (or .csv/.json with --format) in the
output directory. A file that fails is reported and the batch continues.

Example:
  acholi-books batch -i pdfs/ -o books/`,
	RunE: Run,
}

// Run executes the batch command.
func Run(cmd *cobra.Command, args []string) error {
	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	if inputDir == "" || outputDir == "" {
		return errors.New("input and output directories must be specified")
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		return errors.New("container not initialized")
	}

	logger := appContainer.GetLogger()
	logger.Info("Batch command called",
		logging.F(logging.FieldDirectory, inputDir),
		logging.F(logging.FieldOutputFile, outputDir))

	runner := batch.NewRunner(appContainer.GetExtractor(), appContainer.GetWriter(), logger)
	result, err := runner.Run(inputDir, outputDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, f := range result.Files {
		if f.Err != nil {
			fmt.Fprintf(out, "failed:  %s (%v)\n", f.Input, f.Err)
			continue
		}
		fmt.Fprintf(out, "written: %s (%d books)\n", f.Output, f.Count)
	}
	fmt.Fprintf(out, "Batch processing completed. %d files processed, %d failed.\n", result.Processed, result.Failed)

	if result.HasFailures() {
		return root.Reported(fmt.Errorf("%d of %d files failed", result.Failed, len(result.Files)))
	}
	return nil
}
