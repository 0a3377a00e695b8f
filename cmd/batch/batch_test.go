package batch_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/acholi-books/cmd/batch"
	"fjacquet/acholi-books/cmd/root"
	"fjacquet/acholi-books/internal/config"
	"fjacquet/acholi-books/internal/container"
	"fjacquet/acholi-books/internal/logging"
	"fjacquet/acholi-books/internal/pdfparser"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, inputDir, outputDir string, pages []string) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.PDF.Backend = "native"
	cfg.Output.Format = "text"
	cfg.Output.CSVDelimiter = ","

	c, err := container.NewContainer(cfg,
		container.WithLogger(logging.NewMockLogger()),
		container.WithPDFExtractor(pdfparser.NewMockPDFExtractor(pages, nil)))
	require.NoError(t, err)

	originalContainer := root.AppContainer
	originalFlags := root.SharedFlags
	root.AppContainer = c
	root.SharedFlags.Input = inputDir
	root.SharedFlags.Output = outputDir
	t.Cleanup(func() {
		root.AppContainer = originalContainer
		root.SharedFlags = originalFlags
	})
}

func TestBatchCommand_Metadata(t *testing.T) {
	assert.Equal(t, "batch", batch.Cmd.Use)
	assert.Contains(t, batch.Cmd.Short, "directory")
	assert.NotNil(t, batch.Cmd.RunE)
}

func TestRun_ProcessesDirectory(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "books")
	for _, name := range []string{"acholi.pdf", "lango.pdf"} {
		require.NoError(t, os.WriteFile(filepath.Join(inputDir, name), []byte("%PDF-1.4\n"), 0600))
	}
	setup(t, inputDir, outputDir, []string{"Acakki Lubanga"})

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	require.NoError(t, batch.Run(cmd, nil))

	for _, name := range []string{"acholi.txt", "lango.txt"} {
		data, err := os.ReadFile(filepath.Join(outputDir, name))
		require.NoError(t, err)
		assert.Equal(t, "Acakki Lubanga\n", string(data))
	}
	assert.Contains(t, out.String(), "2 files processed, 0 failed")
}

func TestRun_RequiresDirectories(t *testing.T) {
	setup(t, "", "", nil)

	err := batch.Run(&cobra.Command{}, nil)
	assert.EqualError(t, err, "input and output directories must be specified")
}

func TestRun_MissingInputDirectory(t *testing.T) {
	setup(t, filepath.Join(t.TempDir(), "missing"), t.TempDir(), nil)

	err := batch.Run(&cobra.Command{}, nil)
	assert.ErrorContains(t, err, "failed to read input directory")
}
