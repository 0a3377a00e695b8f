package root_test

import (
	"errors"
	"os"
	"testing"

	"fjacquet/acholi-books/cmd/root"
	"fjacquet/acholi-books/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	root.Init()
	os.Exit(m.Run())
}

func baseConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Extract.Input = "./acholi.pdf"
	cfg.Extract.Output = "acholi_books.txt"
	cfg.PDF.Backend = "native"
	cfg.Output.Format = "text"
	cfg.Output.CSVDelimiter = ","
	return cfg
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "acholi-books", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "Acakki")
	assert.Contains(t, root.Cmd.Long, "acholi_books.txt")
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.True(t, root.Cmd.SilenceErrors)
}

func TestRootCommand_Flags(t *testing.T) {
	flags := root.Cmd.PersistentFlags()

	input := flags.Lookup("input")
	require.NotNil(t, input)
	assert.Equal(t, "i", input.Shorthand)

	output := flags.Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)

	for _, name := range []string{"config", "first-page", "last-page", "format", "backend", "debug"} {
		assert.NotNil(t, flags.Lookup(name), "flag %s should be registered", name)
	}
}

func TestApplyFlags(t *testing.T) {
	defer func() { root.SharedFlags = root.CommonFlags{} }()

	require.NoError(t, root.Cmd.ParseFlags([]string{
		"-i", "baibul.pdf",
		"--first-page", "3",
		"--last-page", "1990",
		"--format", "json",
		"--debug",
	}))

	cfg := baseConfig()
	require.NoError(t, root.ApplyFlags(root.Cmd, cfg))

	assert.Equal(t, "baibul.pdf", cfg.Extract.Input)
	assert.Equal(t, "acholi_books.txt", cfg.Extract.Output, "unset flags keep the config value")
	assert.Equal(t, 3, cfg.Extract.FirstPage)
	assert.Equal(t, 1990, cfg.Extract.LastPage)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "native", cfg.PDF.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)

	// overrides are validated
	root.SharedFlags.Format = "xml"
	assert.ErrorContains(t, root.ApplyFlags(root.Cmd, baseConfig()), "invalid output format")
}

func TestReported(t *testing.T) {
	assert.Nil(t, root.Reported(nil))

	cause := errors.New("cannot read document")
	err := root.Reported(cause)

	assert.True(t, root.IsReported(err))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, cause.Error(), err.Error())
	assert.False(t, root.IsReported(cause))
}

func TestGetLogger(t *testing.T) {
	original := root.AppContainer
	defer func() { root.AppContainer = original }()

	root.AppContainer = nil
	assert.Nil(t, root.GetContainer())
	assert.NotNil(t, root.GetLogger())
}
