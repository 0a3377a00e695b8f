// Package configcmd prints the effective configuration
package configcmd

import (
	"errors"
	"fmt"

	"fjacquet/acholi-books/cmd/root"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Cmd represents the config command
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after defaults, config file, environment variables
and flags have been applied.`,
	RunE: Run,
}

// Run prints the configuration held by the application container.
func Run(cmd *cobra.Command, args []string) error {
	appContainer := root.GetContainer()
	if appContainer == nil {
		return errors.New("container not initialized")
	}

	data, err := yaml.Marshal(appContainer.GetConfig())
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
