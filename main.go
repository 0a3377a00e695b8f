package main

import (
	"fmt"
	"os"

	"fjacquet/acholi-books/cmd/batch"
	"fjacquet/acholi-books/cmd/configcmd"
	"fjacquet/acholi-books/cmd/extract"
	"fjacquet/acholi-books/cmd/root"
	"fjacquet/acholi-books/internal/config"
)

func init() {
	// 1. Load .env before viper reads the environment
	config.LoadEnv()

	// 2. Initialize root command flags
	root.Init()

	// 3. The bare command behaves like extract with defaults
	root.Cmd.RunE = extract.Run

	// 4. Add all subcommands
	root.Cmd.AddCommand(extract.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(configcmd.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		if !root.IsReported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
