// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by viper.
const EnvPrefix = "ACHOLI_BOOKS"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Extract struct {
		Input     string `mapstructure:"input" yaml:"input"`
		Output    string `mapstructure:"output" yaml:"output"`
		FirstPage int    `mapstructure:"first_page" yaml:"first_page"`
		LastPage  int    `mapstructure:"last_page" yaml:"last_page"`
	} `mapstructure:"extract" yaml:"extract"`

	PDF struct {
		Backend       string `mapstructure:"backend" yaml:"backend"`
		PdftotextPath string `mapstructure:"pdftotext_path" yaml:"pdftotext_path"`
	} `mapstructure:"pdf" yaml:"pdf"`

	Output struct {
		Format       string `mapstructure:"format" yaml:"format"`
		CSVDelimiter string `mapstructure:"csv_delimiter" yaml:"csv_delimiter"`
	} `mapstructure:"output" yaml:"output"`
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.Output.CSVDelimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// InitializeConfig loads configuration from defaults, the config file and the
// environment, in increasing order of precedence. configFile overrides the
// search path when non-empty; a missing explicit file is an error.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.acholi-books")
		v.AddConfigPath(".acholi-books")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// LOG_LEVEL and LOG_FORMAT are honoured without the prefix
	if err := v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind log level environment: %w", err)
	}
	if err := v.BindEnv("log.format", EnvPrefix+"_LOG_FORMAT", "LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind log format environment: %w", err)
	}

	// 4. Read config file (optional unless explicit)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case configFile != "":
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		case !errors.As(err, &notFound):
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate
	if err := ValidateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("extract.input", "./acholi.pdf")
	v.SetDefault("extract.output", "acholi_books.txt")
	v.SetDefault("extract.first_page", 0)
	v.SetDefault("extract.last_page", 0)

	v.SetDefault("pdf.backend", "native")
	v.SetDefault("pdf.pdftotext_path", "pdftotext")

	v.SetDefault("output.format", "text")
	v.SetDefault("output.csv_delimiter", ",")
}

// ValidateConfig validates the configuration values
func ValidateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	switch strings.ToLower(config.PDF.Backend) {
	case "native", "pdftotext", "tabula":
	default:
		return fmt.Errorf("invalid pdf backend: %s (must be 'native', 'pdftotext' or 'tabula')", config.PDF.Backend)
	}

	switch strings.ToLower(config.Output.Format) {
	case "text", "csv", "json":
	default:
		return fmt.Errorf("invalid output format: %s (must be 'text', 'csv' or 'json')", config.Output.Format)
	}

	if utf8.RuneCountInString(config.Output.CSVDelimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %q", config.Output.CSVDelimiter)
	}

	if config.Extract.FirstPage < 0 || config.Extract.LastPage < 0 {
		return fmt.Errorf("page numbers cannot be negative, got: %d-%d", config.Extract.FirstPage, config.Extract.LastPage)
	}
	if config.Extract.LastPage > 0 && config.Extract.FirstPage > config.Extract.LastPage {
		return fmt.Errorf("extract.first_page (%d) is after extract.last_page (%d)", config.Extract.FirstPage, config.Extract.LastPage)
	}

	return nil
}
