package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"repopress/internal/compress"
	"repopress/internal/config"
	"repopress/internal/logging"
	"repopress/internal/version"
)

var (
	// compressFlag is the CLI --compress flag value
	compressFlag string
	// debugFlag raises log verbosity without changing output content
	debugFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "repopress",
	Short: "Repopress - LLM-friendly repository snapshots",
	Long: `Repopress turns a repository into a single text report and compresses it
into an LLM-friendly form: imports are summarized, large literals and comment
blocks collapse, duplicated chunks are referenced once, and low-value files
become short stubs.`,
	Version: version.Info(),
}

func init() {
	rootCmd.SetVersionTemplate("repopress version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&compressFlag, "compress", "",
		"Compression level: none, light, medium, or heavy")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"Enable debug logging")
}

// resolveLevel determines the effective compression level.
// Precedence: --compress flag > the given fallback.
func resolveLevel(fallback compress.Level) (compress.Level, error) {
	if compressFlag != "" {
		return compress.ParseLevel(compressFlag)
	}
	return fallback, nil
}

// loadConfig reads .repopress/config.json from the current directory, falling
// back to defaults when it is missing or invalid.
func loadConfig() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		return config.DefaultConfig()
	}

	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not load config: %v\n", err)
		return config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Invalid config, using defaults: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

// newLogger builds the CLI logger from config, with --debug overriding the
// configured level.
func newLogger(cfg *config.Config) *logging.Logger {
	level := logging.Level(cfg.Logging.Level)
	if debugFlag {
		level = logging.DebugLevel
	}
	return logging.NewLogger(logging.Config{
		Format: logging.Format(cfg.Logging.Format),
		Level:  level,
	})
}
