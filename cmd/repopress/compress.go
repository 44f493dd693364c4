package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"repopress/internal/compress"
)

var compressGzip bool

var compressCmd = &cobra.Command{
	Use:   "compress <report.txt>",
	Short: "Compress an existing analysis report",
	Long: `Parses a previously written report, compresses its file contents, and
writes <name>_compressed_<level>.txt next to it. A repository summary is
inserted after the README section.

The level comes from --compress, falling back to the configured default.

Examples:
  repopress compress myproject_analysis.txt
  repopress compress myproject_analysis.txt --compress heavy --gzip`,
	Args: cobra.ExactArgs(1),
	RunE: runCompress,
}

func init() {
	compressCmd.Flags().BoolVar(&compressGzip, "gzip", false, "Gzip the compressed report")
	rootCmd.AddCommand(compressCmd)
}

func runCompress(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger := newLogger(cfg)

	fallback, err := compress.ParseLevel(cfg.Compression.Level)
	if err != nil {
		return err
	}
	level, err := resolveLevel(fallback)
	if err != nil {
		return err
	}
	if level == compress.LevelNone {
		return fmt.Errorf("nothing to do: compression level is none")
	}

	gzipped := compressGzip || cfg.Output.Gzip

	compressedPath, err := compressReport(args[0], level, gzipped, logger)
	if err != nil {
		return err
	}
	fmt.Printf("Compressed analysis saved to '%s'.\n", compressedPath)
	return nil
}
