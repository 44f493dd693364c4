package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"repopress/internal/compress"
	"repopress/internal/report"
	"repopress/internal/scan"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [directory]",
	Short: "Analyze a local directory into a text report",
	Long: `Walks a local directory, skips ignored and binary files, and writes a
single text report: the README, the directory structure, and every file's
contents.

With --compress, a compressed variant of the report is written as well.

Examples:
  repopress analyze                      # Analyze the current directory
  repopress analyze ./myproject
  repopress analyze ./myproject --compress heavy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	cfg := loadConfig()
	logger := newLogger(cfg)

	level, err := resolveLevel(compress.LevelNone)
	if err != nil {
		return err
	}

	fmt.Printf("Analyzing directory: %s\n", dir)
	snap, err := scan.ScanDirectory(dir, scanOptions(cfg), logger)
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	outputName := filepath.Base(abs) + "_analysis.txt"

	if _, err := report.WriteReport(outputName, localReport(snap), false); err != nil {
		return err
	}
	fmt.Printf("Directory analysis saved to '%s'.\n", outputName)

	if level == compress.LevelNone {
		return nil
	}

	compressedPath, err := compressReport(outputName, level, cfg.Output.Gzip, logger)
	if err != nil {
		return err
	}
	fmt.Printf("Compressed analysis saved to '%s'.\n", compressedPath)
	return nil
}
