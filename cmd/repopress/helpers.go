package main

import (
	"fmt"
	"os"
	"strings"

	"repopress/internal/compress"
	"repopress/internal/config"
	"repopress/internal/logging"
	"repopress/internal/pipeline"
	"repopress/internal/report"
	"repopress/internal/scan"
)

// scanOptions maps the scan section of the config onto collaborator options.
func scanOptions(cfg *config.Config) scan.Options {
	return scan.Options{
		MaxFileSize:    int64(cfg.Scan.MaxFileSizeBytes),
		SummarizeLarge: cfg.Scan.SummarizeLargeFiles,
	}
}

// localReport assembles the analyze report document from a snapshot.
func localReport(snap *scan.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "README:\n%s\n\n", snap.Readme)
	fmt.Fprintf(&b, "Directory Structure:\n%s\n\n", snap.Structure)
	b.WriteString("File Contents:\n")
	b.WriteString(report.FormatFileBlocks(snap.Files))
	return b.String()
}

// remoteReport assembles the fetch report document. The snapshot's structure
// listing already carries its "Repository Structure:" header.
func remoteReport(snap *scan.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "README:\n%s\n\n", snap.Readme)
	fmt.Fprintf(&b, "%s\n\n", snap.Structure)
	b.WriteString("File Contents:\n")
	b.WriteString(report.FormatFileBlocks(snap.Files))
	return b.String()
}

// compressReport runs the compression engine over an existing report file and
// writes the compressed variant next to it. Returns the path written.
func compressReport(reportPath string, level compress.Level, gzipped bool, logger *logging.Logger) (string, error) {
	data, err := os.ReadFile(reportPath)
	if err != nil {
		return "", fmt.Errorf("reading report: %w", err)
	}

	doc := report.SplitReport(string(data))
	files := report.ParseFileBlocks(doc.FileContents)

	orchestrator := pipeline.NewOrchestrator(pipeline.Options{Logger: logger})
	result := orchestrator.Run(level, files)

	output := report.RebuildReport(doc, result.Summary, result.Files)

	outPath := report.CompressedName(reportPath, string(level))
	finalPath, err := report.WriteReport(outPath, output, gzipped)
	if err != nil {
		return "", err
	}

	printCompressionStats(reportPath, finalPath)
	return finalPath, nil
}

// printCompressionStats reports before/after sizes of a compression run.
func printCompressionStats(originalPath, compressedPath string) {
	original, err := os.Stat(originalPath)
	if err != nil {
		return
	}
	compressed, err := os.Stat(compressedPath)
	if err != nil {
		return
	}

	fmt.Printf("Original size: %.1f KB\n", float64(original.Size())/1024)
	fmt.Printf("Compressed size: %.1f KB\n", float64(compressed.Size())/1024)
	fmt.Printf("Compression ratio: %.1f%%\n", float64(compressed.Size())/float64(original.Size())*100)
}
