// Package pipeline drives whole-repository compaction: statistics, file
// selection, per-file compression intensity, duplicate substitution, and
// summary generation.
package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"repopress/internal/analysis"
	"repopress/internal/compress"
	"repopress/internal/lang"
	"repopress/internal/logging"
)

// SkippedFilesPath is the synthetic entry listing the files dropped by the
// heavy tier's file-count cap.
const SkippedFilesPath = "_SKIPPED_FILES_SUMMARY.txt"

const (
	heavyFileCapTrigger = 20
	heavyFileCapKeep    = 15
)

// Options configures a compaction run. The zero value is usable.
type Options struct {
	// Logger receives run diagnostics; nil disables them.
	Logger *logging.Logger

	// IsTestFile overrides the test-file naming heuristic used for stubbing
	// in the aggressive tier and for importance scoring.
	IsTestFile analysis.TestFilePredicate
}

// Result is the outcome of one compaction run. Files' key set is a subset of
// the input paths, plus SkippedFilesPath when the heavy tier dropped files.
type Result struct {
	RunID   uuid.UUID
	Level   compress.Level
	Summary string
	Files   map[string]string
	Stats   *analysis.Statistics
}

// Orchestrator runs whole-repository compaction. It holds no state across
// runs; every Run computes its statistics fresh.
type Orchestrator struct {
	logger     *logging.Logger
	isTestFile analysis.TestFilePredicate
}

// NewOrchestrator creates an Orchestrator from the given options.
func NewOrchestrator(opts Options) *Orchestrator {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	isTest := opts.IsTestFile
	if isTest == nil {
		isTest = analysis.DefaultTestFilePredicate
	}
	return &Orchestrator{
		logger:     logger.Named("pipeline"),
		isTestFile: isTest,
	}
}

// Run compacts a repository snapshot at the given level. The input map is
// never mutated. Level none returns a copy of the input untouched, with no
// summary.
func (o *Orchestrator) Run(level compress.Level, files map[string]string) *Result {
	result := &Result{
		RunID: uuid.New(),
		Level: level,
		Files: make(map[string]string, len(files)),
	}

	if level == compress.LevelNone {
		for path, content := range files {
			result.Files[path] = content
		}
		return result
	}

	cfg := compress.ConfigForLevel(level)
	o.logger.Info("Starting repository compression", map[string]interface{}{
		"run_id": result.RunID.String(),
		"level":  string(level),
		"files":  len(files),
	})

	scorer := &analysis.Scorer{IsTestFile: o.isTestFile}
	stats := analysis.Analyze(files, scorer)
	result.Stats = stats
	result.Summary = buildSummary(stats, len(files), cfg.Aggressive)

	working, skipped := o.capFileCount(cfg, files, stats)

	compressor := compress.NewCompressor(cfg, o.logger)
	paths := sortedPaths(working)
	for _, path := range paths {
		result.Files[path] = o.compressOne(compressor, cfg, stats, path, working[path])
	}

	o.substituteDuplicates(cfg, stats, result.Files)

	if len(skipped) > 0 {
		result.Files[SkippedFilesPath] = skippedFilesSummary(skipped)
		o.logger.Info("Heavy compression: skipped less important files", map[string]interface{}{
			"skipped": len(skipped),
		})
	}

	return result
}

// capFileCount applies the heavy tier's file-count cap: when the snapshot
// exceeds the trigger, only the most important files survive. Ranking is by
// importance descending with path order breaking ties.
func (o *Orchestrator) capFileCount(cfg compress.Config, files map[string]string, stats *analysis.Statistics) (map[string]string, []string) {
	if !cfg.Aggressive || len(files) <= heavyFileCapTrigger {
		return files, nil
	}

	paths := sortedPaths(files)
	sort.SliceStable(paths, func(i, j int) bool {
		return stats.Importance[paths[i]] > stats.Importance[paths[j]]
	})

	kept := make(map[string]string, heavyFileCapKeep)
	for _, path := range paths[:heavyFileCapKeep] {
		kept[path] = files[path]
	}

	var skipped []string
	for _, path := range sortedPaths(files) {
		if _, ok := kept[path]; !ok {
			skipped = append(skipped, path)
		}
	}

	return kept, skipped
}

// compressOne applies per-file compaction intensity by importance tier.
func (o *Orchestrator) compressOne(compressor *compress.Compressor, cfg compress.Config, stats *analysis.Statistics, path, content string) string {
	if cfg.Aggressive && o.isTestFile(path) {
		o.logger.Debug("Summarizing test file", map[string]interface{}{"path": path})
		return fmt.Sprintf("# Test file summary: %s\n# %d lines of testing code\n# Skipped in heavy compression mode",
			path, stats.FileLines[path])
	}

	importance := stats.Importance[path]
	switch {
	case importance >= 8:
		return compressor.CompressFile(path, content)

	case importance >= 5:
		if cfg.Aggressive {
			content = compressionHeader(path) + content
		}
		return compressor.CompressFile(path, content)

	default:
		if cfg.Aggressive && stats.FileLines[path] > 30 {
			o.logger.Debug("Summarizing low importance file", map[string]interface{}{"path": path})
			return lowImportanceStub(path, content, stats.FileLines[path])
		}
		return compressor.CompressFile(path, content)
	}
}

// substituteDuplicates replaces non-canonical copies of qualifying chunks
// with a reference note, but only where the chunk survived compaction intact.
func (o *Orchestrator) substituteDuplicates(cfg compress.Config, stats *analysis.Statistics, files map[string]string) {
	for _, group := range stats.Duplicates {
		if len(group.Files) < cfg.DuplicateThreshold {
			continue
		}
		canonical := group.Files[0]
		replacement := fmt.Sprintf("# DUPLICATE CODE: Same as in %s\n# %d lines\n", canonical, group.Lines)

		for _, path := range group.Files[1:] {
			content, ok := files[path]
			if !ok || !strings.Contains(content, group.Content) {
				continue
			}
			files[path] = strings.ReplaceAll(content, group.Content, replacement)
			o.logger.Debug("Replaced duplicate code with reference", map[string]interface{}{
				"path":      path,
				"canonical": canonical,
			})
		}
	}
}

func compressionHeader(path string) string {
	return fmt.Sprintf("# Note: This file has been compressed for LLM analysis\n# Original file: %s\n\n", path)
}

func lowImportanceStub(path, content string, lines int) string {
	head := strings.Split(content, "\n")
	if len(head) > 10 {
		head = head[:10]
	}
	return fmt.Sprintf("# File summary: %s (%d lines, %s)\n# This file was compressed due to lower relevance.\n\n# First few lines:\n%s\n\n# ...",
		path, lines, lang.FromPath(path), strings.Join(head, "\n"))
}

func skippedFilesSummary(skipped []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Skipped %d less important files in heavy compression mode\n\n", len(skipped))
	b.WriteString("# Files skipped:\n")
	for i, path := range skipped {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("# - " + path)
	}
	return b.String()
}

func sortedPaths(files map[string]string) []string {
	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
