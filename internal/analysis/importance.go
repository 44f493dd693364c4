// Package analysis provides the cross-file passes run before compaction:
// importance scoring, duplicate-chunk detection, and repository statistics.
package analysis

import (
	"path/filepath"
	"strings"
)

// TestFilePredicate reports whether a path names a test file. It is
// injectable so callers can supply project-specific naming conventions.
type TestFilePredicate func(path string) bool

// DefaultTestFilePredicate matches paths containing "test" or "spec"
// anywhere, directory names included.
func DefaultTestFilePredicate(path string) bool {
	lower := strings.ToLower(path)
	return strings.Contains(lower, "test") || strings.Contains(lower, "spec")
}

// entryPointNames score highest: these files anchor comprehension of a repo.
var entryPointNames = map[string]bool{
	"main.py":   true,
	"app.py":    true,
	"index.js":  true,
	"server.js": true,
	"app.js":    true,
	"main.go":   true,
}

var coreExtensions = map[string]bool{
	".py":  true,
	".js":  true,
	".ts":  true,
	".jsx": true,
	".tsx": true,
	".go":  true,
}

var configSuffixes = []string{"config.js", "config.py", "settings.py"}

// Scorer assigns each file a 0-10 relevance score from naming conventions,
// extension, and the cross-file reference-count heuristic.
type Scorer struct {
	// IsTestFile overrides the test-file naming heuristic when set.
	IsTestFile TestFilePredicate
}

// NewScorer creates a Scorer with the default test-file predicate.
func NewScorer() *Scorer {
	return &Scorer{IsTestFile: DefaultTestFilePredicate}
}

// Score ranks a file's relevance. Rules apply in order, first match wins:
// entry points 10, core source extensions 8, config files 7, files referenced
// by five or more others 7, test files 3, default 5.
func (s *Scorer) Score(path string, references map[string]int) int {
	filename := strings.ToLower(filepath.Base(path))
	ext := filepath.Ext(filename)

	if entryPointNames[filename] {
		return 10
	}
	if coreExtensions[ext] {
		return 8
	}
	for _, suffix := range configSuffixes {
		if strings.HasSuffix(filename, suffix) {
			return 7
		}
	}
	if references[path] >= 5 {
		return 7
	}

	isTest := s.IsTestFile
	if isTest == nil {
		isTest = DefaultTestFilePredicate
	}
	if isTest(path) {
		return 3
	}

	return 5
}
