package analysis

import (
	"path/filepath"
	"sort"
	"strings"

	"repopress/internal/lang"
)

// FileStat pairs a path with its line count for largest-file rankings.
type FileStat struct {
	Path  string
	Lines int
}

// Statistics holds the repository-wide measurements gathered before
// compaction. All per-file maps are keyed by the file's path.
type Statistics struct {
	FileLines  map[string]int
	References map[string]int
	Importance map[string]int
	Languages  map[lang.Language]int
	Largest    []FileStat
	Duplicates []DuplicateGroup
}

// TotalLines sums the line counts of every file.
func (s *Statistics) TotalLines() int {
	total := 0
	for _, lines := range s.FileLines {
		total += lines
	}
	return total
}

// Analyze computes the full pre-compaction statistics for a snapshot. The
// scorer may be nil, in which case default importance rules apply.
func Analyze(files map[string]string, scorer *Scorer) *Statistics {
	if scorer == nil {
		scorer = NewScorer()
	}

	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	stats := &Statistics{
		FileLines:  make(map[string]int, len(files)),
		References: make(map[string]int, len(files)),
		Importance: make(map[string]int, len(files)),
		Languages:  make(map[lang.Language]int),
	}

	for _, path := range paths {
		stats.FileLines[path] = countLines(files[path])
		stats.Languages[lang.FromPath(path)]++
	}

	stats.References = countReferences(paths, files)

	for _, path := range paths {
		stats.Importance[path] = scorer.Score(path, stats.References)
	}

	stats.Largest = largestFiles(paths, stats.FileLines, 10)
	stats.Duplicates = FindDuplicates(files)

	return stats
}

// countReferences counts, for each file, how many other files import it by
// base name. The heuristic scans for import and from statements naming the
// file's stem. Each referencing file counts once.
func countReferences(paths []string, files map[string]string) map[string]int {
	refs := make(map[string]int, len(paths))
	for _, path := range paths {
		name := filepath.Base(path)
		module := strings.TrimSuffix(name, filepath.Ext(name))
		for _, other := range paths {
			if other == path {
				continue
			}
			if referencesModule(files[other], module) {
				refs[path]++
			}
		}
	}
	return refs
}

func referencesModule(content, module string) bool {
	if strings.Contains(content, "import "+module) ||
		strings.Contains(content, "from "+module) {
		return true
	}
	return strings.Contains(content, "import ") &&
		strings.Contains(content, "from '"+module)
}

// countLines counts logical lines; a trailing newline does not start a new
// line and empty content has zero lines.
func countLines(content string) int {
	if content == "" {
		return 0
	}
	n := len(strings.Split(content, "\n"))
	if strings.HasSuffix(content, "\n") {
		n--
	}
	return n
}

func largestFiles(paths []string, lines map[string]int, limit int) []FileStat {
	ranked := make([]FileStat, 0, len(paths))
	for _, path := range paths {
		ranked = append(ranked, FileStat{Path: path, Lines: lines[path]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Lines != ranked[j].Lines {
			return ranked[i].Lines > ranked[j].Lines
		}
		return ranked[i].Path < ranked[j].Path
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
