package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"repopress/internal/analysis"
	"repopress/internal/lang"
)

// buildSummary renders the natural-language repository summary: size
// metrics, language breakdown, the largest file, the highest-importance
// files, and duplicate-section counts.
func buildSummary(stats *analysis.Statistics, fileCount int, aggressive bool) string {
	var summary []string

	summary = append(summary, fmt.Sprintf(
		"Repository contains %d files with approximately %d lines of code.",
		fileCount, stats.TotalLines()))

	if line := languageSummary(stats.Languages); line != "" {
		summary = append(summary, line)
	}

	if len(stats.Largest) > 0 {
		summary = append(summary, fmt.Sprintf(
			"Largest file: %s (%d lines).", stats.Largest[0].Path, stats.Largest[0].Lines))
	}

	if key := keyFiles(stats.Importance, 5); len(key) > 0 {
		summary = append(summary, "Key files include:")
		for _, path := range key {
			summary = append(summary, "- "+path)
		}
	}

	if len(stats.Duplicates) > 0 {
		dupLines := 0
		for _, g := range stats.Duplicates {
			dupLines += g.Lines
		}
		summary = append(summary, fmt.Sprintf(
			"Found %d duplicated code sections (%d lines). Repetitive patterns have been compressed.",
			len(stats.Duplicates), dupLines))
	}

	if aggressive {
		summary = append(summary,
			"Note: Heavy compression applied - focusing on structure and key elements while aggressively summarizing details.")
	}

	return strings.Join(summary, "\n")
}

// languageSummary lists the top three languages by file count, with an
// "N other languages" tail. Unknown files are excluded.
func languageSummary(langs map[lang.Language]int) string {
	type langCount struct {
		name  lang.Language
		count int
	}

	var counts []langCount
	for l, c := range langs {
		if l == lang.Unknown {
			continue
		}
		counts = append(counts, langCount{l, c})
	}
	if len(counts) == 0 {
		return ""
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].name < counts[j].name
	})

	var parts []string
	for i, lc := range counts {
		if i == 3 {
			break
		}
		parts = append(parts, fmt.Sprintf("%s (%d)", lc.name, lc.count))
	}

	line := strings.Join(parts, ", ")
	if len(counts) > 3 {
		line += fmt.Sprintf(", and %d other languages", len(counts)-3)
	}
	return fmt.Sprintf("Main languages: %s.", line)
}

// keyFiles picks the highest-importance paths, ties broken by path so the
// listing is stable.
func keyFiles(importance map[string]int, limit int) []string {
	paths := make([]string, 0, len(importance))
	for path := range importance {
		paths = append(paths, path)
	}
	sort.Slice(paths, func(i, j int) bool {
		if importance[paths[i]] != importance[paths[j]] {
			return importance[paths[i]] > importance[paths[j]]
		}
		return paths[i] < paths[j]
	})
	if len(paths) > limit {
		paths = paths[:limit]
	}
	return paths
}
