package scan

import (
	"regexp"
	"sort"
	"strings"
)

// maxSummaryLines is the line count above which large-file summarization
// applies.
const maxSummaryLines = 1200

// summarizeSuffixes is the source-file family the summarizer applies to.
var summarizeSuffixes = []string{".py", ".js", ".java", ".cpp", ".c"}

var (
	declLine     = regexp.MustCompile(`^\s*(def|class|import|from)`)
	markerLine   = regexp.MustCompile(`(TODO|FIXME|NOTE|IMPORTANT)`)
	commentLine  = regexp.MustCompile(`^\s*#`)
	constantLine = regexp.MustCompile(`^\s*[A-Z_]+\s*=`)
)

func shouldSummarize(path string) bool {
	for _, suffix := range summarizeSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// lineImportance scores a single line: declarations and imports weigh most,
// then annotation markers, comments, and constant assignments.
func lineImportance(line string) int {
	importance := 0
	if declLine.MatchString(line) {
		importance += 5
	}
	if markerLine.MatchString(line) {
		importance += 3
	}
	if commentLine.MatchString(line) {
		importance += 2
	}
	if constantLine.MatchString(line) {
		importance += 2
	}
	return importance
}

// SummarizeLargeCode reduces a very large source file to its highest-scoring
// lines, each kept with one line of surrounding context, wrapped in a summary
// header and footer. Content at or under maxLines passes through unchanged.
func SummarizeLargeCode(content string, maxLines int) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= maxLines {
		return content
	}

	scores := make([]int, len(lines))
	for i, line := range lines {
		scores[i] = lineImportance(line)
	}

	// Rank by score; stable sort keeps original order among equals.
	order := make([]int, len(lines))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	selected := order[:maxLines]

	keep := make(map[int]bool)
	for _, i := range selected {
		for j := i - 1; j <= i+1; j++ {
			if j >= 0 && j < len(lines) {
				keep[j] = true
			}
		}
	}

	final := make([]int, 0, len(keep))
	for i := range keep {
		final = append(final, i)
	}
	sort.Ints(final)

	var b strings.Builder
	b.WriteString("# Code summary (truncated for brevity)\n")
	for idx, i := range final {
		if idx > 0 {
			b.WriteString("\n")
		}
		b.WriteString(lines[i])
	}
	b.WriteString("\n# ... (truncated) ...")
	return b.String()
}
