package compress

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	blankRunRE   = regexp.MustCompile(`\n\s*\n\s*\n+`)
	trailingWSRE = regexp.MustCompile(`(?m)[ \t]+$`)
	interiorWSRE = regexp.MustCompile(`[ \t]{2,}`)
	indentRE     = regexp.MustCompile(`^[ \t]*`)
)

// generic applies the language-independent passes: block and line comment
// compaction, blank-line collapsing, and trailing-whitespace trimming. The
// aggressive tier additionally collapses interior whitespace and truncates
// very long lines.
func (c *Compressor) generic(content string) string {
	content = c.compactBlockComments(content)
	content = c.compactLineComments(content)
	content = blankRunRE.ReplaceAllString(content, "\n\n")
	content = trailingWSRE.ReplaceAllString(content, "")

	if c.cfg.Aggressive {
		content = collapseInteriorWhitespace(content)
		content = truncateLongLines(content, 100)
	}

	return content
}

// collapseInteriorWhitespace squeezes runs of two or more spaces/tabs between
// non-space characters to a single space, leaving indentation untouched.
// Trailing whitespace is already stripped, so every run in the de-indented
// remainder sits between non-space characters.
func collapseInteriorWhitespace(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		indent := indentRE.FindString(line)
		rest := line[len(indent):]
		lines[i] = indent + interiorWSRE.ReplaceAllString(rest, " ")
	}
	return strings.Join(lines, "\n")
}

// truncateLongLines cuts lines significantly past maxLength down to
// maxLength characters plus an ellipsis. Indentation survives as the prefix.
func truncateLongLines(content string, maxLength int) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		runes := []rune(line)
		if len(runes) > maxLength+20 {
			lines[i] = string(runes[:maxLength]) + "..."
		}
	}
	return strings.Join(lines, "\n")
}

// capLines enforces the per-file line budget: files over MaxLinesToKeep keep
// their first and last thirds around a marker counting the elided lines.
func (c *Compressor) capLines(content string, lineCount int) (string, int) {
	if lineCount <= c.cfg.MaxLinesToKeep {
		return content, lineCount
	}

	keep := c.cfg.MaxLinesToKeep / 3
	lines := splitLines(content)
	elided := lineCount - 2*keep

	head := strings.Join(lines[:keep], "\n")
	tail := strings.Join(lines[len(lines)-keep:], "\n")
	capped := head + fmt.Sprintf("\n# ... %d more lines ...\n", elided) + tail

	return capped, 2*keep + 1
}

// splitLines splits on newlines without a trailing empty element, mirroring
// how line counts are reported elsewhere in the engine.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func lineCount(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}
