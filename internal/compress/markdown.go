package compress

import (
	"regexp"
	"strings"
)

var headingRE = regexp.MustCompile(`^#{1,6}\s`)

// compressMarkdown keeps prose intact in non-aggressive tiers. The aggressive
// tier rewrites long documents down to their headings plus up to three lines
// after each heading, but only when that actually shrinks the document to
// under 60% of its original line count.
func (c *Compressor) compressMarkdown(content string) string {
	if !c.cfg.Aggressive {
		return c.generic(content)
	}

	lines := splitLines(content)
	if len(lines) > 50 {
		var result []string
		inSection := false
		afterHeading := 0

		for _, line := range lines {
			switch {
			case headingRE.MatchString(line):
				result = append(result, line)
				inSection = true
				afterHeading = 0
			case inSection && afterHeading < 3:
				result = append(result, line)
				afterHeading++
			case inSection:
				if len(result) == 0 || result[len(result)-1] != "..." {
					result = append(result, "...")
				}
				inSection = false
			}
		}

		if float64(len(result)) < float64(len(lines))*0.6 {
			return strings.Join(result, "\n")
		}
	}

	return c.generic(content)
}
