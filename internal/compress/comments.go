package compress

import (
	"fmt"
	"regexp"
	"strings"
)

// Block documentation comments: triple-quoted strings plus C-style block
// comments. Backreference-free so they stay inside RE2.
var blockCommentREs = []*regexp.Regexp{
	regexp.MustCompile(`"""[\s\S]*?"""`),
	regexp.MustCompile(`'''[\s\S]*?'''`),
	regexp.MustCompile(`/\*[\s\S]*?\*/`),
}

var (
	paramMarkerRE   = regexp.MustCompile(`@param|@arg|:param|:arg|Parameters:`)
	returnMarkerRE  = regexp.MustCompile(`@return|:return|Returns:`)
	exampleMarkerRE = regexp.MustCompile(`@example|Example:|Examples:`)

	lineCommentRE = regexp.MustCompile(`^\s*(#|//)`)
)

// compactBlockComments shortens multi-line documentation blocks. Blocks of
// three lines or fewer pass through verbatim; longer blocks keep their first
// and last lines around a one-line summary of the detected markers.
func (c *Compressor) compactBlockComments(content string) string {
	for _, re := range blockCommentREs {
		content = re.ReplaceAllStringFunc(content, c.compactBlock)
	}
	return content
}

func (c *Compressor) compactBlock(block string) string {
	lines := strings.Split(block, "\n")
	if len(lines) <= 3 {
		return block
	}

	first := lines[0]
	last := lines[len(lines)-1]

	if c.cfg.Aggressive {
		return fmt.Sprintf("%s\n# Compressed %d line docstring\n%s", first, len(lines), last)
	}

	var notes []string
	if params := paramMarkerRE.FindAllString(block, -1); len(params) > 0 {
		notes = append(notes, fmt.Sprintf("%d params", len(params)))
	}
	if returnMarkerRE.MatchString(block) {
		notes = append(notes, "return info")
	}
	if exampleMarkerRE.MatchString(block) {
		notes = append(notes, "examples")
	}

	if len(notes) > 0 {
		return fmt.Sprintf("%s\n# Compressed docstring (%s)\n%s", first, strings.Join(notes, ", "), last)
	}
	return fmt.Sprintf("%s\n# Compressed docstring (%d lines)\n%s", first, len(lines), last)
}

// compactLineComments collapses runs of more than three consecutive
// comment-only lines. The non-aggressive tier keeps the first and last lines
// of the run around a count marker; the aggressive tier collapses any run of
// more than five lines to the first line plus the marker.
func (c *Compressor) compactLineComments(content string) string {
	lines := strings.Split(content, "\n")
	var result []string
	var run []string

	flush := func() {
		if len(run) == 0 {
			return
		}
		if len(run) > 3 {
			if c.cfg.Aggressive && len(run) > 5 {
				result = append(result, run[0])
				result = append(result, fmt.Sprintf("# ... %d more comment lines ...", len(run)-1))
			} else {
				result = append(result, run[0])
				result = append(result, fmt.Sprintf("# ... %d more comment lines ...", len(run)-2))
				result = append(result, run[len(run)-1])
			}
		} else {
			result = append(result, run...)
		}
		run = nil
	}

	for _, line := range lines {
		if lineCommentRE.MatchString(line) {
			run = append(run, line)
			continue
		}
		flush()
		result = append(result, line)
	}
	flush()

	return strings.Join(result, "\n")
}
