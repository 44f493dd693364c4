package compress

import (
	"fmt"
	"regexp"
)

var (
	htmlCommentRE = regexp.MustCompile(`(?s)<!--.*?-->`)
	tagGapRE      = regexp.MustCompile(`>\s+<`)

	listItemRE  = regexp.MustCompile(`(?s)<li\b[^>]*>.*?</li>`)
	listRunRE   = regexp.MustCompile(`(?s)(<li\b[^>]*>.*?</li>)(\s*<li\b[^>]*>.*?</li>)(?:\s*<li\b[^>]*>.*?</li>){3,}`)
	tableRowRE  = regexp.MustCompile(`(?s)<tr\b[^>]*>.*?</tr>`)
	tableRunRE  = regexp.MustCompile(`(?s)(<tr\b[^>]*>.*?</tr>)(\s*<tr\b[^>]*>.*?</tr>)(?:\s*<tr\b[^>]*>.*?</tr>){3,}`)
)

// compressHTML strips comment blocks and normalizes inter-tag whitespace.
// The aggressive tier additionally collapses long runs of repeated list
// items and table rows, keeping the first two occurrences.
func (c *Compressor) compressHTML(content string) string {
	content = htmlCommentRE.ReplaceAllString(content, "")
	content = tagGapRE.ReplaceAllString(content, ">\n<")

	if c.cfg.Aggressive {
		content = collapseRepeatedElements(content, listItemRE, listRunRE, "list items")
		content = collapseRepeatedElements(content, tableRowRE, tableRunRE, "table rows")
	}

	return content
}

func collapseRepeatedElements(content string, itemRE, runRE *regexp.Regexp, label string) string {
	items := itemRE.FindAllString(content, -1)
	if len(items) <= 5 {
		return content
	}

	note := fmt.Sprintf("${1}${2}\n<!-- ... and %d more %s ... -->", len(items)-2, label)
	return runRE.ReplaceAllString(content, note)
}
