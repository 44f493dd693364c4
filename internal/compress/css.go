package compress

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	cssCommentRE   = regexp.MustCompile(`(?s)/\*.*?\*/`)
	vendorPrefixRE = regexp.MustCompile(`(?:-webkit-|-moz-|-ms-|-o-)[^\n]*?;`)
	vendorLineRE   = regexp.MustCompile(`(?m)^[ \t]*(?:-webkit-|-ms-|-moz-|-o-).*?;[ \t]*$`)
	cssRuleRE      = regexp.MustCompile(`[^{}]+\{([^{}]+)\}`)
)

// compressCSS strips comments and consolidates vendor-prefixed declarations
// once more than five are present. The aggressive tier truncates rule blocks
// with more than eight declarations to their first four.
func (c *Compressor) compressCSS(content string) string {
	content = cssCommentRE.ReplaceAllString(content, "")

	if prefixed := vendorPrefixRE.FindAllString(content, -1); len(prefixed) > 5 {
		content = vendorLineRE.ReplaceAllString(content, "")
		content = "/* Note: Vendor prefixes consolidated */\n" + content
	}

	if c.cfg.Aggressive {
		content = c.truncateLongRules(content)
	}

	return content
}

func (c *Compressor) truncateLongRules(content string) string {
	for _, m := range cssRuleRE.FindAllStringSubmatch(content, -1) {
		body := m[1]
		count := strings.Count(body, ";")
		if count <= 8 {
			continue
		}

		parts := strings.Split(body, ";")
		summarized := strings.Join(parts[:4], ";") +
			fmt.Sprintf("; /* ... %d more properties ... */", count-4)
		content = strings.ReplaceAll(content, body, summarized)
	}
	return content
}
