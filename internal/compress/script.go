package compress

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	scriptImportRE  = regexp.MustCompile(`(?m)^(?:import|export).*$`)
	fromModuleRE    = regexp.MustCompile(`from\s+['"](.+?)['"]`)
	importModuleRE  = regexp.MustCompile(`import\s+[^{]*?['"](.+?)['"]`)
	objectLiteralRE = regexp.MustCompile(`\{\s*(?:[^{]*?\n){5,}[^}]*?\}`)
	jsxOpenTagRE    = regexp.MustCompile(`<([A-Z][a-zA-Z0-9]*)[^>]{50,}?>`)
)

// compressScript handles the JavaScript/TypeScript/JSX family with regex
// heuristics only; no structural parser is attached to this family.
func (c *Compressor) compressScript(content string) string {
	content = c.generic(content)
	content = c.summarizeScriptImports(content)
	content = objectLiteralRE.ReplaceAllString(content, "{ /* Large object literal */ }")

	if c.cfg.Aggressive {
		content = collapseJSXComponents(content)
	}

	return content
}

// summarizeScriptImports replaces import/export statements with a single
// summary line listing the distinct imported module names (final path
// segment, sorted) once their count exceeds the threshold.
func (c *Compressor) summarizeScriptImports(content string) string {
	statements := scriptImportRE.FindAllString(content, -1)
	if len(statements) <= c.cfg.ImportSummaryThreshold {
		return content
	}

	joined := strings.Join(statements, "\n")
	var modules []string
	for _, m := range fromModuleRE.FindAllStringSubmatch(joined, -1) {
		modules = append(modules, m[1])
	}
	for _, m := range importModuleRE.FindAllStringSubmatch(joined, -1) {
		modules = append(modules, m[1])
	}

	seen := make(map[string]bool)
	var unique []string
	for _, m := range modules {
		parts := strings.Split(m, "/")
		name := parts[len(parts)-1]
		if !seen[name] {
			seen[name] = true
			unique = append(unique, name)
		}
	}
	sort.Strings(unique)

	for _, stmt := range statements {
		content = strings.ReplaceAll(content, stmt, "")
	}

	summary := "// Imports summary: " + strings.Join(unique, ", ")
	return summary + "\n\n" + strings.TrimLeft(content, " \t\n")
}

// collapseJSXComponents replaces components whose opening tag exceeds ~50
// characters and whose body exceeds ~100 characters with a placeholder that
// keeps only the tag name. Matching close tags are located by scanning, since
// RE2 has no backreferences.
func collapseJSXComponents(content string) string {
	var b strings.Builder

	for {
		loc := jsxOpenTagRE.FindStringSubmatchIndex(content)
		if loc == nil {
			b.WriteString(content)
			break
		}

		name := content[loc[2]:loc[3]]
		openEnd := loc[1]
		closing := "</" + name + ">"
		rel := strings.Index(content[openEnd:], closing)
		if rel < 100 {
			// No matching close tag, or the body is too short to collapse.
			b.WriteString(content[:openEnd])
			content = content[openEnd:]
			continue
		}

		b.WriteString(content[:loc[0]])
		b.WriteString(fmt.Sprintf("<%s /* props */ >/* complex component content */%s", name, closing))
		content = content[openEnd+rel+len(closing):]
	}

	return b.String()
}
