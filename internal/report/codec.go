// Package report reads and writes the textual analysis report format: a
// README section, a structure listing, and a sequence of file blocks of the
// form "File: <path>" / "Content:" / the file body, separated by blank lines.
package report

import (
	"fmt"
	"sort"
	"strings"
)

const (
	fileHeaderPrefix = "File: "
	contentHeader    = "Content:"
)

// ParseFileBlocks extracts the path-to-content map from a file-contents
// section. Paths and bodies are whitespace-trimmed; a body runs until a blank
// line followed by the next file header, or the end of the section. Malformed
// blocks are skipped rather than failing the parse.
func ParseFileBlocks(section string) map[string]string {
	files := make(map[string]string)
	lines := strings.Split(section, "\n")

	i := 0
	for i < len(lines) {
		if !isFileHeader(lines[i]) {
			i++
			continue
		}
		path := strings.TrimSpace(strings.TrimPrefix(strings.TrimRight(lines[i], "\r"), fileHeaderPrefix))
		if path == "" || i+1 >= len(lines) || strings.TrimRight(lines[i+1], "\r") != contentHeader {
			i++
			continue
		}

		j := i + 2
		var body []string
		for j < len(lines) {
			if strings.TrimRight(lines[j], "\r") == "" && j+1 < len(lines) && isFileHeader(lines[j+1]) {
				break
			}
			body = append(body, strings.TrimRight(lines[j], "\r"))
			j++
		}

		files[path] = strings.TrimSpace(strings.Join(body, "\n"))
		i = j
	}

	return files
}

func isFileHeader(line string) bool {
	return strings.HasPrefix(strings.TrimRight(line, "\r"), fileHeaderPrefix)
}

// FormatFileBlocks renders a path-to-content map back into the file-contents
// block format, in sorted path order.
func FormatFileBlocks(files map[string]string) string {
	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var b strings.Builder
	for _, path := range paths {
		fmt.Fprintf(&b, "File: %s\nContent:\n%s\n\n", path, files[path])
	}
	return b.String()
}
