package report

import "strings"

// Report is an analysis report split into its three top-level sections. Any
// section may be empty when the source document lacks it.
type Report struct {
	Readme       string
	Structure    string
	FileContents string
}

// SplitReport divides a report document at its "Structure:" and
// "File Contents:" markers. Content before "Structure:" is the README
// section, marker lines included in their sections.
func SplitReport(content string) Report {
	var r Report

	rest := content
	if idx := strings.Index(rest, "Structure:"); idx >= 0 {
		r.Readme = strings.TrimSpace(rest[:idx])
		rest = rest[idx:]
	} else {
		r.Readme = strings.TrimSpace(rest)
		return r
	}

	if idx := strings.Index(rest, "File Contents:"); idx >= 0 {
		r.Structure = strings.TrimSpace(rest[:idx])
		r.FileContents = strings.TrimSpace(rest[idx:])
	} else {
		r.Structure = strings.TrimSpace(rest)
	}

	return r
}

// RebuildReport assembles a compressed report: the README section, the
// repository summary, the structure listing, and the re-rendered file blocks.
func RebuildReport(r Report, summary string, files map[string]string) string {
	var b strings.Builder

	b.WriteString(r.Readme)
	b.WriteString("\n\n")
	b.WriteString("Repository Analysis Summary:\n")
	b.WriteString(summary)
	b.WriteString("\n\n")
	b.WriteString(r.Structure)
	b.WriteString("\n\n")
	b.WriteString("File Contents:\n")
	b.WriteString(FormatFileBlocks(files))

	return b.String()
}
