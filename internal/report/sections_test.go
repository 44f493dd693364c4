package report

import (
	"strings"
	"testing"
)

func sampleReport() string {
	return strings.Join([]string{
		"README:",
		"This project does things.",
		"",
		"Structure:",
		"src/",
		"  main.py",
		"",
		"File Contents:",
		"File: src/main.py",
		"Content:",
		"import os",
		"",
	}, "\n")
}

func TestSplitReport(t *testing.T) {
	r := SplitReport(sampleReport())

	if want := "README:\nThis project does things."; r.Readme != want {
		t.Errorf("Readme = %q, want %q", r.Readme, want)
	}
	if want := "Structure:\nsrc/\n  main.py"; r.Structure != want {
		t.Errorf("Structure = %q, want %q", r.Structure, want)
	}
	if !strings.HasPrefix(r.FileContents, "File Contents:\n") {
		t.Errorf("FileContents missing marker: %q", r.FileContents)
	}
	if !strings.Contains(r.FileContents, "File: src/main.py") {
		t.Errorf("FileContents missing file block: %q", r.FileContents)
	}
}

func TestSplitReportWithoutMarkers(t *testing.T) {
	r := SplitReport("just some text\n")

	if r.Readme != "just some text" {
		t.Errorf("Readme = %q, want the whole document", r.Readme)
	}
	if r.Structure != "" || r.FileContents != "" {
		t.Errorf("unexpected sections: %+v", r)
	}
}

func TestSplitReportWithoutFileContents(t *testing.T) {
	r := SplitReport("README:\nhi\n\nStructure:\nsrc/\n")

	if r.Structure != "Structure:\nsrc/" {
		t.Errorf("Structure = %q", r.Structure)
	}
	if r.FileContents != "" {
		t.Errorf("FileContents = %q, want empty", r.FileContents)
	}
}

func TestRebuildReport(t *testing.T) {
	r := SplitReport(sampleReport())
	files := map[string]string{"src/main.py": "import os"}

	got := RebuildReport(r, "Repository contains 1 files with approximately 1 lines of code.", files)

	wantOrder := []string{
		"README:",
		"Repository Analysis Summary:",
		"Repository contains 1 files",
		"Structure:",
		"File Contents:",
		"File: src/main.py",
	}
	last := -1
	for _, marker := range wantOrder {
		idx := strings.Index(got, marker)
		if idx < 0 {
			t.Fatalf("missing %q in rebuilt report: %q", marker, got)
		}
		if idx <= last {
			t.Errorf("%q out of order in rebuilt report", marker)
		}
		last = idx
	}

	reparsed := ParseFileBlocks(SplitReport(got).FileContents)
	if reparsed["src/main.py"] != "import os" {
		t.Errorf("rebuilt report does not round trip: %v", reparsed)
	}
}
