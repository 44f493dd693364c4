package scan

import (
	"strings"
	"testing"
)

func TestShouldSummarize(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"main.py", true},
		{"src/app.js", true},
		{"Service.java", true},
		{"engine.cpp", true},
		{"lib.c", true},
		{"notes.txt", false},
		{"page.html", false},
		{"styles.css", false},
	}

	for _, tt := range tests {
		if got := shouldSummarize(tt.path); got != tt.want {
			t.Errorf("shouldSummarize(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestLineImportance(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"def main():", 5},
		{"import os", 5},
		{"# NOTE check this", 5},
		{"# plain comment", 2},
		{"MAX_SIZE = 10", 2},
		{"x = 1", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := lineImportance(tt.line); got != tt.want {
			t.Errorf("lineImportance(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestSummarizeLargeCode(t *testing.T) {
	content := strings.Join([]string{
		"import os",
		"x = 1",
		"",
		"def main():",
		"    pass",
		"filler1",
		"filler2",
		"filler3",
		"# NOTE keep",
		"CONSTANT = 5",
	}, "\n")

	got := SummarizeLargeCode(content, 3)

	if !strings.HasPrefix(got, "# Code summary (truncated for brevity)\n") {
		t.Errorf("missing header:\n%s", got)
	}
	if !strings.HasSuffix(got, "\n# ... (truncated) ...") {
		t.Errorf("missing footer:\n%s", got)
	}
	for _, want := range []string{"import os", "def main():", "# NOTE keep"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
	// filler3 survives as context of the NOTE line; the others do not.
	if strings.Contains(got, "filler1") || strings.Contains(got, "filler2") {
		t.Errorf("summary kept unimportant lines:\n%s", got)
	}
	if !strings.Contains(got, "filler3") {
		t.Errorf("summary dropped context line:\n%s", got)
	}
}

func TestSummarizeLargeCodeSmallInputUnchanged(t *testing.T) {
	content := "import os\nx = 1\n"
	if got := SummarizeLargeCode(content, 1200); got != content {
		t.Errorf("SummarizeLargeCode() = %q, want unchanged input", got)
	}
}

func TestScanDirectorySummarizeLarge(t *testing.T) {
	dir := t.TempDir()
	var b strings.Builder
	b.WriteString("import os\n\ndef main():\n    pass\n")
	for i := 0; i < 1300; i++ {
		b.WriteString("x = 1\n")
	}
	writeFile(t, dir, "big.py", b.String())
	writeFile(t, dir, "big.txt", b.String())

	snap, err := ScanDirectory(dir, Options{SummarizeLarge: true}, nil)
	if err != nil {
		t.Fatalf("ScanDirectory() error = %v", err)
	}

	if !strings.HasPrefix(snap.Files["big.py"], "# Code summary (truncated for brevity)\n") {
		t.Errorf("big.py not summarized:\n%.80s", snap.Files["big.py"])
	}
	if strings.HasPrefix(snap.Files["big.txt"], "# Code summary") {
		t.Error("big.txt summarized despite non-source extension")
	}
}
