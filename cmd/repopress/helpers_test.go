package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"repopress/internal/compress"
	"repopress/internal/scan"
)

func TestLocalReport(t *testing.T) {
	snap := &scan.Snapshot{
		Files: map[string]string{
			"main.py": "import os\n",
		},
		Readme:    "# Demo",
		Structure: "demo/\n    main.py",
	}

	got := localReport(snap)
	want := "README:\n# Demo\n\n" +
		"Directory Structure:\ndemo/\n    main.py\n\n" +
		"File Contents:\n" +
		"File: main.py\nContent:\nimport os\n\n\n"

	if got != want {
		t.Errorf("localReport() = %q, want %q", got, want)
	}
}

func TestRemoteReport(t *testing.T) {
	snap := &scan.Snapshot{
		Files: map[string]string{
			"main.py": "import os\n",
		},
		Readme:    "# Demo",
		Structure: "Repository Structure: demo\nmain.py",
	}

	got := remoteReport(snap)

	if !strings.HasPrefix(got, "README:\n# Demo\n\nRepository Structure: demo\n") {
		t.Errorf("remoteReport() prefix wrong:\n%s", got)
	}
	if !strings.Contains(got, "File Contents:\nFile: main.py\nContent:\nimport os\n") {
		t.Errorf("remoteReport() missing file block:\n%s", got)
	}
}

func TestCompressReport(t *testing.T) {
	dir := t.TempDir()
	reportPath := filepath.Join(dir, "demo_analysis.txt")

	document := "README:\n# Demo\n\n" +
		"Directory Structure:\ndemo/\n    main.py\n\n" +
		"File Contents:\n" +
		"File: main.py\nContent:\nimport os\nprint(\"hi\")\n\n" +
		"File: util.py\nContent:\nx = 1\n\n"

	if err := os.WriteFile(reportPath, []byte(document), 0o644); err != nil {
		t.Fatal(err)
	}

	outPath, err := compressReport(reportPath, compress.LevelMedium, false, nil)
	if err != nil {
		t.Fatalf("compressReport() error = %v", err)
	}

	wantPath := filepath.Join(dir, "demo_analysis_compressed_medium.txt")
	if outPath != wantPath {
		t.Errorf("compressReport() path = %q, want %q", outPath, wantPath)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading compressed report: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "Repository Analysis Summary:") {
		t.Error("compressed report missing summary section")
	}
	if !strings.Contains(content, "File: main.py") || !strings.Contains(content, "File: util.py") {
		t.Errorf("compressed report missing file blocks:\n%s", content)
	}
}

func TestCompressReportGzip(t *testing.T) {
	dir := t.TempDir()
	reportPath := filepath.Join(dir, "demo_analysis.txt")

	document := "README:\n# Demo\n\n" +
		"Directory Structure:\ndemo/\n\n" +
		"File Contents:\n" +
		"File: main.py\nContent:\nimport os\n\n"

	if err := os.WriteFile(reportPath, []byte(document), 0o644); err != nil {
		t.Fatal(err)
	}

	outPath, err := compressReport(reportPath, compress.LevelLight, true, nil)
	if err != nil {
		t.Fatalf("compressReport() error = %v", err)
	}

	if !strings.HasSuffix(outPath, "_compressed_light.txt.gz") {
		t.Errorf("compressReport() gzip path = %q", outPath)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("gzip output not written: %v", err)
	}
}

func TestResolveLevel(t *testing.T) {
	orig := compressFlag
	defer func() { compressFlag = orig }()

	compressFlag = ""
	level, err := resolveLevel(compress.LevelMedium)
	if err != nil || level != compress.LevelMedium {
		t.Errorf("resolveLevel() = (%q, %v), want fallback medium", level, err)
	}

	compressFlag = "heavy"
	level, err = resolveLevel(compress.LevelMedium)
	if err != nil || level != compress.LevelHeavy {
		t.Errorf("resolveLevel() = (%q, %v), want heavy from flag", level, err)
	}

	compressFlag = "bogus"
	if _, err := resolveLevel(compress.LevelMedium); err == nil {
		t.Error("resolveLevel() should reject unknown level")
	}
}
