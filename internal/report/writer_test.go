package report

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func TestCompressedName(t *testing.T) {
	tests := []struct {
		input string
		level string
		want  string
	}{
		{"analysis.txt", "medium", "analysis_compressed_medium.txt"},
		{"out/repo.txt", "heavy", "out/repo_compressed_heavy.txt"},
		{"analysis", "light", "analysis_compressed_light.txt"},
	}

	for _, tt := range tests {
		if got := CompressedName(tt.input, tt.level); got != tt.want {
			t.Errorf("CompressedName(%q, %q) = %q, want %q", tt.input, tt.level, got, tt.want)
		}
	}
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")

	written, err := WriteReport(path, "hello\n", false)
	if err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	if written != path {
		t.Errorf("written path = %q, want %q", written, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if string(data) != "hello\n" {
		t.Errorf("content = %q, want %q", data, "hello\n")
	}
}

func TestWriteReportGzipped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")

	written, err := WriteReport(path, "compressed body", true)
	if err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	if written != path+".gz" {
		t.Errorf("written path = %q, want %q", written, path+".gz")
	}

	f, err := os.Open(written)
	if err != nil {
		t.Fatalf("opening report: %v", err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("decompressing: %v", err)
	}
	if string(data) != "compressed body" {
		t.Errorf("content = %q, want %q", data, "compressed body")
	}
}
