package scan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "# Demo project\n")
	writeFile(t, dir, "main.py", "import os\n")
	writeFile(t, dir, "src/util.py", "def f():\n    pass\n")
	writeFile(t, dir, ".gitignore", "*.pyc\n")
	writeFile(t, dir, "node_modules/pkg/index.js", "ignored\n")
	writeFile(t, dir, "logo.png", "\x89PNG\x00\x00")

	snap, err := ScanDirectory(dir, Options{}, nil)
	if err != nil {
		t.Fatalf("ScanDirectory() error = %v", err)
	}

	t.Run("readme", func(t *testing.T) {
		if snap.Readme != "# Demo project\n" {
			t.Errorf("Readme = %q", snap.Readme)
		}
	})

	t.Run("files", func(t *testing.T) {
		if got := snap.Files["main.py"]; got != "import os\n" {
			t.Errorf("main.py = %q", got)
		}
		if got := snap.Files["src/util.py"]; got != "def f():\n    pass\n" {
			t.Errorf("src/util.py = %q", got)
		}
	})

	t.Run("ignored entries", func(t *testing.T) {
		for _, path := range []string{"README.md", ".gitignore", "node_modules/pkg/index.js"} {
			if _, ok := snap.Files[path]; ok {
				t.Errorf("%s present in file map", path)
			}
		}
	})

	t.Run("binary placeholder", func(t *testing.T) {
		if got := snap.Files["logo.png"]; got != "Skipped binary file" {
			t.Errorf("logo.png = %q", got)
		}
	})

	t.Run("structure", func(t *testing.T) {
		if !strings.Contains(snap.Structure, "    main.py") {
			t.Errorf("structure missing main.py:\n%s", snap.Structure)
		}
		if !strings.Contains(snap.Structure, "    src/") {
			t.Errorf("structure missing src/ entry:\n%s", snap.Structure)
		}
		if !strings.Contains(snap.Structure, "        util.py") {
			t.Errorf("structure missing nested util.py:\n%s", snap.Structure)
		}
		if strings.Contains(snap.Structure, "node_modules") {
			t.Errorf("structure lists ignored directory:\n%s", snap.Structure)
		}
	})
}

func TestScanDirectoryMaxFileSize(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "small.py", "x = 1\n")
	writeFile(t, dir, "big.py", strings.Repeat("data = 1\n", 100))

	snap, err := ScanDirectory(dir, Options{MaxFileSize: 64}, nil)
	if err != nil {
		t.Fatalf("ScanDirectory() error = %v", err)
	}
	if got := snap.Files["small.py"]; got != "x = 1\n" {
		t.Errorf("small.py = %q", got)
	}
	if got := snap.Files["big.py"]; got != "Skipped large file" {
		t.Errorf("big.py = %q", got)
	}
}

func TestScanDirectoryMissingReadme(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.py", "x = 1\n")

	snap, err := ScanDirectory(dir, Options{}, nil)
	if err != nil {
		t.Fatalf("ScanDirectory() error = %v", err)
	}
	if snap.Readme != "README not found." {
		t.Errorf("Readme = %q", snap.Readme)
	}
}

func TestScanDirectoryNotADirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.txt", "x\n")

	if _, err := ScanDirectory(filepath.Join(dir, "file.txt"), Options{}, nil); err == nil {
		t.Error("expected error for non-directory path")
	}
	if _, err := ScanDirectory(filepath.Join(dir, "missing"), Options{}, nil); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestScanDirectoryNonUTF8Content(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "blob.dat", string([]byte{0xff, 0xfe, 0x00, 0x41}))

	snap, err := ScanDirectory(dir, Options{}, nil)
	if err != nil {
		t.Fatalf("ScanDirectory() error = %v", err)
	}
	if got := snap.Files["blob.dat"]; got != "Skipped binary file" {
		t.Errorf("blob.dat = %q", got)
	}
}
