// Package scan builds repository snapshots from local directories or GitHub
// repositories: a path-to-content file map, the README text, and a textual
// structure listing.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"repopress/internal/logging"
)

// Snapshot is the raw material for a compaction run. Files maps
// slash-separated relative paths to file contents; unreadable or binary files
// hold a one-line placeholder instead.
type Snapshot struct {
	Files     map[string]string
	Readme    string
	Structure string
}

var ignoredDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"venv":         true,
	".venv":        true,
	"env":          true,
	"__pycache__":  true,
	"build":        true,
	"dist":         true,
	".idea":        true,
	".vscode":      true,
}

var ignoredFiles = map[string]bool{
	"README.md":         true,
	"README.txt":        true,
	"README":            true,
	"LICENSE":           true,
	"LICENSE.txt":       true,
	"LICENSE.md":        true,
	"package-lock.json": true,
	"yarn.lock":         true,
	"bun.lockb":         true,
	".DS_Store":         true,
	"Thumbs.db":         true,
	".gitignore":        true,
}

var readmeNames = []string{"README.md", "README.txt", "README"}

// Options configures the snapshot collaborators. The zero value applies no
// size limit and no summarization.
type Options struct {
	// MaxFileSize caps file bytes; larger files get a placeholder.
	// Zero means no limit.
	MaxFileSize int64

	// SummarizeLarge reduces source files over 1200 lines to their most
	// important lines before they enter the snapshot.
	SummarizeLarge bool
}

// ScanDirectory walks a local directory and assembles a Snapshot. Ignored
// directories are not descended into; README and license files are excluded
// from the file map but the README feeds Snapshot.Readme.
func ScanDirectory(dir string, opts Options, logger *logging.Logger) (*Snapshot, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	logger = logger.Named("scan")

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scanning directory: %s is not a directory", dir)
	}

	snap := &Snapshot{
		Files:  make(map[string]string),
		Readme: readReadme(dir),
	}

	var structure strings.Builder
	if err := walkTree(dir, "", 0, opts, snap, &structure, logger); err != nil {
		return nil, err
	}
	snap.Structure = strings.TrimRight(structure.String(), "\n")

	logger.Info("Directory scan complete", map[string]interface{}{
		"dir":   dir,
		"files": len(snap.Files),
	})

	return snap, nil
}

// walkTree visits one directory level: the directory's own structure line,
// its files, then its subdirectories. This keeps each directory's files
// grouped under its entry in the listing.
func walkTree(dir, rel string, level int, opts Options, snap *Snapshot, structure *strings.Builder, logger *logging.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	indent := strings.Repeat(" ", 4*level)
	structure.WriteString(indent + filepath.Base(dir) + "/\n")
	subindent := strings.Repeat(" ", 4*(level+1))

	for _, entry := range entries {
		if entry.IsDir() || ignoredFiles[entry.Name()] {
			continue
		}
		structure.WriteString(subindent + entry.Name() + "\n")

		relPath := entry.Name()
		if rel != "" {
			relPath = rel + "/" + entry.Name()
		}
		snap.Files[relPath] = readFileContent(filepath.Join(dir, entry.Name()), opts, logger)
	}

	for _, entry := range entries {
		if !entry.IsDir() || ignoredDirs[entry.Name()] {
			continue
		}
		relPath := entry.Name()
		if rel != "" {
			relPath = rel + "/" + entry.Name()
		}
		if err := walkTree(filepath.Join(dir, entry.Name()), relPath, level+1, opts, snap, structure, logger); err != nil {
			return err
		}
	}

	return nil
}

func readFileContent(path string, opts Options, logger *logging.Logger) string {
	if IsBinaryPath(path) {
		return "Skipped binary file"
	}

	if opts.MaxFileSize > 0 {
		if info, err := os.Stat(path); err == nil && info.Size() > opts.MaxFileSize {
			logger.Debug("Skipping large file", map[string]interface{}{
				"path":  path,
				"bytes": info.Size(),
			})
			return "Skipped large file"
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Failed to read file", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return fmt.Sprintf("Error reading file: %s", err)
	}
	if IsBinaryContent(data) {
		return "Skipped binary file"
	}

	content := string(data)
	if opts.SummarizeLarge && shouldSummarize(path) {
		content = SummarizeLargeCode(content, maxSummaryLines)
	}
	return content
}

func readReadme(dir string) string {
	for _, name := range readmeNames {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err == nil {
			return string(data)
		}
	}
	return "README not found."
}
