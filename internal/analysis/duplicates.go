package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// minChunkSize filters out chunks too small to be worth deduplicating.
const minChunkSize = 50

// DuplicateGroup records one chunk of code that appears verbatim in two or
// more distinct files. Files preserves first-seen order over the sorted path
// traversal, so the first entry is the canonical occurrence.
type DuplicateGroup struct {
	Hash    string
	Content string
	Files   []string
	Lines   int
}

// FindDuplicates splits every file into chunks at blank and comment-only
// lines and groups identical chunks by content hash. Only groups spanning at
// least two distinct files are returned, ordered by the canonical file's
// position in the sorted path order.
func FindDuplicates(files map[string]string) []DuplicateGroup {
	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	type occurrence struct {
		content string
		files   []string
		seen    map[string]bool
	}

	byHash := make(map[string]*occurrence)
	var order []string

	for _, path := range paths {
		for _, chunk := range splitChunks(files[path]) {
			if len(chunk) <= minChunkSize {
				continue
			}
			hash := hashChunk(chunk)
			occ, ok := byHash[hash]
			if !ok {
				occ = &occurrence{content: chunk, seen: make(map[string]bool)}
				byHash[hash] = occ
				order = append(order, hash)
			}
			if !occ.seen[path] {
				occ.seen[path] = true
				occ.files = append(occ.files, path)
			}
		}
	}

	var groups []DuplicateGroup
	for _, hash := range order {
		occ := byHash[hash]
		if len(occ.files) < 2 {
			continue
		}
		groups = append(groups, DuplicateGroup{
			Hash:    hash,
			Content: occ.content,
			Files:   occ.files,
			Lines:   len(strings.Split(occ.content, "\n")),
		})
	}
	return groups
}

// splitChunks breaks content into contiguous code blocks. Blank lines and
// comment-only lines terminate the current chunk.
func splitChunks(content string) []string {
	var chunks []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isCommentOnly(trimmed) {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return chunks
}

func isCommentOnly(trimmed string) bool {
	for _, prefix := range []string{"#", "//", "/*", "*"} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

func hashChunk(chunk string) string {
	sum := sha256.Sum256([]byte(chunk))
	return hex.EncodeToString(sum[:])
}
