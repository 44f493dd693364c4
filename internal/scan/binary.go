package scan

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

var binarySuffixes = []string{
	".pyc", ".exe", ".dll", ".so", ".dylib", ".zip", ".tar.gz",
	".pdf", ".jpg", ".jpeg", ".png", ".svg", ".ico",
	".woff", ".woff2", ".ttf", ".eot",
	".mp4", ".avi", ".mov", ".wmv",
	".wav", ".mp3", ".ogg", ".flac",
	".bmp", ".gif", ".webp", ".tiff",
	".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx",
	".min.js", ".min.css",
}

// IsBinaryPath reports whether a filename carries a known binary or
// minified-asset suffix.
func IsBinaryPath(path string) bool {
	lower := strings.ToLower(path)
	for _, suffix := range binarySuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// IsBinaryContent reports whether data looks binary: it contains a NUL byte
// or is not valid UTF-8.
func IsBinaryContent(data []byte) bool {
	if bytes.IndexByte(data, 0) >= 0 {
		return true
	}
	return !utf8.Valid(data)
}
