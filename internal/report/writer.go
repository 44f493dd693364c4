package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// CompressedName derives the output filename for a compressed report:
// report.txt becomes report_compressed_<level>.txt. Names without a .txt
// suffix get the marker appended before a .txt extension.
func CompressedName(input, level string) string {
	suffix := fmt.Sprintf("_compressed_%s.txt", level)
	if strings.HasSuffix(input, ".txt") {
		return strings.TrimSuffix(input, ".txt") + suffix
	}
	return input + suffix
}

// WriteReport writes a report document to path. With gzipped set, the
// content is gzip-compressed and ".gz" is appended to the path. The final
// path written is returned.
func WriteReport(path, content string, gzipped bool) (string, error) {
	if !gzipped {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return "", fmt.Errorf("writing report: %w", err)
		}
		return path, nil
	}

	path += ".gz"
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report: %w", err)
	}
	defer f.Close()

	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(content)); err != nil {
		zw.Close()
		return "", fmt.Errorf("compressing report: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("compressing report: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	return path, nil
}
