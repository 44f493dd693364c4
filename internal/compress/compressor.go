// Package compress implements the content-aware compaction strategies: a
// language-independent generic pass plus per-language structural passes, all
// driven by an immutable threshold Config selected from a named level.
//
// Compaction is intentionally lossy. It preserves structural markers
// (signatures, counts, placeholders) rather than syntactic validity.
package compress

import (
	"repopress/internal/lang"
	"repopress/internal/logging"
)

// Compressor applies per-file compaction strategies. It holds only the
// immutable Config and a logger, so one instance is safe to share across
// goroutines compacting different files.
type Compressor struct {
	cfg    Config
	logger *logging.Logger
}

// NewCompressor creates a Compressor for the given thresholds. A nil logger
// disables diagnostics.
func NewCompressor(cfg Config, logger *logging.Logger) *Compressor {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Compressor{
		cfg:    cfg,
		logger: logger.Named("compress"),
	}
}

// Config returns the threshold bundle this Compressor was built with.
func (c *Compressor) Config() Config {
	return c.cfg
}

// CompressFile applies the appropriate strategy for the file's language.
// Files below MinLinesForCompression pass through unchanged in non-aggressive
// tiers; files over MaxLinesToKeep are capped first. The input is never
// mutated; the returned string is a new content value for the same path.
func (c *Compressor) CompressFile(path, content string) string {
	lines := lineCount(content)

	if lines < c.cfg.MinLinesForCompression && !c.cfg.Aggressive {
		c.logger.Debug("Skipping small file", map[string]interface{}{
			"path":  path,
			"lines": lines,
		})
		return content
	}

	if lines > c.cfg.MaxLinesToKeep {
		content, lines = c.capLines(content, lines)
		c.logger.Debug("Truncated large file", map[string]interface{}{
			"path":  path,
			"lines": lines,
		})
	}

	before := len(content)
	compressed := c.compressByLanguage(lang.FromPath(path), content)

	c.logger.Debug("Compressed file", map[string]interface{}{
		"path":   path,
		"before": before,
		"after":  len(compressed),
	})

	return compressed
}

func (c *Compressor) compressByLanguage(language lang.Language, content string) string {
	switch language {
	case lang.Python:
		return c.compressPython(content)
	case lang.JavaScript, lang.TypeScript, lang.React:
		return c.compressScript(content)
	case lang.JSON:
		return c.compressJSON(content)
	case lang.YAML:
		return c.compressYAML(content)
	case lang.TOML:
		return c.compressTOML(content)
	case lang.HTML:
		return c.compressHTML(content)
	case lang.CSS:
		return c.compressCSS(content)
	case lang.Markdown:
		return c.compressMarkdown(content)
	default:
		return c.generic(content)
	}
}
