package compress

import (
	"fmt"
	"strings"
	"testing"
)

func TestCompressFileSkipsSmallFiles(t *testing.T) {
	c := newTestCompressor(DefaultConfig())

	content := "# comment\n# another\n# third\n# fourth\n# fifth\ncode()\n"
	if got := c.CompressFile("small.py", content); got != content {
		t.Errorf("small file changed: %q", got)
	}
}

func TestCompressFileAggressiveIgnoresMinimum(t *testing.T) {
	c := newTestCompressor(ConfigForLevel(LevelHeavy))

	content := "# one\n# two\n# three\n# four\n# five\n# six\ncode()\n"
	got := c.CompressFile("small.txt", content)
	if got == content {
		t.Error("aggressive tier skipped a small file")
	}
	if !strings.Contains(got, "# ... 5 more comment lines ...") {
		t.Errorf("comment run not collapsed: %q", got)
	}
}

func TestCompressFileCapsLargeFiles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxLinesToKeep = 30
	cfg.MinLinesForCompression = 1
	c := newTestCompressor(cfg)

	var b strings.Builder
	for i := 1; i <= 100; i++ {
		fmt.Fprintf(&b, "line%d\n", i)
	}

	got := c.CompressFile("big.txt", b.String())
	if !strings.Contains(got, "# ... 80 more lines ...") {
		t.Errorf("missing cap marker: %q", got)
	}
	if !strings.Contains(got, "line1\n") || !strings.Contains(got, "line100") {
		t.Errorf("head or tail lost: %q", got)
	}
}

func TestCompressFileDispatch(t *testing.T) {
	c := newTestCompressor(ConfigForLevel(LevelHeavy))

	t.Run("json file", func(t *testing.T) {
		items := make([]string, 15)
		for i := range items {
			items[i] = fmt.Sprintf("%d", i)
		}
		content := "[" + strings.Join(items, ", ") + "]\n"
		got := c.CompressFile("data.json", content)
		if !strings.Contains(got, "// JSON array with 15 items") {
			t.Errorf("json strategy not applied: %q", got)
		}
	})

	t.Run("css file", func(t *testing.T) {
		got := c.CompressFile("style.css", "/* banner */\na { color: red; }\n")
		if strings.Contains(got, "banner") {
			t.Errorf("css strategy not applied: %q", got)
		}
	})

	t.Run("unknown extension uses generic pass", func(t *testing.T) {
		got := c.CompressFile("notes.xyz", "a\n\n\n\nb\n")
		if !strings.Contains(got, "a\n\nb") {
			t.Errorf("generic strategy not applied: %q", got)
		}
	})
}

func TestCompressFileNilLogger(t *testing.T) {
	c := NewCompressor(DefaultConfig(), nil)
	if got := c.CompressFile("x.txt", "hello\n"); got != "hello\n" {
		t.Errorf("got %q, want unchanged", got)
	}
}

func TestCompressorConfigAccessor(t *testing.T) {
	cfg := ConfigForLevel(LevelMedium)
	c := NewCompressor(cfg, nil)
	if got := c.Config(); got != cfg {
		t.Errorf("Config() = %+v, want %+v", got, cfg)
	}
}
