package analysis

import (
	"strings"
	"testing"
)

const sharedChunk = "value = compute_total(items)\nresult = normalize(value)\nemit_report(result)"

func TestFindDuplicates(t *testing.T) {
	files := map[string]string{
		"b.py": "# helper module\n" + sharedChunk + "\n\nother = 1\n",
		"a.py": sharedChunk + "\n",
		"c.py": "unrelated = True\n",
	}

	groups := FindDuplicates(files)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}

	g := groups[0]
	if g.Content != sharedChunk {
		t.Errorf("group content = %q, want shared chunk", g.Content)
	}
	if g.Lines != 3 {
		t.Errorf("group lines = %d, want 3", g.Lines)
	}
	if len(g.Files) != 2 || g.Files[0] != "a.py" || g.Files[1] != "b.py" {
		t.Errorf("group files = %v, want [a.py b.py] with sorted-path canonical first", g.Files)
	}
}

func TestFindDuplicatesIgnoresSmallChunks(t *testing.T) {
	files := map[string]string{
		"a.py": "x = 1\ny = 2\n",
		"b.py": "x = 1\ny = 2\n",
	}

	if groups := FindDuplicates(files); len(groups) != 0 {
		t.Errorf("got %d groups for tiny chunks, want 0", len(groups))
	}
}

func TestFindDuplicatesRequiresDistinctFiles(t *testing.T) {
	repeated := sharedChunk + "\n\n" + sharedChunk + "\n"
	files := map[string]string{
		"a.py": repeated,
		"b.py": "unrelated = True\n",
	}

	if groups := FindDuplicates(files); len(groups) != 0 {
		t.Errorf("got %d groups for same-file repeats, want 0", len(groups))
	}
}

func TestSplitChunks(t *testing.T) {
	content := strings.Join([]string{
		"def first():",
		"    return 1",
		"",
		"# comment boundary",
		"def second():",
		"    return 2",
		"/* block comment line",
		"* continuation line",
		"def third():",
	}, "\n")

	got := splitChunks(content)
	want := []string{
		"def first():\n    return 1",
		"def second():\n    return 2",
		"def third():",
	}

	if len(got) != len(want) {
		t.Fatalf("got %d chunks, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, got[i], want[i])
		}
	}
}
