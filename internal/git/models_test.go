package git

import "testing"

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.py", "py"},
		{"src/pkg/reader.go", "go"},
		{"archive.tar.gz", "gz"},
		{"Makefile", ""},
		{".gitignore", ""},
		{"src/.env", ""},
		{"dir.with.dots/README", ""},
		{"trailing.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := ExtensionOf(tt.path); got != tt.want {
				t.Errorf("ExtensionOf(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestCommitPredicates(t *testing.T) {
	root := Commit{Hash: "a"}
	if !root.IsRoot() || root.IsMerge() {
		t.Errorf("commit with no parents: IsRoot()=%v IsMerge()=%v, want true/false", root.IsRoot(), root.IsMerge())
	}

	regular := Commit{Hash: "b", Parents: []string{"a"}}
	if regular.IsRoot() || regular.IsMerge() {
		t.Errorf("single-parent commit: IsRoot()=%v IsMerge()=%v, want false/false", regular.IsRoot(), regular.IsMerge())
	}

	merge := Commit{Hash: "c", Parents: []string{"a", "b"}}
	if merge.IsRoot() || !merge.IsMerge() {
		t.Errorf("two-parent commit: IsRoot()=%v IsMerge()=%v, want false/true", merge.IsRoot(), merge.IsMerge())
	}
}

func TestSplitChunkLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"trailing newline", "line1\nline2\n", []string{"line1", "line2"}},
		{"no trailing newline", "line1\nline2", []string{"line1", "line2"}},
		{"interior empty line", "line1\n\nline3\n", []string{"line1", "", "line3"}},
		{"single newline", "\n", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitChunkLines(tt.content)
			if len(got) != len(tt.want) {
				t.Fatalf("splitChunkLines(%q) = %q, want %q", tt.content, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("splitChunkLines(%q)[%d] = %q, want %q", tt.content, i, got[i], tt.want[i])
				}
			}
		})
	}
}
