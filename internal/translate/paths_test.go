package translate

import (
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestWithBaseDir - relative path resolution
// ---------------------------------------------------------------------------

func TestWithBaseDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tr := New(nil, WithBaseDir(dir))
	root, err := tr.HTML(`<p><img src="img/a.png"><a href="notes.md">n</a><a href="#top">t</a>` +
		`<a href="https://go.dev">g</a><img src="../outside.png"></p>`)
	if err != nil {
		t.Fatalf("HTML() error: %v", err)
	}

	p := root.Child(0)
	wantImage := "file://" + filepath.ToSlash(filepath.Join(dir, "img", "a.png"))
	if got := p.Child(0).Image().Location; got != wantImage {
		t.Errorf("image = %q, want %q", got, wantImage)
	}
	if got := p.Child(1).Link().Location; !strings.HasPrefix(got, "file://") || !strings.HasSuffix(got, "/notes.md") {
		t.Errorf("link = %q, want file URL ending in notes.md", got)
	}
	if got := p.Child(2).Link().Location; got != "#top" {
		t.Errorf("anchor rewritten to %q", got)
	}
	if got := p.Child(3).Link().Location; got != "https://go.dev" {
		t.Errorf("URL rewritten to %q", got)
	}
	if got := p.Child(4).Image().Location; got != "../outside.png" {
		t.Errorf("escaping path rewritten to %q", got)
	}
}

func TestWithoutBaseDir(t *testing.T) {
	t.Parallel()

	root, err := New(nil).HTML(`<img src="a.png">`)
	if err != nil {
		t.Fatalf("HTML() error: %v", err)
	}
	if got := root.Child(0).Image().Location; got != "a.png" {
		t.Errorf("image = %q, want a.png", got)
	}
}

func TestIsRelativePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"a.png", true},
		{"./img/a.png", true},
		{"../a.png", true},
		{"", false},
		{"#section", false},
		{"//cdn.example.com/a.png", false},
		{"https://example.com/a.png", false},
		{"mailto:someone@example.com", false},
		{"data:image/png;base64,AAAA", false},
		{"/abs/a.png", false},
	}

	for _, tt := range tests {
		if got := isRelativePath(tt.path); got != tt.want {
			t.Errorf("isRelativePath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
