package translate

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Option configures a Translator.
type Option func(*Translator)

// WithBaseDir resolves relative image sources and link targets against dir,
// turning them into file:// URLs. Paths escaping dir are left untouched.
func WithBaseDir(dir string) Option {
	return func(t *Translator) {
		t.baseDir = dir
	}
}

// resolvePaths rewrites relative img src and a href attributes under doc.
func (t *Translator) resolvePaths(doc *html.Node) {
	if t.baseDir == "" {
		return
	}
	base, err := filepath.Abs(t.baseDir)
	if err != nil {
		t.logger.Warn("not resolving relative paths", "dir", t.baseDir, "err", err)
		return
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Img:
				t.resolveAttr(n, "src", base)
			case atom.A:
				t.resolveAttr(n, "href", base)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
}

func (t *Translator) resolveAttr(n *html.Node, key, base string) {
	for i, a := range n.Attr {
		if a.Key != key || !isRelativePath(a.Val) {
			continue
		}
		abs := filepath.Join(base, filepath.FromSlash(a.Val))
		if !isPathUnderDir(abs, base) {
			t.logger.Debug("relative path escapes base dir", "tag", n.Data, key, a.Val)
			continue
		}
		n.Attr[i].Val = (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
	}
}

// isRelativePath reports whether path is a local path relative to the
// document, as opposed to a URL, an anchor or an absolute path.
func isRelativePath(path string) bool {
	if path == "" || strings.HasPrefix(path, "#") || strings.HasPrefix(path, "//") {
		return false
	}
	if u, err := url.Parse(path); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		return false
	}
	return !filepath.IsAbs(path)
}

// isPathUnderDir checks if absPath is dir or inside it.
func isPathUnderDir(absPath, dir string) bool {
	rel, err := filepath.Rel(dir, absPath)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
