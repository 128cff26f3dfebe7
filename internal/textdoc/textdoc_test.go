package textdoc

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-docinsert/internal/translate"
	"github.com/alnah/go-docinsert/node"
	"github.com/alnah/go-docinsert/render"
)

func renderHTML(t *testing.T, doc *Document, input string) *node.Node {
	t.Helper()
	root, err := translate.New(nil).HTML(input)
	if err != nil {
		t.Fatalf("HTML() error: %v", err)
	}
	d, err := render.NewFor(doc)
	if err != nil {
		t.Fatalf("NewFor() error: %v", err)
	}
	if err := d.Render(root); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return root
}

// ---------------------------------------------------------------------------
// TestDocument_Text
// ---------------------------------------------------------------------------

func TestDocument_Text(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "heading and paragraph",
			input: `<h1>Title</h1><p>Hello <b>world</b></p>`,
			want:  "# Title\nHello **world**\n",
		},
		{
			name:  "nested and numbered lists",
			input: `<ul><li>a<ul><li>b</li></ul></li><li>c</li></ul><ol type="i"><li>x</li><li>y</li></ol>`,
			want:  "- a\n  - b\n- c\ni. x\nii. y\n",
		},
		{
			name:  "list item with paragraph stays on the marker line",
			input: `<ol><li><p>one</p></li><li><p>two</p></li></ol>`,
			want:  "1. one\n2. two\n",
		},
		{
			name:  "table with header and span",
			input: `<table><tr><th>A</th><th>B</th></tr><tr><td colspan="2">x</td></tr></table>`,
			want:  "| A | B |\n|---|---|\n| x ||\n",
		},
		{
			name:  "link image and inline code",
			input: `<p><a href="https://go.dev">Go</a> <img src="g.png" alt="gopher"> <code>x</code></p>`,
			want:  "[Go](https://go.dev) ![gopher](g.png) `x`\n",
		},
		{
			name:  "quote",
			input: `<blockquote>wise words</blockquote>`,
			want:  "> wise words\n",
		},
		{
			name:  "line break",
			input: `<p>a<br>b</p>`,
			want:  "a\nb\n",
		},
		{
			name:  "code block without highlighter",
			input: "<pre><code class=\"language-go\">x := 1\n</code></pre>",
			want:  "```go\nx := 1\n```\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := New()
			renderHTML(t, doc, tt.input)
			if diff := cmp.Diff(tt.want, doc.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDocument_Footnotes(t *testing.T) {
	t.Parallel()

	doc := New()
	renderHTML(t, doc, `<p>See<footnote data-content="note one"></footnote>.</p>`)

	if got, want := doc.Body(), "See[^1].\n"; got != want {
		t.Errorf("Body() = %q, want %q", got, want)
	}
	if got, want := doc.String(), "See[^1].\n\n[^1]: note one\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestDocument_Styles - ranges over written runes
// ---------------------------------------------------------------------------

func TestDocument_Styles(t *testing.T) {
	t.Parallel()

	doc := New()
	renderHTML(t, doc, `<p>plain <span style="color:red">red <b style="font-size:12pt">big</b></span></p>`)

	if got, want := doc.Body(), "plain red **big**\n"; got != want {
		t.Fatalf("Body() = %q, want %q", got, want)
	}

	want := []Range{
		{Kind: node.KindSpan, Start: 6, End: 17, Format: &node.Format{Color: "red"}},
		{Kind: node.KindBold, Start: 10, End: 17, Format: &node.Format{FontSize: "12pt"}},
	}
	if diff := cmp.Diff(want, doc.Styles()); diff != "" {
		t.Errorf("styles mismatch (-want +got):\n%s", diff)
	}

	var b strings.Builder
	if err := doc.WriteStyles(&b); err != nil {
		t.Fatalf("WriteStyles() error: %v", err)
	}
	wantLine := `[6,17) Span {color=red} "red **big**"`
	if !strings.Contains(b.String(), wantLine) {
		t.Errorf("WriteStyles() = %q, want line %q", b.String(), wantLine)
	}
}

func TestDocument_StylesCountRunes(t *testing.T) {
	t.Parallel()

	doc := New()
	renderHTML(t, doc, `<p>héllo <i style="color:blue">wörld</i></p>`)

	styles := doc.Styles()
	if len(styles) != 1 {
		t.Fatalf("got %d styles, want 1", len(styles))
	}
	if got := styles[0]; got.Start != 6 || got.End != 13 {
		t.Errorf("range = [%d,%d), want [6,13)", got.Start, got.End)
	}
}

func TestDocument_ApplyStyleOutOfRange(t *testing.T) {
	t.Parallel()

	doc := New()
	n := node.MustNew(node.KindBold, nil)
	err := doc.ApplyStyle(render.StyleRecord{Node: n, Start: 0, End: 3})
	if !errors.Is(err, ErrRange) {
		t.Errorf("ApplyStyle() error = %v, want ErrRange", err)
	}
}

// ---------------------------------------------------------------------------
// TestDocument_Highlight - code block replacement
// ---------------------------------------------------------------------------

func TestDocument_Highlight(t *testing.T) {
	t.Parallel()

	tr := translate.New(nil)
	doc := New(WithHighlighter(translate.NewHighlighter(tr, "").Highlight))
	root := renderHTML(t, doc, `<pre><code class="language-go">x := 1</code></pre>`)

	out := doc.String()
	if !strings.HasPrefix(out, "```go\nx := 1") || !strings.HasSuffix(out, "```\n") {
		t.Errorf("output = %q, want a fenced go block", out)
	}
	if len(doc.Styles()) == 0 {
		t.Error("highlighted code applied no styles")
	}
	if got := root.Child(0).Child(0).Text(); got != "x := 1" {
		t.Errorf("original code text changed to %q", got)
	}
}

func TestDocument_RenderTwice(t *testing.T) {
	t.Parallel()

	root, err := translate.New(nil).HTML(`<ol><li>a</li></ol><table><tr><td>x</td></tr></table>`)
	if err != nil {
		t.Fatalf("HTML() error: %v", err)
	}

	var outs []string
	for range 2 {
		doc := New()
		d, err := render.NewFor(doc)
		if err != nil {
			t.Fatalf("NewFor() error: %v", err)
		}
		if err := d.Render(root); err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		outs = append(outs, doc.String())
	}
	if outs[0] != outs[1] {
		t.Errorf("second render differs:\n%q\n%q", outs[0], outs[1])
	}
}

// ---------------------------------------------------------------------------
// TestDocument_DetachedContent - items and rows need a rendered container
// ---------------------------------------------------------------------------

func TestDocument_DetachedContent(t *testing.T) {
	t.Parallel()

	item := func() *node.Node {
		return node.MustNew(node.KindListElement, nil, node.MustNew(node.KindText, &node.TextData{Text: "a"}))
	}
	row := func() *node.Node {
		return node.MustNew(node.KindTableRow, nil,
			node.MustNew(node.KindTableCell, &node.CellData{ColSpan: 1, RowSpan: 1},
				node.MustNew(node.KindText, &node.TextData{Text: "x"})))
	}

	tests := []struct {
		name    string
		root    func() *node.Node
		wantErr error
	}{
		{name: "item without list", root: item, wantErr: ErrNoList},
		{
			name: "item of an unrendered list",
			root: func() *node.Node {
				li := item()
				node.LinkParents(node.MustNew(node.KindBulletList, nil, li))
				return li
			},
			wantErr: ErrNoList,
		},
		{name: "row without table", root: row, wantErr: ErrNoTable},
		{
			name: "row of an unrendered table",
			root: func() *node.Node {
				tr := row()
				node.LinkParents(node.MustNew(node.KindTable, nil, tr))
				return tr
			},
			wantErr: ErrNoTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := render.NewFor(New())
			if err != nil {
				t.Fatalf("NewFor() error: %v", err)
			}
			err = d.Render(tt.root())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Render() error = %v, want %v", err, tt.wantErr)
			}
			var re *render.RenderError
			if !errors.As(err, &re) {
				t.Errorf("Render() error = %T, want *render.RenderError", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestNumber
// ---------------------------------------------------------------------------

func TestNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n        int
		listType string
		want     string
	}{
		{3, "", "3"},
		{3, node.ListDecimal, "3"},
		{4, node.ListRomanUpper, "IV"},
		{1994, node.ListRomanUpper, "MCMXCIV"},
		{9, node.ListRomanLower, "ix"},
		{1, node.ListAlphaUpper, "A"},
		{26, node.ListAlphaUpper, "Z"},
		{27, node.ListAlphaUpper, "AA"},
		{3, node.ListAlphaLower, "c"},
	}

	for _, tt := range tests {
		if got := number(tt.n, tt.listType); got != tt.want {
			t.Errorf("number(%d, %q) = %q, want %q", tt.n, tt.listType, got, tt.want)
		}
	}
}
