package translate

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-docinsert/node"
)

// ---------------------------------------------------------------------------
// TestHTML - tag mapping and tree shape
// ---------------------------------------------------------------------------

func TestHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "paragraph with inline bold",
			input: `<p>Hello <b>world</b></p>`,
			want:  "Group\n  Paragraph\n    Text \"Hello \"\n    Bold\n      Text \"world\"\n",
		},
		{
			name:  "unknown tags are spliced",
			input: `<div><custom><i>x</i></custom></div>`,
			want:  "Group\n  Group\n    Italic\n      Text \"x\"\n",
		},
		{
			name:  "whitespace between blocks dropped",
			input: "<div>\n  <p>a</p>\n  <p>b</p>\n</div>",
			want:  "Group\n  Group\n    Paragraph\n      Text \"a\"\n    Paragraph\n      Text \"b\"\n",
		},
		{
			name:  "full document keeps only the body",
			input: `<!DOCTYPE html><html><head><title>t</title></head><body><p>x</p><script>bad()</script></body></html>`,
			want:  "Group\n  Paragraph\n    Text \"x\"\n",
		},
		{
			name:  "nested list becomes sibling",
			input: `<ul><li>a<ul><li>b</li></ul></li><li>c</li></ul>`,
			want: "Group\n  BulletList\n    ListElement\n      Text \"a\"\n" +
				"    BulletList\n      ListElement\n        Text \"b\"\n" +
				"    ListElement\n      Text \"c\"\n",
		},
		{
			name:  "loose list content wrapped in an item",
			input: `<ul>text<li>x</li></ul>`,
			want:  "Group\n  BulletList\n    ListElement\n      Text \"text\"\n    ListElement\n      Text \"x\"\n",
		},
		{
			name:  "ordered list type",
			input: `<ol type="i"><li>x</li></ol>`,
			want:  "Group\n  NumberedList type=roman-lowercase\n    ListElement\n      Text \"x\"\n",
		},
		{
			name: "table sections spliced and spans reconciled",
			input: `<table><thead><tr><th>A</th><th>B</th></tr></thead>` +
				`<tbody><tr><td colspan="3">x</td></tr></tbody></table>`,
			want: "Group\n  Table\n" +
				"    TableRow\n" +
				"      TableCell colspan=1 rowspan=1 header\n        Text \"A\"\n" +
				"      TableCell colspan=1 rowspan=1 header\n        Text \"B\"\n" +
				"    TableRow\n" +
				"      TableCell colspan=2 rowspan=1\n        Text \"x\"\n",
		},
		{
			name:  "code block keeps text verbatim",
			input: "<pre><code class=\"language-go\">x :=  1\n</code></pre>",
			want:  "Group\n  CodeBlock highlight=go\n    Text \"x :=  1\\n\"\n",
		},
		{
			name:  "anchor without href is ignored",
			input: `<p><a name="x">y</a></p>`,
			want:  "Group\n  Paragraph\n    Text \"y\"\n",
		},
		{
			name:  "link with href",
			input: `<p><a href="https://example.com">y</a></p>`,
			want:  "Group\n  Paragraph\n    HyperLink \"https://example.com\"\n      Text \"y\"\n",
		},
		{
			name:  "heading with footnote",
			input: `<h2>Title<footnote data-content="note"></footnote></h2>`,
			want:  "Group\n  Heading level=2\n    Text \"Title\"\n    Footnote\n",
		},
		{
			name:  "blockquote becomes quote style",
			input: `<blockquote>said</blockquote>`,
			want:  "Group\n  Style \"Quote\"\n    Text \"said\"\n",
		},
		{
			name:  "empty inline element dropped",
			input: `<p>a<b></b></p>`,
			want:  "Group\n  Paragraph\n    Text \"a\"\n",
		},
		{
			name:  "paragraph end whitespace trimmed",
			input: "<p> <i>x</i> </p>",
			want:  "Group\n  Paragraph\n    Italic\n      Text \"x\"\n",
		},
		{
			name:  "blank inline element at paragraph edge removed",
			input: "<p><b> </b>x</p>",
			want:  "Group\n  Paragraph\n    Text \"x\"\n",
		},
		{
			name:  "non-breaking space kept",
			input: "<p>&nbsp;</p>",
			want:  "Group\n  Paragraph\n    Text \"\\u00a0\"\n",
		},
		{
			name:  "comments dropped",
			input: `<p>a<!-- hidden --></p>`,
			want:  "Group\n  Paragraph\n    Text \"a\"\n",
		},
		{
			name:  "image",
			input: `<img src="a.png" alt="cap" width="10">`,
			want:  "Group\n  Image \"a.png\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root, err := New(nil).HTML(tt.input)
			if err != nil {
				t.Fatalf("HTML() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, node.Sprint(root)); diff != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", diff)
			}
			if err := node.Check(root); err != nil {
				t.Errorf("Check() error: %v", err)
			}
		})
	}
}

func TestHTML_ParentsLinked(t *testing.T) {
	t.Parallel()

	root, err := New(nil).HTML(`<p>a<b>b</b></p>`)
	if err != nil {
		t.Fatalf("HTML() error: %v", err)
	}
	node.Walk(root, func(n *node.Node, _ int) bool {
		for _, c := range n.Children() {
			if c.Parent() != n {
				t.Errorf("%s has a stale parent", c)
			}
		}
		return true
	})
}

func TestHTML_Payloads(t *testing.T) {
	t.Parallel()

	root, err := New(nil).HTML(`<img src="a.png" alt="cap" width="10" height="20"><footnote data-content="note"></footnote>`)
	if err != nil {
		t.Fatalf("HTML() error: %v", err)
	}

	want := &node.ImageData{Location: "a.png", Width: "10", Height: "20", Caption: "cap"}
	if diff := cmp.Diff(want, root.Child(0).Image()); diff != "" {
		t.Errorf("image mismatch (-want +got):\n%s", diff)
	}
	if got := root.Child(0).Format; got != nil {
		t.Errorf("image dimensions leaked into format: %v", got)
	}
	if got := root.Child(1).FootnoteContent(); got != "note" {
		t.Errorf("FootnoteContent() = %q, want %q", got, "note")
	}
}

// ---------------------------------------------------------------------------
// TestHTML_Errors
// ---------------------------------------------------------------------------

func TestHTML_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "image without src", input: `<p><img alt="x"></p>`, wantErr: node.ErrMissingField},
		{name: "footnote without content", input: `<footnote></footnote>`, wantErr: node.ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(nil).HTML(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("HTML() error = %v, want %v", err, tt.wantErr)
			}
			var ce *node.ConstructionError
			if !errors.As(err, &ce) {
				t.Errorf("error %v is not a *node.ConstructionError", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFormat - style attribute and presentational attributes
// ---------------------------------------------------------------------------

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  *node.Format
	}{
		{
			name:  "no styling",
			input: `<span>x</span>`,
			want:  nil,
		},
		{
			name:  "class list",
			input: `<span class="a b">x</span>`,
			want:  &node.Format{Classes: []string{"a", "b"}},
		},
		{
			name:  "declarations",
			input: `<span style="color: red; font-size: 12pt; background-color: #eee; writing-mode: vertical-rl">x</span>`,
			want:  &node.Format{Color: "red", FontSize: "12pt", Background: "#eee", WritingMode: "vertical-rl"},
		},
		{
			name:  "margin shorthand",
			input: `<span style="margin: 1px 2px">x</span>`,
			want: &node.Format{Margin: map[string]string{
				node.SideTop: "1px", node.SideRight: "2px", node.SideBottom: "1px", node.SideLeft: "2px",
			}},
		},
		{
			name:  "margin side overrides shorthand",
			input: `<span style="margin: 0; margin-left: auto">x</span>`,
			want: &node.Format{Margin: map[string]string{
				node.SideTop: "0", node.SideRight: "0", node.SideBottom: "0", node.SideLeft: "auto",
			}},
		},
		{
			name:  "border shorthand",
			input: `<span style="border: 1px solid #000">x</span>`,
			want: &node.Format{Border: map[string]string{
				node.BorderWidth: "1px", node.BorderStyle: "solid", node.BorderColor: "#000",
			}},
		},
		{
			name:  "border side",
			input: `<span style="border-top: 2px dashed red">x</span>`,
			want:  &node.Format{Border: map[string]string{node.SideTop: "2px dashed red"}},
		},
		{
			name:  "unknown declarations dropped",
			input: `<span style="display: flex; color: blue">x</span>`,
			want:  &node.Format{Color: "blue"},
		},
		{
			name:  "strike adds line-through",
			input: `<del>x</del>`,
			want:  &node.Format{TextDecoration: "line-through"},
		},
		{
			name:  "font color attribute",
			input: `<font color="green">x</font>`,
			want:  &node.Format{Color: "green"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root, err := New(nil).HTML(tt.input)
			if err != nil {
				t.Fatalf("HTML() error: %v", err)
			}
			span := root.Child(0)
			if span == nil || span.Kind != node.KindSpan {
				t.Fatalf("first child = %v, want Span", span)
			}
			if diff := cmp.Diff(tt.want, span.Format); diff != "" {
				t.Errorf("format mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormat_CellAttributes(t *testing.T) {
	t.Parallel()

	root, err := New(nil).HTML(`<table><tr><td valign="top" align="center" bgcolor="#fff" width="50%">x</td></tr></table>`)
	if err != nil {
		t.Fatalf("HTML() error: %v", err)
	}
	cell := root.Child(0).Child(0).Child(0)
	want := &node.Format{VerticalAlign: "top", TextAlign: "center", Background: "#fff", Width: "50%"}
	if diff := cmp.Diff(want, cell.Format); diff != "" {
		t.Errorf("format mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// Unit helpers
// ---------------------------------------------------------------------------

func TestExpandBox(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  map[string]string
	}{
		{"1px", map[string]string{"top": "1px", "right": "1px", "bottom": "1px", "left": "1px"}},
		{"1px 2px 3px", map[string]string{"top": "1px", "right": "2px", "bottom": "3px", "left": "2px"}},
		{"1px 2px 3px 4px", map[string]string{"top": "1px", "right": "2px", "bottom": "3px", "left": "4px"}},
		{"1px 2px 3px 4px 5px", nil},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, expandBox(tt.value)); diff != "" {
			t.Errorf("expandBox(%q) mismatch (-want +got):\n%s", tt.value, diff)
		}
	}
}

func TestKeepEdgeSpace(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"a":         "a",
		"\n\n a":    " a",
		"a \t\n":    "a ",
		"  a  b   ": " a  b ",
		" a":        " a",
	}
	for in, want := range tests {
		if got := keepEdgeSpace(in); got != want {
			t.Errorf("keepEdgeSpace(%q) = %q, want %q", in, got, want)
		}
	}
}
