// Package textdoc is a plain-text rendering backend. It writes a
// Markdown-like outline of a node tree and records applied formats as rune
// ranges over the written text, the way a word processor addresses styled
// content.
package textdoc

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-docinsert/node"
	"github.com/alnah/go-docinsert/render"
)

// ErrRange indicates a style record outside the written text.
var ErrRange = errors.New("style range outside document")

// HighlightFunc returns replacement children for a code block, or nil to
// render its own children.
type HighlightFunc func(code *node.Node) ([]*node.Node, error)

// Range is a format applied over the runes [Start, End).
type Range struct {
	Kind   node.Kind
	Start  int
	End    int
	Format *node.Format
}

// Option configures a Document.
type Option func(*Document)

// WithHighlighter renders code blocks through fn.
func WithHighlighter(fn HighlightFunc) Option {
	return func(d *Document) { d.highlight = fn }
}

// Document accumulates rendered text. It implements render.Backend and
// render.StyleHandler.
type Document struct {
	buf       strings.Builder
	runes     int
	last      rune
	prefixed  bool // a line prefix was just written
	styles    []Range
	notes     []string
	highlight HighlightFunc
}

// New returns an empty Document.
func New(opts ...Option) *Document {
	d := &Document{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Position returns the number of runes written so far.
func (d *Document) Position() (int, error) {
	return d.runes, nil
}

// ApplyStyle records rec's format over its range.
func (d *Document) ApplyStyle(rec render.StyleRecord) error {
	if rec.Start < 0 || rec.End < rec.Start || rec.End > d.runes {
		return fmt.Errorf("%w: [%d,%d) of %d", ErrRange, rec.Start, rec.End, d.runes)
	}
	d.styles = append(d.styles, Range{Kind: rec.Node.Kind, Start: rec.Start, End: rec.End, Format: rec.Format})
	return nil
}

// Styles returns the applied formats in application order.
func (d *Document) Styles() []Range {
	return append([]Range(nil), d.styles...)
}

// Body returns the rendered text without footnotes.
func (d *Document) Body() string {
	return d.buf.String()
}

// String returns the rendered text followed by its footnotes.
func (d *Document) String() string {
	if len(d.notes) == 0 {
		return d.Body()
	}
	var b strings.Builder
	b.WriteString(d.Body())
	if d.last != '\n' && d.runes > 0 {
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	for i, note := range d.notes {
		fmt.Fprintf(&b, "[^%d]: %s\n", i+1, note)
	}
	return b.String()
}

// WriteStyles writes one line per applied format: the range, the node kind,
// the format and the styled text.
func (d *Document) WriteStyles(w io.Writer) error {
	body := []rune(d.Body())
	for _, r := range d.styles {
		if _, err := fmt.Fprintf(w, "[%d,%d) %s %s %q\n", r.Start, r.End, r.Kind, r.Format, string(body[r.Start:r.End])); err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) write(s string) {
	if s == "" {
		return
	}
	d.buf.WriteString(s)
	d.runes += utf8.RuneCountInString(s)
	d.last, _ = utf8.DecodeLastRuneInString(s)
	d.prefixed = false
}

// prefix writes a line prefix such as a list marker. The next block break
// is absorbed so the block continues on the prefixed line.
func (d *Document) prefix(s string) {
	d.write(s)
	d.prefixed = true
}

// breakFor starts a new line for block n unless the cursor is already at
// one. Inside a table cell, blocks are separated by a space instead.
func (d *Document) breakFor(n *node.Node) {
	switch {
	case d.prefixed:
		d.prefixed = false
	case n.Ancestor(node.KindTableCell) != nil:
		if d.last != ' ' {
			d.write(" ")
		}
	case d.runes > 0 && d.last != '\n':
		d.write("\n")
	}
}
