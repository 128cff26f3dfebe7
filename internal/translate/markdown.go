package translate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"

	"github.com/alnah/go-docinsert/node"
)

// ErrMarkdownConversion indicates the Markdown renderer failed.
var ErrMarkdownConversion = errors.New("markdown conversion failed")

// Markdown converts Markdown to HTML with goldmark and translates the result.
type Markdown struct {
	md goldmark.Markdown
	tr *Translator
}

// NewMarkdown returns a Markdown translator with GFM and footnotes. When
// highlightStyle is not empty, fenced code is highlighted with that chroma
// style using inline colors, which the translator keeps as span formats.
func NewMarkdown(tr *Translator, highlightStyle string) *Markdown {
	extensions := []goldmark.Extender{
		extension.GFM,      // tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
	}
	if highlightStyle != "" {
		extensions = append(extensions, highlighting.NewHighlighting(
			highlighting.WithStyle(highlightStyle),
			highlighting.WithFormatOptions(chromahtml.WithClasses(false)),
		))
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		// Raw HTML stays disabled: WithUnsafe is not set.
		goldmark.WithRendererOptions(gmhtml.WithXHTML()),
	)
	return &Markdown{md: md, tr: tr}
}

// ToHTML renders content as an HTML fragment. Goldmark has no context
// support, so the conversion runs in a goroutine raced against ctx.
func (m *Markdown) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := m.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrMarkdownConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Translate converts Markdown content into a normalized tree. Besides GFM,
// ==text== marks a highlighted span.
func (m *Markdown) Translate(ctx context.Context, content string) (*node.Node, error) {
	out, err := m.ToHTML(ctx, preprocessMarkdown(content))
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(restoreMarks(out)))
	if err != nil {
		return nil, fmt.Errorf("parsing rendered markdown: %w", err)
	}
	rewriteFootnotes(doc)
	return m.tr.DOM(doc.Nodes[0])
}

// rewriteFootnotes turns goldmark footnote references into footnote elements
// carrying the note text, then removes the footnote section.
func rewriteFootnotes(doc *goquery.Document) {
	notes := map[string]string{}
	doc.Find("div.footnotes li[id]").Each(func(_ int, li *goquery.Selection) {
		li.Find("a.footnote-backref").Remove()
		id, _ := li.Attr("id")
		notes[id] = strings.TrimSpace(li.Text())
	})

	doc.Find("sup").Each(func(_ int, sup *goquery.Selection) {
		ref := sup.Find("a.footnote-ref")
		if ref.Length() == 0 {
			return
		}
		href, _ := ref.Attr("href")
		content := notes[strings.TrimPrefix(href, "#")]
		if content == "" {
			sup.Remove()
			return
		}
		sup.ReplaceWithNodes(&html.Node{
			Type: html.ElementNode,
			Data: "footnote",
			Attr: []html.Attribute{{Key: node.FootnoteContentAttr, Val: content}},
		})
	})

	doc.Find("div.footnotes").Remove()
}
