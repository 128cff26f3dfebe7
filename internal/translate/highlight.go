package translate

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-docinsert/node"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// Highlighter re-expresses code blocks as syntax highlighted subtrees.
type Highlighter struct {
	tr        *Translator
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewHighlighter returns a Highlighter using the named chroma style. Unknown
// style names fall back to chroma's default style.
func NewHighlighter(tr *Translator, style string) *Highlighter {
	if style == "" {
		style = DefaultHighlightStyle
	}
	return &Highlighter{
		tr:        tr,
		style:     styles.Get(style),
		formatter: chromahtml.New(chromahtml.WithClasses(false)),
	}
}

// Highlight returns the children that replace code's own when rendering it
// highlighted. It returns nil when code is not a CodeBlock, names no language,
// or names a language chroma does not know.
func (h *Highlighter) Highlight(code *node.Node) ([]*node.Node, error) {
	if code.Kind != node.KindCodeBlock {
		return nil, nil
	}
	lang := code.Code().Highlight
	if lang == "" {
		return nil, nil
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		h.tr.logger.Warn("no lexer for code block language", "language", lang)
		return nil, nil
	}

	it, err := chroma.Coalesce(lexer).Tokenise(nil, code.Text())
	if err != nil {
		return nil, fmt.Errorf("tokenising %s code: %w", lang, err)
	}
	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, it); err != nil {
		return nil, fmt.Errorf("formatting %s code: %w", lang, err)
	}

	root, err := h.tr.HTML(buf.String())
	if err != nil {
		return nil, err
	}
	var out []*node.Node
	node.Walk(root, func(n *node.Node, _ int) bool {
		if out != nil {
			return false
		}
		if n.Kind == node.KindCodeBlock {
			out = n.Children()
			return false
		}
		return true
	})
	return out, nil
}
