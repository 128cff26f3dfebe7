package docinsert

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-docinsert/internal/translate"
	"github.com/alnah/go-docinsert/node"
	"github.com/alnah/go-docinsert/render"
)

// Parser turns markup into normalized node trees. A Parser is safe for
// concurrent use; the trees it returns are not.
type Parser struct {
	cfg    parserConfig
	logger *log.Logger

	translator  *translate.Translator
	markdown    *translate.Markdown
	highlighter *translate.Highlighter
}

// NewParser creates a Parser. Use options to customize logging and code
// highlighting.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}

	var trOpts []translate.Option
	if p.cfg.baseDir != "" {
		trOpts = append(trOpts, translate.WithBaseDir(p.cfg.baseDir))
	}
	p.translator = translate.New(p.logger, trOpts...)
	p.markdown = translate.NewMarkdown(p.translator, p.cfg.markdownStyle)
	p.highlighter = translate.NewHighlighter(p.translator, p.cfg.highlightStyle)
	return p
}

// Parse translates input into a normalized tree rooted at a Group.
// The context is checked before work starts; translation itself is not
// interruptible except while Markdown is converted.
// Internal panics are recovered and returned as ErrTranslate errors.
func (p *Parser) Parse(ctx context.Context, input Input) (root *node.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			root, err = nil, fmt.Errorf("%w: internal error: %v", ErrTranslate, r)
		}
	}()

	if input.Content == "" {
		return nil, ErrEmptyContent
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch input.Format {
	case FormatHTML, "":
		root, err = p.translator.HTML(input.Content)
	case FormatMarkdown:
		root, err = p.markdown.Translate(ctx, input.Content)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, input.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTranslate, err)
	}
	return root, nil
}

// Highlight returns a syntax highlighted replacement for a CodeBlock's
// children, suitable for returning from a render.Handler's Enter. It
// returns nil when the block names no language chroma knows.
func (p *Parser) Highlight(code *node.Node) ([]*node.Node, error) {
	return p.highlighter.Highlight(code)
}

var defaultParser = sync.OnceValue(func() *Parser { return NewParser() })

// Parse translates content with a default Parser.
func Parse(ctx context.Context, content string, format Format) (*node.Node, error) {
	return defaultParser().Parse(ctx, Input{Content: content, Format: format})
}

// Highlight highlights a CodeBlock with a default Parser.
func Highlight(code *node.Node) ([]*node.Node, error) {
	return defaultParser().Highlight(code)
}

// Insert renders root into backend. Handler, hook and style failures wrap
// ErrRender and remain inspectable as *render.RenderError or
// *render.UnsupportedError.
func Insert(root *node.Node, backend render.Backend, opts ...render.Option) error {
	d, err := render.NewFor(backend, opts...)
	if err != nil {
		return err
	}
	if err := d.Render(root); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}
