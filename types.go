package docinsert

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Format names the markup language of an Input.
type Format string

// Supported input formats.
const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// ParseFormat resolves a format name or file extension, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "html", "htm", "xhtml":
		return FormatHTML, nil
	case "markdown", "md", "mdown", "mkd":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Input is a document to parse.
type Input struct {
	Content string
	Format  Format // defaults to FormatHTML
}

// Option configures a Parser.
type Option func(*Parser)

// parserConfig holds internal configuration for Parser.
type parserConfig struct {
	markdownStyle  string // chroma style applied by goldmark, empty for none
	highlightStyle string // chroma style used by Highlight
	baseDir        string // directory relative paths resolve against
}

// WithLogger sets the logger for translation warnings. The default
// discards them.
func WithLogger(logger *log.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithMarkdownHighlighting highlights fenced code while converting Markdown,
// using the named chroma style. Highlighted code blocks carry their colors
// as span formats and no longer name a language.
func WithMarkdownHighlighting(style string) Option {
	return func(p *Parser) {
		p.cfg.markdownStyle = style
	}
}

// WithHighlightStyle sets the chroma style used by Highlight.
func WithHighlightStyle(style string) Option {
	return func(p *Parser) {
		p.cfg.highlightStyle = style
	}
}

// WithBaseDir resolves relative image sources and link targets against dir
// as file:// URLs. Paths that would leave dir are kept as written.
func WithBaseDir(dir string) Option {
	return func(p *Parser) {
		p.cfg.baseDir = dir
	}
}
