package translate

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-docinsert/internal/normalize"
	"github.com/alnah/go-docinsert/node"
)

// space is the whitespace mode children of an element are built in.
type space int

const (
	spaceIgnore   space = iota // whitespace-only text dropped
	spaceRespect               // whitespace-only text kept as one space
	spacePreserve              // text kept verbatim
)

// simpleTags maps tags that need no attribute handling to their kind.
var simpleTags = map[string]node.Kind{
	"p":          node.KindParagraph,
	"b":          node.KindBold,
	"strong":     node.KindBold,
	"i":          node.KindItalic,
	"em":         node.KindItalic,
	"cite":       node.KindItalic,
	"var":        node.KindItalic,
	"u":          node.KindUnderline,
	"ins":        node.KindUnderline,
	"code":       node.KindInlineCode,
	"kbd":        node.KindInlineCode,
	"samp":       node.KindInlineCode,
	"tt":         node.KindInlineCode,
	"br":         node.KindLineBreak,
	"span":       node.KindSpan,
	"font":       node.KindSpan,
	"address":    node.KindBlockParagraph,
	"figcaption": node.KindBlockParagraph,
	"dt":         node.KindBlockParagraph,
	"dd":         node.KindBlockParagraph,
	"div":        node.KindGroup,
	"section":    node.KindGroup,
	"article":    node.KindGroup,
	"main":       node.KindGroup,
	"header":     node.KindGroup,
	"footer":     node.KindGroup,
	"nav":        node.KindGroup,
	"aside":      node.KindGroup,
	"figure":     node.KindGroup,
	"ul":         node.KindBulletList,
	"li":         node.KindListElement,
	"tr":         node.KindTableRow,
	"thead":      node.KindTableHead,
	"tbody":      node.KindTableBody,
	"tfoot":      node.KindTableBody,
}

// droppedTags are removed together with their content.
var droppedTags = map[atom.Atom]bool{
	atom.Head:     true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Title:    true,
	atom.Template: true,
	atom.Noscript: true,
}

// markBackground is the highlight color of a mark element without one.
const markBackground = "yellow"

// spaceChars is markup whitespace. A non-breaking space is content.
const spaceChars = " \t\n\r\f\v"

var listTypes = map[string]string{
	"i": node.ListRomanLower,
	"I": node.ListRomanUpper,
	"a": node.ListAlphaLower,
	"A": node.ListAlphaUpper,
	"1": node.ListDecimal,
}

// Translator builds normalized node trees from markup.
type Translator struct {
	logger  *log.Logger
	baseDir string
}

// New returns a Translator. A nil logger discards warnings.
func New(logger *log.Logger, opts ...Option) *Translator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	t := &Translator{logger: logger}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// HTML parses content as a full document or a body fragment and translates it.
func (t *Translator) HTML(content string) (*node.Node, error) {
	doc, err := parseHTML(content)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return t.DOM(doc)
}

// DOM translates an already parsed document. The result is a Group whose
// parents are linked and which has been through every normalization pass.
// With a base dir, relative paths in doc are rewritten in place first.
func (t *Translator) DOM(doc *html.Node) (*node.Node, error) {
	t.resolvePaths(doc)

	root, err := node.New(node.KindGroup, nil, nil)
	if err != nil {
		return nil, err
	}
	root.Source = doc
	if err := t.children(root, doc, spaceIgnore); err != nil {
		return nil, err
	}

	node.LinkParents(root)
	normalize.Tree(root)
	node.LinkParents(root)
	return root, nil
}

// parseHTML parses a full document when content starts with a doctype or an
// html tag, and a fragment in a body context otherwise. Fragments are wrapped
// in a document node so both cases traverse the same way.
func parseHTML(content string) (*html.Node, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))
	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		return html.Parse(strings.NewReader(content))
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, err
	}
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// build translates one DOM node. It returns nil for markup that produces
// nothing: comments, dropped tags, ignorable whitespace and elements whose
// kind requires children but that ended up empty.
func (t *Translator) build(el *html.Node, mode space) (*node.Node, error) {
	switch el.Type {
	case html.TextNode:
		return t.text(el, mode)
	case html.ElementNode:
	default:
		return nil, nil
	}
	if droppedTags[el.DataAtom] {
		return nil, nil
	}

	kind, data := t.resolve(el, mode)
	n, err := node.New(kind, data, attributes(el))
	if err != nil {
		return nil, fmt.Errorf("<%s>: %w", el.Data, err)
	}
	n.Source = el
	n.Format = t.format(el)
	switch el.DataAtom {
	case atom.Del, atom.S, atom.Strike:
		n.Format = withFormat(n.Format)
		n.Format.TextDecoration = "line-through"
	case atom.Mark:
		n.Format = withFormat(n.Format)
		if n.Format.Background == "" {
			n.Format.Background = markBackground
		}
	}

	if kind.IsLeaf() {
		return n, nil
	}
	if err := t.children(n, el, childMode(kind, mode)); err != nil {
		return nil, err
	}
	if kind == node.KindParagraph {
		trimEnds(n)
	}
	if n.Len() == 0 && (kind.RequiresChildren() || kind == node.KindIgnored) {
		return nil, nil
	}
	return n, nil
}

func withFormat(f *node.Format) *node.Format {
	if f == nil {
		return &node.Format{}
	}
	return f
}

// resolve maps an element to its kind and payload.
func (t *Translator) resolve(el *html.Node, mode space) (node.Kind, node.Data) {
	name := el.Data
	// Inline code markup inside a code block carries no meaning of its own.
	if mode == spacePreserve && simpleTags[name] == node.KindInlineCode {
		return node.KindIgnored, nil
	}
	if k, ok := simpleTags[name]; ok {
		return k, nil
	}

	switch name {
	case "del", "s", "strike", "mark":
		return node.KindSpan, nil
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return node.KindHeading, &node.HeadingData{Level: int(name[1] - '0')}
	case "blockquote":
		return node.KindStyle, &node.StyleData{Name: "Quote"}
	case "pre":
		return node.KindCodeBlock, &node.CodeData{Highlight: language(el), Text: textContent(el)}
	case "ol":
		return node.KindNumberedList, &node.ListData{Type: listTypes[attr(el, "type")]}
	case "img":
		return node.KindImage, &node.ImageData{
			Location: attr(el, "src"),
			Width:    attr(el, "width"),
			Height:   attr(el, "height"),
			Caption:  attr(el, "alt"),
		}
	case "a":
		href := attr(el, "href")
		if href == "" {
			return node.KindIgnored, nil
		}
		return node.KindHyperLink, &node.LinkData{Location: href, Label: attr(el, "title")}
	case "table":
		return node.KindTable, &node.TableData{Border: attr(el, "border")}
	case "td", "th":
		return node.KindTableCell, &node.CellData{
			ColSpan: atoi(attr(el, "colspan")),
			RowSpan: atoi(attr(el, "rowspan")),
			Header:  name == "th",
		}
	case "footnote":
		return node.KindFootnote, nil
	}
	return node.KindIgnored, nil
}

// childMode returns the whitespace mode for the children of kind. Kinds with
// no mode of their own inherit the enclosing one.
func childMode(kind node.Kind, inherited space) space {
	switch kind {
	case node.KindCodeBlock:
		return spacePreserve
	case node.KindTable, node.KindTableHead, node.KindTableBody, node.KindTableRow,
		node.KindBulletList, node.KindNumberedList:
		return spaceIgnore
	case node.KindParagraph, node.KindBlockParagraph, node.KindBold, node.KindItalic,
		node.KindUnderline, node.KindSpan, node.KindStyle, node.KindHeading,
		node.KindHyperLink, node.KindInlineCode, node.KindTableCell, node.KindListElement:
		if inherited == spacePreserve {
			return spacePreserve
		}
		return spaceRespect
	}
	return inherited
}

func (t *Translator) text(el *html.Node, mode space) (*node.Node, error) {
	s := el.Data
	if s == "" {
		return nil, nil
	}
	if mode != spacePreserve && strings.Trim(s, spaceChars) == "" {
		if mode == spaceIgnore {
			return nil, nil
		}
		if prev := el.PrevSibling; prev != nil && prev.Type == html.TextNode {
			return nil, nil
		}
		s = " "
	} else if mode != spacePreserve && (el.PrevSibling != nil || el.NextSibling != nil) {
		s = keepEdgeSpace(s)
	}
	n, err := node.NewText(s)
	if err != nil {
		return nil, err
	}
	n.Source = el
	return n, nil
}

// keepEdgeSpace reduces leading and trailing whitespace runs to one space.
func keepEdgeSpace(s string) string {
	if strings.ContainsRune(spaceChars, rune(s[0])) {
		s = " " + strings.TrimLeft(s, spaceChars)
	}
	if strings.ContainsRune(spaceChars, rune(s[len(s)-1])) {
		s = strings.TrimRight(s, spaceChars) + " "
	}
	return s
}

// children builds every DOM child of el and attaches the results to n.
func (t *Translator) children(n *node.Node, el *html.Node, mode space) error {
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		item, err := t.build(c, mode)
		if err != nil {
			return err
		}
		if item == nil {
			continue
		}
		for _, candidate := range splice(item) {
			if n.Kind.IsList() && candidate.Kind != node.KindListElement && !candidate.Kind.IsList() {
				wrapped, err := node.New(node.KindListElement, nil, nil, candidate)
				if err != nil {
					return err
				}
				candidate = wrapped
			}
			t.attach(n, candidate)
		}
	}
	return nil
}

// splice returns the nodes that take item's place in its parent. Ignored
// nodes and table sections are transparent.
func splice(item *node.Node) []*node.Node {
	switch item.Kind {
	case node.KindIgnored, node.KindTableHead, node.KindTableBody:
		var out []*node.Node
		for _, c := range item.Children() {
			out = append(out, splice(c)...)
		}
		return out
	}
	return []*node.Node{item}
}

// attach appends child to n. A child n does not allow is replaced by its own
// children, tried one by one.
func (t *Translator) attach(n, child *node.Node) {
	if n.Kind.Allows(child.Kind) {
		_ = n.AppendChild(child)
		return
	}
	if child.Len() == 0 {
		t.logger.Debug("dropping disallowed node", "parent", n.Kind, "child", child.Kind)
		return
	}
	for _, gc := range child.Children() {
		t.attach(n, gc)
	}
}

// trimEnds removes whitespace-only text at both ends of a paragraph.
func trimEnds(p *node.Node) {
	for p.Len() > 0 && isSpaceText(p.Child(0)) {
		_ = p.RemoveChild(p.Child(0))
	}
	for p.Len() > 0 && isSpaceText(p.Child(p.Len()-1)) {
		_ = p.RemoveChild(p.Child(p.Len() - 1))
	}
}

func isSpaceText(n *node.Node) bool {
	return n.Kind == node.KindText && strings.Trim(n.Text(), spaceChars) == ""
}

// language reads the highlight language from a language-x or lang-x class on
// the pre element or its first code child.
func language(pre *html.Node) string {
	for _, el := range []*html.Node{pre, firstElement(pre)} {
		if el == nil {
			continue
		}
		for _, class := range strings.Fields(attr(el, "class")) {
			for _, prefix := range []string{"language-", "lang-"} {
				if lang, ok := strings.CutPrefix(class, prefix); ok && lang != "" {
					return lang
				}
			}
		}
	}
	return ""
}

func firstElement(el *html.Node) *html.Node {
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

func textContent(el *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(el)
	return b.String()
}

func attributes(el *html.Node) map[string]string {
	if len(el.Attr) == 0 {
		return nil
	}
	m := make(map[string]string, len(el.Attr))
	for _, a := range el.Attr {
		m[a.Key] = a.Val
	}
	return m
}

func attr(el *html.Node, key string) string {
	for _, a := range el.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
