package textdoc

import (
	"errors"
	"strconv"
	"strings"

	"github.com/alnah/go-docinsert/node"
	"github.com/alnah/go-docinsert/render"
)

// Sentinel errors for content rendered outside its container.
var (
	ErrNoList  = errors.New("list item outside a rendered list")
	ErrNoTable = errors.New("table row outside a rendered table")
)

// listState numbers the items of one list.
type listState struct {
	count int
}

// tableState tracks the header separator of one table.
type tableState struct {
	separated bool
}

// Register binds a handler to every kind a normalized tree can contain.
func (d *Document) Register(r *render.Registry) error {
	leaves := []struct {
		kind node.Kind
		fn   func(*node.Node) error
	}{
		{node.KindText, d.text},
		{node.KindLineBreak, d.lineBreak},
		{node.KindImage, d.image},
		{node.KindFootnote, d.footnote},
	}
	for _, l := range leaves {
		if err := r.Register(render.Handler{Leaf: l.fn}, l.kind); err != nil {
			return err
		}
	}

	blocks := []struct {
		kinds []node.Kind
		h     render.Handler
	}{
		{[]node.Kind{node.KindBold}, d.wrap("**", "**")},
		{[]node.Kind{node.KindItalic}, d.wrap("_", "_")},
		{[]node.Kind{node.KindInlineCode}, d.wrap("`", "`")},
		{[]node.Kind{node.KindParagraph, node.KindBlockParagraph}, render.Handler{Enter: d.startBlock, Exit: d.endBlock}},
		{[]node.Kind{node.KindHeading}, render.Handler{Enter: d.heading, Exit: d.endBlock}},
		{[]node.Kind{node.KindStyle}, render.Handler{Enter: d.style, Exit: d.endBlock}},
		{[]node.Kind{node.KindCodeBlock}, render.Handler{Enter: d.codeStart, Exit: d.codeEnd}},
		{[]node.Kind{node.KindHyperLink}, render.Handler{Enter: d.linkStart, Exit: d.linkEnd}},
		{[]node.Kind{node.KindBulletList, node.KindNumberedList}, render.Handler{Enter: d.list}},
		{[]node.Kind{node.KindListElement}, render.Handler{Enter: d.listItem, Exit: d.endBlock}},
		{[]node.Kind{node.KindTable}, render.Handler{Enter: d.table}},
		{[]node.Kind{node.KindTableRow}, render.Handler{Enter: d.rowStart, Exit: d.rowEnd}},
		{[]node.Kind{node.KindTableCell}, render.Handler{Enter: d.cellStart, Exit: d.cellEnd}},
	}
	for _, b := range blocks {
		if err := r.Register(b.h, b.kinds...); err != nil {
			return err
		}
	}

	return r.Passthrough(node.KindGroup, node.KindUnderline, node.KindSpan, node.KindTableHead, node.KindTableBody)
}

func (d *Document) text(n *node.Node) error {
	d.write(n.Text())
	return nil
}

func (d *Document) lineBreak(*node.Node) error {
	d.write("\n")
	return nil
}

func (d *Document) image(n *node.Node) error {
	img := n.Image()
	d.write("![" + img.Caption + "](" + img.Location + ")")
	return nil
}

func (d *Document) footnote(n *node.Node) error {
	d.notes = append(d.notes, n.FootnoteContent())
	d.write("[^" + strconv.Itoa(len(d.notes)) + "]")
	return nil
}

func (d *Document) wrap(open, close string) render.Handler {
	return render.Handler{
		Enter: func(*node.Node) ([]*node.Node, error) {
			d.write(open)
			return nil, nil
		},
		Exit: func(*node.Node) error {
			d.write(close)
			return nil
		},
	}
}

func (d *Document) startBlock(n *node.Node) ([]*node.Node, error) {
	d.breakFor(n)
	return nil, nil
}

func (d *Document) endBlock(n *node.Node) error {
	d.breakFor(n)
	return nil
}

func (d *Document) heading(n *node.Node) ([]*node.Node, error) {
	d.breakFor(n)
	d.prefix(strings.Repeat("#", n.Heading().Level) + " ")
	return nil, nil
}

func (d *Document) style(n *node.Node) ([]*node.Node, error) {
	d.breakFor(n)
	if n.StyleName().Name == "Quote" {
		d.prefix("> ")
	}
	return nil, nil
}

func (d *Document) codeStart(n *node.Node) ([]*node.Node, error) {
	d.breakFor(n)
	d.write("```" + n.Code().Highlight + "\n")
	if d.highlight == nil {
		return nil, nil
	}
	return d.highlight(n)
}

func (d *Document) codeEnd(n *node.Node) error {
	d.breakFor(n)
	d.write("```\n")
	return nil
}

func (d *Document) linkStart(*node.Node) ([]*node.Node, error) {
	d.write("[")
	return nil, nil
}

func (d *Document) linkEnd(n *node.Node) error {
	d.write("](" + n.Link().Location + ")")
	return nil
}

func (d *Document) list(n *node.Node) ([]*node.Node, error) {
	d.breakFor(n)
	return nil, n.SetScratch(&listState{})
}

func (d *Document) listItem(n *node.Node) ([]*node.Node, error) {
	d.breakFor(n)
	list := n.Parent()
	if list == nil {
		return nil, ErrNoList
	}
	state, ok := list.Scratch().(*listState)
	if !ok {
		return nil, ErrNoList
	}
	state.count++

	marker := "-"
	if list.Kind == node.KindNumberedList {
		marker = number(state.count, list.List().Type) + "."
	}
	d.prefix(strings.Repeat("  ", n.ListDepth()-1) + marker + " ")
	return nil, nil
}

func (d *Document) table(n *node.Node) ([]*node.Node, error) {
	d.breakFor(n)
	return nil, n.SetScratch(&tableState{})
}

func (d *Document) rowStart(*node.Node) ([]*node.Node, error) {
	d.write("|")
	return nil, nil
}

func (d *Document) rowEnd(n *node.Node) error {
	d.write("\n")
	table := n.Ancestor(node.KindTable)
	if table == nil {
		return ErrNoTable
	}
	state, ok := table.Scratch().(*tableState)
	if !ok {
		return ErrNoTable
	}
	if state.separated || !isHeaderRow(n) {
		return nil
	}
	state.separated = true
	_, cols := table.Dimensions()
	d.write("|" + strings.Repeat("---|", cols) + "\n")
	return nil
}

func (d *Document) cellStart(*node.Node) ([]*node.Node, error) {
	d.prefix(" ")
	return nil, nil
}

func (d *Document) cellEnd(n *node.Node) error {
	d.write(" " + strings.Repeat("|", n.Cell().Cols()))
	return nil
}

func isHeaderRow(row *node.Node) bool {
	for _, c := range row.Children() {
		if !c.Cell().Header {
			return false
		}
	}
	return row.Len() > 0
}
