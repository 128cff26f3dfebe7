// Package node defines the document tree: a closed set of node kinds, each
// with a structural grammar that is enforced whenever the tree is built or
// mutated.
//
// Trees are built once by a translator, rewritten by the normalization
// passes, and then handed read-only to a renderer. Parent links are assigned
// by LinkParents in one pass after the tree is complete; mutations never
// update them.
package node

import (
	"fmt"
	"slices"
)

// Node is a single element of the document tree.
type Node struct {
	Kind       Kind
	Format     *Format           // optional styling intent
	Attributes map[string]string // raw markup attributes
	Source     any               // origin markup element, for diagnostics

	data     Data
	children []*Node
	parent   *Node
	scratch  any
}

// New builds a node of the given kind. data carries the kind-specific fields
// and may be nil for kinds without required fields. Every child must be
// allowed by the kind's grammar.
func New(kind Kind, data Data, attrs map[string]string, children ...*Node) (*Node, error) {
	if !kind.Valid() {
		return nil, &ConstructionError{Kind: kind, Err: ErrInvalidKind}
	}
	d, err := checkData(kind, data)
	if err != nil {
		return nil, &ConstructionError{Kind: kind, Err: err}
	}
	if kind == KindFootnote && attrs[FootnoteContentAttr] == "" {
		return nil, &ConstructionError{Kind: kind, Err: fmt.Errorf("%w: %s", ErrMissingField, FootnoteContentAttr)}
	}
	n := &Node{Kind: kind, Attributes: attrs, data: d}
	for _, c := range children {
		if err := n.AppendChild(c); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// MustNew is like New but panics on error. It is meant for tests and static
// trees.
func MustNew(kind Kind, data Data, children ...*Node) *Node {
	n, err := New(kind, data, nil, children...)
	if err != nil {
		panic(err)
	}
	return n
}

// NewText builds a Text node.
func NewText(text string) (*Node, error) {
	return New(KindText, &TextData{Text: text}, nil)
}

// Data returns the kind-specific payload, or nil.
func (n *Node) Data() Data { return n.data }

// Text returns the content of a Text node, or the raw text of a CodeBlock.
func (n *Node) Text() string {
	switch d := n.data.(type) {
	case *TextData:
		return d.Text
	case *CodeData:
		return d.Text
	}
	return ""
}

// SetText replaces the content of a Text node. It is a no-op for other kinds.
func (n *Node) SetText(text string) {
	if d, ok := n.data.(*TextData); ok {
		d.Text = text
	}
}

// Code returns the CodeBlock payload, or nil.
func (n *Node) Code() *CodeData { d, _ := n.data.(*CodeData); return d }

// Heading returns the Heading payload, or nil.
func (n *Node) Heading() *HeadingData { d, _ := n.data.(*HeadingData); return d }

// StyleName returns the Style payload, or nil.
func (n *Node) StyleName() *StyleData { d, _ := n.data.(*StyleData); return d }

// Image returns the Image payload, or nil.
func (n *Node) Image() *ImageData { d, _ := n.data.(*ImageData); return d }

// Link returns the HyperLink payload, or nil.
func (n *Node) Link() *LinkData { d, _ := n.data.(*LinkData); return d }

// List returns the list payload, or nil.
func (n *Node) List() *ListData { d, _ := n.data.(*ListData); return d }

// Table returns the Table payload, or nil.
func (n *Node) Table() *TableData { d, _ := n.data.(*TableData); return d }

// Cell returns the TableCell payload, or nil.
func (n *Node) Cell() *CellData { d, _ := n.data.(*CellData); return d }

// FootnoteContent returns the text of a Footnote node.
func (n *Node) FootnoteContent() string {
	return n.Attributes[FootnoteContentAttr]
}

// Attr returns a raw markup attribute.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.Attributes[key]
	return v, ok
}

// Children returns the ordered children. The slice must not be modified;
// use the mutation methods instead.
func (n *Node) Children() []*Node { return n.children }

// Len returns the number of children.
func (n *Node) Len() int { return len(n.children) }

// Child returns the i-th child, or nil when out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// ChildIndex returns the position of child, or -1.
func (n *Node) ChildIndex(child *Node) int {
	return slices.Index(n.children, child)
}

// HasChild reports whether a direct child has the given kind.
func (n *Node) HasChild(kind Kind) bool {
	return slices.ContainsFunc(n.children, func(c *Node) bool { return c.Kind == kind })
}

func (n *Node) checkChild(child *Node) error {
	if n.Kind.IsLeaf() {
		return &ConstructionError{Kind: n.Kind, Child: child, Err: ErrLeafChildren}
	}
	if child == nil || !n.Kind.Allows(child.Kind) {
		return &ConstructionError{Kind: n.Kind, Child: child, Err: ErrChildNotAllowed}
	}
	return nil
}

// AppendChild adds child at the end.
func (n *Node) AppendChild(child *Node) error {
	if err := n.checkChild(child); err != nil {
		return err
	}
	n.children = append(n.children, child)
	return nil
}

// InsertChild places child at position i, shifting later children.
func (n *Node) InsertChild(i int, child *Node) error {
	if err := n.checkChild(child); err != nil {
		return err
	}
	if i < 0 || i > len(n.children) {
		return &ConstructionError{Kind: n.Kind, Child: child, Err: ErrIndexOutOfRange}
	}
	n.children = slices.Insert(n.children, i, child)
	return nil
}

// ReplaceChild swaps old for repl in place.
func (n *Node) ReplaceChild(old, repl *Node) error {
	if err := n.checkChild(repl); err != nil {
		return err
	}
	i := n.ChildIndex(old)
	if i < 0 {
		return &ConstructionError{Kind: n.Kind, Child: old, Err: ErrNotAChild}
	}
	n.children[i] = repl
	return nil
}

// RemoveChild detaches child.
func (n *Node) RemoveChild(child *Node) error {
	i := n.ChildIndex(child)
	if i < 0 {
		return &ConstructionError{Kind: n.Kind, Child: child, Err: ErrNotAChild}
	}
	n.children = slices.Delete(n.children, i, i+1)
	return nil
}

// Parent returns the parent assigned by the last LinkParents pass.
func (n *Node) Parent() *Node { return n.parent }

// PrevSibling returns the previous sibling, using the parent link.
func (n *Node) PrevSibling() *Node {
	if n.parent == nil {
		return nil
	}
	return n.parent.Child(n.parent.ChildIndex(n) - 1)
}

// NextSibling returns the next sibling, using the parent link.
func (n *Node) NextSibling() *Node {
	if n.parent == nil {
		return nil
	}
	i := n.parent.ChildIndex(n)
	if i < 0 {
		return nil
	}
	return n.parent.Child(i + 1)
}

// Ancestor returns the nearest ancestor whose kind is one of kinds.
func (n *Node) Ancestor(kinds ...Kind) *Node {
	for p := n.parent; p != nil; p = p.parent {
		if slices.Contains(kinds, p.Kind) {
			return p
		}
	}
	return nil
}

// Depth returns the number of ancestors.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// ListDepth returns how many list nodes enclose n, n itself excluded.
func (n *Node) ListDepth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		if p.Kind.IsList() {
			d++
		}
	}
	return d
}

// Scratch returns the backend handle stored by SetScratch.
func (n *Node) Scratch() any { return n.scratch }

// SetScratch stores a backend handle for use by other handlers during the
// same render. The slot can be written once.
func (n *Node) SetScratch(v any) error {
	if n.scratch != nil {
		return fmt.Errorf("%w: %s", ErrScratchSet, n.Kind)
	}
	n.scratch = v
	return nil
}

// Dimensions returns the row and column counts of a Table node. Rows inside
// TableHead or TableBody children are counted as rows of the table.
func (n *Node) Dimensions() (rows, cols int) {
	for _, row := range n.Rows() {
		rows++
		width := 0
		for _, cell := range row.children {
			width += cell.Cell().Cols()
		}
		cols = max(cols, width)
	}
	return rows, cols
}

// Rows returns the TableRow nodes of a Table in order.
func (n *Node) Rows() []*Node {
	var rows []*Node
	for _, c := range n.children {
		switch c.Kind {
		case KindTableRow:
			rows = append(rows, c)
		case KindTableHead, KindTableBody:
			rows = append(rows, c.children...)
		}
	}
	return rows
}

func (n *Node) String() string {
	s := n.Kind.String()
	if n.data != nil {
		if sum := n.data.summary(); sum != "" {
			s += " " + sum
		}
	}
	if n.Format.HasFormat() {
		s += " " + n.Format.String()
	}
	return s
}
