package node

import "fmt"

// Kind identifies the variant of a Node.
type Kind int

// Node kinds.
const (
	KindGroup Kind = iota
	KindBold
	KindItalic
	KindUnderline
	KindText
	KindParagraph
	KindBlockParagraph
	KindCodeBlock
	KindInlineCode
	KindLineBreak
	KindSpan
	KindStyle
	KindHeading
	KindImage
	KindHyperLink
	KindBulletList
	KindNumberedList
	KindListElement
	KindTable
	KindTableHead
	KindTableBody
	KindTableRow
	KindTableCell
	KindFootnote
	KindIgnored

	kindCount
)

// grammar is the structural contract of one kind.
type grammar struct {
	name             string
	leaf             bool
	requiresChildren bool
	allowed          []Kind // empty means any kind
}

var grammars = [kindCount]grammar{
	KindGroup:          {name: "Group", requiresChildren: true},
	KindBold:           {name: "Bold", requiresChildren: true},
	KindItalic:         {name: "Italic", requiresChildren: true},
	KindUnderline:      {name: "Underline", requiresChildren: true},
	KindText:           {name: "Text", leaf: true},
	KindParagraph:      {name: "Paragraph"},
	KindBlockParagraph: {name: "BlockParagraph"},
	KindCodeBlock:      {name: "CodeBlock"},
	KindInlineCode:     {name: "InlineCode", requiresChildren: true},
	KindLineBreak:      {name: "LineBreak", leaf: true},
	KindSpan:           {name: "Span", requiresChildren: true},
	KindStyle:          {name: "Style", requiresChildren: true},
	KindHeading:        {name: "Heading", requiresChildren: true},
	KindImage:          {name: "Image", leaf: true},
	KindHyperLink:      {name: "HyperLink", requiresChildren: true},
	KindBulletList: {
		name: "BulletList", requiresChildren: true,
		allowed: []Kind{KindListElement, KindBulletList, KindNumberedList},
	},
	KindNumberedList: {
		name: "NumberedList", requiresChildren: true,
		allowed: []Kind{KindListElement, KindBulletList, KindNumberedList},
	},
	KindListElement: {name: "ListElement"},
	KindTable: {
		name: "Table", requiresChildren: true,
		allowed: []Kind{KindTableRow, KindTableHead, KindTableBody},
	},
	KindTableHead: {name: "TableHead", requiresChildren: true, allowed: []Kind{KindTableRow}},
	KindTableBody: {name: "TableBody", requiresChildren: true, allowed: []Kind{KindTableRow}},
	KindTableRow:  {name: "TableRow", requiresChildren: true, allowed: []Kind{KindTableCell}},
	KindTableCell: {name: "TableCell"},
	KindFootnote:  {name: "Footnote", leaf: true},
	KindIgnored:   {name: "IgnoredOperation"},
}

// Kinds returns every node kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return grammars[k].name
}

// IsLeaf reports whether nodes of this kind refuse any children.
func (k Kind) IsLeaf() bool {
	return k.Valid() && grammars[k].leaf
}

// RequiresChildren reports whether a node of this kind must have at least
// one child to appear in a finished tree.
func (k Kind) RequiresChildren() bool {
	return k.Valid() && grammars[k].requiresChildren
}

// IsList reports whether k is a bullet or numbered list.
func (k Kind) IsList() bool {
	return k == KindBulletList || k == KindNumberedList
}

// Allows reports whether a child of kind child may be placed under a node of
// kind k. Leaf kinds allow nothing; an empty allowed set allows everything.
func (k Kind) Allows(child Kind) bool {
	if !k.Valid() || !child.Valid() || grammars[k].leaf {
		return false
	}
	allowed := grammars[k].allowed
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == child {
			return true
		}
	}
	return false
}

// AllowedChildren returns the explicit allowed-child set, or nil when any
// kind is accepted.
func (k Kind) AllowedChildren() []Kind {
	if !k.Valid() {
		return nil
	}
	return append([]Kind(nil), grammars[k].allowed...)
}
