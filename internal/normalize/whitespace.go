package normalize

import (
	"regexp"
	"strings"

	"github.com/alnah/go-docinsert/node"
)

// Whitespace characters as markup defines them. Non-breaking spaces are
// content, not whitespace.
const spaceChars = " \t\n\r\f\v"

var collapsePattern = regexp.MustCompile(`[ \t\n\r\f\v]+`)

// Whitespace applies the two whitespace rules, skipping anything inside a
// CodeBlock:
//
//  1. Outside a text-flow container, whitespace-only text is deleted. Every
//     other text has its whitespace runs collapsed to a single space.
//  2. In every text-flow container, the text reached by following first
//     children loses its leading whitespace, and the text reached by
//     following last children loses its trailing whitespace.
//
// Text emptied by trimming is removed. Nodes left empty whose kind requires
// children are pruned.
func Whitespace(root *node.Node) {
	collapse(root, root.Kind == node.KindCodeBlock, isFlow(root.Kind))
	prune(root)
	trimFlow(root)
	prune(root)
}

// isFlow reports whether k lays its content out as one paragraph run.
func isFlow(k node.Kind) bool {
	switch k {
	case node.KindParagraph, node.KindBlockParagraph, node.KindHeading,
		node.KindStyle, node.KindListElement, node.KindTableCell:
		return true
	}
	return false
}

func isBlank(s string) bool {
	return strings.Trim(s, spaceChars) == ""
}

func collapse(n *node.Node, preserve, inFlow bool) {
	if preserve {
		return
	}
	for _, c := range snapshot(n) {
		if c.Kind != node.KindText {
			collapse(c, c.Kind == node.KindCodeBlock, inFlow || isFlow(c.Kind))
			continue
		}
		if !inFlow && isBlank(c.Text()) {
			_ = n.RemoveChild(c)
			continue
		}
		c.SetText(collapsePattern.ReplaceAllString(c.Text(), " "))
	}
}

// prune removes descendants that require children but have none. It works
// bottom-up so emptiness propagates.
func prune(n *node.Node) {
	for _, c := range snapshot(n) {
		prune(c)
		if c.Kind.RequiresChildren() && c.Len() == 0 {
			_ = n.RemoveChild(c)
		}
	}
}

func trimFlow(n *node.Node) {
	if n.Kind == node.KindCodeBlock {
		return
	}
	if isFlow(n.Kind) {
		trimEdge(n, first, func(s string) string { return strings.TrimLeft(s, spaceChars) })
		trimEdge(n, last, func(s string) string { return strings.TrimRight(s, spaceChars) })
	}
	for _, c := range n.Children() {
		trimFlow(c)
	}
}

// trimEdge trims the edge text of n until it keeps some content. Emptied
// text is removed along with the ancestors below n it leaves empty.
func trimEdge(n *node.Node, pick func(*node.Node) *node.Node, trim func(string) string) {
	for {
		path := edgePath(n, pick)
		if path == nil {
			return
		}
		t := path[len(path)-1]
		t.SetText(trim(t.Text()))
		if t.Text() != "" {
			return
		}
		for i := len(path) - 1; i > 0; i-- {
			parent := path[i-1]
			_ = parent.RemoveChild(path[i])
			if parent.Len() > 0 || !parent.Kind.RequiresChildren() {
				break
			}
		}
	}
}

func first(n *node.Node) *node.Node { return n.Child(0) }
func last(n *node.Node) *node.Node  { return n.Child(n.Len() - 1) }

// edgePath descends from n through pick until it reaches a Text node and
// returns the nodes visited, n first. It stops at code blocks and childless
// nodes, returning nil.
func edgePath(n *node.Node, pick func(*node.Node) *node.Node) []*node.Node {
	path := []*node.Node{n}
	for c := pick(n); c != nil; c = pick(c) {
		path = append(path, c)
		switch c.Kind {
		case node.KindText:
			return path
		case node.KindCodeBlock:
			return nil
		}
	}
	return nil
}
