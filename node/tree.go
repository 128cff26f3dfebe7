package node

import (
	"fmt"
	"io"
	"strings"
)

// LinkParents assigns parent links across the whole tree rooted at root.
// The root's parent is cleared.
func LinkParents(root *Node) {
	link(root, nil)
}

// LinkSubtrees links roots as if they were children of parent, without
// changing parent's own children. Renderers use it for replacement child
// lists.
func LinkSubtrees(parent *Node, roots []*Node) {
	for _, r := range roots {
		link(r, parent)
	}
}

func link(n, parent *Node) {
	n.parent = parent
	for _, c := range n.children {
		link(c, n)
	}
}

// Walk visits the tree in pre-order. Returning false from fn skips the
// node's children.
func Walk(root *Node, fn func(n *Node, depth int) bool) {
	walk(root, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.children {
		walk(c, depth+1, fn)
	}
}

// Dump writes an indented outline of the tree, one node per line.
func Dump(w io.Writer, root *Node) error {
	var err error
	Walk(root, func(n *Node, depth int) bool {
		if err != nil {
			return false
		}
		_, err = fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), n)
		return true
	})
	return err
}

// Sprint returns the Dump output as a string.
func Sprint(root *Node) string {
	var b strings.Builder
	_ = Dump(&b, root)
	return b.String()
}

// Check verifies the structural invariants of a finished tree: every child
// is allowed by its parent, leaves have no children, and no node other than
// the root is empty when its kind requires children.
func Check(root *Node) error {
	var err error
	Walk(root, func(n *Node, _ int) bool {
		if err != nil {
			return false
		}
		if n.Kind.IsLeaf() && len(n.children) > 0 {
			err = &ConstructionError{Kind: n.Kind, Child: n.children[0], Err: ErrLeafChildren}
			return false
		}
		if n != root && n.Kind.RequiresChildren() && len(n.children) == 0 {
			err = &ConstructionError{Kind: n.Kind, Err: ErrEmptyNode}
			return false
		}
		for _, c := range n.children {
			if !n.Kind.Allows(c.Kind) {
				err = &ConstructionError{Kind: n.Kind, Child: c, Err: ErrChildNotAllowed}
				return false
			}
		}
		return true
	})
	return err
}

// ResetScratch clears the scratch slot of every node under root, so the
// tree can be rendered again.
func ResetScratch(root *Node) {
	Walk(root, func(n *Node, _ int) bool {
		n.scratch = nil
		return true
	})
}
