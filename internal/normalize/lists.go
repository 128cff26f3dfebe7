package normalize

import "github.com/alnah/go-docinsert/node"

// Lists moves every list nested directly under a list item out of the item
// and into the enclosing list, right after the item. Several sub-lists under
// one item keep their relative order.
func Lists(root *node.Node) {
	if root.Kind.IsList() {
		denest(root)
		return
	}
	for _, c := range root.Children() {
		Lists(c)
	}
}

func denest(list *node.Node) {
	for _, item := range snapshot(list) {
		if item.Kind != node.KindListElement {
			if item.Kind.IsList() {
				denest(item)
			}
			continue
		}

		moved := 0
		for _, child := range snapshot(item) {
			if !child.Kind.IsList() {
				Lists(child)
				continue
			}
			moved++
			at := list.ChildIndex(item) + moved
			// Lists accept lists, so neither call can fail.
			_ = item.RemoveChild(child)
			_ = list.InsertChild(at, child)
			denest(child)
		}
	}
}

func snapshot(n *node.Node) []*node.Node {
	return append([]*node.Node(nil), n.Children()...)
}
