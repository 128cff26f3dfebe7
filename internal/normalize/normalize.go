// Package normalize repairs trees that are structurally valid but
// semantically inconsistent, as produced by a permissive markup translation.
//
// Three passes run in a fixed order:
//   - Lists moves sub-lists out of list items to become their siblings
//   - Whitespace deletes and collapses insignificant whitespace
//   - TableSpans reconciles column spans so every row has the same width
//
// Passes are pure rewrites: they never fail on parseable input and skip
// what they cannot safely repair. Running them twice changes nothing.
package normalize

import "github.com/alnah/go-docinsert/node"

// Tree runs every pass over root in order. Parent links are stale
// afterwards; callers relink with node.LinkParents.
func Tree(root *node.Node) {
	Lists(root)
	Whitespace(root)
	TableSpans(root)
}
