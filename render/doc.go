// Package render replays a finished node tree through a rendering backend.
//
// A backend registers one Handler per node kind in a Registry. The
// Dispatcher walks the tree depth-first, calling leaf handlers once and
// block handlers around their children:
//
//	reg := render.NewRegistry()
//	_ = reg.Register(render.Handler{Leaf: writeText}, node.KindText)
//	_ = reg.Passthrough(node.KindGroup, node.KindParagraph)
//	err := render.New(reg).Render(root)
//
// Styling is deferred. When a StyleHandler is set, the dispatcher records
// the backend position range each formatted node spans and applies the
// formats only after the whole tree rendered, ancestors before descendants.
//
// Every failure names the node it happened on: a missing handler is an
// *UnsupportedError and anything else is wrapped in a *RenderError.
package render
