// Package docinsert translates HTML and Markdown into a normalized document
// tree and renders that tree into a pluggable output backend.
//
// # Quick Start
//
// Parse markup, then insert the tree into a backend:
//
//	root, err := docinsert.Parse(ctx, "<h1>Hello</h1><p>World</p>", docinsert.FormatHTML)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc := textdoc.New()
//	if err := docinsert.Insert(root, doc); err != nil {
//	    log.Fatal(err)
//	}
//
// # Pipeline
//
// A document goes through these stages:
//
//  1. Markdown to HTML via Goldmark (GFM, footnotes, optional highlighting)
//  2. HTML parsing and translation into node.Node trees
//  3. Normalization: table spans, nested lists, whitespace
//  4. Rendering: a render.Dispatcher walks the tree, calls one handler per
//     node kind, then replays style records against the backend
//
// # Configuration
//
// Use functional options to customize the parser:
//
//	p := docinsert.NewParser(
//	    docinsert.WithLogger(logger),
//	    docinsert.WithMarkdownHighlighting("monokai"),
//	)
//	root, err := p.Parse(ctx, docinsert.Input{
//	    Content: markdown,
//	    Format:  docinsert.FormatMarkdown,
//	})
//
// # Backends
//
// A backend registers handlers for the node kinds it supports. Kinds with no
// handler fail rendering with *render.UnsupportedError. Backends that also
// implement render.StyleHandler receive a StyleRecord for every formatted
// node once the whole tree has rendered.
//
// Code blocks can be swapped for highlighted content by returning the result
// of Highlight from a CodeBlock handler's Enter.
package docinsert
