package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-docinsert/node"
)

// ErrNoRoots is returned when Render is called without a tree.
var ErrNoRoots = errors.New("nothing to render")

// StyleRecord is the styling captured for one node: its format and the
// backend position range its rendering spanned.
type StyleRecord struct {
	Node   *node.Node
	Format *node.Format
	Start  int
	End    int
	Depth  int
}

// StyleHandler applies node formats over backend position ranges. Position
// reports the backend's current write position. ApplyStyle is called once
// per record after the whole tree has rendered, ancestors first.
type StyleHandler interface {
	Position() (int, error)
	ApplyStyle(rec StyleRecord) error
}

// Backend is a rendering target that knows how to register its handlers.
// A Backend that also implements StyleHandler styles the nodes it renders.
type Backend interface {
	Register(r *Registry) error
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithHooks attaches instrumentation hooks.
func WithHooks(h *Hooks) Option {
	return func(d *Dispatcher) { d.hooks = h }
}

// WithStyleHandler sets the style handler, replacing one inferred from the
// backend.
func WithStyleHandler(s StyleHandler) Option {
	return func(d *Dispatcher) { d.style = s }
}

// WithTrace logs one debug line on entering and leaving every node.
func WithTrace(logger *log.Logger) Option {
	return func(d *Dispatcher) { d.trace = logger }
}

// Dispatcher walks node trees depth-first and calls the registered handler
// for each node. It is not safe for concurrent use; neither are backends.
type Dispatcher struct {
	registry *Registry
	hooks    *Hooks
	style    StyleHandler
	trace    *log.Logger

	styles []StyleRecord
}

// New returns a Dispatcher over a prepared registry.
func New(registry *Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{registry: registry}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewFor registers backend's handlers in a fresh registry and returns a
// Dispatcher for it.
func NewFor(backend Backend, opts ...Option) (*Dispatcher, error) {
	reg := NewRegistry()
	if err := backend.Register(reg); err != nil {
		return nil, fmt.Errorf("registering backend handlers: %w", err)
	}
	if s, ok := backend.(StyleHandler); ok {
		opts = append([]Option{WithStyleHandler(s)}, opts...)
	}
	return New(reg, opts...), nil
}

// Render renders each root in order. Formats are applied only once every
// root has rendered without error. Scratch slots are cleared first, so a
// tree can be rendered more than once. Each root keeps its own parent link,
// so a subtree can be rendered in place.
func (d *Dispatcher) Render(roots ...*node.Node) error {
	if len(roots) == 0 {
		return ErrNoRoots
	}
	d.styles = d.styles[:0]
	for _, root := range roots {
		node.LinkSubtrees(root.Parent(), []*node.Node{root})
		node.ResetScratch(root)
		if err := d.render(root, 0); err != nil {
			return err
		}
	}
	return d.replay()
}

func (d *Dispatcher) render(n *node.Node, depth int) error {
	h, ok := d.registry.Lookup(n.Kind)
	if !ok {
		return &UnsupportedError{Node: n}
	}

	// The slot is reserved before any child so records stay in pre-order.
	slot := -1
	if d.style != nil && n.Format.HasFormat() {
		start, err := d.style.Position()
		if err != nil {
			return attribute(n, err)
		}
		slot = len(d.styles)
		d.styles = append(d.styles, StyleRecord{Node: n, Format: n.Format, Start: start, Depth: depth})
	}

	d.tracef(depth, "enter", n)
	if err := d.hooks.run(Pre, n); err != nil {
		return attribute(n, err)
	}

	if n.Kind.IsLeaf() {
		if err := h.Leaf(n); err != nil {
			return attribute(n, err)
		}
	} else if err := d.block(h, n, depth); err != nil {
		return err
	}

	if err := d.hooks.run(Post, n); err != nil {
		return attribute(n, err)
	}
	d.tracef(depth, "exit", n)

	if slot >= 0 {
		end, err := d.style.Position()
		if err != nil {
			return attribute(n, err)
		}
		d.styles[slot].End = end
	}
	return nil
}

func (d *Dispatcher) block(h Handler, n *node.Node, depth int) error {
	children := n.Children()
	if h.Enter != nil {
		replacement, err := h.Enter(n)
		if err != nil {
			return attribute(n, err)
		}
		if replacement != nil {
			node.LinkSubtrees(n, replacement)
			children = replacement
		}
	}

	for _, c := range children {
		if err := d.render(c, depth+1); err != nil {
			return err
		}
	}

	if h.Exit != nil {
		if err := h.Exit(n); err != nil {
			return attribute(n, err)
		}
	}
	return nil
}

// replay applies the captured formats in the order their nodes were
// entered, so a descendant's format lands after its ancestor's.
func (d *Dispatcher) replay() error {
	for _, rec := range d.styles {
		if err := d.style.ApplyStyle(rec); err != nil {
			return attribute(rec.Node, err)
		}
	}
	d.styles = d.styles[:0]
	return nil
}

func (d *Dispatcher) tracef(depth int, event string, n *node.Node) {
	if d.trace == nil {
		return
	}
	d.trace.Debug(strings.Repeat("  ", depth)+event+" "+n.Kind.String(), "format", n.Format.String())
}
