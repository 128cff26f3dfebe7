package render

import (
	"fmt"

	"github.com/alnah/go-docinsert/node"
)

// Handler renders one node kind. Leaf kinds use Leaf alone. Other kinds use
// Enter before their children and Exit after; both may be nil.
//
// Enter may return a replacement child list. A non-nil result is rendered in
// place of the node's own children.
type Handler struct {
	Leaf  func(n *node.Node) error
	Enter func(n *node.Node) ([]*node.Node, error)
	Exit  func(n *node.Node) error
}

// Registry maps node kinds to handlers. It is built once before rendering.
type Registry struct {
	handlers map[node.Kind]Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: map[node.Kind]Handler{}}
}

// Register binds h to every kind in kinds. Registering a kind twice fails
// with ErrDuplicateHandler; a handler whose shape does not fit a kind fails
// with ErrInvalidHandler. Nothing is registered when an error is returned.
func (r *Registry) Register(h Handler, kinds ...node.Kind) error {
	seen := make(map[node.Kind]bool, len(kinds))
	for _, k := range kinds {
		if !k.Valid() {
			return fmt.Errorf("%w: %s", node.ErrInvalidKind, k)
		}
		if _, ok := r.handlers[k]; ok || seen[k] {
			return fmt.Errorf("%w: %s", ErrDuplicateHandler, k)
		}
		if k.IsLeaf() && (h.Leaf == nil || h.Enter != nil || h.Exit != nil) {
			return fmt.Errorf("%w: %s needs a leaf handler only", ErrInvalidHandler, k)
		}
		if !k.IsLeaf() && h.Leaf != nil {
			return fmt.Errorf("%w: %s takes enter and exit handlers", ErrInvalidHandler, k)
		}
		seen[k] = true
	}
	for _, k := range kinds {
		r.handlers[k] = h
	}
	return nil
}

// Passthrough registers handlers that do nothing except render children.
func (r *Registry) Passthrough(kinds ...node.Kind) error {
	return r.Register(Handler{}, kinds...)
}

// Lookup returns the handler registered for k.
func (r *Registry) Lookup(k node.Kind) (Handler, bool) {
	h, ok := r.handlers[k]
	return h, ok
}

// Phase selects when a hook runs relative to a node's handler.
type Phase int

// Hook phases.
const (
	Pre Phase = iota
	Post
)

func (p Phase) String() string {
	if p == Pre {
		return "pre"
	}
	return "post"
}

// HookFunc observes a node. It cannot change traversal; a returned error
// aborts the render like a handler error would.
type HookFunc func(n *node.Node) error

type hookKey struct {
	phase Phase
	kind  node.Kind
}

// Hooks holds instrumentation callbacks keyed by phase and kind.
type Hooks struct {
	fns map[hookKey][]HookFunc
}

// NewHooks returns an empty hook set.
func NewHooks() *Hooks {
	return &Hooks{fns: map[hookKey][]HookFunc{}}
}

// Add appends fns to the hooks run at phase for kind, in order.
func (h *Hooks) Add(phase Phase, kind node.Kind, fns ...HookFunc) {
	key := hookKey{phase, kind}
	h.fns[key] = append(h.fns[key], fns...)
}

func (h *Hooks) run(phase Phase, n *node.Node) error {
	if h == nil {
		return nil
	}
	for _, fn := range h.fns[hookKey{phase, n.Kind}] {
		if err := fn(n); err != nil {
			return fmt.Errorf("%s hook: %w", phase, err)
		}
	}
	return nil
}
