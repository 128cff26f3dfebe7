package render

import (
	"errors"
	"fmt"

	"github.com/alnah/go-docinsert/node"
)

// Sentinel errors for registry configuration.
var (
	ErrDuplicateHandler = errors.New("handler already registered for kind")
	ErrInvalidHandler   = errors.New("handler does not fit kind")
)

// UnsupportedError reports a node whose kind has no registered handler.
type UnsupportedError struct {
	Node *node.Node
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("no handler registered for %s", e.Node.Kind)
}

// RenderError attributes a handler, hook or style failure to the node being
// rendered when it happened.
type RenderError struct {
	Node *node.Node
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering %s: %v", e.Node, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// attribute wraps err with n unless it already names a node.
func attribute(n *node.Node, err error) error {
	if err == nil {
		return nil
	}
	var re *RenderError
	var ue *UnsupportedError
	if errors.As(err, &re) || errors.As(err, &ue) {
		return err
	}
	return &RenderError{Node: n, Err: err}
}
