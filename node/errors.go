package node

import (
	"errors"
	"fmt"
)

// Sentinel errors for tree construction and mutation.
var (
	ErrMissingField    = errors.New("required field missing")
	ErrUnexpectedData  = errors.New("unexpected fields for kind")
	ErrChildNotAllowed = errors.New("child kind not allowed")
	ErrLeafChildren    = errors.New("leaf kind cannot have children")
	ErrInvalidKind     = errors.New("invalid node kind")
	ErrNotAChild       = errors.New("node is not a child")
	ErrIndexOutOfRange = errors.New("child index out of range")
	ErrScratchSet      = errors.New("render scratch slot already set")
	ErrEmptyNode       = errors.New("node requires at least one child")
)

// ConstructionError reports a grammar violation while building or mutating a
// tree. Kind is the kind of the node being built or mutated.
type ConstructionError struct {
	Kind  Kind
	Child *Node // offending child, if any
	Err   error
}

func (e *ConstructionError) Error() string {
	if e.Child != nil {
		return fmt.Sprintf("%s: %v: %s", e.Kind, e.Err, e.Child.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}
