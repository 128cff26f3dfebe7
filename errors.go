package docinsert

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyContent  = errors.New("content cannot be empty")
	ErrUnknownFormat = errors.New("unknown input format")
	ErrTranslate     = errors.New("markup translation failed")
	ErrRender        = errors.New("rendering failed")
)
