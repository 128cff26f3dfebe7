package main

import (
	"errors"
	"sort"

	"github.com/alecthomas/chroma/v2/styles"

	docinsert "github.com/alnah/go-docinsert"
	"github.com/alnah/go-docinsert/internal/config"
	"github.com/alnah/go-docinsert/internal/fileutil"
	"github.com/alnah/go-docinsert/internal/hints"
	"github.com/alnah/go-docinsert/node"
	"github.com/alnah/go-docinsert/render"
)

// hintFor returns an actionable hint for err, or "" when none applies.
// configName is the --config value of the failed run.
func hintFor(err error, configName string) string {
	var unsupported *render.UnsupportedError
	var construction *node.ConstructionError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(configName)
	case errors.Is(err, config.ErrUnknownStyle):
		names := styles.Names()
		sort.Strings(names)
		return hints.ForStyleNotFound(names)
	case errors.Is(err, docinsert.ErrUnknownFormat):
		return hints.ForUnknownFormat()
	case errors.Is(err, docinsert.ErrEmptyContent):
		return hints.ForEmptyInput()
	case errors.Is(err, fileutil.ErrInputTooLarge):
		return hints.ForInputTooLarge()
	case errors.As(err, &unsupported):
		return hints.ForUnsupported(unsupported.Node.Kind.String())
	case errors.As(err, &construction):
		return hints.ForConstruction(construction.Kind.String())
	}
	return ""
}
