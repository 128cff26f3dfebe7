package main

import (
	"errors"
	"os"

	docinsert "github.com/alnah/go-docinsert"
	"github.com/alnah/go-docinsert/internal/config"
	"github.com/alnah/go-docinsert/internal/fileutil"
	"github.com/alnah/go-docinsert/internal/logging"
	"github.com/alnah/go-docinsert/render"
)

// Exit codes for docinsert CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error, including untranslatable input
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, oversized input
	ExitRender  = 4 // Backend handler, hook or style failures
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Render errors (exit 4)
	if errors.Is(err, docinsert.ErrRender) ||
		errors.Is(err, render.ErrDuplicateHandler) ||
		errors.Is(err, render.ErrInvalidHandler) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrInputTooLarge) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, logging.ErrInvalidLevel) ||
		errors.Is(err, docinsert.ErrUnknownFormat) ||
		errors.Is(err, docinsert.ErrEmptyContent) {
		return ExitUsage
	}

	return ExitGeneral
}
