// Package hints provides actionable error hints for common CLI failures.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"
)

// UserConfigDir locates the per-user config directory. Replaced in tests.
var UserConfigDir = os.UserConfigDir

// ForConfigNotFound suggests --config and where a named config is searched.
func ForConfigNotFound(name string) string {
	hint := "use --config /path/to/file.yaml"
	if dir, err := UserConfigDir(); err == nil && name != "" && !strings.ContainsAny(name, "/\\") {
		hint += " or create " + filepath.Join(dir, "go-docinsert", name+".yaml")
	}
	return format(hint)
}

// ForUnknownFormat lists the accepted input formats.
func ForUnknownFormat() string {
	return format("use --format html or --format markdown, or name the file .html or .md")
}

// ForEmptyInput explains where input is read from.
func ForEmptyInput() string {
	return format("pass a file argument or pipe content on stdin")
}

// ForInputTooLarge suggests splitting oversized input.
func ForInputTooLarge() string {
	return format("split the document into smaller files")
}

// ForStyleNotFound lists known highlight styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForConstruction points at the node kind a construction error names.
func ForConstruction(kind string) string {
	if kind == "" {
		return format("check the markup for elements missing required attributes")
	}
	return format("the markup producing " + kind + " nodes is missing a required attribute, such as img src")
}

// ForUnsupported names the node kind a backend cannot render.
func ForUnsupported(kind string) string {
	return format("the backend has no handler for " + kind + "; run with --tree to locate it")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
