// Package fileutil reads CLI input with a size bound, detects its markup
// format and writes output files atomically.
package fileutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MaxInputSize bounds the bytes read from a file or stdin (default 16MB).
var MaxInputSize int64 = 16 << 20

// Sentinel errors for file utility operations.
var (
	ErrInputTooLarge = errors.New("input exceeds maximum size")
	ErrEmptyPath     = errors.New("path cannot be empty")
)

// Markup formats reported by DetectFormat.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// ReadInput reads path, or stdin when path is "-" or empty.
func ReadInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return readBounded(stdin, "stdin")
	}

	f, err := os.Open(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer func() { _ = f.Close() }()
	return readBounded(f, path)
}

func readBounded(r io.Reader, name string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxInputSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if int64(len(data)) > MaxInputSize {
		return nil, fmt.Errorf("%w: %s (max %d bytes)", ErrInputTooLarge, name, MaxInputSize)
	}
	return data, nil
}

// DetectFormat guesses the markup of content, preferring the file extension.
// Without a known extension, content whose first non-blank byte opens a tag
// is HTML; anything else is Markdown.
func DetectFormat(path string, content []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return FormatHTML
	case ".md", ".markdown", ".mdown", ".mkd":
		return FormatMarkdown
	}
	if trimmed := bytes.TrimLeft(content, " \t\r\n\ufeff"); len(trimmed) > 0 && trimmed[0] == '<' {
		return FormatHTML
	}
	return FormatMarkdown
}

// WriteFileAtomic writes data to a temp file beside path, then renames it
// into place so readers never observe a partial file.
func WriteFileAtomic(path string, data []byte) (err error) {
	if path == "" {
		return ErrEmptyPath
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".docinsert-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		return fmt.Errorf("replacing %s: %w", path, renameErr)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
