package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	docinsert "github.com/alnah/go-docinsert"
	"github.com/alnah/go-docinsert/internal/config"
	"github.com/alnah/go-docinsert/internal/fileutil"
	"github.com/alnah/go-docinsert/internal/logging"
	"github.com/alnah/go-docinsert/internal/textdoc"
	"github.com/alnah/go-docinsert/node"
	"github.com/alnah/go-docinsert/render"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")
)

// runMain runs the CLI and returns its exit code. Errors are reported on
// env.Stderr.
func runMain(ctx context.Context, args []string, env *Environment) int {
	err := run(ctx, args, env)
	if err != nil {
		configName := ""
		if flags, _, perr := parseFlags(args); perr == nil {
			configName = flags.config
		}
		fmt.Fprintf(env.Stderr, "docinsert: %v%s\n", err, hintFor(err, configName))
		if errors.Is(err, ErrUsage) {
			fmt.Fprintln(env.Stderr, "Run 'docinsert --help' for usage.")
		}
	}
	return exitCodeFor(err)
}

func run(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}
	if flags.help {
		printUsage(env.Stdout)
		return nil
	}
	if flags.version {
		fmt.Fprintln(env.Stdout, "docinsert", Version)
		return nil
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one input file, got %d", ErrUsage, len(positional))
	}

	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}
	if flags.printConfig {
		fmt.Fprint(env.Stdout, cfg.String())
		return nil
	}

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, JSON: cfg.Log.JSON, Output: env.Stderr})
	if err != nil {
		return err
	}

	path := ""
	if len(positional) == 1 {
		path = positional[0]
	}
	content, err := fileutil.ReadInput(path, env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	format, err := resolveFormat(cfg.Input.Format, path, content)
	if err != nil {
		return err
	}
	logger.Debug("input read", "path", path, "format", format, "bytes", len(content))

	opts := parserOptions(cfg, logger)
	if cfg.Input.ResolvePaths && path != "" && path != "-" {
		opts = append(opts, docinsert.WithBaseDir(filepath.Dir(path)))
	}
	parser := docinsert.NewParser(opts...)
	root, err := parser.Parse(ctx, docinsert.Input{Content: string(content), Format: format})
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if flags.tree {
		if err := node.Dump(&out, root); err != nil {
			return err
		}
	} else if err := renderText(&out, root, parser, cfg, flags.styles, logger); err != nil {
		return err
	}

	return writeOutput(flags.output, out.Bytes(), env.Stdout)
}

// resolveConfig loads the config file, if any, and applies flag overrides.
func resolveConfig(flags *cliFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.changed("format") {
		cfg.Input.Format = flags.format
	}
	if flags.changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if flags.changed("log-json") {
		cfg.Log.JSON = flags.logJSON
	}
	if flags.resolvePath {
		cfg.Input.ResolvePaths = true
	}
	if flags.trace {
		cfg.Render.Trace = true
	}
	if flags.noHighlight {
		cfg.Markdown.Highlight = false
		cfg.Render.Highlight = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveFormat(configured, path string, content []byte) (docinsert.Format, error) {
	if configured == "" {
		configured = fileutil.DetectFormat(path, content)
	}
	return docinsert.ParseFormat(configured)
}

func parserOptions(cfg *config.Config, logger *log.Logger) []docinsert.Option {
	opts := []docinsert.Option{
		docinsert.WithLogger(logger),
		docinsert.WithHighlightStyle(cfg.Render.HighlightStyle),
	}
	if cfg.Markdown.Highlight {
		opts = append(opts, docinsert.WithMarkdownHighlighting(cfg.Markdown.Style))
	}
	return opts
}

// renderText inserts root into a text document and writes the result.
func renderText(w io.Writer, root *node.Node, parser *docinsert.Parser, cfg *config.Config, styles bool, logger *log.Logger) error {
	var docOpts []textdoc.Option
	if cfg.Render.Highlight {
		docOpts = append(docOpts, textdoc.WithHighlighter(parser.Highlight))
	}
	doc := textdoc.New(docOpts...)

	var renderOpts []render.Option
	if cfg.Render.Trace {
		trace := logger.WithPrefix("trace")
		trace.SetLevel(log.DebugLevel)
		renderOpts = append(renderOpts, render.WithTrace(trace))
	}

	if err := docinsert.Insert(root, doc, renderOpts...); err != nil {
		return err
	}

	if _, err := io.WriteString(w, doc.String()); err != nil {
		return err
	}
	if styles {
		if _, err := io.WriteString(w, "\n"+strings.Repeat("-", 8)+" styles\n"); err != nil {
			return err
		}
		return doc.WriteStyles(w)
	}
	return nil
}

func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" || path == "-" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		return nil
	}
	if err := fileutil.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
