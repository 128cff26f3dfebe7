package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds every command-line flag.
type cliFlags struct {
	config      string
	format      string
	output      string
	logLevel    string
	logJSON     bool
	tree        bool
	styles      bool
	trace       bool
	noHighlight bool
	resolvePath bool
	printConfig bool
	version     bool
	help        bool

	// changed records which flags were given explicitly.
	changed func(name string) bool
}

// parseFlags parses args (without the program name) and returns the
// positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("docinsert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.format, "format", "f", "", "input format: html, markdown (default: detect)")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVar(&f.logJSON, "log-json", false, "log as JSON")
	fs.BoolVar(&f.tree, "tree", false, "print the normalized tree instead of text")
	fs.BoolVar(&f.styles, "styles", false, "append style ranges after the text")
	fs.BoolVar(&f.trace, "trace", false, "log every render step")
	fs.BoolVar(&f.noHighlight, "no-highlight", false, "disable code highlighting")
	fs.BoolVar(&f.resolvePath, "resolve-paths", false, "resolve relative image and link paths against the input file")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective config and exit")
	fs.BoolVarP(&f.version, "version", "V", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	f.changed = fs.Changed

	return f, fs.Args(), nil
}
