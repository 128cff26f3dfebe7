package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docinsert [flags] [file]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Translate HTML or Markdown into a document tree and print its text rendering.")
	fmt.Fprintln(w, "Reads stdin when file is omitted or \"-\".")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -f, --format <s>      Input format: html, markdown (default: detect)")
	fmt.Fprintln(w, "  -o, --output <path>   Output file (default: stdout)")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "      --resolve-paths   Resolve relative image and link paths against the input file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --tree            Print the normalized tree instead of text")
	fmt.Fprintln(w, "      --styles          Append style ranges after the text")
	fmt.Fprintln(w, "      --no-highlight    Disable code highlighting")
	fmt.Fprintln(w, "      --trace           Log every render step")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Logging:")
	fmt.Fprintln(w, "      --log-level <s>   debug, info, warn, error")
	fmt.Fprintln(w, "      --log-json        Log as JSON")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "      --print-config    Print the effective config and exit")
	fmt.Fprintln(w, "  -V, --version         Print version and exit")
	fmt.Fprintln(w, "  -h, --help            Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 ok, 1 error, 2 usage or config, 3 I/O, 4 render.")
}
