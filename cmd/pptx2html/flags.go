package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// convertFlags holds all CLI flags.
type convertFlags struct {
	output  string
	config  string
	workers int
	timeout string
	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses CLI flags and returns them with the positional inputs.
func parseFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("pptx2html", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output root directory (default: out)")
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-conversion timeout (e.g., 30s, 2m)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
	fs.BoolVar(&f.version, "version", false, "show version information")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pptx2html [flags] <input.pptx>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert PPTX presentations to HTML5 slideshows.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Each input is converted into <output>/<name>/ containing index.html,")
	fmt.Fprintln(w, "presentation.css, per-slide fragments, and extracted media.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>    Output root directory (default: out)")
	fmt.Fprintln(w, "  -c, --config <path>   Config file path")
	fmt.Fprintln(w, "  -w, --workers <n>     Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>     Per-conversion timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
	fmt.Fprintln(w, "  -v, --verbose         Show detailed progress")
	fmt.Fprintln(w, "      --version         Show version information")
}
