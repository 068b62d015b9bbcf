package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

const versionString = "0.1.0"

// cliOptions holds parsed command-line flags and positional scenario files.
type cliOptions struct {
	example  string
	json     bool
	verbose  bool
	watch    bool
	parallel int
	logFile  string
	version  bool
	files    []string
}

func parseOptions(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("appledore", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: appledore [flags] [scenario.toml|scenario.yaml ...]")
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.example, "example", "", "Run a built-in example: "+strings.Join(exampleNames(), ", ")+" or all")
	fs.BoolVar(&opts.json, "json", false, "Write reports and logs as JSON")
	fs.BoolVar(&opts.verbose, "v", false, "Enable debug logging")
	fs.BoolVar(&opts.watch, "watch", false, "Re-run the scenario file whenever it changes")
	fs.IntVar(&opts.parallel, "parallel", 4, "Maximum number of scenario files run concurrently")
	fs.StringVar(&opts.logFile, "log-file", "", "Write logs to a rotating file instead of stderr")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}
	opts.files = fs.Args()

	if opts.parallel < 1 {
		return cliOptions{}, fmt.Errorf("-parallel must be ≥ 1, got %d", opts.parallel)
	}
	if opts.watch && len(opts.files) != 1 {
		return cliOptions{}, fmt.Errorf("-watch needs exactly one scenario file, got %d", len(opts.files))
	}

	return opts, nil
}
