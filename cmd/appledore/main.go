// Command appledore runs graph scenarios and built-in examples against the
// adjacency-matrix engine.
//
//	appledore -example all
//	appledore -json testdata/airports.toml other.yaml
//	appledore -watch -v network.yaml
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/appledore/scenario"
)

var errNoInput = errors.New("nothing to run: pass -example or scenario files")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "appledore:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return err
	}
	if opts.version {
		fmt.Fprintf(stdout, "appledore v%s\n", versionString)
		return nil
	}

	logger, closeLog := newLogger(opts, stderr)
	defer closeLog()

	if opts.example == "" && len(opts.files) == 0 {
		return errNoInput
	}
	if opts.example != "" {
		if err = runExamples(opts.example, stdout); err != nil {
			return err
		}
	}
	if len(opts.files) == 0 {
		return nil
	}

	if opts.watch {
		return watchFile(ctx, opts.files[0], opts.json, stdout, logger)
	}

	reports, err := runFiles(ctx, opts.files, opts.parallel, logger)
	if err != nil {
		return err
	}
	for _, r := range reports {
		if err = writeReport(stdout, r, opts.json); err != nil {
			return err
		}
	}

	return nil
}

// runFiles loads and runs every scenario file concurrently (at most parallel
// at a time). Reports keep the order of files; the first failure cancels the rest.
func runFiles(ctx context.Context, files []string, parallel int, logger *slog.Logger) ([]*scenario.Report, error) {
	reports := make([]*scenario.Report, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, path := range files {
		g.Go(func() error {
			s, err := scenario.Load(path)
			if err != nil {
				return err
			}
			r, err := s.Run(gctx, logger.With("file", path))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// watchFile runs path once, then again after every change, until ctx is done.
func watchFile(ctx context.Context, path string, asJSON bool, stdout io.Writer, logger *slog.Logger) error {
	var mu sync.Mutex // serializes report output between runs
	runOnce := func(s *scenario.Scenario) {
		r, err := s.Run(ctx, logger)
		if err != nil {
			logger.Error("run failed", "error", err)
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if err = writeReport(stdout, r, asJSON); err != nil {
			logger.Error("write report", "error", err)
		}
	}

	s, err := scenario.Load(path)
	if err != nil {
		return err
	}
	runOnce(s)

	w := scenario.NewWatcher(path, runOnce, logger)
	if err = w.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	w.Stop()

	return nil
}

func writeReport(w io.Writer, r *scenario.Report, asJSON bool) error {
	if !asJSON {
		return r.WriteText(w)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}
