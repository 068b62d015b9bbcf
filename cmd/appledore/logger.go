package main

import (
	"io"
	"log/slog"

	"github.com/natefinch/lumberjack"
)

// Rotation limits for -log-file.
const (
	logMaxSizeMB = 10
	logMaxAgeDay = 7
)

// newLogger builds the process logger: text or JSON handler, debug level
// with -v, written to stderr or a rotating file. The returned func closes
// the file, if any.
func newLogger(opts cliOptions, stderr io.Writer) (*slog.Logger, func() error) {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}

	out := stderr
	closeFn := func() error { return nil }
	if opts.logFile != "" {
		l := &lumberjack.Logger{
			Filename: opts.logFile,
			MaxSize:  logMaxSizeMB, // megabytes
			MaxAge:   logMaxAgeDay, // days
		}
		out, closeFn = l, l.Close
	}

	hopts := &slog.HandlerOptions{Level: level}
	if opts.json {
		return slog.New(slog.NewJSONHandler(out, hopts)), closeFn
	}

	return slog.New(slog.NewTextHandler(out, hopts)), closeFn
}
