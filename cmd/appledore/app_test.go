package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/appledore/scenario"
)

var testdata = filepath.Join("..", "..", "scenario", "testdata")

func TestParseOptions(t *testing.T) {
	opts, err := parseOptions([]string{"-v", "-json", "-parallel", "2", "a.toml", "b.yaml"}, io.Discard)
	require.NoError(t, err)
	assert.True(t, opts.verbose)
	assert.True(t, opts.json)
	assert.Equal(t, 2, opts.parallel)
	assert.Equal(t, []string{"a.toml", "b.yaml"}, opts.files)

	_, err = parseOptions([]string{"-parallel", "0"}, io.Discard)
	require.Error(t, err)

	_, err = parseOptions([]string{"-watch", "a.toml", "b.toml"}, io.Discard)
	require.Error(t, err)

	_, err = parseOptions([]string{"-h"}, io.Discard)
	require.ErrorIs(t, err, flag.ErrHelp)
}

func TestRun_Examples(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-example", "all"}, &stdout, io.Discard))

	out := stdout.String()
	assert.Contains(t, out, "## airports")
	assert.Contains(t, out, "4 itineraries Los Angeles → Atlanta:")
	assert.Contains(t, out, "ATL receives 4 direct flights")
	assert.Contains(t, out, "alice↔bob: true/true")
	assert.Contains(t, out, "carol's friends: alice, bob, dave")
	assert.Contains(t, out, "alice → bob → carol → dave → erin")
	assert.Contains(t, out, "friend circle: alice, bob, carol")
	assert.Contains(t, out, "PHL → LON via PHL → NYC → BOS → LON")
	assert.Contains(t, out, "after upgrade PHL → NYC exists: false")
	assert.Contains(t, out, "edges: 4 (directed 3, undirected 1)")
	assert.Contains(t, out, "paths A→E: 16")
}

func TestRun_UnknownExample(t *testing.T) {
	err := run(context.Background(), []string{"-example", "mars"}, io.Discard, io.Discard)
	require.ErrorContains(t, err, "unknown example")
}

func TestRun_NoInput(t *testing.T) {
	err := run(context.Background(), nil, io.Discard, io.Discard)
	require.ErrorIs(t, err, errNoInput)
}

func TestRun_Version(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-version"}, &stdout, io.Discard))
	require.Equal(t, "appledore v"+versionString+"\n", stdout.String())
}

func TestRun_ScenarioFilesJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{
		"-json", "-v",
		filepath.Join(testdata, "airports.toml"),
		filepath.Join(testdata, "social.yaml"),
		filepath.Join(testdata, "flights.yaml"),
	}
	require.NoError(t, run(context.Background(), args, &stdout, &stderr))

	dec := json.NewDecoder(&stdout)
	var names []string
	for dec.More() {
		var r scenario.Report
		require.NoError(t, dec.Decode(&r))
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"airports", "social", "flights"}, names, "reports keep argument order")
	assert.Contains(t, stderr.String(), `"msg":"scenario finished"`)
}

func TestRun_ScenarioFileMissing(t *testing.T) {
	err := run(context.Background(), []string{filepath.Join(testdata, "missing.toml")}, io.Discard, io.Discard)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunFiles_Text(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reports, err := runFiles(context.Background(), []string{filepath.Join(testdata, "social.yaml")}, 1, logger)
	require.NoError(t, err)
	require.Len(t, reports, 1)

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, reports[0], false))
	assert.Contains(t, buf.String(), "== social (undirected)")
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appledore.log")
	logger, closeLog := newLogger(cliOptions{logFile: path, json: true}, io.Discard)
	logger.Info("hello", "k", 1)
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}
