package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/raphi011/desccol/internal/config"
	"github.com/raphi011/desccol/internal/log"
	"github.com/raphi011/desccol/internal/output"
)

const testJobsJSON = `[
  {"name": "nightly", "description": "Nightly build<br/>Runs at <b>2am</b>"},
  {"name": "release", "description": "Build <b>123</b> failed"},
  {"name": "deploy", "description": null}
]`

// testContext returns a context carrying the default config and a printer
// writing to the returned buffer.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	return testContextWithConfig(t, &cfg)
}

func testContextWithConfig(t *testing.T, cfg *config.Config) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	ctx := context.Background()
	ctx = log.WithLogger(ctx, log.New(io.Discard, false, false))
	ctx = output.WithPrinter(ctx, &buf)
	ctx = config.WithConfig(ctx, cfg)
	ctx = config.WithResolver(ctx, config.NewResolver(cfg))
	return ctx, &buf
}

// writeFile writes content to name in dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// execute runs cmd with args in ctx, silencing cobra's own output.
func execute(ctx context.Context, cmd *cobra.Command, args ...string) error {
	cmd.SetContext(ctx)
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd.Execute()
}
