// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fleetwire/fleetwire/cmd/fleetwire/cli"
	"github.com/fleetwire/fleetwire/lib/clock"
	"github.com/fleetwire/fleetwire/lib/config"
)

// testApp runs commands against buffers and a fake clock.
type testApp struct {
	app
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	clock  *clock.FakeClock
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	t.Setenv(config.EnvironmentVariable, "")
	t.Setenv(cli.DebugEnvironmentVariable, "")

	fake := clock.Fake(time.UnixMilli(1_760_000_000_000))
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &testApp{
		app:    app{stdout: stdout, stderr: stderr, clock: fake},
		stdout: stdout,
		stderr: stderr,
		clock:  fake,
	}
}

func (a *testApp) run(args ...string) error {
	return a.root().Execute(args)
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error %v is not an ExitError", err)
	}
	return exitErr.ExitCode()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootListsCommands(t *testing.T) {
	a := newTestApp(t)
	if err := a.run("--help"); err != nil {
		t.Fatalf("--help: %v", err)
	}
	for _, name := range []string{"validate", "address", "id", "convert", "version"} {
		if !strings.Contains(a.stderr.String(), name) {
			t.Errorf("help output missing %q:\n%s", name, a.stderr.String())
		}
	}
}

func TestVersionCommand(t *testing.T) {
	a := newTestApp(t)
	if err := a.run("version"); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(a.stdout.String(), "fleetwire ") {
		t.Errorf("version output = %q", a.stdout.String())
	}

	a.stdout.Reset()
	if err := a.run("version", "--short"); err != nil {
		t.Fatalf("version --short: %v", err)
	}
	if strings.Contains(strings.TrimSpace(a.stdout.String()), " ") {
		t.Errorf("version --short output = %q, want only the number", a.stdout.String())
	}
}
