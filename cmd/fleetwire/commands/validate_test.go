// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fleetwire/fleetwire/lib/identifier"
)

func newID(t *testing.T, a *testApp) string {
	t.Helper()
	generator, err := identifier.NewGenerator(a.clock)
	if err != nil {
		t.Fatal(err)
	}
	return generator.Next().String()
}

func TestValidateCommand(t *testing.T) {
	a := newTestApp(t)
	path := writeFile(t, "capture.jsonc", fmt.Sprintf(`[
		// door event
		{"specversion": "1.0", "id": %q, "source": "/body.access/1/door.front_left#Door", "type": "pub.v1"},
		// request with no time to live
		{"specversion": "1.0", "id": %q, "source": "/app/1/rpc.response", "type": "req.v1",
		 "sink": "//VCU.myvin/body.access/1/rpc.UpdateDoor"},
	]`, newID(t, a), newID(t, a)))

	err := a.run("validate", path)
	if code := exitCode(t, err); code != 1 {
		t.Fatalf("exit code = %d, want 1\n%s", code, a.stdout.String())
	}
	output := a.stdout.String()
	for _, want := range []string{
		path + "[0]: ok",
		path + "[1]: rejected: Missing TTL",
		"1 admitted, 1 rejected",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
	if !strings.Contains(a.stderr.String(), "envelope rejected") {
		t.Errorf("stderr missing the rejection log record:\n%s", a.stderr.String())
	}
}

func TestValidateCommandAllAdmitted(t *testing.T) {
	a := newTestApp(t)
	path := writeFile(t, "request.json", fmt.Sprintf(
		`{"specversion": "1.0", "id": %q, "source": "/app/1/rpc.response", "type": "req.v1",
		  "sink": "//VCU.myvin/body.access/1/rpc.UpdateDoor", "ttl": 1000, "priority": "CS4"}`,
		newID(t, a)))

	if err := a.run("validate", path); err != nil {
		t.Fatalf("validate: %v\n%s", err, a.stdout.String())
	}
	if !strings.Contains(a.stdout.String(), path+": ok") || !strings.Contains(a.stdout.String(), "1 admitted, 0 rejected") {
		t.Errorf("output = %q", a.stdout.String())
	}
}

func TestValidateCommandExpiry(t *testing.T) {
	a := newTestApp(t)
	path := writeFile(t, "event.json", fmt.Sprintf(
		`{"specversion": "1.0", "id": %q, "source": "/body.access/1/door#Door", "type": "pub.v1", "ttl": 100}`,
		newID(t, a)))
	a.clock.Advance(time.Second)

	err := a.run("validate", path)
	if code := exitCode(t, err); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(a.stdout.String(), "rejected: payload is expired") {
		t.Errorf("output = %q, want an expiry rejection", a.stdout.String())
	}

	a.stdout.Reset()
	if err := a.run("validate", "--no-expiry", path); err != nil {
		t.Fatalf("validate --no-expiry: %v\n%s", err, a.stdout.String())
	}

	configPath := writeFile(t, "fleetwire.yaml", "envelope:\n  check_expiry: false\nlog:\n  format: text\n")
	a.stdout.Reset()
	if err := a.run("validate", "--config", configPath, path); err != nil {
		t.Fatalf("validate --config: %v\n%s", err, a.stdout.String())
	}
}

func TestValidateCommandNotifications(t *testing.T) {
	a := newTestApp(t)
	path := writeFile(t, "alerts.json", fmt.Sprintf(`[
		{"specversion": "1.0", "id": %q, "source": "/body.access/1/door#Door", "type": "pub.v1",
		 "sink": "/dashboard/1"},
		{"specversion": "1.0", "id": %q, "source": "/body.access/1/door#Door", "type": "pub.v1"}
	]`, newID(t, a), newID(t, a)))

	if err := a.run("validate", path); err != nil {
		t.Fatalf("validate: %v\n%s", err, a.stdout.String())
	}

	a.stdout.Reset()
	err := a.run("validate", "--notifications", path)
	if code := exitCode(t, err); code != 1 {
		t.Fatalf("exit code = %d, want 1\n%s", code, a.stdout.String())
	}
	output := a.stdout.String()
	if !strings.Contains(output, path+"[0]: ok") || !strings.Contains(output, path+"[1]: rejected: Missing notification sink") {
		t.Errorf("output = %q", output)
	}
}

func TestValidateCommandUnreadable(t *testing.T) {
	a := newTestApp(t)
	missing := filepath.Join(t.TempDir(), "missing.json")
	garbage := writeFile(t, "garbage.cbor", "\xff\xff")

	err := a.run("validate", missing, garbage)
	if code := exitCode(t, err); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	output := a.stdout.String()
	if strings.Count(output, ": error:") != 2 || !strings.Contains(output, "2 unreadable") {
		t.Errorf("output = %q, want two decode errors", output)
	}
}

func TestValidateCommandUsage(t *testing.T) {
	a := newTestApp(t)
	if err := a.run("validate"); err == nil {
		t.Error("validate without files succeeded")
	}
	configPath := writeFile(t, "bad.yaml", "environment: lab\n")
	if err := a.run("validate", "--config", configPath, "x.json"); err == nil || !strings.Contains(err.Error(), "invalid environment") {
		t.Errorf("validate with a bad config = %v, want a config error", err)
	}
}
