package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// Documents shared by the command tests.
const (
	needsFix = "これは**（重要）**な情報です。\n"
	fixed    = "これは **（重要）** な情報です。\n"
	clean    = "これは普通の文章です。\n"
)

// testEnv captures what a command writes.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv returns an Environment reading stdin from the given string.
func newTestEnv(stdin string) *testEnv {
	var stdout, stderr bytes.Buffer
	return &testEnv{
		Environment: &Environment{
			Now:        func() time.Time { return time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC) },
			Stdin:      strings.NewReader(stdin),
			Stdout:     &stdout,
			Stderr:     &stderr,
			IsTerminal: func(any) bool { return false },
		},
		stdout: &stdout,
		stderr: &stderr,
	}
}

// steppingClock returns a clock that starts at a fixed instant and advances
// by step on every call.
func steppingClock(step time.Duration) func() time.Time {
	var calls atomic.Int64
	base := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		return base.Add(time.Duration(calls.Add(1)-1) * step)
	}
}

// writeFile creates dir/name with content, making parent directories.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
