// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// AccessLog is a small LTSV access log used across CLI tests.
var AccessLog = []string{
	"host:127.0.0.1\tident:-\tuser:frank\tstatus:200\treq:GET /a HTTP/1.0",
	"host:10.0.0.2\tident:-\tuser:-\tstatus:404\treq:GET /b HTTP/1.0",
	"host:127.0.0.1\tident:-\tuser:jane\tstatus:200\treq:POST /c HTTP/1.0",
}

// WriteLTSV writes lines, each terminated by a newline, to a file in a
// temporary directory and returns its path.
func WriteLTSV(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.ltsv")
	var content string
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	return path
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}
