// Package testutil provides shared helpers for tests: temporary directories
// grouped under a single per-process root, and small fixture utilities.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

var (
	testRunDirOnce sync.Once
	testRunDir     string
)

// GetTestRunDir returns the root directory under which all test temp
// directories for this process are created. The directory is created on first
// use and the same path is returned for the lifetime of the process.
func GetTestRunDir() string {
	testRunDirOnce.Do(func() {
		base := filepath.Join(os.TempDir(), "helptrans", "test-runs")
		if err := os.MkdirAll(base, 0o755); err != nil {
			// Fall back to the system temp dir; tests will still work, they
			// just lose the grouping.
			base = os.TempDir()
		}
		testRunDir = base
	})
	return testRunDir
}

// TempDir creates a temporary directory under the test run root using the
// given pattern and registers cleanup with the test.
func TempDir(t *testing.T, pattern string) string {
	t.Helper()
	dir, err := os.MkdirTemp(GetTestRunDir(), pattern)
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() {
		os.RemoveAll(dir)
	})
	return dir
}

// StripYAMLCommentHeader removes the leading comment header (lines starting
// with '#', plus blank lines) from generated YAML content. Content consisting
// only of comments is returned unchanged.
func StripYAMLCommentHeader(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return strings.Join(lines[i:], "\n")
	}
	return content
}
