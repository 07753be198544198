//go:build !integration

package translate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/docutil/helptrans/pkg/testutil"
)

// writeHelpTree builds a help tree fixture: canonical pages under C/ and one
// phrase table per language at <lang>/<lang>.po.
func writeHelpTree(t *testing.T, languages, pages []string) string {
	t.Helper()
	dir := testutil.TempDir(t, "help-tree-*")

	canonical := filepath.Join(dir, "C")
	if err := os.MkdirAll(canonical, 0o755); err != nil {
		t.Fatalf("failed to create canonical dir: %v", err)
	}
	for _, page := range pages {
		writeFile(t, filepath.Join(canonical, page), "<page/>\n")
	}
	for _, lang := range languages {
		langDir := filepath.Join(dir, lang)
		if err := os.MkdirAll(langDir, 0o755); err != nil {
			t.Fatalf("failed to create language dir: %v", err)
		}
		writeFile(t, filepath.Join(langDir, lang+".po"), "msgid \"\"\nmsgstr \"\"\n")
	}
	return dir
}

// writeDescriptor writes a HELPFILE into the help tree.
func writeDescriptor(t *testing.T, helpDir, content string) {
	t.Helper()
	writeFile(t, filepath.Join(helpDir, "HELPFILE"), content)
}

// writeTool creates an executable stand-in for the merge tool and returns
// its absolute path, so tests do not depend on xml2po being installed.
func writeTool(t *testing.T) string {
	t.Helper()
	dir := testutil.TempDir(t, "tool-*")
	path := filepath.Join(dir, "merge-tool")
	if err := os.WriteFile(path, []byte("#!/bin/sh\ncat \"$2\"\n"), 0o755); err != nil {
		t.Fatalf("failed to write tool script: %v", err)
	}
	return path
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
