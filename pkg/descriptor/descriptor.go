// Package descriptor parses the plain-text help descriptor file that
// declares a document's identifier, target languages, and source pages.
//
// The format is line-oriented `KEY = value` assignments in the make variable
// style:
//
//	HELP_ID = myapp-help
//	HELP_LINGUAS = de fr \
//	               it
//	HELP_FILES = index.page usage.page
//
// A trailing backslash joins the next line into the same logical assignment.
// Lines whose key does not carry the HELP_ prefix are ignored, so the
// descriptor can live inside a larger build file. Missing or duplicated keys
// never abort parsing; they are reported as problems and the descriptor
// degrades to empty values.
package descriptor

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/docutil/helptrans/pkg/logger"
)

var descriptorLog = logger.New("descriptor")

// DefaultFilename is the conventional name of the descriptor file inside a
// help tree.
const DefaultFilename = "HELPFILE"

// Descriptor keys. KeyID names the document, KeyLinguas lists target
// language codes, KeyFiles lists the declared canonical pages.
const (
	KeyID      = "HELP_ID"
	KeyLinguas = "HELP_LINGUAS"
	KeyFiles   = "HELP_FILES"
)

// assignmentPattern matches one logical `HELP_* = value` line.
var assignmentPattern = regexp.MustCompile(`^(HELP_[A-Z0-9_]+)\s*=\s*(.*)$`)

// Descriptor is the typed result of parsing a descriptor file.
type Descriptor struct {
	// ID is the document identifier (HELP_ID), empty when undeclared.
	ID string
	// Linguas are the declared target language codes in declaration order.
	Linguas []string
	// Files are the declared canonical page basenames in declaration order.
	Files []string
	// Problems lists non-fatal diagnostics collected while parsing.
	Problems []string
}

// ParseFile reads and parses the descriptor at path. The returned error only
// reflects I/O failure; malformed content degrades into Problems instead.
func ParseFile(path string) (*Descriptor, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}
	descriptorLog.Printf("Parsing descriptor: path=%s, size=%d", path, len(content))
	return Parse(string(content)), nil
}

// Parse parses descriptor content. It never fails: unknown lines are
// skipped, duplicate keys keep the last assignment with a warning, and
// missing required keys are reported and left empty.
func Parse(content string) *Descriptor {
	d := &Descriptor{}
	seen := map[string]bool{}

	for _, line := range logicalLines(content) {
		matches := assignmentPattern.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil {
			continue
		}
		key, value := matches[1], matches[2]
		switch key {
		case KeyID, KeyLinguas, KeyFiles:
		default:
			descriptorLog.Printf("Ignoring unrecognized key: %s", key)
			continue
		}
		if seen[key] {
			d.Problems = append(d.Problems,
				fmt.Sprintf("duplicate key %s: previous value replaced", key))
		}
		seen[key] = true

		switch key {
		case KeyID:
			d.ID = strings.TrimSpace(value)
		case KeyLinguas:
			d.Linguas = strings.Fields(value)
		case KeyFiles:
			d.Files = strings.Fields(value)
		}
	}

	for _, key := range []string{KeyID, KeyLinguas, KeyFiles} {
		if !seen[key] {
			d.Problems = append(d.Problems,
				fmt.Sprintf("missing required key %s", key))
		}
	}

	descriptorLog.Printf("Parsed descriptor: id=%q, linguas=%d, files=%d, problems=%d",
		d.ID, len(d.Linguas), len(d.Files), len(d.Problems))
	return d
}

// logicalLines splits content into lines after joining backslash-newline
// continuations. `A = x \` followed by `y` yields the single line `A = x y`.
func logicalLines(content string) []string {
	raw := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	var lines []string
	var pending strings.Builder
	for _, line := range raw {
		if trimmed, ok := strings.CutSuffix(strings.TrimRight(line, " \t"), `\`); ok {
			pending.WriteString(trimmed)
			pending.WriteString(" ")
			continue
		}
		if pending.Len() > 0 {
			pending.WriteString(strings.TrimLeft(line, " \t"))
			lines = append(lines, pending.String())
			pending.Reset()
			continue
		}
		lines = append(lines, line)
	}
	if pending.Len() > 0 {
		// Trailing backslash on the last line; keep what we have.
		lines = append(lines, pending.String())
	}
	return lines
}
