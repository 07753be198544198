// Package console provides formatting helpers for user-facing terminal
// output: icon-prefixed status messages, tables, and boxed layouts.
//
// All human-readable output is intended for stderr so that generated
// artifacts on stdout stay machine-consumable. Styling degrades gracefully
// when stderr is not a terminal.
package console

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// FormatErrorMessage formats an error message with an ✗ prefix.
func FormatErrorMessage(message string) string {
	return errorStyle.Render("✗") + " " + message
}

// FormatWarningMessage formats a warning message with a ⚠ prefix.
func FormatWarningMessage(message string) string {
	return warningStyle.Render("⚠") + " " + message
}

// FormatInfoMessage formats an informational message with an ℹ prefix.
func FormatInfoMessage(message string) string {
	return infoStyle.Render("ℹ") + " " + message
}

// FormatSuccessMessage formats a success message with a ✓ prefix.
func FormatSuccessMessage(message string) string {
	return successStyle.Render("✓") + " " + message
}

// FormatLocationMessage formats a filesystem location with a 📁 prefix.
func FormatLocationMessage(message string) string {
	return "📁 " + message
}

// FormatErrorWithSuggestions formats an error message followed by a bulleted
// list of suggestions, omitted entirely when the list is empty.
func FormatErrorWithSuggestions(message string, suggestions []string) string {
	var sb strings.Builder
	sb.WriteString(FormatErrorMessage(message))
	if len(suggestions) > 0 {
		sb.WriteString("\n\nSuggestions:\n")
		for _, s := range suggestions {
			sb.WriteString("  • " + s + "\n")
		}
	}
	return sb.String()
}

// ToRelativePath converts an absolute path to a path relative to the current
// working directory for display. Paths already relative, or paths that cannot
// be made relative, are returned unchanged.
func ToRelativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}
	return rel
}

// TableConfig describes a table to render with RenderTable.
type TableConfig struct {
	Title     string
	Headers   []string
	Rows      [][]string
	ShowTotal bool
	TotalRow  []string
}

// RenderTable renders a plain aligned-column table. An empty config renders
// as the empty string.
func RenderTable(config TableConfig) string {
	if len(config.Headers) == 0 {
		return ""
	}

	widths := make([]int, len(config.Headers))
	for i, h := range config.Headers {
		widths[i] = len(h)
	}
	measure := func(row []string) {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for _, row := range config.Rows {
		measure(row)
	}
	if config.ShowTotal {
		measure(config.TotalRow)
	}

	var sb strings.Builder
	if config.Title != "" {
		sb.WriteString(headerStyle.Render(config.Title))
		sb.WriteString("\n")
	}
	writeRow := func(row []string) {
		cells := make([]string, 0, len(row))
		for i, cell := range row {
			if i < len(widths) {
				cells = append(cells, fmt.Sprintf("%-*s", widths[i], cell))
			}
		}
		sb.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		sb.WriteString("\n")
	}
	writeRow(config.Headers)

	total := 0
	for _, w := range widths {
		total += w + 2
	}
	sb.WriteString(strings.Repeat("-", total-2))
	sb.WriteString("\n")

	for _, row := range config.Rows {
		writeRow(row)
	}
	if config.ShowTotal && len(config.TotalRow) > 0 {
		sb.WriteString(strings.Repeat("-", total-2))
		sb.WriteString("\n")
		writeRow(config.TotalRow)
	}
	return sb.String()
}
