//go:build !integration

package console

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatMessages(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected []string // Substrings that should be present in output
	}{
		{
			name:     "error message",
			output:   FormatErrorMessage("descriptor not found"),
			expected: []string{"✗", "descriptor not found"},
		},
		{
			name:     "warning message",
			output:   FormatWarningMessage("page not declared"),
			expected: []string{"⚠", "page not declared"},
		},
		{
			name:     "info message",
			output:   FormatInfoMessage("compiling help tree"),
			expected: []string{"ℹ", "compiling help tree"},
		},
		{
			name:     "success message",
			output:   FormatSuccessMessage("manifest written"),
			expected: []string{"✓", "manifest written"},
		},
		{
			name:     "location message",
			output:   FormatLocationMessage("Written to: help.lock.yml"),
			expected: []string{"📁", "Written to: help.lock.yml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, expected := range tt.expected {
				if !strings.Contains(tt.output, expected) {
					t.Errorf("Expected output to contain '%s', but got:\n%s", expected, tt.output)
				}
			}
		})
	}
}

func TestFormatErrorWithSuggestions(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		suggestions []string
		expected    []string
	}{
		{
			name:    "error with suggestions",
			message: "help tree 'doc' not found",
			suggestions: []string{
				"Check the directory path",
				"Pass --descriptor to point at the descriptor file",
			},
			expected: []string{
				"✗",
				"help tree 'doc' not found",
				"Suggestions:",
				"• Check the directory path",
				"• Pass --descriptor to point at the descriptor file",
			},
		},
		{
			name:        "error without suggestions",
			message:     "help tree 'doc' not found",
			suggestions: []string{},
			expected: []string{
				"✗",
				"help tree 'doc' not found",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := FormatErrorWithSuggestions(tt.message, tt.suggestions)

			for _, expected := range tt.expected {
				if !strings.Contains(output, expected) {
					t.Errorf("Expected output to contain '%s', but got:\n%s", expected, output)
				}
			}

			// Verify no suggestions section when empty
			if len(tt.suggestions) == 0 && strings.Contains(output, "Suggestions:") {
				t.Errorf("Expected no suggestions section for empty suggestions, got:\n%s", output)
			}
		})
	}
}

func TestRenderTable(t *testing.T) {
	tests := []struct {
		name     string
		config   TableConfig
		expected []string // Substrings that should be present in output
	}{
		{
			name: "simple table",
			config: TableConfig{
				Headers: []string{"Language", "Pages", "Tasks"},
				Rows: [][]string{
					{"de", "3", "3"},
					{"fr", "3", "3"},
				},
			},
			expected: []string{
				"Language",
				"Pages",
				"Tasks",
				"de",
				"fr",
			},
		},
		{
			name: "table with title and total",
			config: TableConfig{
				Title:   "Translation Tasks",
				Headers: []string{"Language", "Tasks"},
				Rows: [][]string{
					{"de", "3"},
					{"fr", "3"},
				},
				ShowTotal: true,
				TotalRow:  []string{"TOTAL", "6"},
			},
			expected: []string{
				"Translation Tasks",
				"Language",
				"Tasks",
				"de",
				"fr",
				"TOTAL",
				"6",
			},
		},
		{
			name: "empty table",
			config: TableConfig{
				Headers: []string{},
				Rows:    [][]string{},
			},
			expected: []string{}, // Should return empty string
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := RenderTable(tt.config)

			if len(tt.expected) == 0 {
				if output != "" {
					t.Errorf("Expected empty output for empty table config, got: %s", output)
				}
				return
			}

			for _, expected := range tt.expected {
				if !strings.Contains(output, expected) {
					t.Errorf("Expected output to contain '%s', but got:\n%s", expected, output)
				}
			}
		})
	}
}

func TestToRelativePath(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		expectedFunc func(result string) bool
	}{
		{
			name: "relative path unchanged",
			path: "help.lock.yml",
			expectedFunc: func(result string) bool {
				return result == "help.lock.yml"
			},
		},
		{
			name: "nested relative path unchanged",
			path: "help/C/index.page",
			expectedFunc: func(result string) bool {
				return result == "help/C/index.page"
			},
		},
		{
			name: "absolute path converted to relative",
			path: filepath.Join(os.TempDir(), "help", "C", "index.page"),
			expectedFunc: func(result string) bool {
				return !strings.HasPrefix(result, "/") && strings.HasSuffix(result, "index.page")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToRelativePath(tt.path)
			if !tt.expectedFunc(result) {
				t.Errorf("ToRelativePath(%s) = %s, but validation failed", tt.path, result)
			}
		})
	}
}
