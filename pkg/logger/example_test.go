//go:build !integration

package logger_test

import (
	"fmt"
	"os"

	"github.com/docutil/helptrans/pkg/logger"
)

// Note: Example functions cannot use t.Setenv() as they don't have access to *testing.T
// These need to remain using os.Setenv/Unsetenv

func ExampleNew() {
	// Set DEBUG environment variable to enable loggers
	os.Setenv("DEBUG", "translate:*")
	defer os.Unsetenv("DEBUG")

	// Create a logger for a specific namespace
	log := logger.New("translate:feature")

	// Check if logger is enabled
	if log.Enabled() {
		fmt.Println("Logger is enabled")
	}

	// Output: Logger is enabled
}

func ExampleLogger_Printf() {
	// Enable all loggers
	os.Setenv("DEBUG", "*")
	defer os.Unsetenv("DEBUG")

	log := logger.New("translate:feature")

	// Printf uses standard fmt.Printf formatting
	log.Printf("Materializing %d tasks", 42)

	// Output to stderr: translate:feature Materializing 42 tasks
}

func ExampleNew_patterns() {
	// Example patterns for DEBUG environment variable

	// Enable all loggers
	os.Setenv("DEBUG", "*")

	// Enable all loggers in the translate namespace
	os.Setenv("DEBUG", "translate:*")

	// Enable multiple namespaces
	os.Setenv("DEBUG", "translate:*,cli:*")

	// Enable all except specific patterns
	os.Setenv("DEBUG", "*,-translate:watch")

	defer os.Unsetenv("DEBUG")
}
