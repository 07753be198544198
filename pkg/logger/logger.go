// Package logger provides namespaced debug logging controlled by the DEBUG
// environment variable, in the style of the debug npm package.
//
// Loggers are created with New("namespace") and stay silent unless the DEBUG
// variable selects them. DEBUG holds a comma-separated list of patterns:
//
//	DEBUG=*                    enable everything
//	DEBUG=translate:*          enable one namespace subtree
//	DEBUG=translate:*,cli:*    enable several
//	DEBUG=*,-translate:watch   enable everything except one logger
//
// A pattern starting with "-" excludes matching namespaces. "*" matches any
// suffix. Output goes to stderr with the namespace as prefix and the elapsed
// time since the previous message as suffix.
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger writes debug messages for a single namespace.
type Logger struct {
	namespace string
	enabled   bool

	mu   sync.Mutex
	last time.Time
}

// New creates a logger for the given namespace. The DEBUG environment
// variable is consulted once, at creation time.
func New(namespace string) *Logger {
	return &Logger{
		namespace: namespace,
		enabled:   enabled(namespace, os.Getenv("DEBUG")),
	}
}

// Enabled reports whether this logger's namespace is selected by DEBUG.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf logs a formatted message if the logger is enabled.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprintf(format, args...))
}

// Print logs its arguments, concatenated like fmt.Sprint, if the logger is
// enabled.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprint(args...))
}

func (l *Logger) emit(msg string) {
	l.mu.Lock()
	now := time.Now()
	var elapsed time.Duration
	if !l.last.IsZero() {
		elapsed = now.Sub(l.last)
	}
	l.last = now
	l.mu.Unlock()

	fmt.Fprintf(os.Stderr, "%s %s +%s\n", l.namespace, msg, elapsed)
}

// enabled evaluates the DEBUG pattern list against a namespace. Exclusion
// patterns win over inclusion patterns regardless of order.
func enabled(namespace, patterns string) bool {
	if patterns == "" {
		return false
	}
	match := false
	for _, pattern := range strings.Split(patterns, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		negate := strings.HasPrefix(pattern, "-")
		if negate {
			pattern = pattern[1:]
		}
		if !matchPattern(pattern, namespace) {
			continue
		}
		if negate {
			return false
		}
		match = true
	}
	return match
}

func matchPattern(pattern, namespace string) bool {
	if pattern == "*" {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(namespace, prefix)
	}
	return pattern == namespace
}
