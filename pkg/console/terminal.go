package console

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether the given file is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ClearLine erases the current stderr line when stderr is a terminal. It is a
// no-op otherwise, so piped output stays clean.
func ClearLine() {
	if IsTerminal(os.Stderr) {
		fmt.Fprint(os.Stderr, "\r\033[K")
	}
}

// MoveCursorUp moves the stderr cursor up by the given number of lines when
// stderr is a terminal.
func MoveCursorUp(lines int) {
	if lines > 0 && IsTerminal(os.Stderr) {
		fmt.Fprintf(os.Stderr, "\033[%dA", lines)
	}
}
