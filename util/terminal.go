package util

import (
	"io"

	"golang.org/x/term"
)

// TerminalDetector reports whether a file descriptor refers to a terminal
type TerminalDetector interface {
	IsTerminal(fd int) bool
}

// DefaultTerminal implements real terminal detection
type DefaultTerminal struct{}

// IsTerminal checks if fd is attached to a real terminal
func (t *DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w is a file attached to a terminal. Writers that
// are not files, such as buffers, never are.
func IsTerminal(w io.Writer, terminal TerminalDetector) bool {
	if terminal == nil {
		terminal = &DefaultTerminal{}
	}
	f, ok := w.(fder)
	if !ok {
		return false
	}

	return terminal.IsTerminal(int(f.Fd()))
}
