// Package terminal runs the interpreter inside a text terminal: it reads the
// keypad from raw stdin and draws the display with ANSI escape sequences.
package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

var errNoTerminal = errors.New("input is not a terminal")

// Host owns the terminal state for an interactive session.
type Host struct {
	fd       int
	oldState *term.State

	*Keyboard
}

// NewHost puts the input into raw mode and starts reading the keyboard.
// Restore has to be called to return the terminal to its previous state.
func NewHost(in *os.File, holdFrames int) (*Host, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, errNoTerminal
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("setting raw mode: %w", err)
	}

	return &Host{
		fd:       fd,
		oldState: oldState,
		Keyboard: NewKeyboard(in, holdFrames),
	}, nil
}

// Restore stops reading the keyboard and returns the terminal to the state
// it had before raw mode was set. It is safe to call multiple times.
func (h *Host) Restore() error {
	h.Close()
	if h.oldState == nil {
		return nil
	}
	state := h.oldState
	h.oldState = nil
	if err := term.Restore(h.fd, state); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return nil
}
