// Package terminal owns process-wide terminal state: raw input mode, cursor
// visibility and key reads.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when raw mode is requested on something that is not a TTY.
var ErrNotTerminal = errors.New("input is not a terminal")

// Guard switches a terminal into raw mode with a hidden cursor and puts it
// back. Exit is safe to call more than once and after a failed Enter.
// Cursor sequences are only written when out is itself a terminal.
type Guard struct {
	fd     int
	out    io.Writer
	cursor bool

	state  *term.State
	active bool

	isTerminal func(fd int) bool
	makeRaw    func(fd int) (*term.State, error)
	restore    func(fd int, state *term.State) error
}

// NewGuard returns a guard for the terminal attached to in, writing cursor
// control sequences to out.
func NewGuard(in *os.File, out io.Writer) *Guard {
	return &Guard{
		fd:         int(in.Fd()),
		out:        out,
		cursor:     isTerminalWriter(out, term.IsTerminal),
		isTerminal: term.IsTerminal,
		makeRaw:    term.MakeRaw,
		restore:    term.Restore,
	}
}

// isTerminalWriter reports whether w is a file descriptor attached to a TTY.
func isTerminalWriter(w io.Writer, isTerminal func(fd int) bool) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && isTerminal(int(f.Fd()))
}

// Enter enables raw mode and hides the cursor.
func (g *Guard) Enter() error {
	if g.active {
		return nil
	}
	if !g.isTerminal(g.fd) {
		return ErrNotTerminal
	}

	state, err := g.makeRaw(g.fd)
	if err != nil {
		return fmt.Errorf("enabling raw mode: %w", err)
	}
	g.state = state
	g.active = true

	if !g.cursor {
		return nil
	}
	if _, err := io.WriteString(g.out, ansi.HideCursor); err != nil {
		restoreErr := g.Exit()
		return errors.Join(fmt.Errorf("hiding cursor: %w", err), restoreErr)
	}
	return nil
}

// Exit shows the cursor and restores the previous terminal mode.
func (g *Guard) Exit() error {
	if !g.active {
		return nil
	}
	g.active = false

	var errs []error
	if g.cursor {
		if _, err := io.WriteString(g.out, ansi.ShowCursor); err != nil {
			errs = append(errs, fmt.Errorf("showing cursor: %w", err))
		}
	}
	if err := g.restore(g.fd, g.state); err != nil {
		errs = append(errs, fmt.Errorf("disabling raw mode: %w", err))
	}
	g.state = nil
	return errors.Join(errs...)
}

// Active reports whether raw mode is currently enabled by this guard.
func (g *Guard) Active() bool {
	return g.active
}
