// Package session runs a single timed focus session in the terminal.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/javiermolinar/focus/internal/config"
	"github.com/javiermolinar/focus/internal/debuglog"
	"github.com/javiermolinar/focus/internal/duration"
	"github.com/javiermolinar/focus/internal/terminal"
)

// Terminal switches the terminal in and out of raw input mode.
type Terminal interface {
	Enter() error
	Exit() error
}

// KeySource blocks until the next key press.
type KeySource interface {
	ReadKey() (rune, error)
}

// Reasons a session ended, as recorded in the debug log.
const (
	EndQuitKey   = "quit key"
	EndInterrupt = "interrupt"
	EndEOF       = "eof"
	EndReadError = "read error"
)

// Options customizes a Driver. Zero values fall back to plain output, the
// system clock and discarded diagnostics.
type Options struct {
	Stopwatch    *duration.Stopwatch
	ErrOut       io.Writer // receives key read failures
	StartStyle   func(string) string
	SummaryStyle func(string) string
}

// Driver owns the terminal for the length of one session.
type Driver struct {
	cfg       config.SessionConfig
	term      Terminal
	keys      KeySource
	out       io.Writer
	errOut    io.Writer
	stopwatch *duration.Stopwatch

	startStyle   func(string) string
	summaryStyle func(string) string
}

// NewDriver creates a session driver. cfg must name a single-character quit key.
func NewDriver(cfg config.SessionConfig, t Terminal, keys KeySource, out io.Writer, opts Options) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session config: %w", err)
	}

	d := &Driver{
		cfg:          cfg,
		term:         t,
		keys:         keys,
		out:          out,
		errOut:       opts.ErrOut,
		stopwatch:    opts.Stopwatch,
		startStyle:   opts.StartStyle,
		summaryStyle: opts.SummaryStyle,
	}
	if d.stopwatch == nil {
		d.stopwatch = duration.NewStopwatch()
	}
	if d.startStyle == nil {
		d.startStyle = plain
	}
	if d.summaryStyle == nil {
		d.summaryStyle = plain
	}
	if d.errOut == nil {
		d.errOut = io.Discard
	}
	return d, nil
}

func plain(s string) string { return s }

// Run prints the start message, waits for the quit key and prints the
// elapsed-time summary. Sessions shorter than duration.MinSummarySeconds
// print nothing. The terminal is restored on every return path.
func (d *Driver) Run() (err error) {
	if _, err := fmt.Fprintln(d.out, d.startStyle(d.cfg.StartMsg)); err != nil {
		return fmt.Errorf("writing start message: %w", err)
	}

	if err := d.term.Enter(); err != nil {
		debuglog.LogError("entering raw mode", err)
		return fmt.Errorf("preparing terminal: %w", err)
	}
	defer func() {
		if exitErr := d.term.Exit(); exitErr != nil {
			debuglog.LogError("restoring terminal", exitErr)
			err = errors.Join(err, fmt.Errorf("restoring terminal: %w", exitErr))
		}
	}()

	quit := d.cfg.QuitRune()
	debuglog.LogSessionStart(quit)

	marker := d.stopwatch.Start()
	reason := d.waitForQuit(quit)
	elapsed := d.stopwatch.ElapsedSeconds(marker)

	msg, ok := duration.Summary(elapsed)
	debuglog.LogSessionEnd(elapsed, reason, ok)
	if !ok {
		return nil
	}

	// Raw mode disables output post-processing, so the line needs its own \r.
	if _, err := fmt.Fprintf(d.out, "%s\r\n", d.summaryStyle("⌛️ "+msg)); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// waitForQuit reads keys until the quit key arrives. Read failures end the
// session instead of failing it.
func (d *Driver) waitForQuit(quit rune) string {
	for {
		key, err := d.keys.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return EndEOF
			}
			debuglog.LogError("reading key", err)
			_, _ = fmt.Fprintf(d.errOut, "focus: %v, ending session\r\n", err)
			return EndReadError
		}
		debuglog.LogKeyPress(key)

		switch key {
		case quit:
			return EndQuitKey
		case terminal.CtrlC:
			return EndInterrupt
		}
	}
}
