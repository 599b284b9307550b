package logger

import (
	"io"
	"os"

	"golang.org/x/term"
)

// TerminalDestination writes log records to a terminal stream.
type TerminalDestination struct {
	Stream io.Writer
}

// Initialize implements Destination.
func (d *TerminalDestination) Initialize() error {
	if d.Stream == nil {
		d.Stream = os.Stderr
	}
	return nil
}

// Write implements Destination.
func (d *TerminalDestination) Write(p []byte) (int, error) {
	return d.Stream.Write(p)
}

// Flush implements Destination.
func (d *TerminalDestination) Flush() error {
	return nil
}

// Close implements Destination. The underlying stream is not owned by
// the destination and stays open.
func (d *TerminalDestination) Close() error {
	return nil
}

// IsTerminal reports whether the stream is an interactive terminal, in
// which case rendered records can carry colors.
func (d *TerminalDestination) IsTerminal() bool {
	f, ok := d.Stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
