package term

import (
	"bufio"
	"fmt"
	"io"
	"os"

	xterm "golang.org/x/term"

	"github.com/iw2rmb/quill/internal/log"
)

// Terminal owns the raw-mode state of one file descriptor.
type Terminal struct {
	fd       int
	oldState *xterm.State
}

// New wraps in, which is normally os.Stdin.
func New(in *os.File) *Terminal {
	return &Terminal{fd: int(in.Fd())}
}

// IsTerminal reports whether the input is a terminal.
func (t *Terminal) IsTerminal() bool {
	return xterm.IsTerminal(t.fd)
}

// MakeRaw switches the terminal into raw mode. Calling it twice is a no-op.
func (t *Terminal) MakeRaw() error {
	if t.oldState != nil {
		return nil
	}
	state, err := xterm.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	log.Debug(log.CatUI, "raw mode on")
	return nil
}

// Restore puts the terminal back into the mode it had before MakeRaw. It is
// safe to call when raw mode was never entered.
func (t *Terminal) Restore() error {
	if t.oldState == nil {
		return nil
	}
	state := t.oldState
	t.oldState = nil
	if err := xterm.Restore(t.fd, state); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	log.Debug(log.CatUI, "raw mode off")
	return nil
}

// Size returns the terminal width and height in cells.
func (t *Terminal) Size() (width, height int, err error) {
	return xterm.GetSize(t.fd)
}

// NewReader returns a rune reader over r. Raw mode delivers bytes as they are
// typed; multi-byte UTF-8 sequences are decoded into single runes.
func NewReader(r io.Reader) io.RuneReader {
	return bufio.NewReader(r)
}
