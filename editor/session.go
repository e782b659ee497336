package editor

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/internal/log"
)

// RenderSink paints a buffer and cursor. It holds no editing logic.
type RenderSink interface {
	Render(b buffer.Buffer, c buffer.Cursor) error
}

// StatusSink is implemented by sinks that can show a one-off message.
type StatusSink interface {
	SetStatus(msg string)
}

// SaveFunc persists b at path.
type SaveFunc func(path string, b buffer.Buffer) error

// DefaultPadding is the number of CR LF pairs written before a fatal error so
// it scrolls clear of the raw-mode screen.
const DefaultPadding = 50

// Session is the render/read/dispatch loop of the raw frontend.
type Session struct {
	State      *State
	Dispatcher *Dispatcher
	Input      io.RuneReader
	Sink       RenderSink
	Save       SaveFunc

	// Padding CR LF pairs go to PaddingOut when Run fails. Nil disables it.
	Padding    int
	PaddingOut io.Writer
}

// Run alternates rendering and dispatching one input unit until the quit key
// or end of input, both of which return nil.
//
// Any other error ends the loop. Before it is returned (or a panic is
// re-raised) Padding CR LF pairs are written to PaddingOut.
func (s *Session) Run() (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error(log.CatUI, "session panicked", "value", rec)
			s.pad()
			panic(rec)
		}
		if err != nil {
			log.ErrorErr(log.CatUI, "session ended", err)
			s.pad()
		}
	}()

	for {
		if err := s.Sink.Render(s.State.Buffer, s.State.Cursor); err != nil {
			return fmt.Errorf("rendering: %w", err)
		}

		r, size, err := s.Input.ReadRune()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if r == utf8.RuneError && size == 1 {
			log.Debug(log.CatInput, "undecodable input byte")
			continue
		}

		action, err := s.Dispatcher.Dispatch(s.State, r)
		if err != nil {
			return err
		}
		switch action {
		case ActionQuit:
			log.Info(log.CatUI, "quit", "path", s.State.Path)
			return nil
		case ActionSave:
			s.status(saveState(s.State, s.Save))
		}
	}
}

func (s *Session) status(msg string) {
	if st, ok := s.Sink.(StatusSink); ok {
		st.SetStatus(msg)
	}
}

func (s *Session) pad() {
	if s.PaddingOut == nil || s.Padding <= 0 {
		return
	}
	_, _ = io.WriteString(s.PaddingOut, strings.Repeat("\r\n", s.Padding))
}

// saveState runs save and returns a message for the user. The state is never
// modified, whatever the outcome.
func saveState(st *State, save SaveFunc) string {
	if save == nil {
		return "save is not available"
	}
	if st.Path == "" {
		return "no file name"
	}
	if err := save(st.Path, st.Buffer); err != nil {
		log.ErrorErr(log.CatFile, "save failed", err, "path", st.Path)
		return "save failed: " + err.Error()
	}
	return fmt.Sprintf("wrote %d lines to %s", st.Buffer.LineCount(), st.Path)
}
