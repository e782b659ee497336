package editor

import "github.com/iw2rmb/quill/buffer"

// ChangeEvent describes the state after an input changed it.
type ChangeEvent struct {
	Buffer    buffer.Buffer
	Cursor    buffer.Cursor
	UndoDepth int

	// Edited is false for pure cursor movement.
	Edited bool
}

func buildChangeEvent(s *State, edited bool) ChangeEvent {
	return ChangeEvent{
		Buffer:    s.Buffer,
		Cursor:    s.Cursor,
		UndoDepth: s.History.Len(),
		Edited:    edited,
	}
}
