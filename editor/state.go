package editor

import "github.com/iw2rmb/quill/buffer"

// State is the only mutable cell of an editing session.
type State struct {
	Buffer  buffer.Buffer
	Cursor  buffer.Cursor
	History *buffer.History
	Path    string
}

// NewState starts editing b with the cursor at the origin and empty history.
func NewState(path string, b buffer.Buffer, historyLimit int) *State {
	return &State{
		Buffer:  b,
		Cursor:  buffer.Cursor{}.Clamp(b),
		History: buffer.NewHistory(historyLimit),
		Path:    path,
	}
}

// Snapshot captures the current buffer and cursor.
func (s *State) Snapshot() buffer.Snapshot {
	return buffer.Snapshot{Buffer: s.Buffer, Cursor: s.Cursor}
}

// Undo restores the most recent snapshot. It reports false, leaving the state
// untouched, when there is nothing to undo.
func (s *State) Undo() bool {
	prev, ok := s.History.Pop()
	if !ok {
		return false
	}
	s.Buffer = prev.Buffer
	s.Cursor = prev.Cursor
	return true
}

func (s *State) checkpoint() {
	s.History.Push(s.Snapshot())
}
