package buffer

// Snapshot is the editor state captured right before a mutating edit.
type Snapshot struct {
	Buffer Buffer
	Cursor Cursor
}

// History is a LIFO stack of snapshots used for undo.
//
// Buffers are values and never mutated, so entries need no copying.
type History struct {
	undo  []Snapshot
	limit int
}

// NewHistory returns an empty history. limit <= 0 means unbounded; otherwise
// the oldest entries are dropped once limit is exceeded.
func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

func (h *History) Push(s Snapshot) {
	h.undo = append(h.undo, s)
	if h.limit > 0 && len(h.undo) > h.limit {
		h.undo = append([]Snapshot(nil), h.undo[len(h.undo)-h.limit:]...)
	}
}

// Pop removes and returns the most recent snapshot. It reports false when the
// history is empty.
func (h *History) Pop() (Snapshot, bool) {
	if len(h.undo) == 0 {
		return Snapshot{}, false
	}
	i := len(h.undo) - 1
	s := h.undo[i]
	h.undo[i] = Snapshot{}
	h.undo = h.undo[:i]
	return s, true
}

func (h *History) Len() int { return len(h.undo) }
