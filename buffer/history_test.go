package buffer

import "testing"

func TestHistory_PushPop_LIFO(t *testing.T) {
	h := NewHistory(0)
	if h.Len() != 0 {
		t.Fatalf("Len=%d on new history, want 0", h.Len())
	}

	h.Push(Snapshot{Buffer: New("a"), Cursor: Cursor{Col: 0}})
	h.Push(Snapshot{Buffer: New("ab"), Cursor: Cursor{Col: 1}})
	if got := h.Len(); got != 2 {
		t.Fatalf("Len=%d, want 2", got)
	}

	s, ok := h.Pop()
	if !ok {
		t.Fatalf("expected Pop=true")
	}
	if !s.Buffer.Equal(New("ab")) || s.Cursor != (Cursor{Col: 1}) {
		t.Fatalf("popped %v %v, want [\"ab\"] {0 1}", s.Buffer, s.Cursor)
	}

	s, ok = h.Pop()
	if !ok || !s.Buffer.Equal(New("a")) {
		t.Fatalf("popped %v ok=%v, want [\"a\"]", s.Buffer, ok)
	}
}

func TestHistory_PopEmpty_NoOp(t *testing.T) {
	h := NewHistory(0)
	s, ok := h.Pop()
	if ok {
		t.Fatalf("expected Pop=false on empty history")
	}
	if !s.Buffer.Equal(New()) || s.Cursor != (Cursor{}) {
		t.Fatalf("expected zero snapshot, got %v %v", s.Buffer, s.Cursor)
	}
	if h.Len() != 0 {
		t.Fatalf("Len=%d, want 0", h.Len())
	}
}

func TestHistory_UnboundedByDefault(t *testing.T) {
	h := NewHistory(-3)
	for i := 0; i < 5000; i++ {
		h.Push(Snapshot{})
	}
	if got := h.Len(); got != 5000 {
		t.Fatalf("Len=%d, want 5000", got)
	}
}

func TestHistory_LimitDropsOldest(t *testing.T) {
	h := NewHistory(2)
	h.Push(Snapshot{Buffer: New("1")})
	h.Push(Snapshot{Buffer: New("2")})
	h.Push(Snapshot{Buffer: New("3")})
	if got := h.Len(); got != 2 {
		t.Fatalf("Len=%d, want 2", got)
	}
	s, _ := h.Pop()
	if got := s.Buffer.Line(0); got != "3" {
		t.Fatalf("top=%q, want %q", got, "3")
	}
	s, _ = h.Pop()
	if got := s.Buffer.Line(0); got != "2" {
		t.Fatalf("next=%q, want %q", got, "2")
	}
	if _, ok := h.Pop(); ok {
		t.Fatalf("expected oldest entry dropped")
	}
}
