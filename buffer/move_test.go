package buffer

import "testing"

func TestCursor_Moves(t *testing.T) {
	b := New("abcdef", "ab", "", "abcd")

	cases := []struct {
		name string
		in   Cursor
		move func(Cursor, Buffer) Cursor
		want Cursor
	}{
		{name: "up at top stays", in: Cursor{Row: 0, Col: 2}, move: Cursor.Up, want: Cursor{Row: 0, Col: 2}},
		{name: "down at bottom stays", in: Cursor{Row: 3, Col: 1}, move: Cursor.Down, want: Cursor{Row: 3, Col: 1}},
		{name: "left at col 0 stays", in: Cursor{Row: 1, Col: 0}, move: Cursor.Left, want: Cursor{Row: 1, Col: 0}},
		{name: "right may reach line end", in: Cursor{Row: 1, Col: 1}, move: Cursor.Right, want: Cursor{Row: 1, Col: 2}},
		{name: "right stops at line end", in: Cursor{Row: 1, Col: 2}, move: Cursor.Right, want: Cursor{Row: 1, Col: 2}},
		{name: "down snaps to shorter line", in: Cursor{Row: 0, Col: 5}, move: Cursor.Down, want: Cursor{Row: 1, Col: 2}},
		{name: "down onto empty line", in: Cursor{Row: 1, Col: 2}, move: Cursor.Down, want: Cursor{Row: 2, Col: 0}},
		{name: "up snaps to shorter line", in: Cursor{Row: 3, Col: 4}, move: Cursor.Up, want: Cursor{Row: 2, Col: 0}},
		{name: "down keeps col that fits", in: Cursor{Row: 0, Col: 1}, move: Cursor.Down, want: Cursor{Row: 1, Col: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.move(tc.in, b); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCursor_SnappedColumnIsNotRemembered(t *testing.T) {
	b := New("abcdef", "a", "abcdef")
	c := Cursor{Row: 0, Col: 5}.Down(b).Down(b)
	if want := (Cursor{Row: 2, Col: 1}); c != want {
		t.Fatalf("got %v, want %v", c, want)
	}
}

func TestCursor_MoveToColumn(t *testing.T) {
	b := New("abc")
	if got, want := (Cursor{Row: 0, Col: 2}).MoveToColumn(b, 0), (Cursor{Row: 0, Col: 0}); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := (Cursor{Row: 0, Col: 0}).MoveToColumn(b, 10), (Cursor{Row: 0, Col: 3}); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCursor_ClampAndInBounds(t *testing.T) {
	b := New("ab", "c")
	c := Cursor{Row: 5, Col: 5}
	if c.InBounds(b) {
		t.Fatalf("expected %v out of bounds", c)
	}
	got := c.Clamp(b)
	if want := (Cursor{Row: 1, Col: 1}); got != want {
		t.Fatalf("Clamp=%v, want %v", got, want)
	}
	if !got.InBounds(b) {
		t.Fatalf("expected clamped %v in bounds", got)
	}
}
