package buffer

import (
	"errors"
	"reflect"
	"testing"
)

func errorsIs(err, target error) bool { return errors.Is(err, target) }

func TestNew_NoLinesYieldsOneEmptyLine(t *testing.T) {
	b := New()
	if got := b.LineCount(); got != 1 {
		t.Fatalf("LineCount=%d, want 1", got)
	}
	if got := b.LineLen(0); got != 0 {
		t.Fatalf("LineLen(0)=%d, want 0", got)
	}
}

func TestBuffer_ZeroValueIsUsable(t *testing.T) {
	var b Buffer
	if got := b.LineCount(); got != 1 {
		t.Fatalf("LineCount=%d, want 1", got)
	}
	next, err := b.Insert('a', 0, 0)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got, want := next.Lines(), []string{"a"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}
}

func TestFromText_SplitsOnNewline(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{text: "", want: []string{""}},
		{text: "a", want: []string{"a"}},
		{text: "a\nb", want: []string{"a", "b"}},
		{text: "a\n", want: []string{"a", ""}},
	}
	for _, tc := range cases {
		if got := FromText(tc.text).Lines(); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("FromText(%q)=%q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestBuffer_Queries(t *testing.T) {
	b := New("héllo", "", "ab")
	if got := b.LineCount(); got != 3 {
		t.Fatalf("LineCount=%d, want 3", got)
	}
	if got := b.LineLen(0); got != 5 {
		t.Fatalf("LineLen(0)=%d, want 5 runes", got)
	}
	if got := b.LineLen(7); got != 0 {
		t.Fatalf("LineLen(out of range)=%d, want 0", got)
	}
	if got := b.Line(-1); got != "" {
		t.Fatalf("Line(-1)=%q, want empty", got)
	}
	if got, want := b.Text(), "héllo\n\nab"; got != want {
		t.Fatalf("Text=%q, want %q", got, want)
	}
	if got, want := b.String(), `["héllo", "", "ab"]`; got != want {
		t.Fatalf("String=%q, want %q", got, want)
	}
}

func TestBuffer_Equal(t *testing.T) {
	a := New("ab", "cd")
	if !a.Equal(New("ab", "cd")) {
		t.Fatalf("expected equal buffers")
	}
	if a.Equal(New("ab", "ce")) {
		t.Fatalf("expected different line content to compare unequal")
	}
	if a.Equal(New("ab")) {
		t.Fatalf("expected different line count to compare unequal")
	}
	if !New().Equal(Buffer{}) {
		t.Fatalf("expected zero value to equal New()")
	}
}

func TestBuffer_LinesReturnsCopy(t *testing.T) {
	b := New("ab")
	lines := b.Lines()
	lines[0] = "zz"
	if got := b.Line(0); got != "ab" {
		t.Fatalf("Line(0)=%q after mutating Lines() result, want %q", got, "ab")
	}
}
