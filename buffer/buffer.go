package buffer

import "strings"

// Buffer is an immutable sequence of lines. It always holds at least one line.
//
// The zero value is a valid empty buffer (one empty line).
type Buffer struct {
	lines [][]rune
}

// New returns a buffer holding lines verbatim. No lines yields one empty line.
func New(lines ...string) Buffer {
	if len(lines) == 0 {
		return Buffer{lines: [][]rune{nil}}
	}
	out := make([][]rune, 0, len(lines))
	for _, s := range lines {
		out = append(out, []rune(s))
	}
	return Buffer{lines: out}
}

// FromText splits text on '\n' into lines.
func FromText(text string) Buffer {
	return Buffer{lines: splitLines(text)}
}

func (b Buffer) LineCount() int {
	if len(b.lines) == 0 {
		return 1
	}
	return len(b.lines)
}

// LineLen returns the rune length of row, or 0 when row is out of range.
func (b Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// Line returns the text of row, or "" when row is out of range.
func (b Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

// Lines returns a copy of every line.
func (b Buffer) Lines() []string {
	n := b.LineCount()
	out := make([]string, 0, n)
	for row := 0; row < n; row++ {
		out = append(out, b.Line(row))
	}
	return out
}

func (b Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Equal reports whether b and o hold the same lines.
func (b Buffer) Equal(o Buffer) bool {
	if b.LineCount() != o.LineCount() {
		return false
	}
	for row := 0; row < b.LineCount(); row++ {
		x, y := b.row(row), o.row(row)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i] != y[i] {
				return false
			}
		}
	}
	return true
}

// String implements fmt.Stringer for test failure output.
func (b Buffer) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, line := range b.Lines() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(`"` + line + `"`)
	}
	sb.WriteByte(']')
	return sb.String()
}

func (b Buffer) row(row int) []rune {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return b.lines[row]
}

func (b Buffer) clampPos(p Cursor) Cursor {
	return ClampPos(p, b.LineCount(), b.LineLen)
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
