package buffer

// Insert returns a copy of b with ch inserted into line row before col.
//
// col may equal the line length to append.
func (b Buffer) Insert(ch rune, row, col int) (Buffer, error) {
	if row < 0 || row >= b.LineCount() || col < 0 || col > b.LineLen(row) {
		return b, &BoundsError{Op: "insert", Row: row, Col: col}
	}

	old := b.row(row)
	line := make([]rune, 0, len(old)+1)
	line = append(line, old[:col]...)
	line = append(line, ch)
	line = append(line, old[col:]...)
	return b.replaceRow(row, line), nil
}

// Delete returns a copy of b with the rune at (row, col) removed.
func (b Buffer) Delete(row, col int) (Buffer, error) {
	if row < 0 || row >= b.LineCount() || col < 0 || col >= b.LineLen(row) {
		return b, &BoundsError{Op: "delete", Row: row, Col: col}
	}

	old := b.row(row)
	line := make([]rune, 0, len(old)-1)
	line = append(line, old[:col]...)
	line = append(line, old[col+1:]...)
	return b.replaceRow(row, line), nil
}

// SplitLine returns a copy of b where line row is replaced by its text before
// col and its text from col onward. The result always has one more line.
func (b Buffer) SplitLine(row, col int) (Buffer, error) {
	if row < 0 || row >= b.LineCount() || col < 0 || col > b.LineLen(row) {
		return b, &BoundsError{Op: "split", Row: row, Col: col}
	}

	old := b.row(row)
	head := append([]rune(nil), old[:col]...)
	tail := append([]rune(nil), old[col:]...)
	return b.replaceRow(row, head, tail), nil
}

// replaceRow builds a new line table with row swapped for repl. Lines outside
// row are shared with b; they are never written to after construction.
func (b Buffer) replaceRow(row int, repl ...[]rune) Buffer {
	lines := b.lines
	if len(lines) == 0 {
		lines = [][]rune{nil}
	}

	before := lines[:row]
	after := lines[row+1:]
	out := make([][]rune, 0, len(before)+len(repl)+len(after))
	out = append(out, before...)
	out = append(out, repl...)
	out = append(out, after...)
	return Buffer{lines: out}
}
