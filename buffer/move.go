package buffer

// Up moves one row up and clamps against b.
func (c Cursor) Up(b Buffer) Cursor {
	return Cursor{Row: c.Row - 1, Col: c.Col}.Clamp(b)
}

// Down moves one row down and clamps against b.
func (c Cursor) Down(b Buffer) Cursor {
	return Cursor{Row: c.Row + 1, Col: c.Col}.Clamp(b)
}

// Left moves one column left and clamps against b. It never wraps to the
// previous line.
func (c Cursor) Left(b Buffer) Cursor {
	return Cursor{Row: c.Row, Col: c.Col - 1}.Clamp(b)
}

// Right moves one column right and clamps against b. It never wraps to the
// next line.
func (c Cursor) Right(b Buffer) Cursor {
	return Cursor{Row: c.Row, Col: c.Col + 1}.Clamp(b)
}

// MoveToColumn sets the column and clamps against b.
func (c Cursor) MoveToColumn(b Buffer, col int) Cursor {
	return Cursor{Row: c.Row, Col: col}.Clamp(b)
}

// Clamp returns c limited to b's shape.
func (c Cursor) Clamp(b Buffer) Cursor {
	return b.clampPos(c)
}

// InBounds reports whether c is a valid position in b.
func (c Cursor) InBounds(b Buffer) bool {
	return c.Row >= 0 && c.Row < b.LineCount() && c.Col >= 0 && c.Col <= b.LineLen(c.Row)
}
