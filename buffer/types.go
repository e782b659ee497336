package buffer

// Cursor points into a Buffer by (row, col) in runes.
//
// A Cursor is only meaningful relative to a specific Buffer. Col may equal the
// line length ("one past the end") so text can be appended.
type Cursor struct {
	Row int
	Col int
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into document bounds described by rowCount and lineLen.
//
// - rowCount is the number of logical lines (rows).
// - lineLen(row) returns the rune length of the given row.
//
// The row is clamped first and the column is clamped against the length of
// the clamped row, so landing on a shorter line snaps the column down.
//
// The returned Cursor always satisfies:
// - 0 <= Row < rowCount (with rowCount treated as at least 1)
// - 0 <= Col <= lineLen(Row)
func ClampPos(p Cursor, rowCount int, lineLen func(row int) int) Cursor {
	if rowCount <= 0 {
		rowCount = 1
	}

	row := clampInt(p.Row, 0, rowCount-1)

	maxCol := 0
	if lineLen != nil {
		maxCol = lineLen(row)
		if maxCol < 0 {
			maxCol = 0
		}
	}
	col := clampInt(p.Col, 0, maxCol)

	return Cursor{Row: row, Col: col}
}
