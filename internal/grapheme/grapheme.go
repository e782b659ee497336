// Package grapheme measures text in terminal cells for the tui frontend.
//
// Buffers index columns in runes; the screen needs cells. Wide runes (CJK,
// most emoji) take two cells and combining marks take none.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the number of cells text occupies.
func Width(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.StringWidth(text)
}

// CellOffset returns the cell offset of rune column col within line.
// Columns past the end count one cell each, so a cursor at the end of the line
// sits right after the last glyph.
func CellOffset(line string, col int) int {
	if col <= 0 {
		return 0
	}
	cells := 0
	i := 0
	for _, r := range line {
		if i >= col {
			return cells
		}
		cells += runewidth.RuneWidth(r)
		i++
	}
	return cells + (col - i)
}

// Window returns the part of text visible in the cell range
// [left, left+width). A cluster cut by either edge is dropped and replaced by
// spaces so columns stay aligned.
func Window(text string, left, width int) string {
	if width <= 0 {
		return ""
	}
	if left < 0 {
		left = 0
	}

	var sb strings.Builder
	right := left + width
	pos := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		w := g.Width()
		start, end := pos, pos+w
		pos = end
		if end <= left {
			continue
		}
		if start >= right {
			break
		}
		if start < left || end > right {
			sb.WriteString(strings.Repeat(" ", min(end, right)-max(start, left)))
			continue
		}
		sb.WriteString(cluster)
	}
	return sb.String()
}

// Printable replaces C0 control characters and DEL with their Unicode
// control pictures (U+2400 block), so a CR or tab read from a file occupies
// one cell instead of moving the terminal cursor.
func Printable(line string) string {
	if strings.IndexFunc(line, isControl) < 0 {
		return line
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r < 0x20:
			return 0x2400 + r
		case r == 0x7f:
			return 0x2421
		}
		return r
	}, line)
}

func isControl(r rune) bool { return r < 0x20 || r == 0x7f }
