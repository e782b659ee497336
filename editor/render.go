package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	graphemeutil "github.com/iw2rmb/quill/internal/grapheme"
)

func (m Model) View() string {
	parts := []string{m.viewport.View()}
	if m.cfg.ShowStatusBar {
		parts = append(parts, m.renderStatusBar())
	}
	if m.cfg.ShowHelp {
		parts = append(parts, m.help.View(m.cfg.KeyMap))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderContent() string {
	b := m.state.Buffer
	cur := m.state.Cursor
	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(b.LineCount())
	}
	width := m.textWidth()

	out := make([]string, 0, b.LineCount())
	for row := 0; row < b.LineCount(); row++ {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			style := m.cfg.Style.LineNum
			if row == cur.Row {
				style = m.cfg.Style.LineNumActive
			}
			sb.WriteString(style.Render(fmt.Sprintf("%*d ", digits, row+1)))
		}

		line := graphemeutil.Printable(b.Line(row))
		if row == cur.Row {
			sb.WriteString(m.renderCursorLine(line, width))
		} else {
			sb.WriteString(m.cfg.Style.Text.Render(m.window(line, width)))
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderCursorLine draws the cursor cell reversed. At the end of the line the
// cursor is a reversed space.
func (m *Model) renderCursorLine(line string, width int) string {
	runes := []rune(line)
	col := m.state.Cursor.Col
	before := string(runes[:col])
	at := " "
	after := ""
	if col < len(runes) {
		at = string(runes[col])
		after = string(runes[col+1:])
	}

	if width <= 0 {
		return m.cfg.Style.Text.Render(before) + m.cfg.Style.Cursor.Render(at) + m.cfg.Style.Text.Render(after)
	}

	start := graphemeutil.Width(before)
	atW := max(graphemeutil.Width(at), 1)
	left, right := m.xOffset, m.xOffset+width

	visBefore := graphemeutil.Window(before, left, width)
	visAt := ""
	if start >= left && start+atW <= right {
		visAt = at
	}
	visAfter := ""
	afterStart := start + atW
	if rem := right - max(left, afterStart); rem > 0 {
		visAfter = graphemeutil.Window(after, max(left-afterStart, 0), rem)
	}
	return m.cfg.Style.Text.Render(visBefore) + m.cfg.Style.Cursor.Render(visAt) + m.cfg.Style.Text.Render(visAfter)
}

func (m *Model) window(line string, width int) string {
	if width <= 0 {
		return line
	}
	return graphemeutil.Window(line, m.xOffset, width)
}

func (m Model) renderStatusBar() string {
	name := m.state.Path
	if name == "" {
		name = "[no name]"
	}
	cur := m.state.Cursor
	left := fmt.Sprintf(" %s  Ln %d, Col %d  undo:%d ", name, cur.Row+1, cur.Col+1, m.state.History.Len())
	if m.status != "" {
		left += m.cfg.Style.StatusMsg.Render(m.status) + " "
	}
	bar := m.cfg.Style.StatusBar
	if m.width > 0 {
		bar = bar.Width(m.width).MaxWidth(m.width)
	}
	return bar.Render(left)
}

// textWidth is the number of cells available for text, or 0 when unsized.
func (m Model) textWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width
	if m.cfg.ShowLineNums {
		w -= gutterDigits(m.state.Buffer.LineCount()) + 1
	}
	return max(w, 1)
}

// cursorCell is the cursor's cell offset within its line.
func (m Model) cursorCell() int {
	cur := m.state.Cursor
	return graphemeutil.CellOffset(graphemeutil.Printable(m.state.Buffer.Line(cur.Row)), cur.Col)
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}
