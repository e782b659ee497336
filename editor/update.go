package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/internal/keys"
	"github.com/iw2rmb/quill/internal/log"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	default:
		return m, nil
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.err != nil {
		return m, nil
	}

	units := keyUnits(msg)
	if len(units) == 0 {
		return m, nil
	}

	before := m.state.Snapshot()
	depth := m.state.History.Len()
	m.status = ""

	for len(units) > 0 {
		n, action, err := m.disp.Feed(m.state, units)
		units = units[n:]
		if err != nil {
			m.err = err
			log.ErrorErr(log.CatUI, "edit failed", err)
			return m, tea.Quit
		}
		switch action {
		case ActionQuit:
			return m, tea.Quit
		case ActionSave:
			m.status = saveState(m.state, m.cfg.Save)
		}
	}

	edited := m.state.History.Len() != depth || !m.state.Buffer.Equal(before.Buffer)
	if edited || m.state.Cursor != before.Cursor {
		m.rebuildContent()
		m.followCursor()
		if m.cfg.OnChange != nil {
			m.cfg.OnChange(buildChangeEvent(m.state, edited))
		}
	}
	return m, nil
}

// keyUnits translates a key message into the units a raw terminal would have
// sent for it, so both frontends share one Dispatcher.
func keyUnits(msg tea.KeyMsg) []rune {
	switch msg.Type {
	case tea.KeyRunes:
		if !msg.Paste {
			return msg.Runes
		}
		// Pasted line breaks become one Enter each, whether LF or CRLF.
		units := make([]rune, 0, len(msg.Runes))
		for i, r := range msg.Runes {
			if r == '\n' {
				if i > 0 && msg.Runes[i-1] == '\r' {
					continue
				}
				r = rune(keys.Enter)
			}
			units = append(units, r)
		}
		return units
	case tea.KeySpace:
		return []rune{' '}
	case tea.KeyUp:
		return arrowUnits('A')
	case tea.KeyDown:
		return arrowUnits('B')
	case tea.KeyRight:
		return arrowUnits('C')
	case tea.KeyLeft:
		return arrowUnits('D')
	case tea.KeyEsc:
		// A lone escape would swallow the next two keys.
		return nil
	}
	if msg.Type >= 0 && msg.Type <= 0x7f {
		return []rune{rune(msg.Type)}
	}
	return nil
}

func arrowUnits(final rune) []rune {
	return []rune{rune(keys.Escape), '[', final}
}
