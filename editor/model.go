package editor

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is a Bubble Tea component that edits one buffer through a Dispatcher.
type Model struct {
	cfg   Config
	state *State
	disp  *Dispatcher

	viewport viewport.Model
	help     help.Model

	width   int
	xOffset int

	status string
	err    error
}

// New returns a Model editing cfg.Buffer. It fails when cfg.KeyMap cannot be
// mapped onto raw control bytes.
func New(cfg Config) (Model, error) {
	if len(cfg.KeyMap.Quit.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	disp, err := NewDispatcher(DispatcherOptions{KeyMap: cfg.KeyMap, TabWidth: cfg.TabWidth})
	if err != nil {
		return Model{}, err
	}

	m := Model{
		cfg:      cfg,
		state:    NewState(cfg.Path, cfg.Buffer, cfg.HistoryLimit),
		disp:     disp,
		viewport: viewport.New(0, 0),
		help:     help.New(),
	}
	m.rebuildContent()
	return m, nil
}

// State exposes the live editing state.
func (m Model) State() *State { return m.state }

// Err returns the fatal error that ended editing, if any.
func (m Model) Err() error { return m.err }

// Status returns the last status message.
func (m Model) Status() string { return m.status }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = max(height-m.chromeHeight(), 0)
	m.help.Width = width

	m.rebuildContent()
	m.followCursor()
	return m
}

// chromeHeight is the number of rows taken by the status bar and help line.
func (m Model) chromeHeight() int {
	h := 0
	if m.cfg.ShowStatusBar {
		h++
	}
	if m.cfg.ShowHelp {
		h++
	}
	return h
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor scrolls so the cursor row and column are visible.
func (m *Model) followCursor() {
	cur := m.state.Cursor
	h := m.viewport.Height
	if h > 0 {
		y := m.viewport.YOffset
		if cur.Row < y {
			m.viewport.SetYOffset(cur.Row)
		} else if cur.Row >= y+h {
			m.viewport.SetYOffset(cur.Row - h + 1)
		}
	}

	w := m.textWidth()
	if w <= 0 {
		return
	}
	x := m.cursorCell()
	if x < m.xOffset {
		m.xOffset = x
	} else if x >= m.xOffset+w {
		m.xOffset = x - w + 1
	}
	m.rebuildContent()
}
