package main

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/editor"
	"github.com/iw2rmb/quill/internal/config"
	"github.com/iw2rmb/quill/internal/log"
	"github.com/iw2rmb/quill/internal/term"
	"github.com/iw2rmb/quill/internal/textfile"
)

// runRaw edits in raw mode on the current screen. The terminal is back in
// cooked mode before any error is returned.
func (a *app) runRaw(cfg config.Config, path string, b buffer.Buffer, input io.RuneReader) (err error) {
	disp, err := editor.NewDispatcher(editor.DispatcherOptions{
		KeyMap:   editor.KeyMapFromConfig(cfg.Keys),
		TabWidth: cfg.TabWidth,
	})
	if err != nil {
		return err
	}

	tm := term.New(a.in)
	if tm.IsTerminal() {
		if err := tm.MakeRaw(); err != nil {
			return err
		}
		if w, h, err := tm.Size(); err == nil {
			log.Debug(log.CatUI, "terminal", "width", w, "height", h)
		}
	} else {
		log.Warn(log.CatUI, "input is not a terminal, staying in cooked mode")
	}
	defer func() {
		if rerr := tm.Restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	s := &editor.Session{
		State:      editor.NewState(path, b, cfg.HistoryLimit),
		Dispatcher: disp,
		Input:      input,
		Sink:       term.NewRenderer(a.out),
		Save:       textfile.Save,
		Padding:    cfg.ErrorPadding,
		PaddingOut: a.out,
	}
	return s.Run()
}

// program adapts editor.Model to tea.Model.
type program struct {
	editor editor.Model
}

func (p program) Init() tea.Cmd { return p.editor.Init() }

func (p program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	p.editor, cmd = p.editor.Update(msg)
	return p, cmd
}

func (p program) View() string { return p.editor.View() }

func (a *app) runTUI(cfg config.Config, path string, b buffer.Buffer) error {
	m, err := editor.New(editor.Config{
		Path:          path,
		Buffer:        b,
		KeyMap:        editor.KeyMapFromConfig(cfg.Keys),
		TabWidth:      cfg.TabWidth,
		HistoryLimit:  cfg.HistoryLimit,
		ShowLineNums:  cfg.UI.ShowLineNumbers,
		ShowStatusBar: cfg.UI.ShowStatusBar,
		ShowHelp:      cfg.UI.ShowHelp,
		Style:         editor.DefaultStyle(),
		Save:          textfile.Save,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(program{editor: m},
		tea.WithAltScreen(),
		tea.WithInput(a.in),
		tea.WithOutput(a.out),
	)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fp, ok := final.(program); ok {
		return fp.editor.Err()
	}
	return nil
}
