package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/quill/internal/config"
	"github.com/iw2rmb/quill/internal/keys"
)

// KeyMap defines the rebindable editor keys.
//
// Every binding must be a single ctrl+<letter> key so that it maps onto one
// byte in raw mode. Enter, tab and backspace are fixed and listed for help
// only.
type KeyMap struct {
	Quit, Save, Undo      key.Binding
	Up, Down, Left, Right key.Binding

	Enter, Tab, Backspace key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMapFromConfig(config.Defaults().Keys)
}

// KeyMapFromConfig builds bindings from configured key names. Validation is
// left to config.ValidateKeys and NewDispatcher.
func KeyMapFromConfig(k config.KeysConfig) KeyMap {
	return KeyMap{
		Quit:  key.NewBinding(key.WithKeys(k.Quit), key.WithHelp(k.Quit, "quit")),
		Save:  key.NewBinding(key.WithKeys(k.Save), key.WithHelp(k.Save, "save")),
		Undo:  key.NewBinding(key.WithKeys(k.Undo), key.WithHelp(k.Undo, "undo")),
		Up:    key.NewBinding(key.WithKeys(k.Up, "up"), key.WithHelp(k.Up+"/↑", "up")),
		Down:  key.NewBinding(key.WithKeys(k.Down, "down"), key.WithHelp(k.Down+"/↓", "down")),
		Left:  key.NewBinding(key.WithKeys(k.Left, "left"), key.WithHelp(k.Left+"/←", "left")),
		Right: key.NewBinding(key.WithKeys(k.Right, "right"), key.WithHelp(k.Right+"/→", "right")),

		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "split line")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Save, km.Undo, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right},
		{km.Enter, km.Tab, km.Backspace},
		{km.Save, km.Undo, km.Quit},
	}
}

type command int

const (
	cmdQuit command = iota + 1
	cmdSave
	cmdUndo
	cmdUp
	cmdDown
	cmdLeft
	cmdRight
)

// controlBytes resolves each binding to the byte a raw terminal sends for it.
// Only the first key of a binding counts; the rest are Bubble Tea names such
// as "up" that have no single-byte form.
func (km KeyMap) controlBytes() (map[rune]command, error) {
	bindings := []struct {
		b   key.Binding
		cmd command
	}{
		{km.Quit, cmdQuit},
		{km.Save, cmdSave},
		{km.Undo, cmdUndo},
		{km.Up, cmdUp},
		{km.Down, cmdDown},
		{km.Left, cmdLeft},
		{km.Right, cmdRight},
	}

	out := make(map[rune]command, len(bindings))
	for _, bd := range bindings {
		names := bd.b.Keys()
		if len(names) == 0 {
			return nil, fmt.Errorf("keymap: binding without keys")
		}
		code, err := keys.ControlByte(names[0])
		if err != nil {
			return nil, fmt.Errorf("keymap: %w", err)
		}
		if keys.Reserved(code) {
			return nil, fmt.Errorf("keymap: %s is reserved", names[0])
		}
		if _, dup := out[rune(code)]; dup {
			return nil, fmt.Errorf("keymap: %s bound twice", names[0])
		}
		out[rune(code)] = bd.cmd
	}
	return out, nil
}
