// Package keys maps key names used in configuration to the raw bytes a
// terminal in raw mode delivers for them.
package keys

import (
	"fmt"
	"strings"
)

// Bytes with fixed meaning in the editor. They cannot be rebound.
const (
	Backspace byte = 0x08 // ctrl+h
	Tab       byte = 0x09 // ctrl+i
	Enter     byte = 0x0d // ctrl+m
	Escape    byte = 0x1b // ctrl+[
	Delete    byte = 0x7f
)

// ControlByte returns the C0 byte sent for "ctrl+<letter>".
func ControlByte(name string) (byte, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	letter, ok := strings.CutPrefix(s, "ctrl+")
	if !ok || len(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
		return 0, fmt.Errorf("key %q: only ctrl+<letter> can be bound", name)
	}
	return letter[0] - 'a' + 1, nil
}

// Reserved reports whether b already has a fixed meaning.
func Reserved(b byte) bool {
	switch b {
	case Backspace, Tab, Enter, Escape, Delete:
		return true
	}
	return false
}

// Name returns the conventional "ctrl+<letter>" name of a C0 byte.
func Name(b byte) string {
	switch {
	case b == Delete:
		return "backspace"
	case b >= 1 && b <= 26:
		return "ctrl+" + string(rune('a'+b-1))
	default:
		return fmt.Sprintf("0x%02x", b)
	}
}
