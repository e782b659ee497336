package editor

import "github.com/iw2rmb/quill/buffer"

// Config configures the Bubble Tea Model.
type Config struct {
	Path   string
	Buffer buffer.Buffer

	KeyMap       KeyMap
	TabWidth     int // default: 4
	HistoryLimit int // 0 = unbounded

	// Rendering options.
	ShowLineNums  bool
	ShowStatusBar bool
	ShowHelp      bool
	Style         Style

	// Save persists the buffer on the save key. Nil disables saving.
	Save SaveFunc

	// OnChange is called after every input that changed the buffer or cursor.
	OnChange func(ChangeEvent)
}
