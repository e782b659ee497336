package term

import (
	"bytes"
	"io"

	"github.com/muesli/termenv"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/internal/grapheme"
)

// Renderer paints a whole frame per call: clear the screen, write every line
// followed by CR LF, then place the terminal cursor. Terminal coordinates are
// 1-based, so the buffer cursor is shifted by one on both axes. Control
// characters in a line are drawn as control pictures.
type Renderer struct {
	w       io.Writer
	profile termenv.Profile
	status  string
}

// NewRenderer writes frames to w. Colors follow w's capabilities.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w, profile: termenv.NewOutput(w).Profile}
}

// SetStatus shows msg below the buffer on the next frame only.
func (r *Renderer) SetStatus(msg string) {
	r.status = msg
}

func (r *Renderer) Render(b buffer.Buffer, c buffer.Cursor) error {
	var frame bytes.Buffer
	o := termenv.NewOutput(&frame, termenv.WithProfile(r.profile))

	o.ClearScreen()
	for row := 0; row < b.LineCount(); row++ {
		frame.WriteString(grapheme.Printable(b.Line(row)))
		frame.WriteString("\r\n")
	}
	if r.status != "" {
		frame.WriteString(o.String(r.status).Reverse().String())
		frame.WriteString("\r\n")
		r.status = ""
	}
	o.MoveCursor(c.Row+1, c.Col+1)

	_, err := r.w.Write(frame.Bytes())
	return err
}
