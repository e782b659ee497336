package editor

import (
	"fmt"

	"github.com/iw2rmb/quill/internal/keys"
	"github.com/iw2rmb/quill/internal/log"
)

// Action tells the caller what a dispatched input asks of it beyond the state
// change.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionSave
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionQuit:
		return "quit"
	case ActionSave:
		return "save"
	default:
		return "unknown"
	}
}

type inputState int

const (
	stateNormal inputState = iota
	stateEscapeSeen
)

// escapeTailLen is the number of units following ESC in an arrow-key
// sequence ("[A" .. "[D", or "OA" .. "OD" in application mode).
const escapeTailLen = 2

// DispatcherOptions configures a Dispatcher.
type DispatcherOptions struct {
	KeyMap   KeyMap
	TabWidth int // default: 4
}

// Dispatcher is the input state machine. It is not safe for concurrent use;
// one session owns it.
type Dispatcher struct {
	bindings map[rune]command
	tabWidth int

	state inputState
	tail  []rune
}

func NewDispatcher(opt DispatcherOptions) (*Dispatcher, error) {
	bindings, err := opt.KeyMap.controlBytes()
	if err != nil {
		return nil, err
	}
	if opt.TabWidth <= 0 {
		opt.TabWidth = 4
	}
	return &Dispatcher{
		bindings: bindings,
		tabWidth: opt.TabWidth,
		tail:     make([]rune, 0, escapeTailLen),
	}, nil
}

// Pending reports whether the dispatcher is in the middle of an escape
// sequence.
func (d *Dispatcher) Pending() bool { return d.state == stateEscapeSeen }

// Dispatch consumes one input unit and updates s.
//
// Edits push an undo snapshot before the buffer changes. A returned error
// means an edit indexed outside the buffer, which clamped cursors rule out;
// callers should end the session. s is left unchanged in that case.
func (d *Dispatcher) Dispatch(s *State, r rune) (Action, error) {
	if d.state == stateEscapeSeen {
		d.tail = append(d.tail, r)
		if len(d.tail) < escapeTailLen {
			return ActionNone, nil
		}
		final := d.tail[escapeTailLen-1]
		d.state = stateNormal
		d.tail = d.tail[:0]
		d.arrow(s, final)
		return ActionNone, nil
	}

	if cmd, ok := d.bindings[r]; ok {
		return d.run(s, cmd), nil
	}

	var err error
	switch r {
	case rune(keys.Escape):
		d.state = stateEscapeSeen
		return ActionNone, nil
	case rune(keys.Tab):
		err = d.insertTab(s)
	case rune(keys.Enter):
		err = d.splitLine(s)
	case rune(keys.Delete), rune(keys.Backspace):
		err = d.backspace(s)
	default:
		if r < 0x20 {
			log.Debug(log.CatInput, "unmapped control key", "key", keys.Name(byte(r)))
			return ActionNone, nil
		}
		err = d.insert(s, r)
	}
	if err != nil {
		return ActionNone, fmt.Errorf("dispatching %U: %w", r, err)
	}
	return ActionNone, nil
}

func (d *Dispatcher) run(s *State, cmd command) Action {
	switch cmd {
	case cmdQuit:
		return ActionQuit
	case cmdSave:
		return ActionSave
	case cmdUndo:
		if !s.Undo() {
			log.Debug(log.CatBuffer, "undo with empty history")
		}
	case cmdUp:
		s.Cursor = s.Cursor.Up(s.Buffer)
	case cmdDown:
		s.Cursor = s.Cursor.Down(s.Buffer)
	case cmdLeft:
		s.Cursor = s.Cursor.Left(s.Buffer)
	case cmdRight:
		s.Cursor = s.Cursor.Right(s.Buffer)
	}
	return ActionNone
}

func (d *Dispatcher) arrow(s *State, final rune) {
	switch final {
	case 'A':
		s.Cursor = s.Cursor.Up(s.Buffer)
	case 'B':
		s.Cursor = s.Cursor.Down(s.Buffer)
	case 'C':
		s.Cursor = s.Cursor.Right(s.Buffer)
	case 'D':
		s.Cursor = s.Cursor.Left(s.Buffer)
	default:
		log.Debug(log.CatInput, "unrecognized escape sequence", "final", fmt.Sprintf("%U", final))
	}
}

func (d *Dispatcher) insert(s *State, r rune) error {
	b, err := s.Buffer.Insert(r, s.Cursor.Row, s.Cursor.Col)
	if err != nil {
		return err
	}
	s.checkpoint()
	s.Buffer = b
	s.Cursor = s.Cursor.Right(b)
	return nil
}

func (d *Dispatcher) insertTab(s *State) error {
	b, c := s.Buffer, s.Cursor
	for i := 0; i < d.tabWidth; i++ {
		var err error
		if b, err = b.Insert(' ', c.Row, c.Col); err != nil {
			return err
		}
		c = c.Right(b)
	}
	s.checkpoint()
	s.Buffer, s.Cursor = b, c
	return nil
}

// splitLine breaks the line at the cursor and lands at the start of the new
// line.
func (d *Dispatcher) splitLine(s *State) error {
	b, err := s.Buffer.SplitLine(s.Cursor.Row, s.Cursor.Col)
	if err != nil {
		return err
	}
	s.checkpoint()
	s.Buffer = b
	s.Cursor = s.Cursor.Down(b).MoveToColumn(b, 0)
	return nil
}

// backspace removes the rune left of the cursor. At column 0 it does nothing
// and records no snapshot; lines are never joined.
func (d *Dispatcher) backspace(s *State) error {
	if s.Cursor.Col == 0 {
		return nil
	}
	b, err := s.Buffer.Delete(s.Cursor.Row, s.Cursor.Col-1)
	if err != nil {
		return err
	}
	s.checkpoint()
	s.Buffer = b
	s.Cursor = s.Cursor.Left(b)
	return nil
}

// Feed dispatches every rune of units in order and stops at the first action
// other than ActionNone or at the first error. It returns how many units were
// consumed.
func (d *Dispatcher) Feed(s *State, units []rune) (int, Action, error) {
	for i, r := range units {
		action, err := d.Dispatch(s, r)
		if err != nil || action != ActionNone {
			return i + 1, action, err
		}
	}
	return len(units), ActionNone, nil
}
