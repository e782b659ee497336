package editor

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/quill/buffer"
)

type frame struct {
	lines  []string
	cursor buffer.Cursor
}

type recordingSink struct {
	frames   []frame
	statuses []string
	err      error
	panicOn  int
}

func (r *recordingSink) Render(b buffer.Buffer, c buffer.Cursor) error {
	r.frames = append(r.frames, frame{lines: b.Lines(), cursor: c})
	if r.panicOn > 0 && len(r.frames) == r.panicOn {
		panic("sink exploded")
	}
	return r.err
}

func (r *recordingSink) SetStatus(msg string) { r.statuses = append(r.statuses, msg) }

func newTestSession(t *testing.T, input string, s *State, sink RenderSink) (*Session, *bytes.Buffer) {
	t.Helper()
	var pad bytes.Buffer
	return &Session{
		State:      s,
		Dispatcher: newTestDispatcher(t),
		Input:      strings.NewReader(input),
		Sink:       sink,
		Padding:    DefaultPadding,
		PaddingOut: &pad,
	}, &pad
}

func TestSession_RendersBeforeEveryRead(t *testing.T) {
	sink := &recordingSink{}
	sess, pad := newTestSession(t, "ab"+ctrlQ+"c", newTestState(buffer.Cursor{}, ""), sink)

	require.NoError(t, sess.Run())
	require.Len(t, sink.frames, 3)
	require.Equal(t, frame{lines: []string{""}, cursor: buffer.Cursor{}}, sink.frames[0])
	require.Equal(t, frame{lines: []string{"a"}, cursor: buffer.Cursor{Col: 1}}, sink.frames[1])
	require.Equal(t, frame{lines: []string{"ab"}, cursor: buffer.Cursor{Col: 2}}, sink.frames[2])
	require.Equal(t, []string{"ab"}, sess.State.Buffer.Lines(), "input after quit is not read")
	require.Zero(t, pad.Len())
}

func TestSession_EndOfInputEndsCleanly(t *testing.T) {
	sink := &recordingSink{}
	sess, pad := newTestSession(t, "x", newTestState(buffer.Cursor{}, ""), sink)

	require.NoError(t, sess.Run())
	require.Len(t, sink.frames, 2)
	require.Zero(t, pad.Len())
}

func TestSession_SaveCallsCallback(t *testing.T) {
	sink := &recordingSink{}
	sess, _ := newTestSession(t, "x"+ctrlS+ctrlQ, newTestState(buffer.Cursor{}, ""), sink)

	var savedPath string
	var saved buffer.Buffer
	sess.Save = func(path string, b buffer.Buffer) error {
		savedPath, saved = path, b
		return nil
	}

	require.NoError(t, sess.Run())
	require.Equal(t, "test.txt", savedPath)
	require.Equal(t, []string{"x"}, saved.Lines())
	require.Equal(t, []string{"wrote 1 lines to test.txt"}, sink.statuses)
}

func TestSession_FailedSaveKeepsEditing(t *testing.T) {
	sink := &recordingSink{}
	sess, pad := newTestSession(t, "x"+ctrlS+"y"+ctrlQ, newTestState(buffer.Cursor{}, ""), sink)
	sess.Save = func(string, buffer.Buffer) error { return errors.New("disk full") }

	require.NoError(t, sess.Run())
	require.Equal(t, []string{"xy"}, sess.State.Buffer.Lines())
	require.Equal(t, 2, sess.State.History.Len())
	require.Len(t, sink.statuses, 1)
	require.Contains(t, sink.statuses[0], "save failed: disk full")
	require.Zero(t, pad.Len())
}

func TestSession_SaveWithoutCallbackOrPath(t *testing.T) {
	sink := &recordingSink{}
	sess, _ := newTestSession(t, ctrlS+ctrlQ, newTestState(buffer.Cursor{}, ""), sink)
	require.NoError(t, sess.Run())
	require.Equal(t, []string{"save is not available"}, sink.statuses)

	sink = &recordingSink{}
	st := newTestState(buffer.Cursor{}, "")
	st.Path = ""
	sess, _ = newTestSession(t, ctrlS+ctrlQ, st, sink)
	sess.Save = func(string, buffer.Buffer) error { return nil }
	require.NoError(t, sess.Run())
	require.Equal(t, []string{"no file name"}, sink.statuses)
}

func TestSession_FatalErrorPadsOutput(t *testing.T) {
	sink := &recordingSink{}
	sess, pad := newTestSession(t, "x", newTestState(buffer.Cursor{Row: 9}, "ab"), sink)

	err := sess.Run()
	require.ErrorIs(t, err, buffer.ErrOutOfBounds)
	require.Equal(t, strings.Repeat("\r\n", DefaultPadding), pad.String())
}

func TestSession_RenderErrorIsFatal(t *testing.T) {
	sink := &recordingSink{err: errors.New("broken pipe")}
	sess, pad := newTestSession(t, "x", newTestState(buffer.Cursor{}, ""), sink)

	err := sess.Run()
	require.Error(t, err)
	require.Contains(t, err.Error(), "rendering: broken pipe")
	require.Equal(t, 2*DefaultPadding, pad.Len())
}

type errReader struct{}

func (errReader) ReadRune() (rune, int, error) { return 0, 0, errors.New("tty gone") }

func TestSession_ReadErrorIsFatal(t *testing.T) {
	sink := &recordingSink{}
	sess, pad := newTestSession(t, "", newTestState(buffer.Cursor{}, ""), sink)
	sess.Input = errReader{}

	err := sess.Run()
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading input: tty gone")
	require.Equal(t, 2*DefaultPadding, pad.Len())
}

func TestSession_PanicIsPaddedAndReraised(t *testing.T) {
	sink := &recordingSink{panicOn: 2}
	sess, pad := newTestSession(t, "xy", newTestState(buffer.Cursor{}, ""), sink)

	require.PanicsWithValue(t, "sink exploded", func() { _ = sess.Run() })
	require.Equal(t, 2*DefaultPadding, pad.Len())
}

func TestSession_SkipsUndecodableBytes(t *testing.T) {
	sink := &recordingSink{}
	st := newTestState(buffer.Cursor{}, "")
	sess, _ := newTestSession(t, "a\xffb"+ctrlQ, st, sink)

	require.NoError(t, sess.Run())
	require.Equal(t, []string{"ab"}, st.Buffer.Lines())
	require.Equal(t, 2, st.History.Len())
}

func TestSession_InsertsTypedReplacementCharacter(t *testing.T) {
	sink := &recordingSink{}
	st := newTestState(buffer.Cursor{}, "")
	sess, _ := newTestSession(t, "a\uFFFDb"+ctrlQ, st, sink)

	require.NoError(t, sess.Run())
	require.Equal(t, []string{"a\uFFFDb"}, st.Buffer.Lines())
	require.Equal(t, buffer.Cursor{Col: 3}, st.Cursor)
}
