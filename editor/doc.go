// Package editor holds the editing state machine of quill and its two
// frontends.
//
// Dispatcher turns one input unit (a rune as a raw terminal delivers it) into
// the next (Buffer, Cursor) pair and records undo snapshots. Session drives a
// Dispatcher from an io.RuneReader and paints through a RenderSink. Model is a
// Bubble Tea component that feeds key messages through the same Dispatcher.
package editor
