// Package buffer implements the pure document model for quill.
//
// Coordinates are 0-based (Row, Col) in runes. A Buffer is a value: every edit
// returns a new Buffer and leaves the receiver untouched, which is what lets
// History keep plain snapshots.
package buffer
