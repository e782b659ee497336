// Package term is the raw-terminal frontend: it switches the controlling
// terminal into raw mode, paints buffers with ANSI sequences and reads input
// one rune at a time.
package term
