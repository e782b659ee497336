// Package textfile loads and saves buffers as plain newline-terminated text.
package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/internal/log"
)

// ErrIO is wrapped by every read or write failure.
var ErrIO = errors.New("file i/o failed")

// ErrNotUTF8 is wrapped by Load for files that are not valid UTF-8.
var ErrNotUTF8 = errors.New("not valid UTF-8 text")

// Load reads path into a buffer. Each '\n' terminates a line; a final
// newline does not start an extra empty line. A missing file yields a buffer
// with one empty line and no error. Files that are not valid UTF-8 are
// rejected, since saving the decoded runes would rewrite the invalid bytes.
func Load(path string) (buffer.Buffer, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is the file the user asked to edit
	if errors.Is(err, fs.ErrNotExist) {
		log.Info(log.CatFile, "new file", "path", path)
		return buffer.New(), nil
	}
	if err != nil {
		return buffer.New(), fmt.Errorf("%w: reading %s: %w", ErrIO, path, err)
	}

	if !utf8.Valid(data) {
		return buffer.New(), fmt.Errorf("%w: reading %s: %w", ErrIO, path, ErrNotUTF8)
	}

	b := Parse(string(data))
	log.Info(log.CatFile, "loaded", "path", path, "lines", b.LineCount())
	return b, nil
}

// Parse splits text into lines using the same rules as Load.
func Parse(text string) buffer.Buffer {
	text = strings.TrimSuffix(text, "\n")
	return buffer.FromText(text)
}

// Save writes every line of b followed by '\n' to path, replacing its
// contents. The write goes through a temporary file in the same directory,
// so a failed save leaves the previous file intact. The mode of an existing
// file is kept. A symlink is followed and its target is replaced.
func Save(path string, b buffer.Buffer) (err error) {
	path, err = resolve(path)
	if err != nil {
		return fmt.Errorf("%w: saving %s: %w", ErrIO, path, err)
	}

	mode := fs.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: saving %s: %w", ErrIO, path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	for row := 0; row < b.LineCount(); row++ {
		if _, err = w.WriteString(b.Line(row)); err != nil {
			return fmt.Errorf("%w: saving %s: %w", ErrIO, path, err)
		}
		if err = w.WriteByte('\n'); err != nil {
			return fmt.Errorf("%w: saving %s: %w", ErrIO, path, err)
		}
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("%w: saving %s: %w", ErrIO, path, err)
	}
	if err = tmp.Chmod(mode); err != nil {
		return fmt.Errorf("%w: saving %s: %w", ErrIO, path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: saving %s: %w", ErrIO, path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: saving %s: %w", ErrIO, path, err)
	}

	log.Info(log.CatFile, "saved", "path", path, "lines", b.LineCount())
	return nil
}

// resolve follows symlinks in path. A path that does not exist yet is
// returned as is; a dangling link resolves to the file it points at.
func resolve(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return path, err
	}
	target, lerr := os.Readlink(path)
	if lerr != nil {
		return path, nil
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return target, nil
}
