// Package ledger provides the append-only flat-file logs behind the QuWaTrO
// modules.
//
// Log persists structured records as comma-delimited lines and replays
// them through a Codec; Journal keeps free-text entries that are only ever
// displayed back verbatim. Both open the file for the duration of a single
// call and never rewrite existing lines.
package ledger

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/quwatro/pkg/types"
)

// Error reports a failed log operation. It matches types.ErrWrite or
// types.ErrRead with errors.Is depending on Kind.
type Error struct {
	Op   string // "append" or "read"
	Path string
	Kind error // types.ErrWrite or types.ErrRead
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the error's kind.
func (e *Error) Is(target error) bool { return target == e.Kind }

func writeErr(path string, err error) error {
	return &Error{Op: "append", Path: path, Kind: types.ErrWrite, Err: err}
}

func readErr(path string, err error) error {
	return &Error{Op: "read", Path: path, Kind: types.ErrRead, Err: err}
}

// appendLines opens path in append mode, creating it and its directory if
// needed, writes each line followed by a newline, and closes the file.
func appendLines(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return writeErr(path, err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return writeErr(path, err)
	}

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			f.Close()
			return writeErr(path, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			f.Close()
			return writeErr(path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return writeErr(path, err)
	}
	if err := f.Close(); err != nil {
		return writeErr(path, err)
	}
	return nil
}

// maxLineBytes bounds a single log line. Longer lines are consumed and
// skipped so one corrupt line cannot end a replay.
const maxLineBytes = 1 << 20

// scanLines opens path and calls fn for every line until fn returns false.
// Lines longer than maxLineBytes are skipped. A missing file yields
// types.ErrNotFound.
func scanLines(path string, fn func(line string) bool) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, types.ErrNotFound)
		}
		return readErr(path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for {
		line, oversized, err := readLine(r)
		if err != nil && !errors.Is(err, io.EOF) {
			return readErr(path, err)
		}
		atEOF := err != nil
		if atEOF && line == "" && !oversized {
			return nil
		}
		if !oversized && !fn(line) {
			return nil
		}
		if atEOF {
			return nil
		}
	}
}

// readLine returns the next line without its terminator. A line longer
// than maxLineBytes is read to its end and reported as oversized with an
// empty body. The error is io.EOF when the file ends before a newline.
func readLine(r *bufio.Reader) (string, bool, error) {
	var (
		buf       []byte
		oversized bool
	)
	for {
		chunk, err := r.ReadSlice('\n')
		if !oversized {
			if len(buf)+len(chunk) > maxLineBytes+1 {
				oversized, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return strings.TrimRight(string(buf), "\r\n"), oversized, err
	}
}
