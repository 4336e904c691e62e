package ledger

import (
	"strings"

	"github.com/mesh-intelligence/quwatro/internal/field"
)

// Codec maps a record to and from the fields of one log line.
type Codec[T any] interface {
	// Fields is the number of fields a well-formed line carries.
	Fields() int
	// Encode returns the record's fields in log column order.
	Encode(r T) []string
	// Decode builds a record from exactly Fields() fields.
	Decode(fields []string) (T, error)
}

// Log is an append-only file of delimited records.
type Log[T any] struct {
	path  string
	codec Codec[T]
}

// NewLog returns a Log stored at path. The file is created on first Append.
func NewLog[T any](path string, codec Codec[T]) *Log[T] {
	return &Log[T]{path: path, codec: codec}
}

// Path returns the log file location.
func (l *Log[T]) Path() string { return l.path }

// Append writes r as one line at the end of the log. Failures match
// types.ErrWrite.
func (l *Log[T]) Append(r T) error {
	return appendLines(l.path, []string{strings.Join(l.codec.Encode(r), field.Delimiter)})
}

// Each replays the log from the first line, calling fn for every
// well-formed record until fn returns false. Lines with fewer fields than
// the codec expects, or that fail to decode, are skipped. A missing file
// returns an error matching types.ErrNotFound.
func (l *Log[T]) Each(fn func(T) bool) error {
	want := l.codec.Fields()
	return scanLines(l.path, func(line string) bool {
		parts := strings.Split(line, field.Delimiter)
		if len(parts) < want {
			return true
		}
		r, err := l.codec.Decode(parts[:want])
		if err != nil {
			return true
		}
		return fn(r)
	})
}

// ReadAll replays the whole log into a slice.
func (l *Log[T]) ReadAll() ([]T, error) {
	var out []T
	err := l.Each(func(r T) bool {
		out = append(out, r)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
