// Package store implements the bounded, ordered record store shared by the
// QuWaTrO modules.
//
// A Store keeps its records in a backing array plus a size counter.
// Bounded stores allocate the array once at their capacity; unbounded
// stores grow it on demand. Deletion shifts every later record one slot to
// the left so relative order is preserved, searches are linear scans, and
// sorting is an in-place stable insertion sort.
//
// Two sort disciplines are supported and deliberately kept separate:
// SortAuto re-establishes order after every insert, SortOnDemand leaves
// records in insertion order until Sort is called.
package store

import (
	"strings"

	"github.com/mesh-intelligence/quwatro/pkg/types"
)

// Mode selects the sort discipline of a Store.
type Mode int

const (
	// SortOnDemand keeps insertion order until Sort is called.
	SortOnDemand Mode = iota
	// SortAuto keeps the store sorted after every insert.
	SortAuto
)

func (m Mode) String() string {
	switch m {
	case SortAuto:
		return "auto"
	default:
		return "on-demand"
	}
}

// Options configures a Store.
type Options[T any] struct {
	// Capacity bounds the number of records. Zero means unbounded.
	Capacity int
	// Mode is the sort discipline.
	Mode Mode
	// Key extracts the identifying key used by SearchByKey. Optional.
	Key func(T) string
	// Unique rejects inserts whose key matches an existing record,
	// compared case-insensitively. Requires Key.
	Unique bool
	// Less orders records for Sort. A nil Less makes Sort a no-op.
	Less func(a, b T) bool
}

// Store is an ordered sequence of records. It is owned by a single caller
// and is not safe for concurrent use.
type Store[T any] struct {
	items []T
	size  int
	opts  Options[T]
}

// New creates an empty store.
func New[T any](opts Options[T]) *Store[T] {
	if opts.Capacity < 0 {
		opts.Capacity = 0
	}
	s := &Store[T]{opts: opts}
	if opts.Capacity > 0 {
		s.items = make([]T, opts.Capacity)
	}
	return s
}

// Len returns the number of records held.
func (s *Store[T]) Len() int { return s.size }

// Cap returns the capacity, or zero for an unbounded store.
func (s *Store[T]) Cap() int { return s.opts.Capacity }

// Mode returns the sort discipline.
func (s *Store[T]) Mode() Mode { return s.opts.Mode }

// Full reports whether a bounded store has reached its capacity.
func (s *Store[T]) Full() bool {
	return s.opts.Capacity > 0 && s.size == s.opts.Capacity
}

// Insert adds r and returns the index it ended up at. Under SortAuto the
// record is moved to its sorted position; equal records keep insertion
// order. Returns ErrCapacityExceeded when the store is full and
// ErrDuplicateKey when Unique is set and the key is taken. On error the
// store is unchanged.
func (s *Store[T]) Insert(r T) (int, error) {
	if s.Full() {
		return -1, types.ErrCapacityExceeded
	}
	if s.opts.Unique && s.opts.Key != nil {
		if _, _, ok := s.SearchByKey(s.opts.Key(r)); ok {
			return -1, types.ErrDuplicateKey
		}
	}

	if s.size == len(s.items) {
		s.items = append(s.items, r)
	} else {
		s.items[s.size] = r
	}
	s.size++

	i := s.size - 1
	if s.opts.Mode == SortAuto {
		i = s.siftDown(i)
	}
	return i, nil
}

// DeleteAt removes the record at index i, shifting later records left by
// one. Returns ErrIndexOutOfRange for an invalid index, leaving the store
// unchanged.
func (s *Store[T]) DeleteAt(i int) (T, error) {
	var zero T
	if i < 0 || i >= s.size {
		return zero, types.ErrIndexOutOfRange
	}
	removed := s.items[i]
	for j := i; j < s.size-1; j++ {
		s.items[j] = s.items[j+1]
	}
	s.size--
	s.items[s.size] = zero
	return removed, nil
}

// At returns the record at index i.
func (s *Store[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= s.size {
		return zero, types.ErrIndexOutOfRange
	}
	return s.items[i], nil
}

// SearchByKey returns the first record whose key equals key,
// case-insensitively, and its index. It reports false when nothing matches
// or the store has no Key function.
func (s *Store[T]) SearchByKey(key string) (T, int, bool) {
	var zero T
	if s.opts.Key == nil {
		return zero, -1, false
	}
	key = strings.TrimSpace(key)
	for i := 0; i < s.size; i++ {
		if strings.EqualFold(s.opts.Key(s.items[i]), key) {
			return s.items[i], i, true
		}
	}
	return zero, -1, false
}

// SearchByValue returns the indices of every record for which match
// reports true, in store order.
func (s *Store[T]) SearchByValue(match func(T) bool) []int {
	var found []int
	for i := 0; i < s.size; i++ {
		if match(s.items[i]) {
			found = append(found, i)
		}
	}
	return found
}

// Filter returns a copy of every record for which pred reports true.
func (s *Store[T]) Filter(pred func(T) bool) []T {
	var out []T
	for i := 0; i < s.size; i++ {
		if pred(s.items[i]) {
			out = append(out, s.items[i])
		}
	}
	return out
}

// All returns a copy of the records in store order.
func (s *Store[T]) All() []T {
	out := make([]T, s.size)
	copy(out, s.items[:s.size])
	return out
}

// Sort orders the records by Less using a stable insertion sort. Sorting
// a sorted store leaves it unchanged.
func (s *Store[T]) Sort() {
	if s.opts.Less == nil {
		return
	}
	for i := 1; i < s.size; i++ {
		s.siftDown(i)
	}
}

// siftDown moves the record at index i left past every record it is
// strictly less than and returns its final index.
func (s *Store[T]) siftDown(i int) int {
	if s.opts.Less == nil {
		return i
	}
	r := s.items[i]
	j := i
	for j > 0 && s.opts.Less(r, s.items[j-1]) {
		s.items[j] = s.items[j-1]
		j--
	}
	s.items[j] = r
	return j
}
