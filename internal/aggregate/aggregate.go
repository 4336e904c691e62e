// Package aggregate computes read-only summaries over stored or replayed
// records.
package aggregate

import (
	"github.com/mesh-intelligence/quwatro/internal/ledger"
)

// Summary is the result of summarizing a set of records against a
// threshold.
type Summary[T any] struct {
	Count    int
	Total    float64
	Breaches []T
}

// Average returns Total/Count. It reports false when there is no data.
func (s Summary[T]) Average() (float64, bool) {
	if s.Count == 0 {
		return 0, false
	}
	return s.Total / float64(s.Count), true
}

// Summarizer accumulates records one at a time.
type Summarizer[T any] struct {
	value     func(T) float64
	threshold float64
	sum       Summary[T]
}

// NewSummarizer returns a Summarizer that measures records with value and
// flags those strictly above threshold.
func NewSummarizer[T any](value func(T) float64, threshold float64) *Summarizer[T] {
	return &Summarizer[T]{value: value, threshold: threshold}
}

// Add folds r into the running summary.
func (s *Summarizer[T]) Add(r T) {
	v := s.value(r)
	s.sum.Count++
	s.sum.Total += v
	if v > s.threshold {
		s.sum.Breaches = append(s.sum.Breaches, r)
	}
}

// Summary returns the accumulated result.
func (s *Summarizer[T]) Summary() Summary[T] { return s.sum }

// Summarize measures every record with value and collects those whose
// value exceeds threshold.
func Summarize[T any](records []T, value func(T) float64, threshold float64) Summary[T] {
	s := NewSummarizer(value, threshold)
	for _, r := range records {
		s.Add(r)
	}
	return s.Summary()
}

// Replay summarizes a log without loading it into memory first. Errors
// from the log, including types.ErrNotFound for a missing file, are
// returned unchanged.
func Replay[T any](log *ledger.Log[T], value func(T) float64, threshold float64) (Summary[T], error) {
	s := NewSummarizer(value, threshold)
	err := log.Each(func(r T) bool {
		s.Add(r)
		return true
	})
	if err != nil {
		return Summary[T]{}, err
	}
	return s.Summary(), nil
}
