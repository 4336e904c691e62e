package store

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/quwatro/pkg/types"
)

type entry struct {
	Name  string
	Value float64
}

func byName(a, b entry) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }

func byValue(a, b entry) bool { return a.Value < b.Value }

func entryKey(e entry) string { return e.Name }

func names(entries []entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestInsertCapacity(t *testing.T) {
	const capacity = 5
	s := New(Options[entry]{Capacity: capacity})

	for i := 0; i < capacity; i++ {
		idx, err := s.Insert(entry{Name: "e", Value: float64(i)})
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}
	assert.True(t, s.Full())

	before := s.All()
	_, err := s.Insert(entry{Name: "overflow"})
	assert.ErrorIs(t, err, types.ErrCapacityExceeded)
	assert.Equal(t, capacity, s.Len(), "size must stay at capacity")
	if diff := cmp.Diff(before, s.All()); diff != "" {
		t.Errorf("store changed after failed insert (-before +after):\n%s", diff)
	}
}

func TestUnboundedGrows(t *testing.T) {
	s := New(Options[entry]{})
	for i := 0; i < 250; i++ {
		_, err := s.Insert(entry{Value: float64(i)})
		require.NoError(t, err)
	}
	assert.Equal(t, 250, s.Len())
	assert.Equal(t, 0, s.Cap())
	assert.False(t, s.Full())
}

func TestDeleteAtShiftsLeft(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for i := 0; i < n; i++ {
			s := New(Options[entry]{Capacity: 10})
			for k := 0; k < n; k++ {
				_, err := s.Insert(entry{Value: float64(k)})
				require.NoError(t, err)
			}
			before := s.All()

			removed, err := s.DeleteAt(i)
			require.NoError(t, err)
			assert.Equal(t, before[i], removed)
			require.Equal(t, n-1, s.Len())

			after := s.All()
			for k := 0; k < i; k++ {
				assert.Equal(t, before[k], after[k], "n=%d i=%d k=%d", n, i, k)
			}
			for k := i; k < n-1; k++ {
				assert.Equal(t, before[k+1], after[k], "n=%d i=%d k=%d", n, i, k)
			}
		}
	}
}

func TestDeleteAtOutOfRange(t *testing.T) {
	s := New(Options[entry]{Capacity: 3})
	_, _ = s.Insert(entry{Name: "a"})
	_, _ = s.Insert(entry{Name: "b"})

	for _, i := range []int{-1, 2, 99} {
		_, err := s.DeleteAt(i)
		assert.ErrorIs(t, err, types.ErrIndexOutOfRange, "index %d", i)
	}
	assert.Equal(t, []string{"a", "b"}, names(s.All()))
}

func TestDeleteThenReinsertAtCapacity(t *testing.T) {
	s := New(Options[entry]{Capacity: 2})
	_, _ = s.Insert(entry{Name: "a"})
	_, _ = s.Insert(entry{Name: "b"})

	_, err := s.DeleteAt(0)
	require.NoError(t, err)

	idx, err := s.Insert(entry{Name: "c"})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, []string{"b", "c"}, names(s.All()))
}

func TestSortOnDemand(t *testing.T) {
	s := New(Options[entry]{Capacity: 10, Mode: SortOnDemand, Less: byValue})
	for _, v := range []float64{40.5, 31.2, 35.0, 28.9} {
		_, err := s.Insert(entry{Value: v})
		require.NoError(t, err)
	}

	// Insertion order holds until Sort is called.
	assert.Equal(t, 40.5, s.All()[0].Value)

	s.Sort()
	got := s.All()
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Value, got[i].Value)
	}

	s.Sort()
	if diff := cmp.Diff(got, s.All()); diff != "" {
		t.Errorf("sort is not idempotent (-first +second):\n%s", diff)
	}
}

func TestSortIsStable(t *testing.T) {
	s := New(Options[entry]{Mode: SortOnDemand, Less: byName})
	_, _ = s.Insert(entry{Name: "Naga City", Value: 2})
	_, _ = s.Insert(entry{Name: "abra", Value: 1})
	_, _ = s.Insert(entry{Name: "Abra", Value: 3})
	_, _ = s.Insert(entry{Name: "ABRA", Value: 4})

	s.Sort()
	got := s.All()
	assert.Equal(t, []string{"abra", "Abra", "ABRA", "Naga City"}, names(got))
	assert.Equal(t, []float64{1, 3, 4, 2}, []float64{got[0].Value, got[1].Value, got[2].Value, got[3].Value})
}

func TestSortAutoKeepsOrder(t *testing.T) {
	s := New(Options[entry]{Mode: SortAuto, Less: byName, Key: entryKey, Unique: true})
	_, err := s.Insert(entry{Name: "Antipolo City"})
	require.NoError(t, err)
	_, err = s.Insert(entry{Name: "Albay"})
	require.NoError(t, err)

	idx, err := s.Insert(entry{Name: "Baguio"})
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.Equal(t, []string{"Albay", "Antipolo City", "Baguio"}, names(s.All()))

	idx, err = s.Insert(entry{Name: "abucay"})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, []string{"abucay", "Albay", "Antipolo City", "Baguio"}, names(s.All()))
}

func TestUniqueKey(t *testing.T) {
	s := New(Options[entry]{Mode: SortAuto, Less: byName, Key: entryKey, Unique: true})
	_, err := s.Insert(entry{Name: "Manila", Value: 1})
	require.NoError(t, err)

	_, err = s.Insert(entry{Name: "MANILA", Value: 2})
	assert.ErrorIs(t, err, types.ErrDuplicateKey)
	assert.Equal(t, 1, s.Len())
}

func TestSearchByKey(t *testing.T) {
	s := New(Options[entry]{Key: entryKey})
	_, _ = s.Insert(entry{Name: "Cebu City", Value: 1})
	_, _ = s.Insert(entry{Name: "cebu city", Value: 2})

	got, idx, ok := s.SearchByKey("  CEBU CITY ")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1.0, got.Value, "first match wins")

	_, _, ok = s.SearchByKey("Davao City")
	assert.False(t, ok)

	noKey := New(Options[entry]{})
	_, _ = noKey.Insert(entry{Name: "x"})
	_, _, ok = noKey.SearchByKey("x")
	assert.False(t, ok)
}

func TestSearchByValue(t *testing.T) {
	s := New(Options[entry]{Capacity: 10})
	for _, v := range []float64{35.04, 20, 35.04, 41} {
		_, _ = s.Insert(entry{Value: v})
	}
	assert.Equal(t, []int{0, 2}, s.SearchByValue(func(e entry) bool { return e.Value == 35.04 }))
	assert.Empty(t, s.SearchByValue(func(e entry) bool { return e.Value == 99 }))
}

func TestFilterAndAllReturnCopies(t *testing.T) {
	s := New(Options[entry]{Capacity: 4})
	_, _ = s.Insert(entry{Name: "a", Value: 1})
	_, _ = s.Insert(entry{Name: "b", Value: 5})
	_, _ = s.Insert(entry{Name: "c", Value: 9})

	big := s.Filter(func(e entry) bool { return e.Value > 2 })
	assert.Equal(t, []string{"b", "c"}, names(big))

	all := s.All()
	all[0].Name = "mutated"
	first, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, "a", first.Name)

	_, err = s.At(3)
	assert.ErrorIs(t, err, types.ErrIndexOutOfRange)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "auto", SortAuto.String())
	assert.Equal(t, "on-demand", SortOnDemand.String())
}
