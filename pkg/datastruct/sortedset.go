package datastruct

import (
	"iter"
	"slices"

	"go.llib.dev/collkit/pkg/compare"
	"go.llib.dev/collkit/pkg/slicekit"
)

// SortedSet is a unique collection of values,
// held in the sorted order of its comparator at all times.
// Use NewSortedSet to create one, the zero value has no ordering bound to it.
type SortedSet[T any] struct {
	cmp compare.Func[T]
	vs  []T
}

var _ List[any] = (*SortedSet[any])(nil)

// NewSortedSet creates an empty SortedSet that orders its values by the given comparator.
func NewSortedSet[T any](cmp compare.Func[T]) *SortedSet[T] {
	return &SortedSet[T]{cmp: cmp}
}

// FromSlice replaces the content of the set with the distinct values of the given slice,
// then returns the set.
func (s *SortedSet[T]) FromSlice(vs []T) *SortedSet[T] {
	s.vs = slicekit.SortUnique(vs, s.cmp)
	return s
}

// Add inserts the value at its sort position.
// Adding an already present value leaves the set unchanged.
func (s *SortedSet[T]) Add(v T) {
	s.vs = slicekit.InsertSorted(s.vs, v, s.cmp)
}

func (s *SortedSet[T]) Append(vs ...T) {
	for _, v := range vs {
		s.Add(v)
	}
}

func (s *SortedSet[T]) Has(v T) bool {
	_, ok := slicekit.SearchSorted(s.vs, v, s.cmp)
	return ok
}

// Delete removes the value from the set,
// and reports whether the value was present.
func (s *SortedSet[T]) Delete(v T) bool {
	index, ok := slicekit.SearchSorted(s.vs, v, s.cmp)
	if !ok {
		return false
	}
	s.vs = slices.Delete(s.vs, index, index+1)
	return true
}

// Difference returns a new set with the values of the set that are not present in oth.
// The receiver's comparator is used, and oth is expected to be ordered the same way.
func (s *SortedSet[T]) Difference(oth *SortedSet[T]) *SortedSet[T] {
	return &SortedSet[T]{
		cmp: s.cmp,
		vs:  slicekit.RelativeComplement(oth.vs, s.vs, s.cmp),
	}
}

// Union returns a new set with the values of both sets.
func (s *SortedSet[T]) Union(oth *SortedSet[T]) *SortedSet[T] {
	return &SortedSet[T]{
		cmp: s.cmp,
		vs:  slicekit.SortUnique(slicekit.Merge(s.vs, oth.vs), s.cmp),
	}
}

// ToSlice returns the values of the set in sorted order, as a new slice.
func (s *SortedSet[T]) ToSlice() []T {
	return slicekit.Clone(s.vs)
}

func (s *SortedSet[T]) Len() int {
	return len(s.vs)
}

// Iter yields the values of the set in sorted order.
func (s *SortedSet[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.vs {
			if !yield(v) {
				return
			}
		}
	}
}
