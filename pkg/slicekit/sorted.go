package slicekit

import (
	"slices"

	"go.llib.dev/collkit/internal/interr"
	"go.llib.dev/collkit/pkg/compare"
)

// ErrNotSorted is the panic value of the sorted sequence operations,
// raised when their input turns out not to be sorted under the received ordering.
const ErrNotSorted = interr.ErrNotSorted

// SortBy sorts the slice in place under the given ordering.
// The sort is stable, elements that the ordering ties keep their original order.
func SortBy[T any](vs []T, cmp compare.Func[T]) {
	slices.SortStableFunc(vs, cmp)
}

// IsSortedBy reports whether the slice is sorted in non-decreasing order under the given ordering.
func IsSortedBy[T any](vs []T, cmp compare.Func[T]) bool {
	return slices.IsSortedFunc(vs, cmp)
}

// SearchSorted binary searches the position of the value in a slice sorted under the given ordering.
// On a hit it returns the index of the earliest match and a true flag,
// on a miss it returns the index where the value could be inserted and a false flag.
func SearchSorted[T any](vs []T, v T, cmp compare.Func[T]) (int, bool) {
	return slices.BinarySearchFunc(vs, v, cmp)
}

// InsertSorted set-inserts the value into a slice sorted under the given ordering.
// When an equal element is already present, the slice is returned unchanged,
// otherwise the value is placed at its sort position, following append semantics.
func InsertSorted[T any](vs []T, v T, cmp compare.Func[T]) []T {
	index, found := SearchSorted(vs, v, cmp)
	if found {
		return vs
	}
	return slices.Insert(vs, index, v)
}

// RelativeComplement returns the elements of b that have no counterpart in a,
// where both slices must be sorted under the given ordering.
// The slices are walked together in a single merge pass, which keeps it at O(len(a)+len(b)).
// Duplicates are matched positionally: an equal element of a holds its cursor position,
// so all the duplicates of that value in b are matched by it.
// The result keeps b's order, and the inputs are left untouched.
// Both inputs are order checked as the walk advances over them,
// and the walk panics with ErrNotSorted on a violation instead of returning a wrong answer.
func RelativeComplement[T any](a, b []T, cmp compare.Func[T]) []T {
	if b == nil {
		return nil
	}
	var (
		out = make([]T, 0, len(b))
		ai  int
	)
	for bi, bv := range b {
		if 0 < bi && cmp(bv, b[bi-1]) < 0 {
			panic(ErrNotSorted.F("b is not sorted at index %d", bi))
		}
		for ai < len(a) && cmp(a[ai], bv) < 0 {
			if 0 < ai && cmp(a[ai], a[ai-1]) < 0 {
				panic(ErrNotSorted.F("a is not sorted at index %d", ai))
			}
			ai++
		}
		if ai < len(a) && cmp(a[ai], bv) == 0 {
			continue
		}
		out = append(out, bv)
	}
	return out
}

// UniqueSortedBy returns the distinct elements of an already sorted slice in a single pass,
// by comparing each element only to the last kept one.
// The function argument is either an equality function (func(T, T) bool)
// or a three way ordering function (func(T, T) int).
// The ordering form doubles as a sortedness check,
// and panics with ErrNotSorted when an element orders before the one kept before it.
// The equality form cannot notice such a violation and trusts the caller.
func UniqueSortedBy[T any, FN uniqueSortedByFunc[T]](vs []T, fn FN) []T {
	if vs == nil {
		return nil
	}
	var (
		isDup = toUniqueSortedByFunc[T](fn)
		out   = make([]T, 0, len(vs))
	)
	for _, v := range vs {
		if 0 < len(out) && isDup(out[len(out)-1], v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// SortUnique returns the sorted distinct elements of the slice under the given ordering.
// The input is left untouched, the result is freshly allocated.
func SortUnique[T any](vs []T, cmp compare.Func[T]) []T {
	if vs == nil {
		return nil
	}
	sorted := Clone(vs)
	SortBy(sorted, cmp)
	eq := compare.EqFor(cmp)
	return UniqueSortedBy(sorted, func(a, b T) bool { return eq(a, b) })
}

// --------------------------------------------------------------------------------- //

type uniqueSortedByFunc[T any] interface {
	func(a, b T) bool | func(a, b T) int
}

func toUniqueSortedByFunc[T any, FN uniqueSortedByFunc[T]](m FN) func(last, v T) bool {
	switch fn := any(m).(type) {
	case func(a, b T) bool:
		return fn
	case func(a, b T) int:
		return func(last, v T) bool {
			c := fn(last, v)
			if 0 < c {
				panic(ErrNotSorted.F("element orders before the last kept element"))
			}
			return c == 0
		}
	default:
		panic("unexpected")
	}
}
