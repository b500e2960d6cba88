// Package slicekit provides algorithms to work with slices.
//
// The operations never mutate their input unless mutation is the documented
// purpose of the operation itself, like with SortBy.
// Operations that grow a slice follow the semantics of the builtin append.
package slicekit

import (
	"fmt"
	"slices"

	"go.llib.dev/collkit/pkg/compare"
)

func Must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Errorf("slicekit.Must: %w", err))
	}
	return v
}

// Lookup will return a value and an "ok" flag for a given index.
// It saves you from the index out of range panics.
func Lookup[T any](vs []T, index int) (T, bool) {
	if index < 0 || len(vs) <= index {
		var zero T
		return zero, false
	}
	return vs[index], true
}

// First returns the first element of the slice.
func First[T any](vs []T) (T, bool) {
	return Lookup(vs, 0)
}

// Last returns the last element of the slice.
func Last[T any](vs []T) (T, bool) {
	return Lookup(vs, len(vs)-1)
}

// Map will do a mapping from an input type into an output type.
func Map[O, I any, FN mapFunc[O, I]](s []I, fn FN) ([]O, error) {
	if s == nil {
		return nil, nil
	}
	var (
		out    = make([]O, len(s))
		mapper = toMapFunc[O, I](fn)
	)
	for index, v := range s {
		o, err := mapper(v)
		if err != nil {
			return out, err
		}
		out[index] = o
	}
	return out, nil
}

// Reduce iterates over a slice, combining elements using the reducer function.
func Reduce[O, I any, FN reduceFunc[O, I]](s []I, initial O, fn FN) (O, error) {
	var (
		result  = initial
		reducer = toReduceFunc[O, I](fn)
	)
	for _, i := range s {
		o, err := reducer(result, i)
		if err != nil {
			return result, err
		}
		result = o
	}
	return result, nil
}

// Merge will combine all the input slices into a single slice.
// The inputs are left untouched, the result is always freshly allocated.
func Merge[T any](vss ...[]T) []T {
	var total int
	for _, vs := range vss {
		total += len(vs)
	}
	out := make([]T, 0, total)
	for _, vs := range vss {
		out = append(out, vs...)
	}
	return out
}

// Clone creates a shallow copy of the slice, keeping a nil input as nil.
func Clone[T any](vs []T) []T {
	if vs == nil {
		return nil
	}
	out := make([]T, len(vs))
	copy(out, vs)
	return out
}

// Filter will keep the elements that the filter function approves.
// The result is a fresh slice, a nil input yields a nil output.
func Filter[T any](vs []T, filter func(T) bool) []T {
	if vs == nil {
		return nil
	}
	out := make([]T, 0, len(vs))
	for _, v := range vs {
		if filter(v) {
			out = append(out, v)
		}
	}
	return out
}

// FlatMap maps every element into zero or more values,
// and flattens the results into a single slice.
func FlatMap[O, I any](vs []I, fn func(I) []O) []O {
	if vs == nil {
		return nil
	}
	var out []O
	for _, v := range vs {
		out = append(out, fn(v)...)
	}
	return out
}

// Find returns the first element that the filter function approves.
func Find[T any](vs []T, filter func(T) bool) (T, bool) {
	for _, v := range vs {
		if filter(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// FirstDefined maps the elements in order and returns the first defined result.
// The transform is not called anymore after the first hit.
func FirstDefined[O, I any](vs []I, transform func(I) (O, bool)) (O, bool) {
	for _, v := range vs {
		if o, ok := transform(v); ok {
			return o, true
		}
	}
	var zero O
	return zero, false
}

// ContainsBy reports whether the slice has an element that the filter function approves.
func ContainsBy[T any](vs []T, filter func(T) bool) bool {
	for _, v := range vs {
		if filter(v) {
			return true
		}
	}
	return false
}

// Every reports whether the filter function approves all the elements of the slice.
// An empty slice is approved.
func Every[T any](vs []T, filter func(T) bool) bool {
	for _, v := range vs {
		if !filter(v) {
			return false
		}
	}
	return true
}

// CountBy returns how many elements the filter function approves.
func CountBy[T any](vs []T, filter func(T) bool) int {
	var total int
	for _, v := range vs {
		if filter(v) {
			total++
		}
	}
	return total
}

// ForEach calls the block with every element of the slice.
func ForEach[T any](vs []T, blk func(T)) {
	for _, v := range vs {
		blk(v)
	}
}

// GroupBy collects the elements of the slice into groups,
// keyed by the result of the key function.
// Elements keep their original order within each group.
func GroupBy[K comparable, T any](vs []T, key func(T) K) map[K][]T {
	if len(vs) == 0 {
		return nil
	}
	out := make(map[K][]T)
	for _, v := range vs {
		k := key(v)
		out[k] = append(out[k], v)
	}
	return out
}

// Unique returns the distinct elements of the slice.
// The first occurrence of each value is kept, and the original order is preserved.
func Unique[T comparable](vs []T) []T {
	if vs == nil {
		return nil
	}
	var (
		seen = make(map[T]struct{}, len(vs))
		out  = make([]T, 0, len(vs))
	)
	for _, v := range vs {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// UniqueBy returns the distinct elements of the slice under the given equality function.
// The first occurrence of each value is kept, and the original order is preserved.
// Every element is checked against all the elements kept so far,
// on large inputs prefer UniqueByCompare, which trades the quadratic scanning for a sort.
func UniqueBy[T any](vs []T, eq func(a, b T) bool) []T {
	if vs == nil {
		return nil
	}
	out := make([]T, 0, len(vs))
	for _, v := range vs {
		var dup bool
		for _, o := range out {
			if eq(o, v) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, v)
		}
	}
	return out
}

// UniqueByCompare returns the distinct elements of the slice, just like UniqueBy,
// but it uses the ordering function to bring equal elements next to each other,
// which keeps the work at O(n*log(n)).
// The ordering must be consistent with the equality function,
// elements that the ordering ties are expected to be equal under eq as well.
// The surviving elements keep their original relative order,
// and within a group of tied elements the earliest one survives.
func UniqueByCompare[T any](vs []T, eq func(a, b T) bool, cmp compare.Func[T]) []T {
	if len(vs) < 2 {
		return Clone(vs)
	}
	indexes := make([]int, len(vs))
	for i := range indexes {
		indexes[i] = i
	}
	slices.SortStableFunc(indexes, func(a, b int) int {
		return cmp(vs[a], vs[b])
	})
	var (
		kept = indexes[:0]
		last int
	)
	for i, index := range indexes {
		if i == 0 || !eq(vs[last], vs[index]) {
			kept = append(kept, index)
			last = index
		}
	}
	slices.Sort(kept)
	out := make([]T, 0, len(kept))
	for _, index := range kept {
		out = append(out, vs[index])
	}
	return out
}

// SameMap maps every element of the slice with the transform function,
// but unlike Map, it keeps the structural identity of its input.
// When the transform leaves every element unchanged,
// the input slice itself is returned, without any allocation.
// A fresh slice is built only from the first actual difference on.
func SameMap[T comparable](vs []T, transform func(T) T) []T {
	for i, v := range vs {
		tv := transform(v)
		if tv == v {
			continue
		}
		out := make([]T, len(vs))
		copy(out, vs[:i])
		out[i] = tv
		for j := i + 1; j < len(vs); j++ {
			out[j] = transform(vs[j])
		}
		return out
	}
	return vs
}

// SameFlatMap maps every element of the slice into zero or more elements,
// and just like SameMap, it keeps the structural identity of its input.
// The input slice itself is returned while every element maps to exactly itself,
// from the first difference on the results accumulate into a fresh slice.
// A nil result from the transform stands for zero elements.
func SameFlatMap[T comparable](vs []T, transform func(T) []T) []T {
	for i, v := range vs {
		tvs := transform(v)
		if len(tvs) == 1 && tvs[0] == v {
			continue
		}
		out := make([]T, 0, len(vs))
		out = append(out, vs[:i]...)
		out = append(out, tvs...)
		for j := i + 1; j < len(vs); j++ {
			out = append(out, transform(vs[j])...)
		}
		return out
	}
	return vs
}

// SpanMap partitions the slice into maximal contiguous runs of elements
// that share the same key, and maps every run with the span function.
// Only contiguity counts, when a key value reappears later on, it forms a new run.
// A run's result becomes part of the output only when the span function reports true,
// which allows dropping a run entirely.
// The run slice aliases the input, the span function must not mutate it.
func SpanMap[O, T any, K comparable](vs []T, key func(v T, index int) K, span func(run []T, key K, start, end int) (O, bool)) []O {
	if len(vs) == 0 {
		return nil
	}
	var (
		out   []O
		start int
		cur   K
	)
	for i, v := range vs {
		k := key(v, i)
		if i == 0 {
			cur = k
			continue
		}
		if k == cur {
			continue
		}
		if o, ok := span(vs[start:i], cur, start, i); ok {
			out = append(out, o)
		}
		start, cur = i, k
	}
	if o, ok := span(vs[start:], cur, start, len(vs)); ok {
		out = append(out, o)
	}
	return out
}

// Append appends the present values onto the slice, skipping the absent ones.
// Absence is expressed with a nil pointer, so a lookup miss can be passed in directly.
// When every value turns out to be absent, the input slice is returned as is.
func Append[T any](to []T, vs ...*T) []T {
	for _, v := range vs {
		if v != nil {
			to = append(to, *v)
		}
	}
	return to
}

// Combine joins two optional slices into one.
// A nil side counts as absent, and the other side is returned as is, without allocation.
// When both sides are present, the result follows append semantics on the first side.
func Combine[T any](a, b []T) []T {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return append(a, b...)
}

// AddRange appends a range of the source slice onto the target slice.
// The optional bounds select from[start:end), with at most two bounds accepted.
// Negative bounds are end relative, and out of range bounds are clamped.
// When the selection is empty, the target is returned as is.
func AddRange[T any](to []T, from []T, bounds ...int) []T {
	if 2 < len(bounds) {
		panic(fmt.Errorf("slicekit.AddRange: at most 2 bounds accepted, but got %d", len(bounds)))
	}
	start, end := 0, len(from)
	if 0 < len(bounds) {
		start = resolveBound(bounds[0], len(from))
	}
	if len(bounds) == 2 {
		end = resolveBound(bounds[1], len(from))
	}
	if end <= start {
		return to
	}
	return append(to, from[start:end]...)
}

func resolveBound(bound, length int) int {
	if bound < 0 {
		bound += length
	}
	return min(max(bound, 0), length)
}

// --------------------------------------------------------------------------------- //

type reduceFunc[O, I any] interface {
	func(O, I) O | func(O, I) (O, error)
}

func toReduceFunc[O, I any, FN reduceFunc[O, I]](m FN) func(O, I) (O, error) {
	switch fn := any(m).(type) {
	case func(O, I) O:
		return func(o O, i I) (O, error) {
			return fn(o, i), nil
		}
	case func(O, I) (O, error):
		return fn
	default:
		panic("unexpected")
	}
}

type mapFunc[O, I any] interface {
	func(I) O | func(I) (O, error)
}

func toMapFunc[O, I any, MF mapFunc[O, I]](m MF) func(I) (O, error) {
	switch fn := any(m).(type) {
	case func(I) O:
		return func(i I) (O, error) {
			return fn(i), nil
		}
	case func(I) (O, error):
		return fn
	default:
		panic("unexpected")
	}
}
