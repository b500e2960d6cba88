// Package iterkit provides iterator implementations over Go's iter.Seq sequences.
//
// # Summary
//
// An Iterator's goal is to decouple the origin of the data from the consumer who uses that data.
// Most commonly, iterators hide whether the data comes from a backing container, a computation, or elsewhere.
// This approach helps to design data consumers that are not dependent on the concrete implementation of the data source,
// while still allowing for the composition and various actions on the received data stream.
// An Iterator represents an iterable list of element,
// which length is not known until it is fully iterated, thus can range from zero to infinity.
//
// The combinators in this package are lazy:
// they never touch their source or invoke their callbacks
// before the resulting sequence is advanced,
// and they advance their source exactly once per produced element.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package iterkit

import (
	"iter"
	"slices"
	"sync/atomic"

	"golang.org/x/exp/constraints"

	"go.llib.dev/collkit/internal/interr"
)

// ErrLengthMismatch is the panic value of Zip when the paired inputs differ in length.
const ErrLengthMismatch = interr.ErrLengthMismatch

// SingleUseSeq is an iter.Seq[T] that can only iterated once.
// After iteration, it is expected to yield no more values.
//
// Most iterators provide the ability to walk an entire sequence:
// when called, the iterator does any setup necessary to start the sequence,
// then calls yield on successive elements of the sequence, and then cleans up before returning.
// Calling the iterator again walks the sequence again.
//
// SingleUseSeq iterators break that convention, providing the ability to walk a sequence only once.
// These “single-use iterators” typically report values from a source that cannot be rewound to start over.
// Calling the iterator again after stopping early may continue the source,
// but calling it again after the sequence is finished will yield no values at all.
//
// If a returned sequence is single use,
// the returning function should either say so in its documentation
// or use the SingleUseSeq return type to clearly express it.
type SingleUseSeq[T any] = iter.Seq[T]

// SingleUseSeq2 is an iter.Seq2[K, V] that can only iterated once.
// After iteration, it is expected to yield no more values.
// For more information on single use sequences, please read the documentation of SingleUseSeq.
type SingleUseSeq2[K, V any] = iter.Seq2[K, V]

// Empty iterator is used to represent the absence of values with the Null object pattern.
// It is stateless, immediately terminal and safe to share.
func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

// Empty2 iterator is used to represent nil result with Null object pattern
func Empty2[T1, T2 any]() iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {}
}

// SingleValue creates an iterator that yields one single element.
func SingleValue[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) { yield(v) }
}

func Slice[T any](slice []T) iter.Seq[T] {
	return slices.Values(slice)
}

func Collect[T any](i iter.Seq[T]) []T {
	if i == nil {
		return nil
	}
	var vs = make([]T, 0)
	for v := range i {
		vs = append(vs, v)
	}
	return vs
}

type KVMapFunc[KV any, K, V any] func(K, V) KV

func Collect2[K, V, KV any](i iter.Seq2[K, V], m KVMapFunc[KV, K, V]) []KV {
	if i == nil {
		return nil
	}
	var es []KV
	for k, v := range i {
		es = append(es, m(k, v))
	}
	return es
}

type KV[K, V any] struct {
	K K
	V V
}

func FromKV[K, V any](kvs []KV[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, kv := range kvs {
			if !yield(kv.K, kv.V) {
				return
			}
		}
	}
}

func CollectKV[K, V any](i iter.Seq2[K, V]) []KV[K, V] {
	return Collect2(i, func(k K, v V) KV[K, V] {
		return KV[K, V]{K: k, V: v}
	})
}

// Collect2Map will collect an iter.Seq2 into a map.
func Collect2Map[K comparable, V any](i iter.Seq2[K, V]) map[K]V {
	if i == nil {
		return nil
	}
	var out = make(map[K]V)
	for k, v := range i {
		out[k] = v
	}
	return out
}

func Reduce[R, T any](i iter.Seq[T], initial R, fn func(R, T) R) R {
	var v = initial
	for c := range i {
		v = fn(v, c)
	}
	return v
}

// Reduce2 is the left fold of an iter.Seq2.
// Folding Reduce2(Enumerate(i), ...) gives access to the element positions during the fold.
func Reduce2[R, K, V any](i iter.Seq2[K, V], initial R, fn func(R, K, V) R) R {
	var r = initial
	for k, v := range i {
		r = fn(r, k, v)
	}
	return r
}

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
// Like when you read lines from an input stream,
// and then you map the line content to a certain data structure,
// in order to not expose what steps needed in order to deserialize the input stream,
// thus protect the business rules from this information.
func Map[To any, From any](i iter.Seq[From], transform func(From) To) iter.Seq[To] {
	return func(yield func(To) bool) {
		for v := range i {
			if !yield(transform(v)) {
				break
			}
		}
	}
}

func Map2[OKey, OVal, IKey, IVal any](i iter.Seq2[IKey, IVal], transform func(IKey, IVal) (OKey, OVal)) iter.Seq2[OKey, OVal] {
	return func(yield func(OKey, OVal) bool) {
		for k, v := range i {
			if !yield(transform(k, v)) {
				return
			}
		}
	}
}

// MapDefined maps each element with a transform that can also report the absence of a result.
// Elements whose transform reports false are left out of the output sequence.
// A zero value with a true flag is a defined result and is kept.
func MapDefined[To any, From any](i iter.Seq[From], transform func(From) (To, bool)) iter.Seq[To] {
	return func(yield func(To) bool) {
		for v := range i {
			to, ok := transform(v)
			if !ok {
				continue
			}
			if !yield(to) {
				return
			}
		}
	}
}

type flatMapFunc[To any, From any] interface {
	func(From) []To | func(From) iter.Seq[To]
}

// FlatMap maps each element into zero or more elements, then flattens the results into a single sequence.
// The transform may return the sub-elements either as a slice or as an iter.Seq.
// A nil sub-slice or nil sub-sequence means the element contributes nothing.
// Sub-element order is preserved, and an exhausted sub-source is skipped without affecting the outer iteration.
func FlatMap[To any, From any, FN flatMapFunc[To, From]](i iter.Seq[From], transform FN) iter.Seq[To] {
	switch fn := any(transform).(type) {
	case func(From) []To:
		return func(yield func(To) bool) {
			for v := range i {
				for _, to := range fn(v) {
					if !yield(to) {
						return
					}
				}
			}
		}
	case func(From) iter.Seq[To]:
		return func(yield func(To) bool) {
			for v := range i {
				sub := fn(v)
				if sub == nil {
					continue
				}
				for to := range sub {
					if !yield(to) {
						return
					}
				}
			}
		}
	default:
		panic("not-implemented")
	}
}

func Filter[T any](i iter.Seq[T], filter func(T) bool) iter.Seq[T] {
	if i == nil {
		return nil
	}
	return func(yield func(T) bool) {
		for v := range i {
			if filter(v) {
				if !yield(v) {
					break
				}
			}
		}
	}
}

func Filter2[K, V any](i iter.Seq2[K, V], filter func(k K, v V) bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range i {
			if filter(k, v) {
				if !yield(k, v) {
					break
				}
			}
		}
	}
}

// Zip pairs up the elements of two slices positionally.
// The inputs must have the same length, a length mismatch is a programming error and Zip panics on it.
func Zip[A, B any](as []A, bs []B) iter.Seq2[A, B] {
	if len(as) != len(bs) {
		panic(interr.ErrLengthMismatch.F("len %d != len %d", len(as), len(bs)))
	}
	return func(yield func(A, B) bool) {
		for i := 0; i < len(as); i++ {
			if !yield(as[i], bs[i]) {
				return
			}
		}
	}
}

// Enumerate pairs up each element with its zero based position in the sequence.
func Enumerate[T any](i iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var index int
		for v := range i {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}

// First decode the first next value of the iterator and close the iterator
func First[T any](i iter.Seq[T]) (T, bool) {
	for v := range i {
		return v, true
	}
	var zero T
	return zero, false
}

// First2 decode the first next value of the iterator and close the iterator
func First2[K, V any](i iter.Seq2[K, V]) (K, V, bool) {
	for k, v := range i {
		return k, v, true
	}
	var (
		zeroK K
		zeroV V
	)
	return zeroK, zeroV, false
}

func Last[T any](i iter.Seq[T]) (T, bool) {
	var (
		last T
		ok   bool
	)
	for v := range i {
		last = v
		ok = true
	}
	return last, ok
}

func Last2[K, V any](i iter.Seq2[K, V]) (K, V, bool) {
	var (
		lastK K
		lastV V
		ok    bool
	)
	for k, v := range i {
		lastK = k
		lastV = v
		ok = true
	}
	return lastK, lastV, ok
}

// FirstDefined returns the first defined transform result, advancing the source only as far as needed.
// When the source exhausts without a defined result, the ok flag is false.
func FirstDefined[To any, From any](i iter.Seq[From], transform func(From) (To, bool)) (To, bool) {
	for v := range i {
		if to, ok := transform(v); ok {
			return to, true
		}
	}
	var zero To
	return zero, false
}

// Count will iterate over and count the total iterations number
//
// Good when all you want is count all the elements in an iterator but don't want to do anything else.
func Count[T any](i iter.Seq[T]) int {
	var total int
	for _ = range i {
		total++
	}
	return total
}

func Count2[K, V any](i iter.Seq2[K, V]) int {
	var total int
	for _ = range i {
		total++
	}
	return total
}

// Merge combines sequences into a single sequence that yields them one after the other.
func Merge[T any](is ...iter.Seq[T]) iter.Seq[T] {
	if len(is) == 0 {
		return Empty[T]()
	}
	return func(yield func(T) bool) {
		for _, i := range is {
			for v := range i {
				if !yield(v) {
					return
				}
			}
		}
	}
}

func Merge2[K, V any](is ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	if len(is) == 0 {
		return Empty2[K, V]()
	}
	return func(yield func(K, V) bool) {
		for _, i := range is {
			for k, v := range i {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// IntRange returns an iterator that will range between the specified `begin` and the `end` value, both inclusive.
func IntRange[N constraints.Integer](begin, end N) iter.Seq[N] {
	return func(yield func(N) bool) {
		for n := begin; n <= end; n++ {
			if !yield(n) {
				return
			}
		}
	}
}

// CharRange returns an iterator that will range between the specified `begin` and the `end` rune.
func CharRange(begin, end rune) iter.Seq[rune] {
	return IntRange(begin, end)
}

// Reverse will reverse the iteration direction.
//
// # WARNING
//
// It does not work with infinite iterators,
// as it requires to collect all values before it can reverse the elements.
func Reverse[T any](i iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var vs []T = Collect(i)
		for i := len(vs) - 1; 0 <= i; i-- {
			if !yield(vs[i]) {
				return
			}
		}
	}
}

func Once[T any](i iter.Seq[T]) SingleUseSeq[T] {
	var done int32
	return func(yield func(T) bool) {
		if !atomic.CompareAndSwapInt32(&done, 0, 1) {
			return
		}
		for v := range i {
			if !yield(v) {
				return
			}
		}
	}
}
