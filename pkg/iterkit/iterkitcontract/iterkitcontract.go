// Package iterkitcontract holds the behavioural suites
// that the iteration protocols of iterkit promise to their consumers.
package iterkitcontract

import (
	"iter"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/collkit/pkg/iterkit"
)

// Iterator asserts the behaviour that reusable iterkit sequences must honour.
// The mk function must return a sequence with at least one element,
// and the sequence must support being iterated multiple times.
func Iterator[T any](mk func(tb testing.TB) iter.Seq[T]) testcase.SpecSuite {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) iter.Seq[T] {
		return mk(t)
	})

	s.Then("values can be collected from the iterator", func(t *testcase.T) {
		var vs []T
		for v := range subject.Get(t) {
			vs = append(vs, v)
		}
		assert.NotEmpty(t, vs)
	})

	s.Then("iterating the sequence again walks it from the beginning", func(t *testcase.T) {
		assert.Equal(t,
			iterkit.Collect(subject.Get(t)),
			iterkit.Collect(subject.Get(t)))
	})

	s.Then("breaking out early from the iteration is supported", func(t *testcase.T) {
		var total int
		for range subject.Get(t) {
			total++
			break
		}
		assert.Equal(t, 1, total)
	})

	return s.AsSuite("Iterator")
}

// Iterator2 asserts the behaviour that reusable key value sequences must honour.
// The mk function must return a sequence with at least one pair,
// and the sequence must support being iterated multiple times.
func Iterator2[K, V any](mk func(tb testing.TB) iter.Seq2[K, V]) testcase.SpecSuite {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) iter.Seq2[K, V] {
		return mk(t)
	})

	s.Then("pairs can be collected from the iterator", func(t *testcase.T) {
		assert.NotEmpty(t, iterkit.CollectKV(subject.Get(t)))
	})

	s.Then("iterating the sequence again walks it from the beginning", func(t *testcase.T) {
		assert.Equal(t,
			iterkit.CollectKV(subject.Get(t)),
			iterkit.CollectKV(subject.Get(t)))
	})

	s.Then("breaking out early from the iteration is supported", func(t *testcase.T) {
		var total int
		for range subject.Get(t) {
			total++
			break
		}
		assert.Equal(t, 1, total)
	})

	return s.AsSuite("Iterator2")
}

// Cursor asserts the pull protocol contract on a cursor implementation.
// The mk function must return a fresh cursor together with the values it is expected to traverse,
// and at least one element must be expected.
func Cursor[T any](mk func(tb testing.TB) (iterkit.Cursor[T], []T)) testcase.SpecSuite {
	s := testcase.NewSpec(nil)

	type subjectValue struct {
		cursor   iterkit.Cursor[T]
		expected []T
	}
	subject := testcase.Let(s, func(t *testcase.T) subjectValue {
		c, vs := mk(t)
		assert.NotEmpty(t, vs, "the contract needs at least one expected element")
		return subjectValue{cursor: c, expected: vs}
	})

	s.Then("the cursor traverses the expected values in order", func(t *testcase.T) {
		sub := subject.Get(t)
		var got []T
		for sub.cursor.Next() {
			got = append(got, sub.cursor.Value())
		}
		assert.Equal(t, sub.expected, got)
	})

	s.Then("reading the value does not advance the cursor", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.True(t, sub.cursor.Next())
		assert.Equal(t, sub.cursor.Value(), sub.cursor.Value())
		assert.Equal(t, sub.expected[0], sub.cursor.Value())
	})

	s.Then("an exhausted cursor keeps reporting false", func(t *testcase.T) {
		sub := subject.Get(t)
		for sub.cursor.Next() {
		}
		assert.False(t, sub.cursor.Next())
		assert.False(t, sub.cursor.Next())
	})

	return s.AsSuite("Cursor")
}
