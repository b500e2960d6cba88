// Package datastructcontract holds the behavioural contracts of the datastruct interfaces.
package datastructcontract

import (
	"fmt"
	"iter"
	"testing"

	"go.llib.dev/collkit/pkg/datastruct"
	"go.llib.dev/collkit/pkg/iterkit"
	"go.llib.dev/collkit/pkg/iterkit/iterkitcontract"
	"go.llib.dev/collkit/pkg/mapkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

// ListConfig configures the List and OrderedList contracts.
type ListConfig[T any] struct {
	// MakeT creates a new value for the list under test.
	//
	// MakeT must yield values that are not yet part of the list,
	// so set like List implementations can meet the growth expectations as well.
	MakeT func(testing.TB) T
}

// List is the contract of the datastruct.List interface.
func List[T comparable](make func(tb testing.TB) datastruct.List[T], c ListConfig[T]) testcase.SpecSuite {
	s := testcase.NewSpec(nil)

	s.Test("an empty list has zero length", func(t *testcase.T) {
		list := make(t)
		assert.Equal(t, 0, list.Len())
		assert.Empty(t, list.ToSlice())
		assert.Empty(t, iterkit.Collect(list.Iter()))
	})

	s.Test("appended values become part of the list", func(t *testcase.T) {
		list := make(t)
		var appended []T
		t.Random.Repeat(3, 7, func() {
			v := c.MakeT(t)
			appended = append(appended, v)
			list.Append(v)
		})
		assert.Equal(t, len(appended), list.Len())
		assert.ContainExactly(t, appended, list.ToSlice())
		assert.ContainExactly(t, appended, iterkit.Collect(list.Iter()))
	})

	s.Test("append accepts multiple values at once", func(t *testcase.T) {
		list := make(t)
		vs := []T{c.MakeT(t), c.MakeT(t), c.MakeT(t)}
		list.Append(vs...)
		assert.Equal(t, len(vs), list.Len())
		assert.ContainExactly(t, vs, list.ToSlice())
	})

	s.Describe("#Iter", iterkitcontract.Iterator(func(tb testing.TB) iter.Seq[T] {
		t := testcase.ToT(&tb)
		list := make(t)
		t.Random.Repeat(3, 7, func() {
			list.Append(c.MakeT(t))
		})
		return list.Iter()
	}).Spec)

	return s.AsSuite(fmt.Sprintf("List[%T]", *new(T)))
}

// OrderedList is the contract of List implementations
// that keep the insertion order of their values.
func OrderedList[T comparable](make func(tb testing.TB) datastruct.List[T], c ListConfig[T]) testcase.SpecSuite {
	s := testcase.NewSpec(nil)

	s.Test("values come back in their insertion order", func(t *testcase.T) {
		list := make(t)
		var appended []T
		t.Random.Repeat(3, 7, func() {
			v := c.MakeT(t)
			appended = append(appended, v)
			list.Append(v)
		})
		assert.Equal(t, appended, list.ToSlice())
		assert.Equal(t, appended, iterkit.Collect(list.Iter()))
	})

	return s.AsSuite(fmt.Sprintf("OrderedList[%T]", *new(T)))
}

// KVSConfig configures the KVS contract.
type KVSConfig[K comparable, V any] struct {
	// MakeK creates a new key for the store under test.
	MakeK func(testing.TB) K
	// MakeV creates a new value for the store under test.
	MakeV func(testing.TB) V
}

// KVS is the contract of the datastruct.KVS interface.
func KVS[K comparable, V any](make func(tb testing.TB) datastruct.KVS[K, V], c KVSConfig[K, V]) testcase.SpecSuite {
	s := testcase.NewSpec(nil)

	s.Test("smoke", func(t *testcase.T) {
		var kvs = make(t)

		expected := map[K]V{}
		t.Random.Repeat(3, 7, func() {
			key := random.Unique(func() K {
				return c.MakeK(t)
			}, mapkit.Keys(expected)...)
			expected[key] = c.MakeV(t)
		})

		var expLen int
		for k, v := range expected {
			assert.Equal(t, kvs.Len(), expLen)
			assert.Empty(t, kvs.Get(k), "zero value was expected for getting a non stored value")
			_, ok := kvs.Lookup(k)
			assert.False(t, ok, assert.MessageF("%#v key was not expected to be found", k))

			kvs.Set(k, v)
			expLen++
			assert.Equal(t, kvs.Len(), expLen)
			got, ok := kvs.Lookup(k)
			assert.True(t, ok)
			assert.Equal(t, v, got)
			assert.Equal(t, v, kvs.Get(k))
		}

		kNoise := random.Unique(func() K {
			return c.MakeK(t)
		}, mapkit.Keys(expected)...)
		kvs.Set(kNoise, c.MakeV(t))
		assert.Equal(t, expLen+1, kvs.Len())
		kvs.Delete(kNoise)
		assert.Equal(t, expLen, kvs.Len())
		_, ok := kvs.Lookup(kNoise)
		assert.False(t, ok)
		assert.Empty(t, kvs.Get(kNoise))

		assert.ContainExactly(t, mapkit.Keys(expected), kvs.Keys())
		assert.ContainExactly(t, expected, kvs.ToMap())
		assert.ContainExactly(t, expected, iterkit.Collect2Map(kvs.Iter()))
	})

	s.Test("keys are unique in the store", func(t *testcase.T) {
		var kvs = make(t)
		k := c.MakeK(t)
		t.Random.Repeat(3, 7, func() {
			kvs.Set(k, c.MakeV(t))
		})
		assert.Equal(t, 1, kvs.Len())
		exp := c.MakeV(t)
		kvs.Set(k, exp)
		assert.Equal(t, 1, kvs.Len())
		assert.Equal(t, exp, kvs.Get(k))
		kvs.Delete(k)
		assert.Equal(t, 0, kvs.Len())
	})

	s.Test("iteration yields the same pairs as the collected forms", func(t *testcase.T) {
		var kvs = make(t)
		t.Random.Repeat(3, 7, func() {
			k := random.Unique(func() K {
				return c.MakeK(t)
			}, kvs.Keys()...)
			kvs.Set(k, c.MakeV(t))
		})
		assert.ContainExactly(t,
			iterkit.CollectKV(kvs.Iter()),
			iterkit.CollectKV(kvs.Iter()))
		assert.ContainExactly(t, kvs.ToMap(), iterkit.Collect2Map(kvs.Iter()))
	})

	return s.AsSuite(fmt.Sprintf("KVS[%T, %T]", *new(K), *new(V)))
}
