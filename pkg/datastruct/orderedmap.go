package datastruct

import (
	"iter"
	"slices"

	"go.llib.dev/collkit/pkg/iterkit"
	"go.llib.dev/collkit/pkg/slicekit"
)

// OrderedMap is a key value store that keeps the insertion order of its keys.
// Setting a present key updates the value but keeps the key's original position,
// while deleting and re-adding a key moves it to the end.
// The zero value is an empty store ready to use.
type OrderedMap[K comparable, V any] struct {
	entries []iterkit.KV[K, V]
	index   map[K]int
}

var _ KVS[string, any] = (*OrderedMap[string, any])(nil)

func (m *OrderedMap[K, V]) Set(key K, val V) {
	if pos, ok := m.index[key]; ok {
		m.entries[pos].V = val
		return
	}
	if m.index == nil {
		m.index = make(map[K]int)
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, iterkit.KV[K, V]{K: key, V: val})
}

func (m *OrderedMap[K, V]) Lookup(key K) (V, bool) {
	pos, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return m.entries[pos].V, true
}

func (m *OrderedMap[K, V]) Get(key K) V {
	v, _ := m.Lookup(key)
	return v
}

// Delete removes the key from the store.
// The remaining keys keep their relative order.
func (m *OrderedMap[K, V]) Delete(key K) {
	pos, ok := m.index[key]
	if !ok {
		return
	}
	m.entries = slices.Delete(m.entries, pos, pos+1)
	delete(m.index, key)
	for i := pos; i < len(m.entries); i++ {
		m.index[m.entries[i].K] = i
	}
}

// Keys returns the keys in their insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	return slicekit.Must(slicekit.Map[K](m.entries, func(e iterkit.KV[K, V]) K {
		return e.K
	}))
}

// Values returns the values in the insertion order of their keys.
func (m *OrderedMap[K, V]) Values() []V {
	return slicekit.Must(slicekit.Map[V](m.entries, func(e iterkit.KV[K, V]) V {
		return e.V
	}))
}

// Iter yields the stored key value pairs in their insertion order.
func (m *OrderedMap[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries {
			if !yield(e.K, e.V) {
				return
			}
		}
	}
}

// ToMap returns a snapshot copy of the store as a plain map.
func (m *OrderedMap[K, V]) ToMap() map[K]V {
	return iterkit.Collect2Map(m.Iter())
}

func (m *OrderedMap[K, V]) Len() int {
	return len(m.entries)
}
