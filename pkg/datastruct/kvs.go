package datastruct

import (
	"iter"
	"maps"
)

// Map is a plain map with the KVS interface implemented on it.
type Map[K comparable, V any] map[K]V

var _ KVS[any, any] = (Map[any, any])(nil)

func (m Map[K, V]) Lookup(key K) (V, bool) {
	val, ok := m[key]
	return val, ok
}

func (m Map[K, V]) Get(key K) V {
	return m[key]
}

func (m Map[K, V]) Set(key K, val V) { m[key] = val }

func (m Map[K, V]) Delete(key K) { delete(m, key) }

func (m Map[K, V]) Len() int { return len(m) }

func (m Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// ToMap returns a snapshot copy of the store.
func (m Map[K, V]) ToMap() map[K]V {
	return maps.Clone(m)
}

// Iter yields the stored key value pairs, in no particular order.
func (m Map[K, V]) Iter() iter.Seq2[K, V] {
	return maps.All(m)
}

// MapAdd sets the key on the store, and returns a function
// that restores the previous state of the key on call.
func MapAdd[K comparable, V any, Map KVS[K, V]](m Map, k K, v V) func() {
	og, ok := m.Lookup(k)
	m.Set(k, v)
	return func() {
		if ok {
			m.Set(k, og)
		} else {
			m.Delete(k)
		}
	}
}
