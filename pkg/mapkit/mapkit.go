// Package mapkit provides utilities working with maps.
package mapkit

import (
	"go.llib.dev/collkit/pkg/iterkit"
)

// Map will map the entries of the input map into a new map.
func Map[OK comparable, OV any, IK comparable, IV any, FN kvMapFunc[OK, OV, IK, IV]](m map[IK]IV, fn FN) (map[OK]OV, error) {
	if m == nil {
		return nil, nil
	}
	var (
		out    = make(map[OK]OV, len(m))
		mapper = toKVMapFunc[OK, OV, IK, IV](fn)
	)
	for ik, iv := range m {
		ok, ov, err := mapper(ik, iv)
		if err != nil {
			return out, err
		}
		out[ok] = ov
	}
	return out, nil
}

// Reduce goes through the entries of the map, combining them using the reducer function.
// The iteration order of a map is not deterministic,
// the reducer should yield the same result regardless of the visiting order.
func Reduce[O any, K comparable, V any, FN kvReduceFunc[O, K, V]](m map[K]V, initial O, fn FN) (O, error) {
	var (
		result  = initial
		reducer = toKVReduceFunc[O, K, V](fn)
	)
	for k, v := range m {
		o, err := reducer(result, k, v)
		if err != nil {
			return result, err
		}
		result = o
	}
	return result, nil
}

// Keys returns the keys of the map.
// An optional sort function can be passed to fix the order of the result.
func Keys[K comparable, V any](m map[K]V, sort ...func([]K)) []K {
	var ks []K
	for k := range m {
		ks = append(ks, k)
	}
	for _, sort := range sort {
		sort(ks)
	}
	return ks
}

// Values returns the values of the map.
// An optional sort function can be passed to fix the order of the result.
func Values[K comparable, V any](m map[K]V, sort ...func([]V)) []V {
	var vs []V
	for _, v := range m {
		vs = append(vs, v)
	}
	for _, sort := range sort {
		sort(vs)
	}
	return vs
}

// Filter returns a new map with the entries approved by the filter function.
func Filter[K comparable, V any](m map[K]V, filter func(k K, v V) bool) map[K]V {
	if m == nil {
		return nil
	}
	var out = make(map[K]V)
	for k, v := range m {
		if filter(k, v) {
			out[k] = v
		}
	}
	return out
}

// Lookup returns the value for the key,
// and an "ok" flag reporting whether the key was present.
func Lookup[K comparable, V any](m map[K]V, k K) (V, bool) {
	v, ok := m[k]
	return v, ok
}

// Merge will merge all passed map[K]V into a single map[K]V.
// Merging is intentionally order dependent by how the map argument values are passed to Merge.
func Merge[K comparable, V any](maps ...map[K]V) map[K]V {
	var out = make(map[K]V)
	for _, kvs := range maps {
		for k, v := range kvs {
			out[k] = v
		}
	}
	return out
}

// ToSlice turns the map into a slice of key value pairs.
// The order of the pairs follows the map's iteration order.
func ToSlice[K comparable, V any](m map[K]V) []iterkit.KV[K, V] {
	if m == nil {
		return nil
	}
	var kvs = make([]iterkit.KV[K, V], 0, len(m))
	for k, v := range m {
		kvs = append(kvs, iterkit.KV[K, V]{K: k, V: v})
	}
	return kvs
}

// --------------------------------------------------------------------------------- //

type kvMapFunc[OK, OV, IK, IV any] interface {
	func(IK, IV) (OK, OV) | func(IK, IV) (OK, OV, error)
}

func toKVMapFunc[OK, OV, IK, IV any, FN kvMapFunc[OK, OV, IK, IV]](fn FN) func(IK, IV) (OK, OV, error) {
	switch fn := any(fn).(type) {
	case func(IK, IV) (OK, OV):
		return func(ik IK, iv IV) (OK, OV, error) {
			ok, ov := fn(ik, iv)
			return ok, ov, nil
		}
	case func(IK, IV) (OK, OV, error):
		return fn
	default:
		panic("unexpected")
	}
}

type kvReduceFunc[O, K, V any] interface {
	func(O, K, V) O | func(O, K, V) (O, error)
}

func toKVReduceFunc[O, K, V any, FN kvReduceFunc[O, K, V]](fn FN) func(O, K, V) (O, error) {
	switch fn := any(fn).(type) {
	case func(O, K, V) O:
		return func(o O, k K, v V) (O, error) {
			return fn(o, k, v), nil
		}
	case func(O, K, V) (O, error):
		return fn
	default:
		panic("unexpected")
	}
}
