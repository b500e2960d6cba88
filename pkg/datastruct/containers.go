package datastruct

import (
	"iter"

	"go.llib.dev/collkit/pkg/slicekit"
)

// Stack is a slice based last-in-first-out container.
// The zero value is an empty stack ready to use.
type Stack[T any] []T

// Push adds a value on the top of the stack.
func (s *Stack[T]) Push(v T) {
	*s = append(*s, v)
}

// Pop removes and returns the top value of the stack.
func (s *Stack[T]) Pop() (T, bool) {
	v, ok := slicekit.Last(*s)
	if ok {
		*s = (*s)[:len(*s)-1]
	}
	return v, ok
}

// Last returns the top value of the stack without removing it.
func (s *Stack[T]) Last() (T, bool) {
	return slicekit.Last(*s)
}

func (s *Stack[T]) IsEmpty() bool {
	return len(*s) == 0
}

func (s *Stack[T]) Len() int {
	return len(*s)
}

// MakeSet creates a Set populated with the given values.
func MakeSet[T comparable](vs ...T) Set[T] {
	var set Set[T]
	for _, v := range vs {
		set.Add(v)
	}
	return set
}

// Set is an unordered unique collection of values.
// The zero value is an empty set ready to use.
type Set[T comparable] struct {
	vs map[T]struct{}
}

func (s *Set[T]) Add(v T) {
	if s.vs == nil {
		s.vs = make(map[T]struct{})
	}
	s.vs[v] = struct{}{}
}

func (s Set[T]) Has(v T) bool {
	_, ok := s.vs[v]
	return ok
}

func (s Set[T]) Delete(v T) {
	delete(s.vs, v)
}

func (s Set[T]) Len() int {
	return len(s.vs)
}

// ToSlice returns the values of the set, in no particular order.
func (s Set[T]) ToSlice() []T {
	out := make([]T, 0, len(s.vs))
	for v := range s.vs {
		out = append(out, v)
	}
	return out
}

// Iter yields the values of the set, in no particular order.
func (s Set[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.vs {
			if !yield(v) {
				return
			}
		}
	}
}
