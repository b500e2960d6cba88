package iterkit

import "iter"

// Cursor define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use a cursor to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
//
// A Cursor is inherently single use: advancing is the only way to interact with it,
// and a finished cursor cannot be rewound.
// The values travel purely in memory, so abandoning a cursor at any point carries no cleanup obligation.
type Cursor[V any] interface {
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next returns false,
	// and it keeps returning false on every further call.
	Next() bool
	// Value returns the current value in the cursor.
	// The action should be repeatable without side effects.
	Value() V
}

// ToCursor turns a sequence into its pull style cursor form.
// The stop function releases the underlying iteration early,
// calling it is optional after the cursor got exhausted.
func ToCursor[V any](i iter.Seq[V]) (_ Cursor[V], stop func()) {
	next, stop := iter.Pull(i)
	return &cursor[V]{next: next}, stop
}

type cursor[V any] struct {
	next func() (V, bool)
	val  V
	done bool
}

func (c *cursor[V]) Next() bool {
	if c.done {
		return false
	}
	v, ok := c.next()
	if !ok {
		c.done = true
		return false
	}
	c.val = v
	return true
}

func (c *cursor[V]) Value() V {
	return c.val
}

// FromCursor returns a sequence view of the cursor.
// Since a cursor cannot be rewound, the result is a single use sequence.
func FromCursor[V any](c Cursor[V]) SingleUseSeq[V] {
	return Once(func(yield func(V) bool) {
		for c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	})
}

// CollectCursor materializes the remaining elements of the cursor.
func CollectCursor[V any](c Cursor[V], stops ...func()) []V {
	var vs = make([]V, 0)
	for _, stop := range stops {
		defer stop()
	}
	for c.Next() {
		vs = append(vs, c.Value())
	}
	return vs
}
