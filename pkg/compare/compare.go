package compare

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Func is a three-way ordering predicate over T.
//
// It must describe a total preorder for the duration of a call that
// receives it: if Func(a, b) reports less, then Func(b, a) must report
// greater, and any two values must be mutually comparable. Equal-valued
// duplicates are allowed; a strict total order is not required.
//
// The result follows the stdlib convention:
//   - negative when a sorts before b,
//   - zero when a and b are equivalent,
//   - positive when a sorts after b.
type Func[T any] func(a, b T) int

// EqFunc is an equality predicate over T.
//
// It must be reflexive and symmetric. When an EqFunc travels together
// with a Func in the same call, they must be consistent: whenever the
// Func reports zero, the EqFunc must report true. The EqFunc may be
// coarser than the Func (equate more values), never finer.
type EqFunc[T any] func(a, b T) bool

// Interface is the method form of an ordering predicate.
//
// Types implementing Interface carry their own comparison semantics.
// Use FuncFor to lift the method form into a Func value when an
// operation expects the predicate as a value.
//
// Example usage:
//
//	type Version int
//
//	func (v Version) Compare(oth Version) int {
//		switch {
//		case v < oth:
//			return -1
//		case oth < v:
//			return 1
//		default:
//			return 0
//		}
//	}
type Interface[T any] interface {
	// Compare returns:
	//   -1 if receiver is less than the argument,
	//    0 if they're equal, and
	//   +1 if receiver is greater.
	//
	// Implementors must ensure consistent ordering semantics.
	Compare(T) int
}

// FuncFor lifts a type's Compare method into a Func value.
func FuncFor[T Interface[T]]() Func[T] {
	return func(a, b T) int { return a.Compare(b) }
}

// EqFor derives an equality predicate from an ordering predicate,
// equating exactly the value pairs the ordering reports as zero.
func EqFor[T any](cmp Func[T]) EqFunc[T] {
	return func(a, b T) bool { return cmp(a, b) == 0 }
}

// Reverse inverts the ordering described by cmp.
func Reverse[T any](cmp Func[T]) Func[T] {
	return func(a, b T) int { return cmp(b, a) }
}

// Join chains ordering predicates lexicographically.
// The first predicate that reports a non-zero result wins;
// values are equivalent only when every predicate reports zero.
func Join[T any](cmps ...Func[T]) Func[T] {
	return func(a, b T) int {
		for _, cmp := range cmps {
			if c := cmp(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
}

// By orders T values by a projected key.
func By[T, K any](key func(T) K, cmp Func[K]) Func[T] {
	return func(a, b T) int { return cmp(key(a), key(b)) }
}

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool {
	return cmp == 0
}

// IsLess reports whether the receiver is less than another value.
func IsLess(cmp int) bool {
	return cmp < 0
}

// IsLessOrEqual reports whether the receiver is less than or equal to another value.
func IsLessOrEqual(cmp int) bool {
	return cmp <= 0
}

// IsMore reports whether the receiver is greater than another value.
func IsMore(cmp int) bool {
	return 0 < cmp
}

// IsMoreOrEqual reports whether the receiver is more than or equal to another value.
func IsMoreOrEqual(cmp int) bool {
	return 0 <= cmp
}

// IsGreater reports whether the receiver is greater than another value.
func IsGreater(cmp int) bool {
	return IsMore(cmp)
}

// IsGreaterOrEqual reports whether the receiver is greater than or equal to another value.
func IsGreaterOrEqual(cmp int) bool {
	return IsMoreOrEqual(cmp)
}

type number interface {
	constraints.Integer | constraints.Float
}

func Numbers[T number](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func Strings[S ~string](a, b S) int {
	return strings.Compare(string(a), string(b))
}

// Booleans orders false before true.
func Booleans[B ~bool](a, b B) int {
	switch {
	case !bool(a) && bool(b):
		return -1
	case bool(a) && !bool(b):
		return 1
	default:
		return 0
	}
}
