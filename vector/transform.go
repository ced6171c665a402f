package vector

import (
	"fmt"
	"strings"
)

// Append returns a new vector with the given elements pushed at the end.
func (v *Vector[T]) Append(items ...T) *Vector[T] {
	for _, item := range items {
		v = v.Push(item)
	}
	return v
}

// ToSlice materializes the vector into a freshly allocated slice.
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, 0, v.count)
	for it := v.Iterator(); ; {
		val, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, val)
	}
}

// String renders the vector like a slice literal, e.g. "[1 2 3]".
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	v.Range(func(i int, val T) bool {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", val)
		return true
	})
	b.WriteByte(']')
	return b.String()
}

// Map returns a new vector holding f applied to every element of v.
func Map[A, B any](v *Vector[A], f func(A) B) *Vector[B] {
	out := New[B]()
	v.Range(func(_ int, val A) bool {
		out = out.Push(f(val))
		return true
	})
	return out
}

// Filter returns a new vector holding the elements of v for which pred
// is true, in order.
func Filter[T any](v *Vector[T], pred func(T) bool) *Vector[T] {
	out := New[T]()
	v.Range(func(_ int, val T) bool {
		if pred(val) {
			out = out.Push(val)
		}
		return true
	})
	return out
}

// Reduce folds the vector left to right, starting from init.
func Reduce[T, A any](v *Vector[T], init A, f func(A, T) A) A {
	acc := init
	v.Range(func(_ int, val T) bool {
		acc = f(acc, val)
		return true
	})
	return acc
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc compares two vectors element-wise with eq, short-circuiting
// on the first mismatch.
func EqualFunc[A, B any](a *Vector[A], b *Vector[B], eq func(A, B) bool) bool {
	if a.count != b.count {
		return false
	}
	ia, ib := a.Iterator(), b.Iterator()
	for {
		x, ok := ia.Next()
		if !ok {
			return true
		}
		y, _ := ib.Next()
		if !eq(x, y) {
			return false
		}
	}
}
