/*
Package maybe provides an optional-value type in the manner of Elm's or
Haskell's Maybe: a value of type Maybe[T] either holds a value of type T,
or nothing at all. It is the result type of accessors which have no
element to return, e.g. the head of an empty list.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe optionally holds a value of type T. The zero value is Nothing.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Just wraps a value.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, ok: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Get unwraps m, with ok=false for Nothing.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

// IsJust is true iff m holds a value.
func (m Maybe[T]) IsJust() bool {
	return m.ok
}

// WithDefault unwraps m, falling back to def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.ok {
		return m.value
	}
	return def
}

// Map applies f to a present value; Nothing passes through unchanged.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.ok {
		return Just(f(m.value))
	}
	return m
}

// FMap applies f to the value held by m, possibly changing the value's type.
func FMap[T, S any](f func(T) S, m Maybe[T]) Maybe[S] {
	if v, ok := m.Get(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// AndThen chains m into a computation which itself may come up empty.
func AndThen[T, S any](f func(T) Maybe[S], m Maybe[T]) Maybe[S] {
	if v, ok := m.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}
