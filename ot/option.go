package ot

import "fmt"

// Option holds a value which may be absent, e.g. the glyph mapped to a
// code-point. Absence is not an error for font queries.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None is the absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf wraps the comma-ok result of a lookup.
func OptionOf[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsSome() bool { return o.ok }
func (o Option[T]) IsNone() bool { return !o.ok }

// Unwrap returns the value in comma-ok style.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.ok
}

// MustUnwrap returns the value. Unwrapping None panics.
func (o Option[T]) MustUnwrap() T {
	if !o.ok {
		panic("ot: unwrap of absent value")
	}
	return o.value
}

// Or returns the value, or dflt if absent.
func (o Option[T]) Or(dflt T) T {
	if !o.ok {
		return dflt
	}
	return o.value
}

func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
