package rop

import "fmt"

// Option either contains a value or it does not. The zero Option is absent.
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf lifts the comma-ok idiom into an Option.
func OptionOf[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr returns Some(*p), or None for a nil pointer.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// HasValue returns true if the Option contains a value.
func (o Option[T]) HasValue() bool {
	return o.ok
}

// Value returns the value stored in the Option, or the zero value of T.
func (o Option[T]) Value() T {
	return o.value
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) ValueOr(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

func (o Option[T]) Tag() Tag {
	if o.ok {
		return TagPresent
	}
	return TagAbsent
}

func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("%s(%v)", TagPresent, o.value)
	}
	return TagAbsent.String()
}
