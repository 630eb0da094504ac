package conv

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Into is satisfied by types declaring a total conversion to To.
type Into[To any] interface {
	Into() To
}

type Converter[From, To any] interface {
	Convert(from From) To
}

// Func adapts an ordinary function to Converter.
type Func[From, To any] func(From) To

func (f Func[From, To]) Convert(from From) To {
	return f(from)
}

// Number is every type Go converts between with a plain T(v) expression.
type Number interface {
	constraints.Integer | constraints.Float
}

func Identity[T any]() Func[T, T] {
	return func(v T) T { return v }
}

// Numeric converts with Go's built-in numeric conversion. Narrowing
// conversions truncate exactly as To(v) does.
func Numeric[From, To Number]() Func[From, To] {
	return func(v From) To { return To(v) }
}

// Method lifts a type's Into method to a Converter.
func Method[From Into[To], To any]() Func[From, To] {
	return func(v From) To { return v.Into() }
}

func Compose[A, B, C any](ab Converter[A, B], bc Converter[B, C]) Func[A, C] {
	return func(v A) C { return bc.Convert(ab.Convert(v)) }
}

// ToError widens a concrete error type to the error interface.
func ToError[E error]() Func[E, error] {
	return func(e E) error { return e }
}

// Wrap prefixes an error with msg. The original stays reachable through
// errors.Is and errors.As.
func Wrap(msg string) Func[error, error] {
	return func(err error) error {
		if err == nil {
			return nil
		}
		return fmt.Errorf("%s: %w", msg, err)
	}
}
