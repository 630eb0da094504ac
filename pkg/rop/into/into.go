package into

import (
	"github.com/ib-77/errinto/pkg/rop"
	"github.com/ib-77/errinto/pkg/rop/conv"
	"github.com/ib-77/errinto/pkg/rop/solo"
)

// Err converts the failure channel. Success passes through untouched.
func Err[E2, T any, E1 conv.Into[E2]](o rop.Outcome[T, E1]) rop.Outcome[T, E2] {
	return ErrWith[T, E1, E2](o, conv.Method[E1, E2]())
}

func ErrWith[T, E1, E2 any](o rop.Outcome[T, E1], c conv.Converter[E1, E2]) rop.Outcome[T, E2] {
	return solo.MapErr(o, c.Convert)
}

// Res converts both channels.
func Res[T2, E2 any, T1 conv.Into[T2], E1 conv.Into[E2]](o rop.Outcome[T1, E1]) rop.Outcome[T2, E2] {
	return ResWith[T1, T2, E1, E2](o, conv.Method[T1, T2](), conv.Method[E1, E2]())
}

func ResWith[T1, T2, E1, E2 any](o rop.Outcome[T1, E1],
	onSuccess conv.Converter[T1, T2], onFailure conv.Converter[E1, E2]) rop.Outcome[T2, E2] {
	return solo.DoubleMap(o, onSuccess.Convert, onFailure.Convert)
}

// Map converts the success channel. Failure passes through untouched.
func Map[T2 any, T1 conv.Into[T2], E any](o rop.Outcome[T1, E]) rop.Outcome[T2, E] {
	return MapWith[T1, T2, E](o, conv.Method[T1, T2]())
}

func MapWith[T1, T2, E any](o rop.Outcome[T1, E], c conv.Converter[T1, T2]) rop.Outcome[T2, E] {
	return solo.Map(o, c.Convert)
}

// MapOption converts a present value. Absent stays absent.
func MapOption[T2 any, T1 conv.Into[T2]](o rop.Option[T1]) rop.Option[T2] {
	return MapOptionWith[T1, T2](o, conv.Method[T1, T2]())
}

func MapOptionWith[T1, T2 any](o rop.Option[T1], c conv.Converter[T1, T2]) rop.Option[T2] {
	return solo.MapOption(o, c.Convert)
}
