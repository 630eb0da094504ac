package into

import (
	"github.com/samber/lo"

	"github.com/ib-77/errinto/pkg/rop"
	"github.com/ib-77/errinto/pkg/rop/conv"
)

// MapAllWith applies MapWith to every element, keeping order.
func MapAllWith[T1, T2, E any](os []rop.Outcome[T1, E], c conv.Converter[T1, T2]) []rop.Outcome[T2, E] {
	return lo.Map(os, func(o rop.Outcome[T1, E], _ int) rop.Outcome[T2, E] {
		return MapWith(o, c)
	})
}

// ErrAllWith applies ErrWith to every element, keeping order.
func ErrAllWith[T, E1, E2 any](os []rop.Outcome[T, E1], c conv.Converter[E1, E2]) []rop.Outcome[T, E2] {
	return lo.Map(os, func(o rop.Outcome[T, E1], _ int) rop.Outcome[T, E2] {
		return ErrWith(o, c)
	})
}

// MapOptionsWith applies MapOptionWith to every element, keeping order.
func MapOptionsWith[T1, T2 any](os []rop.Option[T1], c conv.Converter[T1, T2]) []rop.Option[T2] {
	return lo.Map(os, func(o rop.Option[T1], _ int) rop.Option[T2] {
		return MapOptionWith(o, c)
	})
}
