package solo

import (
	"github.com/ib-77/errinto/pkg/rop"
)

func Map[In, Out, E any](input rop.Outcome[In, E],
	onSuccess func(r In) Out) rop.Outcome[Out, E] {

	if input.IsSuccess() {
		return rop.SuccessFrom[Out, E](input, onSuccess(input.Result()))
	}
	return rop.FailureFrom[Out, E](input, input.Err())
}

func MapErr[T, In, Out any](input rop.Outcome[T, In],
	onFailure func(e In) Out) rop.Outcome[T, Out] {

	if input.IsSuccess() {
		return rop.SuccessFrom[T, Out](input, input.Result())
	}
	return rop.FailureFrom[T, Out](input, onFailure(input.Err()))
}

// DoubleMap invokes exactly one of the two functions, matching the variant held.
func DoubleMap[In, Out, InE, OutE any](input rop.Outcome[In, InE],
	onSuccess func(r In) Out,
	onFailure func(e InE) OutE) rop.Outcome[Out, OutE] {

	if input.IsSuccess() {
		return rop.SuccessFrom[Out, OutE](input, onSuccess(input.Result()))
	}
	return rop.FailureFrom[Out, OutE](input, onFailure(input.Err()))
}

func MapOption[In, Out any](input rop.Option[In],
	onPresent func(v In) Out) rop.Option[Out] {

	if v, ok := input.Get(); ok {
		return rop.Some(onPresent(v))
	}
	return rop.None[Out]()
}

func Finally[T, E, Out any](input rop.WithFailure[T, E],
	onSuccess func(r T) Out,
	onFailure func(e E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onFailure(input.Err())
}

func FinallyOption[T, Out any](input rop.WithValue[T],
	onPresent func(v T) Out,
	onAbsent func() Out) Out {

	if input.HasValue() {
		return onPresent(input.Value())
	}
	return onAbsent()
}
