package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome holds exactly one of a success value of type T or a failure value of type E.
type Outcome[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       E
	isSuccess bool
}

// Result is an Outcome whose failure channel is a plain Go error.
type Result[T any] = Outcome[T, error]

func Success[T, E any](r T) Outcome[T, E] {
	return Outcome[T, E]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T, E any](e E) Outcome[T, E] {
	return Outcome[T, E]{
		err:       e,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Ok[T any](r T) Result[T] {
	return Success[T, error](r)
}

func Fail[T any](err error) Result[T] {
	return Failure[T](err)
}

// FromPair lifts a (value, error) return into a Result. A nil error, including
// a typed nil pointer, yields Success.
func FromPair[T any](r T, err error) Result[T] {
	if IsNil(err) {
		return Ok(r)
	}
	return Fail[T](err)
}

// Unpack is the inverse of FromPair.
func Unpack[T any](r Result[T]) (T, error) {
	if r.isSuccess {
		return r.result, nil
	}
	var zero T
	return zero, r.err
}

// SuccessFrom builds a Success carrying the identity (id and creation time) of from.
func SuccessFrom[T, E, FromT, FromE any](from Outcome[FromT, FromE], r T) Outcome[T, E] {
	return Outcome[T, E]{
		result:    r,
		isSuccess: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// FailureFrom builds a Failure carrying the identity (id and creation time) of from.
func FailureFrom[T, E, FromT, FromE any](from Outcome[FromT, FromE], e E) Outcome[T, E] {
	return Outcome[T, E]{
		err:       e,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (o Outcome[T, E]) Result() T {
	return o.result
}

func (o Outcome[T, E]) Err() E {
	return o.err
}

func (o Outcome[T, E]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T, E]) IsFailure() bool {
	return !o.isSuccess
}

// Get returns both payloads and whether the outcome is a success. Only the
// payload matching the variant is meaningful.
func (o Outcome[T, E]) Get() (T, E, bool) {
	return o.result, o.err, o.isSuccess
}

func (o Outcome[T, E]) Tag() Tag {
	if o.isSuccess {
		return TagSuccess
	}
	return TagFailure
}

func (o Outcome[T, E]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T, E]) Id() uuid.UUID {
	return o.id
}

func (o Outcome[T, E]) String() string {
	if o.isSuccess {
		return fmt.Sprintf("%s(%v)", TagSuccess, o.result)
	}
	return fmt.Sprintf("%s(%v)", TagFailure, o.err)
}
