package rop

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codeError struct {
	code int
}

func (e *codeError) Error() string {
	return "code error"
}

func TestSuccess(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC()
	o := Success[int, string](5)

	assert.True(t, o.IsSuccess())
	assert.False(t, o.IsFailure())
	assert.Equal(t, 5, o.Result())
	assert.Equal(t, "", o.Err())
	assert.Equal(t, TagSuccess, o.Tag())
	assert.NotZero(t, o.Id())
	assert.False(t, o.CreatedAt().Before(before))
	assert.Equal(t, time.UTC, o.CreatedAt().Location())
}

func TestFailure(t *testing.T) {
	t.Parallel()

	o := Failure[int, string]("boom")

	assert.False(t, o.IsSuccess())
	assert.True(t, o.IsFailure())
	assert.Equal(t, 0, o.Result())
	assert.Equal(t, "boom", o.Err())
	assert.Equal(t, TagFailure, o.Tag())
	assert.NotZero(t, o.Id())
}

func TestOutcome_ZeroValueIsFailure(t *testing.T) {
	t.Parallel()

	var o Outcome[int, error]
	assert.True(t, o.IsFailure())
	assert.Equal(t, TagFailure, o.Tag())
}

func TestOutcome_IdsAreUnique(t *testing.T) {
	t.Parallel()

	a := Success[int, error](1)
	b := Success[int, error](1)
	assert.NotEqual(t, a.Id(), b.Id())
}

func TestOutcome_Get(t *testing.T) {
	t.Parallel()

	v, e, ok := Success[int, string](3).Get()
	assert.Equal(t, 3, v)
	assert.Equal(t, "", e)
	assert.True(t, ok)

	v, e, ok = Failure[int, string]("x").Get()
	assert.Equal(t, 0, v)
	assert.Equal(t, "x", e)
	assert.False(t, ok)
}

func TestOutcome_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Success(5)", Success[int, string](5).String())
	assert.Equal(t, "Failure(boom)", Fail[int](errors.New("boom")).String())
}

func TestOkAndFail(t *testing.T) {
	t.Parallel()

	ok := Ok("value")
	require.True(t, ok.IsSuccess())
	assert.Equal(t, "value", ok.Result())
	assert.NoError(t, ok.Err())

	err := errors.New("bad")
	fail := Fail[string](err)
	require.True(t, fail.IsFailure())
	assert.ErrorIs(t, fail.Err(), err)
}

func TestFromPair(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		r := FromPair(7, nil)
		require.True(t, r.IsSuccess())
		assert.Equal(t, 7, r.Result())
	})

	t.Run("error", func(t *testing.T) {
		err := errors.New("bad")
		r := FromPair(7, err)
		require.True(t, r.IsFailure())
		assert.ErrorIs(t, r.Err(), err)
	})

	t.Run("typed nil pointer", func(t *testing.T) {
		var ce *codeError
		r := FromPair(7, error(ce))
		require.True(t, r.IsSuccess())
		assert.Equal(t, 7, r.Result())
	})
}

func TestUnpack(t *testing.T) {
	t.Parallel()

	v, err := Unpack(Ok(4))
	assert.Equal(t, 4, v)
	assert.NoError(t, err)

	ce := &codeError{code: 2}
	v, err = Unpack(Fail[int](ce))
	assert.Equal(t, 0, v)
	var target *codeError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 2, target.code)
}

func TestSuccessFromAndFailureFrom_KeepIdentity(t *testing.T) {
	t.Parallel()

	src := Success[uint8, uint8](1)

	s := SuccessFrom[int64, string](src, 10)
	assert.True(t, s.IsSuccess())
	assert.Equal(t, int64(10), s.Result())
	assert.Equal(t, src.Id(), s.Id())
	assert.Equal(t, src.CreatedAt(), s.CreatedAt())

	f := FailureFrom[int64, string](src, "moved")
	assert.True(t, f.IsFailure())
	assert.Equal(t, "moved", f.Err())
	assert.Equal(t, src.Id(), f.Id())
	assert.Equal(t, src.CreatedAt(), f.CreatedAt())
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var ce *codeError
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(ce))
	assert.False(t, IsNil(&codeError{}))
	assert.False(t, IsNil(3))
}
