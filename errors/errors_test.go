package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		kind  ErrorKind
		fatal bool
	}{
		{"eval", EvalErrorf("boom"), ErrRuntime, true},
		{"args", ArgsErrorf("bad args"), ErrArgs, true},
		{"type", TypeErrorf("bad type"), ErrType, false},
		{"value", ValueErrorf("bad value"), ErrValue, false},
		{"index", IndexErrorf("bad index"), ErrIndex, false},
		{"stop", StopIteration, ErrStopIteration, false},
		{"plain", fmt.Errorf("plain"), ErrRuntime, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, KindOf(tt.err))
			assert.Equal(t, tt.fatal, IsFatal(tt.err))
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewValueError(inner)
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "inner", err.Error())

	wrapped := fmt.Errorf("construct: %w", err)
	var ve *ValueError
	assert.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, ErrValue, KindOf(wrapped))
}

func TestStopIteration(t *testing.T) {
	assert.True(t, IsStopIteration(StopIteration))
	assert.True(t, IsStopIteration(fmt.Errorf("loop: %w", StopIteration)))
	assert.False(t, IsStopIteration(TypeErrorf("stop iteration")))
	assert.False(t, IsFatal(StopIteration))
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "type error", ErrType.String())
	assert.Equal(t, "value error", ErrValue.String())
	assert.Equal(t, "stop iteration", ErrStopIteration.String())
	assert.Equal(t, "error", ErrorKind(99).String())
}
