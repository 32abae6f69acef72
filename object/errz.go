package object

import (
	"github.com/deepnoodle-ai/byteobj/errors"
)

// Re-export types from errors package for convenience
type (
	FatalError = errors.FatalError
	ErrorKind  = errors.ErrorKind
	EvalError  = errors.EvalError
	ArgsError  = errors.ArgsError
	TypeError  = errors.TypeError
	ValueError = errors.ValueError
	IndexError = errors.IndexError
)

// Error kinds, re-exported for callers that switch on them.
const (
	ErrRuntime       = errors.ErrRuntime
	ErrType          = errors.ErrType
	ErrValue         = errors.ErrValue
	ErrIndex         = errors.ErrIndex
	ErrArgs          = errors.ErrArgs
	ErrStopIteration = errors.ErrStopIteration
)

// StopIteration is the canonical signal that an iterator is exhausted.
var StopIteration = errors.StopIteration

// IsStopIteration reports whether err signals the end of an iteration.
func IsStopIteration(err error) bool {
	return errors.IsStopIteration(err)
}

// EvalErrorf returns an error for a broken runtime invariant.
func EvalErrorf(format string, args ...interface{}) error {
	return errors.EvalErrorf(format, args...)
}

// ArgsErrorf returns an error for a wrong argument count.
func ArgsErrorf(format string, args ...interface{}) error {
	return errors.ArgsErrorf(format, args...)
}

// TypeErrorf returns an error for an operand of the wrong type.
func TypeErrorf(format string, args ...interface{}) error {
	return errors.TypeErrorf(format, args...)
}

// ValueErrorf returns an error for an operand with an unacceptable value.
func ValueErrorf(format string, args ...interface{}) error {
	return errors.ValueErrorf(format, args...)
}

// IndexErrorf returns an error for an out of range index.
func IndexErrorf(format string, args ...interface{}) error {
	return errors.IndexErrorf(format, args...)
}

func newValueError(err error) error {
	return errors.NewValueError(err)
}

// argsError returns a grammatically correct argument count error.
func argsError(name string, min, max, got int) error {
	switch {
	case min == max && min == 1:
		return ArgsErrorf("%s: expected 1 argument, got %d", name, got)
	case min == max:
		return ArgsErrorf("%s: expected %d arguments, got %d", name, min, got)
	default:
		return ArgsErrorf("%s: expected %d to %d arguments, got %d", name, min, max, got)
	}
}
