// Package errors defines the error types raised by byte objects and the host
// dispatcher.
package errors

import (
	"errors"
	"fmt"
)

// FatalError is an interface for errors that may or may not be fatal.
type FatalError interface {
	Error() string
	IsFatal() bool
}

// KindedError is implemented by errors that carry an ErrorKind.
type KindedError interface {
	Error() string
	Kind() ErrorKind
}

// EvalError indicates an unrecoverable error inside the runtime itself, such
// as a class that was never bootstrapped. All EvalErrors are fatal.
type EvalError struct {
	Err error
}

func (e *EvalError) Error() string {
	return e.Err.Error()
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

func (e *EvalError) IsFatal() bool {
	return true
}

func (e *EvalError) Kind() ErrorKind {
	return ErrRuntime
}

func NewEvalError(err error) *EvalError {
	return &EvalError{Err: err}
}

func EvalErrorf(format string, args ...any) *EvalError {
	return NewEvalError(fmt.Errorf(format, args...))
}

// ArgsError indicates an operation was called with the wrong number of
// arguments. All ArgsErrors are fatal.
type ArgsError struct {
	Err error
}

func (a *ArgsError) Error() string {
	return a.Err.Error()
}

func (a *ArgsError) Unwrap() error {
	return a.Err
}

func (a *ArgsError) IsFatal() bool {
	return true
}

func (a *ArgsError) Kind() ErrorKind {
	return ErrArgs
}

func NewArgsError(err error) *ArgsError {
	return &ArgsError{Err: err}
}

func ArgsErrorf(format string, args ...any) *ArgsError {
	return NewArgsError(fmt.Errorf(format, args...))
}

// TypeError indicates an operand of the wrong type, for example a text value
// passed to the bytes constructor without an encoding name.
type TypeError struct {
	Err error
}

func (t *TypeError) Error() string {
	return t.Err.Error()
}

func (t *TypeError) Unwrap() error {
	return t.Err
}

func (t *TypeError) IsFatal() bool {
	return false
}

func (t *TypeError) Kind() ErrorKind {
	return ErrType
}

func NewTypeError(err error) *TypeError {
	return &TypeError{Err: err}
}

func TypeErrorf(format string, args ...any) *TypeError {
	return NewTypeError(fmt.Errorf(format, args...))
}

// ValueError indicates an operand of the right type but an unacceptable
// value, for example an integer outside range(0, 256).
type ValueError struct {
	Err error
}

func (v *ValueError) Error() string {
	return v.Err.Error()
}

func (v *ValueError) Unwrap() error {
	return v.Err
}

func (v *ValueError) IsFatal() bool {
	return false
}

func (v *ValueError) Kind() ErrorKind {
	return ErrValue
}

func NewValueError(err error) *ValueError {
	return &ValueError{Err: err}
}

func ValueErrorf(format string, args ...any) *ValueError {
	return NewValueError(fmt.Errorf(format, args...))
}

// IndexError indicates an index outside the bounds of a sequence.
type IndexError struct {
	Err error
}

func (i *IndexError) Error() string {
	return i.Err.Error()
}

func (i *IndexError) Unwrap() error {
	return i.Err
}

func (i *IndexError) IsFatal() bool {
	return false
}

func (i *IndexError) Kind() ErrorKind {
	return ErrIndex
}

func NewIndexError(err error) *IndexError {
	return &IndexError{Err: err}
}

func IndexErrorf(format string, args ...any) *IndexError {
	return NewIndexError(fmt.Errorf(format, args...))
}

// StopIteration is returned by an iterator's next operation once it is
// exhausted. It ends a loop normally and is never shown to users.
var StopIteration error = stopIteration{}

type stopIteration struct{}

func (stopIteration) Error() string   { return "stop iteration" }
func (stopIteration) IsFatal() bool   { return false }
func (stopIteration) Kind() ErrorKind { return ErrStopIteration }

// IsStopIteration reports whether err is, or wraps, StopIteration.
func IsStopIteration(err error) bool {
	return errors.Is(err, StopIteration)
}

// IsFatal reports whether err, or any error it wraps, is fatal.
func IsFatal(err error) bool {
	var fe FatalError
	if errors.As(err, &fe) {
		return fe.IsFatal()
	}
	return false
}

// KindOf returns the ErrorKind of err, or ErrRuntime if it has none.
func KindOf(err error) ErrorKind {
	var ke KindedError
	if errors.As(err, &ke) {
		return ke.Kind()
	}
	return ErrRuntime
}
