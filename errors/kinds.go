package errors

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// ErrRuntime indicates a general runtime error.
	ErrRuntime ErrorKind = iota
	// ErrType indicates a type mismatch or invalid operation on a type.
	ErrType
	// ErrValue indicates an invalid value for an operation.
	ErrValue
	// ErrIndex indicates an out of range index.
	ErrIndex
	// ErrArgs indicates a wrong argument count.
	ErrArgs
	// ErrStopIteration marks the end of an iteration.
	ErrStopIteration
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrRuntime:
		return "runtime error"
	case ErrType:
		return "type error"
	case ErrValue:
		return "value error"
	case ErrIndex:
		return "index error"
	case ErrArgs:
		return "args error"
	case ErrStopIteration:
		return "stop iteration"
	default:
		return "error"
	}
}
