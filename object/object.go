// Package object provides the runtime object types, most importantly the
// immutable Bytes value and its iterator, and the class tables the host
// dispatches named operations through.
//
// For callers in Go, an object.Object will often be type asserted to a
// specific object type:
//
//	switch obj := obj.(type) {
//	case *object.Bytes:
//		// obj.Value() returns a copy of the elements
//	case *object.Int:
//		// obj.Value() returns the int64
//	}
//
// Dynamic callers go through the class instead, by operation name:
//
//	m, ok := obj.Class().Lookup("repr")
package object

import (
	"context"
)

// Type of an object as a string.
type Type string

// Type constants
const (
	BOOL            Type = "bool"
	BYTES           Type = "bytes"
	BYTES_ITER      Type = "bytes_iterator"
	INT             Type = "int"
	LIST            Type = "list"
	LIST_ITER       Type = "list_iterator"
	NIL             Type = "nil"
	NOT_IMPLEMENTED Type = "not_implemented"
	STRING          Type = "string"
)

var (
	Nil   = &NilType{}
	True  = &Bool{value: true}
	False = &Bool{value: false}

	// NotImplemented is returned by comparison operations whose operand
	// is of a type they do not understand. The host then tries the
	// reflected operation on the other operand.
	NotImplemented = &NotImplementedType{}
)

// Object is the interface that all runtime object types implement.
type Object interface {
	// Type of the object.
	Type() Type

	// Class returns the class descriptor holding this object's named
	// operations.
	Class() *Class

	// Inspect returns a string representation of the given object.
	Inspect() string

	// Interface converts the given object to a native Go value.
	Interface() interface{}

	// Returns true if the given object is equal to this object.
	Equals(other Object) bool

	// IsTruthy returns true if the object is considered "truthy".
	IsTruthy() bool
}

// Iterator is an object producing a sequence of elements. Next returns
// StopIteration once the sequence is exhausted, and keeps returning it on
// every later call.
type Iterator interface {
	Object
	Next(ctx context.Context) (Object, error)
}

// Iterable is implemented by objects that can produce an Iterator. Every
// Iterator is itself Iterable and returns itself.
type Iterable interface {
	Iter() Iterator
}

// Sized is implemented by objects with a length.
type Sized interface {
	Len() *Int
}

// Hashable is implemented by objects usable as mapping keys. Objects that
// are equal must return equal hashes.
type Hashable interface {
	Hash() int64
}

// Buffer is implemented by objects that expose their contents as raw
// bytes. The bytes constructor copies from any Buffer.
type Buffer interface {
	BufferBytes() []byte
}
