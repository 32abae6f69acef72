package object

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/fxamacker/cbor/v2"

	"github.com/deepnoodle-ai/byteobj/op"
)

// Bytes is an immutable sequence of bytes. Equality, ordering and hashing
// are by value, so a Bytes may be shared freely between goroutines,
// iterators and mapping keys.
type Bytes struct {
	inner byteInner

	// hash memoizes Hash. hashed is set after hash is stored.
	hash   atomic.Int64
	hashed atomic.Bool
}

// NewBytes returns a Bytes holding a copy of value.
func NewBytes(value []byte) *Bytes {
	return &Bytes{inner: byteInner{elements: string(value)}}
}

// NewBytesFromString returns a Bytes holding the bytes of s.
func NewBytesFromString(s string) *Bytes {
	return &Bytes{inner: byteInner{elements: s}}
}

// ConstructBytes builds a Bytes from a source object and an optional
// encoding name, either of which may be nil:
//
//	ConstructBytes(ctx, nil, nil)                          // b''
//	ConstructBytes(ctx, NewInt(3), nil)                    // b'\x00\x00\x00'
//	ConstructBytes(ctx, NewString("hi"), NewString("utf-8")) // b'hi'
//	ConstructBytes(ctx, NewList(ints), nil)                // from integers
//
// Any other Bytes or Buffer is copied.
func ConstructBytes(ctx context.Context, source, encoding Object) (*Bytes, error) {
	inner, err := newByteInner(ctx, source, encoding)
	if err != nil {
		return nil, err
	}
	return &Bytes{inner: inner}, nil
}

func (b *Bytes) Type() Type {
	return BYTES
}

func (b *Bytes) Class() *Class {
	return bytesClass
}

// Value returns a copy of the elements.
func (b *Bytes) Value() []byte {
	return []byte(b.inner.elements)
}

// String returns the elements as a Go string, without copying.
func (b *Bytes) String() string {
	return b.inner.elements
}

func (b *Bytes) Inspect() string {
	return b.Repr()
}

func (b *Bytes) Interface() interface{} {
	return b.Value()
}

// BufferBytes implements Buffer.
func (b *Bytes) BufferBytes() []byte {
	return b.Value()
}

func (b *Bytes) IsTruthy() bool {
	return b.inner.len() > 0
}

// Repr returns the quoted representation, e.g. b'hello'.
func (b *Bytes) Repr() string {
	return b.inner.repr()
}

// Length returns the number of elements.
func (b *Bytes) Length() int {
	return b.inner.len()
}

// Len implements Sized.
func (b *Bytes) Len() *Int {
	return NewInt(int64(b.inner.len()))
}

// Hash returns a hash of the elements. It is computed once and reused.
func (b *Bytes) Hash() int64 {
	if b.hashed.Load() {
		return b.hash.Load()
	}
	h := b.inner.hash()
	b.hash.Store(h)
	b.hashed.Store(true)
	return h
}

func (b *Bytes) Equals(other Object) bool {
	return b.CompareEqual(other).Value()
}

// CompareEqual returns whether other holds the same elements, or
// NotApplicable if other is not a Bytes.
func (b *Bytes) CompareEqual(other Object) CompareResult {
	o, ok := other.(*Bytes)
	if !ok {
		return NotApplicable
	}
	return Applicable(b.inner.eq(o.inner))
}

// CompareGreaterEqual returns whether b sorts at or after other.
func (b *Bytes) CompareGreaterEqual(other Object) CompareResult {
	o, ok := other.(*Bytes)
	if !ok {
		return NotApplicable
	}
	return Applicable(b.inner.ge(o.inner))
}

// CompareLessEqual returns whether b sorts at or before other.
func (b *Bytes) CompareLessEqual(other Object) CompareResult {
	o, ok := other.(*Bytes)
	if !ok {
		return NotApplicable
	}
	return Applicable(b.inner.le(o.inner))
}

// CompareGreater returns whether b sorts after other.
func (b *Bytes) CompareGreater(other Object) CompareResult {
	o, ok := other.(*Bytes)
	if !ok {
		return NotApplicable
	}
	return Applicable(b.inner.gt(o.inner))
}

// CompareLess returns whether b sorts before other.
func (b *Bytes) CompareLess(other Object) CompareResult {
	o, ok := other.(*Bytes)
	if !ok {
		return NotApplicable
	}
	return Applicable(b.inner.lt(o.inner))
}

// RichCompare implements RichComparer.
func (b *Bytes) RichCompare(cop op.CompareOpType, other Object) CompareResult {
	switch cop {
	case op.Equal:
		return b.CompareEqual(other)
	case op.NotEqual:
		r := b.CompareEqual(other)
		if !r.IsApplicable() {
			return r
		}
		return Applicable(!r.Value())
	case op.GreaterThanOrEqual:
		return b.CompareGreaterEqual(other)
	case op.LessThanOrEqual:
		return b.CompareLessEqual(other)
	case op.GreaterThan:
		return b.CompareGreater(other)
	case op.LessThan:
		return b.CompareLess(other)
	}
	return NotApplicable
}

// Iterate returns a new iterator positioned at the first element.
func (b *Bytes) Iterate() *BytesIter {
	return &BytesIter{source: b}
}

// Iter implements Iterable.
func (b *Bytes) Iter() Iterator {
	return b.Iterate()
}

func (b *Bytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Value())
}

// MarshalCBOR encodes the elements as a CBOR byte string.
func (b *Bytes) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(b.Value())
}

func (b *Bytes) GoString() string {
	return fmt.Sprintf("object.NewBytesFromString(%q)", b.inner.elements)
}
