package object

import (
	"context"
	"fmt"
)

// BytesIter walks the elements of a Bytes from first to last, yielding
// each as an Int in range(0, 256). Once exhausted it stays exhausted.
//
// A BytesIter is not safe for concurrent use. The Bytes it walks is.
type BytesIter struct {
	source   *Bytes
	position int
}

func (it *BytesIter) Type() Type {
	return BYTES_ITER
}

func (it *BytesIter) Class() *Class {
	return bytesIterClass
}

func (it *BytesIter) Inspect() string {
	return fmt.Sprintf("bytes_iterator(pos=%d, len=%d)", it.position, it.source.Length())
}

func (it *BytesIter) String() string {
	return it.Inspect()
}

func (it *BytesIter) Interface() interface{} {
	return it
}

// Equals reports identity. Two iterators over the same bytes are distinct.
func (it *BytesIter) Equals(other Object) bool {
	o, ok := other.(*BytesIter)
	return ok && o == it
}

func (it *BytesIter) IsTruthy() bool {
	return true
}

// NextByte returns the next element, or false once the elements are
// exhausted. An exhausted iterator is left unchanged.
func (it *BytesIter) NextByte() (byte, bool) {
	if it.position >= it.source.Length() {
		return 0, false
	}
	c := it.source.inner.elements[it.position]
	it.position++
	return c, true
}

// Next implements Iterator.
func (it *BytesIter) Next(ctx context.Context) (Object, error) {
	c, ok := it.NextByte()
	if !ok {
		return nil, StopIteration
	}
	return NewInt(int64(c)), nil
}

// Iter returns the iterator itself.
func (it *BytesIter) Iter() Iterator {
	return it
}

// Source returns the bytes being iterated.
func (it *BytesIter) Source() *Bytes {
	return it.source
}

// Position returns the number of elements yielded so far.
func (it *BytesIter) Position() int {
	return it.position
}

// Remaining returns the number of elements not yet yielded.
func (it *BytesIter) Remaining() int {
	return it.source.Length() - it.position
}
