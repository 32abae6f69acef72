package object

import (
	"context"
	"math"
	"strings"

	"github.com/deepnoodle-ai/byteobj/internal/bytesx"
)

// GetItem returns the element at index as an Int. Negative indices count
// from the end.
func (b *Bytes) GetItem(index Object) (*Int, error) {
	n, ok := index.(*Int)
	if !ok {
		return nil, TypeErrorf("bytes indices must be integers (got %s)", typeName(index))
	}
	i, err := ResolveIndex(n.value, int64(b.Length()))
	if err != nil {
		return nil, err
	}
	return NewInt(int64(b.inner.elements[i])), nil
}

// Slice returns the elements between start and stop. Either bound may be
// nil or Nil.
func (b *Bytes) Slice(start, stop Object) (*Bytes, error) {
	lo, hi, err := ResolveSlice(start, stop, int64(b.Length()))
	if err != nil {
		return nil, err
	}
	if lo == 0 && hi == int64(b.Length()) {
		return b, nil
	}
	return NewBytesFromString(b.inner.elements[lo:hi]), nil
}

// Contains reports whether obj occurs in b. obj may be a single byte given
// as an Int, or a subsequence given as bytes.
func (b *Bytes) Contains(obj Object) (bool, error) {
	if n, ok := obj.(*Int); ok {
		c, err := AsByte(n)
		if err != nil {
			return false, err
		}
		return strings.IndexByte(b.inner.elements, c) >= 0, nil
	}
	sub, err := AsBytes(obj)
	if err != nil {
		return false, TypeErrorf("a bytes-like object is required, not '%s'", typeName(obj))
	}
	return strings.Contains(b.inner.elements, sub), nil
}

// Count returns the number of non-overlapping occurrences of sub.
func (b *Bytes) Count(sub Object) (int, error) {
	data, err := AsBytes(sub)
	if err != nil {
		return 0, err
	}
	if data == "" {
		return b.Length() + 1, nil
	}
	return strings.Count(b.inner.elements, data), nil
}

// Index returns the offset of the first occurrence of sub, or -1.
func (b *Bytes) Index(sub Object) (int, error) {
	data, err := AsBytes(sub)
	if err != nil {
		return 0, err
	}
	return strings.Index(b.inner.elements, data), nil
}

// IndexByte returns the offset of the first occurrence of a byte, or -1.
func (b *Bytes) IndexByte(value Object) (int, error) {
	c, err := AsByte(value)
	if err != nil {
		return 0, err
	}
	return strings.IndexByte(b.inner.elements, c), nil
}

func (b *Bytes) HasPrefix(prefix Object) (bool, error) {
	data, err := AsBytes(prefix)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(b.inner.elements, data), nil
}

func (b *Bytes) HasSuffix(suffix Object) (bool, error) {
	data, err := AsBytes(suffix)
	if err != nil {
		return false, err
	}
	return strings.HasSuffix(b.inner.elements, data), nil
}

// Repeat returns b repeated count times. A count below one yields empty
// bytes.
func (b *Bytes) Repeat(ctx context.Context, count Object) (*Bytes, error) {
	n, err := AsInt(count)
	if err != nil {
		return nil, err
	}
	if n <= 0 || b.Length() == 0 {
		return NewBytesFromString(""), nil
	}
	if n > math.MaxInt32/int64(b.Length()) {
		return nil, ValueErrorf("cannot allocate %d repetitions", n)
	}
	if err := checkSize(ctx, n*int64(b.Length())); err != nil {
		return nil, err
	}
	return NewBytesFromString(strings.Repeat(b.inner.elements, int(n))), nil
}

// Concat returns a new Bytes holding the elements of b followed by other.
func (b *Bytes) Concat(ctx context.Context, other Object) (*Bytes, error) {
	data, err := AsBytes(other)
	if err != nil {
		return nil, TypeErrorf("can't concat %s to bytes", typeName(other))
	}
	if err := checkSize(ctx, int64(b.Length()+len(data))); err != nil {
		return nil, err
	}
	return NewBytesFromString(b.inner.elements + data), nil
}

// Hex returns the elements as lowercase hexadecimal.
func (b *Bytes) Hex() string {
	return bytesx.Hex(b.inner.elements)
}
