package object

import (
	"context"
	"errors"
	"math"

	"github.com/deepnoodle-ai/byteobj/internal/bytesx"
)

// byteInner owns the raw elements of a bytes object and the primitives over
// them: construction from the recognised source shapes, representation,
// length, comparison and hashing. The elements are held in a string so
// they cannot change after construction.
type byteInner struct {
	elements string
}

// newByteInner builds the elements from a source object and an optional
// encoding name. Either argument may be nil. The shapes are tried in order:
// no source, text (encoding required), a non-negative count, a buffer, and
// an iterable of integers in range(0, 256).
func newByteInner(ctx context.Context, source, encoding Object) (byteInner, error) {
	if encoding == Nil {
		encoding = nil
	}
	if source == nil || source == Nil {
		if encoding != nil {
			return byteInner{}, TypeErrorf("encoding without a string argument")
		}
		return byteInner{}, nil
	}
	if text, ok := source.(*String); ok {
		return encodeText(ctx, text, encoding)
	}
	if encoding != nil {
		return byteInner{}, TypeErrorf("encoding without a string argument")
	}
	switch source := source.(type) {
	case *Int:
		return zeroFilled(ctx, source.value)
	case *Bytes:
		return source.inner, nil
	case Buffer:
		data := source.BufferBytes()
		if err := checkSize(ctx, int64(len(data))); err != nil {
			return byteInner{}, err
		}
		return byteInner{elements: string(data)}, nil
	case Iterable:
		return fromIterable(ctx, source.Iter())
	}
	return byteInner{}, TypeErrorf("cannot convert '%s' object to bytes", source.Type())
}

func encodeText(ctx context.Context, text *String, encoding Object) (byteInner, error) {
	if encoding == nil {
		return byteInner{}, TypeErrorf("string argument without an encoding")
	}
	name, ok := encoding.(*String)
	if !ok {
		return byteInner{}, TypeErrorf("bytes() argument 'encoding' must be a string, not %s",
			encoding.Type())
	}
	encoded, err := bytesx.Encode(text.value, name.value)
	if err != nil {
		if errors.Is(err, bytesx.ErrUnknownEncoding) {
			return byteInner{}, ValueErrorf("unknown encoding: %s", name.value)
		}
		return byteInner{}, newValueError(err)
	}
	if err := checkSize(ctx, int64(len(encoded))); err != nil {
		return byteInner{}, err
	}
	return byteInner{elements: encoded}, nil
}

func zeroFilled(ctx context.Context, n int64) (byteInner, error) {
	if n < 0 {
		return byteInner{}, ValueErrorf("negative count")
	}
	if n > math.MaxInt32 {
		return byteInner{}, ValueErrorf("cannot allocate %d bytes", n)
	}
	if err := checkSize(ctx, n); err != nil {
		return byteInner{}, err
	}
	return byteInner{elements: string(make([]byte, n))}, nil
}

func fromIterable(ctx context.Context, it Iterator) (byteInner, error) {
	var data []byte
	for {
		if err := ctx.Err(); err != nil {
			return byteInner{}, err
		}
		item, err := it.Next(ctx)
		if err != nil {
			if IsStopIteration(err) {
				break
			}
			return byteInner{}, err
		}
		value, ok := item.(*Int)
		if !ok {
			return byteInner{}, TypeErrorf("'%s' object cannot be interpreted as an integer",
				item.Type())
		}
		if value.value < 0 || value.value > 255 {
			return byteInner{}, ValueErrorf("bytes must be in range(0, 256)")
		}
		data = append(data, byte(value.value))
		if err := checkSize(ctx, int64(len(data))); err != nil {
			return byteInner{}, err
		}
	}
	return byteInner{elements: string(data)}, nil
}

func (b byteInner) repr() string {
	return bytesx.Repr(b.elements)
}

func (b byteInner) len() int {
	return len(b.elements)
}

func (b byteInner) cmp(other byteInner) int {
	return bytesx.Compare(b.elements, other.elements)
}

func (b byteInner) eq(other byteInner) bool {
	return b.elements == other.elements
}

func (b byteInner) ge(other byteInner) bool {
	return b.cmp(other) >= 0
}

func (b byteInner) le(other byteInner) bool {
	return b.cmp(other) <= 0
}

func (b byteInner) gt(other byteInner) bool {
	return b.cmp(other) > 0
}

func (b byteInner) lt(other byteInner) bool {
	return b.cmp(other) < 0
}

func (b byteInner) hash() int64 {
	return bytesx.Hash(b.elements)
}
