package object

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
	"github.com/fxamacker/cbor/v2"

	"github.com/deepnoodle-ai/byteobj/op"
)

func mustBytes(t *testing.T, source, encoding Object) *Bytes {
	t.Helper()
	b, err := ConstructBytes(context.Background(), source, encoding)
	assert.NoError(t, err)
	return b
}

func TestBytesType(t *testing.T) {
	b := NewBytes([]byte("hello"))
	assert.Equal(t, BYTES, b.Type())
	assert.True(t, bytesClass == b.Class())
}

func TestBytesFromIntegers(t *testing.T) {
	b := mustBytes(t, NewIntList([]int64{104, 101, 108, 108, 111}), nil)
	assert.Equal(t, "b'hello'", b.Repr())
	assert.Equal(t, "b'hello'", b.Inspect())
	assert.Equal(t, 5, b.Length())
	assert.Equal(t, NewInt(5), b.Len())
}

func TestBytesValueIsCopied(t *testing.T) {
	data := []byte("abc")
	b := NewBytes(data)
	data[0] = 'x'
	assert.Equal(t, []byte("abc"), b.Value())

	out := b.Value()
	out[0] = 'y'
	assert.Equal(t, "b'abc'", b.Repr())
}

func TestBytesTruthy(t *testing.T) {
	assert.False(t, NewBytes(nil).IsTruthy())
	assert.True(t, NewBytes([]byte{0}).IsTruthy())
}

func TestBytesEquality(t *testing.T) {
	a := NewBytes([]byte{1, 2, 3})
	b := NewBytes([]byte{1, 2, 3})
	c := NewBytes([]byte{1, 2})

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(NewString("\x01\x02\x03")))

	assert.Equal(t, Applicable(true), a.CompareEqual(b))
	assert.Equal(t, Applicable(false), a.CompareEqual(c))
	assert.Equal(t, NotApplicable, a.CompareEqual(NewInt(1)))
}

func TestBytesEmptyEquality(t *testing.T) {
	a := NewBytes(nil)
	b := mustBytes(t, nil, nil)
	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestBytesOrdering(t *testing.T) {
	lo := NewBytes([]byte{1, 2})
	hi := NewBytes([]byte{1, 3})
	prefix := NewBytes([]byte{1})

	assert.True(t, lo.CompareLess(hi).Value())
	assert.False(t, hi.CompareLess(lo).Value())
	assert.True(t, hi.CompareGreater(lo).Value())
	assert.True(t, lo.CompareLessEqual(lo).Value())
	assert.True(t, lo.CompareGreaterEqual(lo).Value())
	assert.True(t, prefix.CompareLess(lo).Value())
	assert.True(t, NewBytes(nil).CompareLess(prefix).Value())

	for _, r := range []CompareResult{
		lo.CompareLess(NewInt(1)),
		lo.CompareLessEqual(NewString("a")),
		lo.CompareGreater(Nil),
		lo.CompareGreaterEqual(NewIntList(nil)),
	} {
		assert.False(t, r.IsApplicable())
	}
}

func TestBytesRichCompare(t *testing.T) {
	a := NewBytes([]byte("a"))
	b := NewBytes([]byte("b"))

	tests := []struct {
		cop  op.CompareOpType
		want bool
	}{
		{op.LessThan, true},
		{op.LessThanOrEqual, true},
		{op.Equal, false},
		{op.NotEqual, true},
		{op.GreaterThan, false},
		{op.GreaterThanOrEqual, false},
	}
	for _, tt := range tests {
		t.Run(tt.cop.Operation(), func(t *testing.T) {
			assert.Equal(t, Applicable(tt.want), a.RichCompare(tt.cop, b))
			assert.Equal(t, NotApplicable, a.RichCompare(tt.cop, NewInt(1)))
		})
	}
}

func TestBytesOrderingTrichotomy(t *testing.T) {
	values := [][]byte{
		nil,
		{0},
		{0, 0},
		{0, 1},
		{1},
		{1, 0},
		{0x7f},
		{0x80},
		{0xff},
		{0xff, 0xff},
		[]byte("abc"),
		[]byte("abd"),
		[]byte("ab"),
	}
	for _, x := range values {
		for _, y := range values {
			a, b := NewBytes(x), NewBytes(y)
			eq := a.CompareEqual(b).Value()
			lt := a.CompareLess(b).Value()
			gt := a.CompareGreater(b).Value()
			count := 0
			for _, v := range []bool{eq, lt, gt} {
				if v {
					count++
				}
			}
			assert.Equal(t, count, 1, "%q vs %q", x, y)
			assert.Equal(t, a.CompareGreaterEqual(b).Value(), gt || eq, "%q >= %q", x, y)
			assert.Equal(t, a.CompareLessEqual(b).Value(), lt || eq, "%q <= %q", x, y)
			assert.Equal(t, b.CompareGreater(a).Value(), lt, "%q < %q reflected", x, y)
		}
	}
}

func TestBytesHash(t *testing.T) {
	a := NewBytes([]byte("hello"))
	b := NewBytesFromString("hello")
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Hash(), a.Hash())
	assert.NotEqual(t, a.Hash(), NewBytes([]byte("hellp")).Hash())
}

func TestBytesSharedSource(t *testing.T) {
	a := NewBytes([]byte("xyz"))
	b := mustBytes(t, a, nil)
	assert.True(t, a.Equals(b))
	assert.True(t, a != b)
}

func TestBytesMarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewBytes([]byte{0, 255, 'a'}))
	assert.NoError(t, err)
	assert.Equal(t, `"AP9h"`, string(data))
}

func TestBytesMarshalCBOR(t *testing.T) {
	data, err := cbor.Marshal(NewBytes([]byte("hi")))
	assert.NoError(t, err)
	var out []byte
	assert.NoError(t, cbor.Unmarshal(data, &out))
	assert.Equal(t, []byte("hi"), out)
}

func TestBytesGetItem(t *testing.T) {
	b := NewBytes([]byte{10, 20, 30})

	v, err := b.GetItem(NewInt(0))
	assert.NoError(t, err)
	assert.Equal(t, int64(10), v.Value())

	v, err = b.GetItem(NewInt(-1))
	assert.NoError(t, err)
	assert.Equal(t, int64(30), v.Value())

	_, err = b.GetItem(NewInt(3))
	var indexErr *IndexError
	assert.True(t, errors.As(err, &indexErr))

	_, err = b.GetItem(NewString("0"))
	var typeErr *TypeError
	assert.True(t, errors.As(err, &typeErr))
}

func TestBytesSlice(t *testing.T) {
	b := NewBytesFromString("abcdef")

	tests := []struct {
		name        string
		start, stop Object
		want        string
	}{
		{"all", nil, nil, "abcdef"},
		{"head", nil, NewInt(2), "ab"},
		{"tail", NewInt(-2), nil, "ef"},
		{"middle", NewInt(1), NewInt(4), "bcd"},
		{"clamped", NewInt(-100), NewInt(100), "abcdef"},
		{"crossed", NewInt(4), NewInt(1), ""},
		{"nil bounds", Nil, Nil, "abcdef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Slice(tt.start, tt.stop)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	_, err := b.Slice(NewString("a"), nil)
	assert.Error(t, err)
}

func TestBytesSearch(t *testing.T) {
	b := NewBytesFromString("banana")

	ok, err := b.Contains(NewBytesFromString("nan"))
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.Contains(NewInt('b'))
	assert.NoError(t, err)
	assert.True(t, ok)

	_, err = b.Contains(NewInt(300))
	assert.Error(t, err)

	_, err = b.Contains(NewString("a"))
	assert.Error(t, err)

	n, err := b.Count(NewBytesFromString("a"))
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = b.Count(NewBytes(nil))
	assert.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = b.Index(NewBytesFromString("na"))
	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = b.IndexByte(NewInt('z'))
	assert.NoError(t, err)
	assert.Equal(t, -1, n)

	ok, err = b.HasPrefix(NewBytesFromString("ban"))
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.HasSuffix(NewBytesFromString("nab"))
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestBytesRepeatConcat(t *testing.T) {
	ctx := context.Background()
	b := NewBytesFromString("ab")

	r, err := b.Repeat(ctx, NewInt(3))
	assert.NoError(t, err)
	assert.Equal(t, "ababab", r.String())

	r, err = b.Repeat(ctx, NewInt(-1))
	assert.NoError(t, err)
	assert.Equal(t, 0, r.Length())

	c, err := b.Concat(ctx, NewBytesFromString("cd"))
	assert.NoError(t, err)
	assert.Equal(t, "b'abcd'", c.Repr())
	assert.Equal(t, "b'ab'", b.Repr())

	_, err = b.Concat(ctx, NewString("cd"))
	assert.Error(t, err)

	limited := WithLimits(ctx, Limits{MaxBytesSize: 4})
	_, err = b.Repeat(limited, NewInt(3))
	var valueErr *ValueError
	assert.True(t, errors.As(err, &valueErr))
}

func TestBytesHex(t *testing.T) {
	assert.Equal(t, "00ff10", NewBytes([]byte{0, 255, 16}).Hex())
	assert.Equal(t, "", NewBytes(nil).Hex())
}
