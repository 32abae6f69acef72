package vm

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/byteobj/object"
	"github.com/deepnoodle-ai/byteobj/op"
)

func TestMain(m *testing.M) {
	object.Bootstrap()
	os.Exit(m.Run())
}

// meter is a foreign type that only knows how to order itself against
// bytes, by length.
type meter struct {
	object.NilType
	n int
}

var meterClass = func() *object.Class {
	c := object.NewClass("meter", "a length to compare bytes against")
	r := object.NewMethodRegistry[*meter](c)
	r.Define("gt").Arg("other").Impl(func(self *meter, _ context.Context, args ...object.Object) (object.Object, error) {
		b, ok := args[0].(*object.Bytes)
		if !ok {
			return object.NotImplemented, nil
		}
		return object.NewBool(self.n > b.Length()), nil
	})
	c.Seal()
	return c
}()

func (m *meter) Type() object.Type    { return "meter" }
func (m *meter) Class() *object.Class { return meterClass }

// loose has a class that was never sealed.
type loose struct{ object.NilType }

var looseClass = object.NewClass("loose", "")

func (l *loose) Type() object.Type    { return "loose" }
func (l *loose) Class() *object.Class { return looseClass }

func bytesOf(s string) *object.Bytes {
	return object.NewBytesFromString(s)
}

func TestCallByName(t *testing.T) {
	ctx := context.Background()
	b := bytesOf("abc")

	result, err := Call(ctx, b, "len")
	assert.NoError(t, err)
	assert.Equal(t, object.NewInt(3), result)

	_, err = Call(ctx, b, "frobnicate")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'bytes' object has no operation 'frobnicate'")

	_, err = Call(ctx, nil, "len")
	assert.Error(t, err)

	_, err = Call(ctx, &loose{}, "repr")
	var evalErr *object.EvalError
	assert.True(t, errors.As(err, &evalErr))
}

func TestConstruct(t *testing.T) {
	ctx := context.Background()

	obj, err := Construct(ctx, object.BYTES, object.NewIntList([]int64{104, 101, 108, 108, 111}))
	assert.NoError(t, err)
	repr, err := Repr(ctx, obj)
	assert.NoError(t, err)
	assert.Equal(t, "b'hello'", repr)

	obj, err = Construct(ctx, object.BYTES, object.NewInt(3))
	assert.NoError(t, err)
	n, err := Len(ctx, obj)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = Construct(ctx, object.BYTES, object.NewString("abc"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "string argument without an encoding")

	_, err = Construct(ctx, "widget")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type 'widget'")
}

func TestCompareBytes(t *testing.T) {
	ctx := context.Background()
	a := bytesOf("\x01\x02")
	b := bytesOf("\x01\x03")

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
			got, err := Compare(ctx, tt.cop, a, b)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompareEqualValuesDistinctObjects(t *testing.T) {
	ctx := context.Background()
	a := bytesOf("same")
	b := bytesOf("same")

	eq, err := Equal(ctx, a, b)
	assert.NoError(t, err)
	assert.True(t, eq)

	ne, err := Compare(ctx, op.NotEqual, a, b)
	assert.NoError(t, err)
	assert.False(t, ne)
}

func TestCompareIdentityDefault(t *testing.T) {
	ctx := context.Background()
	b := bytesOf("1")
	i := object.NewInt(1)

	eq, err := Compare(ctx, op.Equal, b, i)
	assert.NoError(t, err)
	assert.False(t, eq)

	ne, err := Compare(ctx, op.NotEqual, b, i)
	assert.NoError(t, err)
	assert.True(t, ne)

	eq, err = Compare(ctx, op.Equal, object.Nil, object.Nil)
	assert.NoError(t, err)
	assert.True(t, eq)
}

func TestCompareOrderingMismatch(t *testing.T) {
	ctx := context.Background()
	_, err := Compare(ctx, op.LessThan, bytesOf("a"), object.NewInt(1))
	var typeErr *object.TypeError
	assert.True(t, errors.As(err, &typeErr))
	assert.Error(t, err)
	assert.Equal(t, err.Error(), "'<' not supported between instances of 'bytes' and 'int'")
}

func TestCompareReflected(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)
	ctx := logger.WithContext(context.Background())

	short := bytesOf("ab")
	m := &meter{n: 5}

	// bytes.lt does not understand meter, so meter.gt is used.
	lt, err := Compare(ctx, op.LessThan, short, m)
	assert.NoError(t, err)
	assert.True(t, lt)
	assert.Contains(t, buf.String(), "trying reflected operation")

	lt, err = Compare(ctx, op.LessThan, bytesOf("abcdef"), m)
	assert.NoError(t, err)
	assert.False(t, lt)

	// meter has no lt and bytes.gt does not understand meter.
	_, err = Compare(ctx, op.LessThan, m, short)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'<' not supported between instances of 'meter' and 'bytes'")
}

func TestReprLenHash(t *testing.T) {
	ctx := context.Background()
	b := bytesOf("it's")

	repr, err := Repr(ctx, b)
	assert.NoError(t, err)
	assert.Equal(t, `b"it's"`, repr)

	h1, err := Hash(ctx, b)
	assert.NoError(t, err)
	h2, err := Hash(ctx, bytesOf("it's"))
	assert.NoError(t, err)
	assert.Equal(t, h1, h2)

	_, err = Hash(ctx, object.NewIntList(nil))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unhashable type: 'list'")

	_, err = Len(ctx, object.NewInt(1))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "object of type 'int' has no len()")
}

func TestIteration(t *testing.T) {
	ctx := context.Background()
	b := bytesOf("\x07\x08")

	it, err := GetIter(ctx, b)
	assert.NoError(t, err)

	again, err := GetIter(ctx, it)
	assert.NoError(t, err)
	assert.True(t, it == again)

	item, ok, err := Next(ctx, it)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, object.NewInt(7), item)

	_, ok, err = Next(ctx, it)
	assert.NoError(t, err)
	assert.True(t, ok)

	for i := 0; i < 2; i++ {
		item, ok, err = Next(ctx, it)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, item)
	}

	_, err = GetIter(ctx, object.NewInt(1))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'int' object is not iterable")
}

func TestCollect(t *testing.T) {
	ctx := context.Background()
	items, err := Collect(ctx, bytesOf("hi"))
	assert.NoError(t, err)
	assert.Equal(t, []object.Object{object.NewInt('h'), object.NewInt('i')}, items)

	items, err = Collect(ctx, bytesOf(""))
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestForEachStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var seen int
	err := ForEach(ctx, bytesOf("abcdef"), func(object.Object) error {
		seen++
		if seen == 2 {
			cancel()
		}
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, seen)
}

func TestForEachStopsOnError(t *testing.T) {
	ctx := context.Background()
	stop := object.ValueErrorf("enough")
	var seen int
	err := ForEach(ctx, bytesOf("abc"), func(object.Object) error {
		seen++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, seen)
}
