package object

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
)

func TestBootstrapIsIdempotent(t *testing.T) {
	first := Bootstrap()
	results := make([]*ClassTable, 8)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Bootstrap()
		}(i)
	}
	wg.Wait()
	for _, table := range results {
		assert.True(t, first == table)
	}

	table, ok := Classes()
	assert.True(t, ok)
	assert.True(t, first == table)
	assert.Equal(t, 9, table.Len())
}

func TestBootstrapSealsClasses(t *testing.T) {
	table := Bootstrap()
	for _, c := range table.All() {
		assert.True(t, c.Sealed(), c.Name())
		assert.NoError(t, c.Validate())
	}
	bytes, ok := table.Lookup(BYTES)
	assert.True(t, ok)
	assert.True(t, bytesClass == bytes)
}

func TestBytesClassOperations(t *testing.T) {
	for _, name := range []string{
		"repr", "len", "eq", "ge", "le", "gt", "lt", "hash", "iter",
		"getitem", "slice", "contains", "count", "index", "index_byte",
		"has_prefix", "has_suffix", "repeat", "concat", "hex",
	} {
		assert.True(t, bytesClass.HasMethod(name), name)
	}
	assert.False(t, bytesClass.HasMethod("ne"))
	assert.True(t, bytesIterClass.HasMethod("next"))
	assert.True(t, bytesIterClass.HasMethod("iter"))

	spec := bytesClass.TypeSpec()
	assert.Equal(t, "bytes", spec.Name)
	assert.NotNil(t, spec.Constructor)
	assert.Equal(t, []string{"source", "encoding"}, spec.Constructor.OptionalArgs)
}

func TestClassConstruct(t *testing.T) {
	ctx := context.Background()

	obj, err := bytesClass.Construct(ctx, NewIntList([]int64{104, 105}))
	assert.NoError(t, err)
	assert.Equal(t, "b'hi'", obj.Inspect())

	obj, err = bytesClass.Construct(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "b''", obj.Inspect())

	_, err = bytesClass.Construct(ctx, Nil, Nil, Nil)
	var argsErr *ArgsError
	assert.True(t, errors.As(err, &argsErr))

	_, err = intClass.Construct(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot create 'int' instances")
}

func TestMethodCall(t *testing.T) {
	ctx := context.Background()
	b := NewBytesFromString("abc")

	m, ok := b.Class().Lookup("len")
	assert.True(t, ok)
	assert.Equal(t, "bytes.len", m.Name())
	result, err := m.Call(ctx, b)
	assert.NoError(t, err)
	assert.Equal(t, NewInt(3), result)

	_, err = m.Call(ctx, b, NewInt(1))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bytes.len: expected 0 arguments, got 1")

	m, _ = b.Class().Lookup("lt")
	result, err = m.Call(ctx, b, NewBytesFromString("abd"))
	assert.NoError(t, err)
	assert.Equal(t, True, result)

	result, err = m.Call(ctx, b, NewInt(1))
	assert.NoError(t, err)
	assert.True(t, NotImplemented == result)

	_, err = m.Call(ctx, NewInt(1), b)
	var typeErr *TypeError
	assert.True(t, errors.As(err, &typeErr))
}

func TestUnsealedClass(t *testing.T) {
	c := NewClass("widget", "test class")
	r := NewMethodRegistry[*Bytes](c)
	r.Define("size").Impl(func(self *Bytes, _ context.Context, _ ...Object) (Object, error) {
		return self.Len(), nil
	})
	c.Require("size", "shape", "new")

	_, ok := c.Lookup("size")
	assert.False(t, ok)

	err := c.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `missing operation "shape"`)
	assert.Contains(t, err.Error(), "missing constructor")

	c.Seal()
	_, ok = c.Lookup("size")
	assert.True(t, ok)

	assertPanics(t, func() {
		r.Define("late").Impl(func(self *Bytes, _ context.Context, _ ...Object) (Object, error) {
			return Nil, nil
		})
	})
}

func TestDuplicateMethodPanics(t *testing.T) {
	c := NewClass("widget", "")
	r := NewMethodRegistry[*Int](c)
	impl := func(self *Int, _ context.Context, _ ...Object) (Object, error) { return self, nil }
	r.Define("x").Impl(impl)
	assertPanics(t, func() { r.Define("x").Impl(impl) })
}

func TestClassTable(t *testing.T) {
	table := NewClassTable()
	a := NewClass("b_class", "")
	b := NewClass("a_class", "")
	assert.True(t, table.Register(a) == nil)
	assert.True(t, table.Register(b) == nil)
	assert.True(t, a == table.Register(a))
	assert.True(t, table.Has("a_class"))
	assert.False(t, table.Has("c_class"))

	all := table.All()
	assert.Len(t, all, 2)
	assert.Equal(t, Type("a_class"), all[0].Name())
}

func assertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		assert.NotNil(t, recover())
	}()
	fn()
}
