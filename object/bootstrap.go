package object

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// The classes of the built-in types. They are empty and unsealed until
// Bootstrap runs.
var (
	bytesClass          = NewClass(BYTES, "An immutable sequence of bytes")
	bytesIterClass      = NewClass(BYTES_ITER, "An iterator over the elements of bytes")
	boolClass           = NewClass(BOOL, "A boolean value")
	intClass            = NewClass(INT, "A 64-bit signed integer")
	stringClass         = NewClass(STRING, "A unicode string")
	listClass           = NewClass(LIST, "An ordered sequence of objects")
	listIterClass       = NewClass(LIST_ITER, "An iterator over the items of a list")
	nilClass            = NewClass(NIL, "The absence of a value")
	notImplementedClass = NewClass(NOT_IMPLEMENTED, "Returned by operations that do not apply")
)

var (
	bootstrapOnce sync.Once

	// classTable is published only after every class is sealed.
	classTable atomic.Pointer[ClassTable]
)

// Bootstrap populates, validates and seals the built-in classes and
// returns the table holding them. It is safe to call more than once and
// from multiple goroutines; only the first call does any work.
//
// Operations cannot be dispatched through a class until Bootstrap has run.
// It panics if a class is missing a required operation.
func Bootstrap() *ClassTable {
	bootstrapOnce.Do(func() {
		registrations := []func(){
			registerBytesClass,
			registerBytesIterClass,
			registerIntClass,
			registerStringClass,
			registerBoolClass,
			registerListClasses,
			registerSingletonClasses,
		}
		for _, register := range registrations {
			register()
		}
		table := NewClassTable()
		for _, c := range builtinClasses() {
			if err := c.Validate(); err != nil {
				panic(fmt.Sprintf("bootstrap: %v", err))
			}
			c.Seal()
			table.Register(c)
		}
		classTable.Store(table)
	})
	return classTable.Load()
}

// Classes returns the table of built-in classes, or false if Bootstrap has
// not run.
func Classes() (*ClassTable, bool) {
	table := classTable.Load()
	if table == nil {
		return nil, false
	}
	return table, true
}

func builtinClasses() []*Class {
	return []*Class{
		bytesClass,
		bytesIterClass,
		boolClass,
		intClass,
		stringClass,
		listClass,
		listIterClass,
		nilClass,
		notImplementedClass,
	}
}

func defineRepr[T Object](r *MethodRegistry[T]) {
	r.Define("repr").
		Doc("Return the printable representation").
		Returns("string").
		Impl(func(self T, _ context.Context, _ ...Object) (Object, error) {
			return NewString(self.Inspect()), nil
		})
}

func registerIntClass() {
	r := NewMethodRegistry[*Int](intClass)
	defineRepr(r)
	defineComparisons(r)
	r.Define("hash").
		Doc("Return the hash of the integer").
		Returns("int").
		Impl(func(self *Int, _ context.Context, _ ...Object) (Object, error) {
			return NewInt(self.Hash()), nil
		})
	intClass.Require("repr", "eq", "hash")
}

func registerStringClass() {
	r := NewMethodRegistry[*String](stringClass)
	defineRepr(r)
	defineComparisons(r)
	r.Define("len").
		Doc("Return the number of characters").
		Returns("int").
		Impl(func(self *String, _ context.Context, _ ...Object) (Object, error) {
			return self.Len(), nil
		})
	r.Define("hash").
		Doc("Return the hash of the string").
		Returns("int").
		Impl(func(self *String, _ context.Context, _ ...Object) (Object, error) {
			return NewInt(self.Hash()), nil
		})
	r.Define("encode").
		Doc("Encode the string to bytes").
		OptionalArg("encoding").
		Returns("bytes").
		Impl(func(self *String, ctx context.Context, args ...Object) (Object, error) {
			var encoding Object = NewString("utf-8")
			if len(args) > 0 {
				encoding = args[0]
			}
			return ConstructBytes(ctx, self, encoding)
		})
	stringClass.Require("repr", "eq", "len", "hash")
}

func registerBoolClass() {
	r := NewMethodRegistry[*Bool](boolClass)
	defineRepr(r)
	boolClass.Require("repr")
}

func registerListClasses() {
	listClass.SetConstructor(AttrSpec{
		Name:         "new",
		Doc:          "Create a list from the items of an iterable",
		OptionalArgs: []string{"iterable"},
		Returns:      "list",
	}, func(ctx context.Context, args ...Object) (Object, error) {
		if len(args) == 0 {
			return NewList(nil), nil
		}
		iterable, ok := args[0].(Iterable)
		if !ok {
			return nil, TypeErrorf("'%s' object is not iterable", typeName(args[0]))
		}
		var items []Object
		it := iterable.Iter()
		for {
			item, err := it.Next(ctx)
			if err != nil {
				if IsStopIteration(err) {
					return NewList(items), nil
				}
				return nil, err
			}
			items = append(items, item)
		}
	})
	r := NewMethodRegistry[*List](listClass)
	defineRepr(r)
	r.Define("len").
		Doc("Return the number of items").
		Returns("int").
		Impl(func(self *List, _ context.Context, _ ...Object) (Object, error) {
			return self.Len(), nil
		})
	r.Define("iter").
		Doc("Return an iterator over the items").
		Returns("list_iterator").
		Impl(func(self *List, _ context.Context, _ ...Object) (Object, error) {
			return self.Iter(), nil
		})
	listClass.Require("new", "repr", "len", "iter")

	ri := NewMethodRegistry[*ListIter](listIterClass)
	ri.Define("next").
		Doc("Return the next item").
		Returns("object").
		Impl(func(self *ListIter, ctx context.Context, _ ...Object) (Object, error) {
			return self.Next(ctx)
		})
	ri.Define("iter").
		Doc("Return the iterator itself").
		Returns("list_iterator").
		Impl(func(self *ListIter, _ context.Context, _ ...Object) (Object, error) {
			return self, nil
		})
	listIterClass.Require("next", "iter")
}

func registerSingletonClasses() {
	defineRepr(NewMethodRegistry[*NilType](nilClass))
	nilClass.Require("repr")
	defineRepr(NewMethodRegistry[*NotImplementedType](notImplementedClass))
	notImplementedClass.Require("repr")
}
