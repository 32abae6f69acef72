// Package vm dispatches named operations on runtime objects through their
// classes, and implements the host side of the comparison and iteration
// protocols.
package vm

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/byteobj/object"
)

// Call invokes the named operation of obj's class with the given arguments.
func Call(ctx context.Context, obj object.Object, name string, args ...object.Object) (result object.Object, err error) {
	m, err := lookup(obj, name)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, object.TypeErrorf("'%s' object has no operation '%s'", obj.Type(), name)
	}
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = object.EvalErrorf("panic in %s: %v", m.Name(), r)
		}
	}()
	zerolog.Ctx(ctx).Trace().Str("op", m.Name()).Int("args", len(args)).Msg("call")
	return m.Call(ctx, obj, args...)
}

// lookup returns the named operation, or nil if the class does not define
// it. It fails if the class has not been bootstrapped.
func lookup(obj object.Object, name string) (*object.Method, error) {
	if obj == nil {
		return nil, object.TypeErrorf("cannot call '%s' on a missing object", name)
	}
	class := obj.Class()
	if class == nil || !class.Sealed() {
		return nil, object.EvalErrorf("class of '%s' is not bootstrapped", obj.Type())
	}
	m, ok := class.Lookup(name)
	if !ok {
		return nil, nil
	}
	return m, nil
}

// Construct calls the class-side constructor of the named type.
func Construct(ctx context.Context, typeName object.Type, args ...object.Object) (object.Object, error) {
	table, ok := object.Classes()
	if !ok {
		return nil, object.EvalErrorf("classes are not bootstrapped")
	}
	class, ok := table.Lookup(typeName)
	if !ok {
		return nil, object.TypeErrorf("unknown type '%s'", typeName)
	}
	zerolog.Ctx(ctx).Trace().Str("type", string(typeName)).Int("args", len(args)).Msg("construct")
	return class.Construct(ctx, args...)
}

// Repr returns the printable representation of obj.
func Repr(ctx context.Context, obj object.Object) (string, error) {
	result, err := Call(ctx, obj, "repr")
	if err != nil {
		return "", err
	}
	s, ok := result.(*object.String)
	if !ok {
		return "", object.TypeErrorf("repr returned non-string (type %s)", result.Type())
	}
	return s.Value(), nil
}

// Len returns the length of obj.
func Len(ctx context.Context, obj object.Object) (int64, error) {
	m, err := lookup(obj, "len")
	if err != nil {
		return 0, err
	}
	if m == nil {
		return 0, object.TypeErrorf("object of type '%s' has no len()", obj.Type())
	}
	result, err := Call(ctx, obj, "len")
	if err != nil {
		return 0, err
	}
	return asInt(result, "len")
}

// Hash returns the hash of obj.
func Hash(ctx context.Context, obj object.Object) (int64, error) {
	m, err := lookup(obj, "hash")
	if err != nil {
		return 0, err
	}
	if m == nil {
		return 0, object.TypeErrorf("unhashable type: '%s'", obj.Type())
	}
	result, err := Call(ctx, obj, "hash")
	if err != nil {
		return 0, err
	}
	return asInt(result, "hash")
}

func asInt(obj object.Object, name string) (int64, error) {
	n, ok := obj.(*object.Int)
	if !ok {
		return 0, object.TypeErrorf("%s returned non-int (type %s)", name, obj.Type())
	}
	return n.Value(), nil
}

func describe(obj object.Object) string {
	if obj == nil {
		return "none"
	}
	return string(obj.Type())
}
