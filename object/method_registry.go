package object

import (
	"context"
)

// MethodRegistry defines the operations of a class whose instances have the
// concrete Go type T. Each definition is type-erased into a Method that
// checks its receiver and argument count before calling the implementation.
type MethodRegistry[T Object] struct {
	class *Class
}

// MethodBuilder provides a fluent API for defining a single method.
type MethodBuilder[T Object] struct {
	registry *MethodRegistry[T]
	name     string
	doc      string
	args     []string
	optional []string
	returns  string
}

// NewMethodRegistry creates a registry that defines methods on class.
func NewMethodRegistry[T Object](class *Class) *MethodRegistry[T] {
	return &MethodRegistry[T]{class: class}
}

// Class returns the class methods are registered on.
func (r *MethodRegistry[T]) Class() *Class {
	return r.class
}

// Define starts building a new method definition.
// Returns a MethodBuilder for fluent configuration.
func (r *MethodRegistry[T]) Define(name string) *MethodBuilder[T] {
	return &MethodBuilder[T]{
		registry: r,
		name:     name,
	}
}

// Doc sets the method's documentation string.
func (b *MethodBuilder[T]) Doc(doc string) *MethodBuilder[T] {
	b.doc = doc
	return b
}

// Arg adds a required argument by name.
func (b *MethodBuilder[T]) Arg(name string) *MethodBuilder[T] {
	b.args = append(b.args, name)
	return b
}

// Args adds multiple required arguments.
func (b *MethodBuilder[T]) Args(names ...string) *MethodBuilder[T] {
	b.args = append(b.args, names...)
	return b
}

// OptionalArg adds an argument that may be omitted.
func (b *MethodBuilder[T]) OptionalArg(name string) *MethodBuilder[T] {
	b.optional = append(b.optional, name)
	return b
}

// Returns sets the return type (for documentation/tooling).
func (b *MethodBuilder[T]) Returns(typ string) *MethodBuilder[T] {
	b.returns = typ
	return b
}

// Impl sets the implementation and registers the method.
// Panics if a method with the same name is already registered or the
// class is sealed.
func (b *MethodBuilder[T]) Impl(fn func(self T, ctx context.Context, args ...Object) (Object, error)) {
	class := b.registry.class
	spec := AttrSpec{
		Name:         b.name,
		Doc:          b.doc,
		Args:         b.args,
		OptionalArgs: b.optional,
		Returns:      b.returns,
	}
	fullName := string(class.name) + "." + b.name
	class.addMethod(&Method{
		spec:     spec,
		fullName: fullName,
		fn: func(ctx context.Context, self Object, args ...Object) (Object, error) {
			recv, ok := self.(T)
			if !ok {
				return nil, TypeErrorf("%s: requires a '%s' receiver (got %s)",
					fullName, class.name, typeName(self))
			}
			return fn(recv, ctx, args...)
		},
	})
}

func typeName(obj Object) Type {
	if obj == nil {
		return "none"
	}
	return obj.Type()
}
