// Package byteobj is the entry point for working with immutable bytes
// objects. A Runtime bootstraps the built-in classes once and routes
// operations through the host dispatcher with its logger and construction
// limits attached to the context.
package byteobj

import (
	"context"
	"io"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/byteobj/object"
	"github.com/deepnoodle-ai/byteobj/op"
	"github.com/deepnoodle-ai/byteobj/vm"
)

// Runtime dispatches operations on runtime objects. It is safe for
// concurrent use.
type Runtime struct {
	id      uuid.UUID
	logger  zerolog.Logger
	limits  object.Limits
	classes *object.ClassTable
}

// New returns a Runtime configured with the given options.
func New(opts ...Option) *Runtime {
	o := collectOptions(opts...)
	id, err := uuid.NewV4()
	if err != nil {
		id = uuid.Nil
	}
	rt := &Runtime{
		id:      id,
		logger:  o.logger.With().Str("runtime", id.String()).Logger(),
		limits:  object.Limits{MaxBytesSize: o.maxBytesSize},
		classes: object.Bootstrap(),
	}
	for _, c := range rt.classes.All() {
		rt.logger.Debug().
			Str("class", c.String()).
			Strs("operations", object.AttrNames(c.Specs())).
			Msg("class registered")
	}
	return rt
}

// ID returns the unique identifier of the runtime.
func (rt *Runtime) ID() uuid.UUID {
	return rt.id
}

// Logger returns the runtime's logger.
func (rt *Runtime) Logger() zerolog.Logger {
	return rt.logger
}

// Classes returns the table of built-in classes.
func (rt *Runtime) Classes() *object.ClassTable {
	return rt.classes
}

// Context attaches the runtime's logger and limits to ctx.
func (rt *Runtime) Context(ctx context.Context) context.Context {
	ctx = rt.logger.WithContext(ctx)
	return object.WithLimits(ctx, rt.limits)
}

// Construct builds a bytes object from a source and an optional encoding,
// either of which may be nil.
func (rt *Runtime) Construct(ctx context.Context, source, encoding object.Object) (*object.Bytes, error) {
	var args []object.Object
	switch {
	case encoding != nil:
		args = []object.Object{orNil(source), encoding}
	case source != nil:
		args = []object.Object{source}
	}
	obj, err := vm.Construct(rt.Context(ctx), object.BYTES, args...)
	if err != nil {
		rt.logger.Debug().Err(err).Msg("construct failed")
		return nil, err
	}
	b, ok := obj.(*object.Bytes)
	if !ok {
		return nil, object.EvalErrorf("bytes constructor returned %s", obj.Type())
	}
	return b, nil
}

// Compare evaluates a comparison between a and b.
func (rt *Runtime) Compare(ctx context.Context, cop op.CompareOpType, a, b object.Object) (bool, error) {
	return vm.Compare(rt.Context(ctx), cop, a, b)
}

// Repr returns the printable representation of obj.
func (rt *Runtime) Repr(ctx context.Context, obj object.Object) (string, error) {
	return vm.Repr(rt.Context(ctx), obj)
}

// Hash returns the hash of obj.
func (rt *Runtime) Hash(ctx context.Context, obj object.Object) (int64, error) {
	return vm.Hash(rt.Context(ctx), obj)
}

// Len returns the length of obj.
func (rt *Runtime) Len(ctx context.Context, obj object.Object) (int64, error) {
	return vm.Len(rt.Context(ctx), obj)
}

// Iterate returns an iterator over obj.
func (rt *Runtime) Iterate(ctx context.Context, obj object.Object) (object.Iterator, error) {
	return vm.GetIter(rt.Context(ctx), obj)
}

// Collect returns every element of obj.
func (rt *Runtime) Collect(ctx context.Context, obj object.Object) ([]object.Object, error) {
	return vm.Collect(rt.Context(ctx), obj)
}

// Call invokes a named operation on obj.
func (rt *Runtime) Call(ctx context.Context, obj object.Object, name string, args ...object.Object) (object.Object, error) {
	return vm.Call(rt.Context(ctx), obj, name, args...)
}

func orNil(obj object.Object) object.Object {
	if obj == nil {
		return object.Nil
	}
	return obj
}

func discardLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}
