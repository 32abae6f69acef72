package vm

import (
	"context"

	"github.com/deepnoodle-ai/byteobj/object"
)

// GetIter returns an iterator over obj using its "iter" operation.
func GetIter(ctx context.Context, obj object.Object) (object.Iterator, error) {
	m, err := lookup(obj, "iter")
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, object.TypeErrorf("'%s' object is not iterable", obj.Type())
	}
	result, err := Call(ctx, obj, "iter")
	if err != nil {
		return nil, err
	}
	it, ok := result.(object.Iterator)
	if !ok {
		return nil, object.TypeErrorf("iter returned non-iterator of type '%s'", result.Type())
	}
	return it, nil
}

// Next advances an iterator through its "next" operation. It returns false
// once the iterator is exhausted; exhaustion is not an error.
func Next(ctx context.Context, it object.Object) (object.Object, bool, error) {
	result, err := Call(ctx, it, "next")
	if err != nil {
		if object.IsStopIteration(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return result, true, nil
}

// ForEach calls fn with each element of obj in order. It stops early if
// fn returns an error or the context is cancelled.
func ForEach(ctx context.Context, obj object.Object, fn func(object.Object) error) error {
	it, err := GetIter(ctx, obj)
	if err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		item, ok, err := Next(ctx, it)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(item); err != nil {
			return err
		}
	}
}

// Collect returns all elements of obj.
func Collect(ctx context.Context, obj object.Object) ([]object.Object, error) {
	var items []object.Object
	err := ForEach(ctx, obj, func(item object.Object) error {
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
