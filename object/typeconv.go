package object

// AsInt returns the value of an Int.
func AsInt(obj Object) (int64, error) {
	switch obj := obj.(type) {
	case *Int:
		return obj.value, nil
	default:
		return 0, TypeErrorf("expected an integer (%s given)", typeName(obj))
	}
}

// AsString returns the value of a String.
func AsString(obj Object) (string, error) {
	switch obj := obj.(type) {
	case *String:
		return obj.value, nil
	default:
		return "", TypeErrorf("expected a string (%s given)", typeName(obj))
	}
}

// AsBytes returns the elements of a Bytes or any other Buffer. The result
// may share memory with a Bytes and must not be modified.
func AsBytes(obj Object) (string, error) {
	switch obj := obj.(type) {
	case *Bytes:
		return obj.inner.elements, nil
	case Buffer:
		return string(obj.BufferBytes()), nil
	default:
		return "", TypeErrorf("expected bytes (%s given)", typeName(obj))
	}
}

// AsByte returns an Int in range(0, 256) as a byte.
func AsByte(obj Object) (byte, error) {
	n, err := AsInt(obj)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > 255 {
		return 0, ValueErrorf("byte must be in range(0, 256)")
	}
	return byte(n), nil
}

// ResolveIndex checks that the index is in bounds and transforms a negative
// index into the corresponding positive index.
func ResolveIndex(idx int64, size int64) (int64, error) {
	if idx < 0 {
		idx += size
	}
	if idx < 0 || idx >= size {
		return 0, IndexErrorf("index out of range")
	}
	return idx, nil
}

// ResolveSlice transforms start and stop into bounds for a sequence of the
// given size. Nil bounds default to the whole sequence, negative bounds
// count from the end, and out of range bounds are clamped. A start past
// stop yields an empty range.
func ResolveSlice(start, stop Object, size int64) (int64, int64, error) {
	lo, err := sliceBound(start, 0, size)
	if err != nil {
		return 0, 0, err
	}
	hi, err := sliceBound(stop, size, size)
	if err != nil {
		return 0, 0, err
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi, nil
}

func sliceBound(obj Object, def, size int64) (int64, error) {
	if obj == nil || obj == Nil {
		return def, nil
	}
	n, ok := obj.(*Int)
	if !ok {
		return 0, TypeErrorf("slice indices must be integers (got %s)", obj.Type())
	}
	v := n.value
	if v < 0 {
		v += size
		if v < 0 {
			v = 0
		}
	}
	if v > size {
		v = size
	}
	return v, nil
}
