package object

import (
	"context"
)

func registerBytesClass() {
	bytesClass.SetConstructor(AttrSpec{
		Name:         "new",
		Doc:          "Create bytes from nothing, a count, text and an encoding, a buffer, or an iterable of integers",
		OptionalArgs: []string{"source", "encoding"},
		Returns:      "bytes",
	}, func(ctx context.Context, args ...Object) (Object, error) {
		var source, encoding Object
		if len(args) > 0 {
			source = args[0]
		}
		if len(args) > 1 {
			encoding = args[1]
		}
		return ConstructBytes(ctx, source, encoding)
	})

	r := NewMethodRegistry[*Bytes](bytesClass)

	r.Define("repr").
		Doc("Return the quoted representation, e.g. b'abc'").
		Returns("string").
		Impl(func(self *Bytes, _ context.Context, _ ...Object) (Object, error) {
			return NewString(self.Repr()), nil
		})

	r.Define("len").
		Doc("Return the number of elements").
		Returns("int").
		Impl(func(self *Bytes, _ context.Context, _ ...Object) (Object, error) {
			return self.Len(), nil
		})

	defineComparisons(r)

	r.Define("hash").
		Doc("Return a hash consistent with equality").
		Returns("int").
		Impl(func(self *Bytes, _ context.Context, _ ...Object) (Object, error) {
			return NewInt(self.Hash()), nil
		})

	r.Define("iter").
		Doc("Return a new iterator over the elements").
		Returns("bytes_iterator").
		Impl(func(self *Bytes, _ context.Context, _ ...Object) (Object, error) {
			return self.Iterate(), nil
		})

	r.Define("getitem").
		Doc("Return the element at an index as an int").
		Arg("index").
		Returns("int").
		Impl(func(self *Bytes, _ context.Context, args ...Object) (Object, error) {
			return self.GetItem(args[0])
		})

	r.Define("slice").
		Doc("Return the elements between start and stop").
		OptionalArg("start").
		OptionalArg("stop").
		Returns("bytes").
		Impl(func(self *Bytes, _ context.Context, args ...Object) (Object, error) {
			var start, stop Object
			if len(args) > 0 {
				start = args[0]
			}
			if len(args) > 1 {
				stop = args[1]
			}
			return self.Slice(start, stop)
		})

	r.Define("contains").
		Doc("Check whether a byte or subsequence occurs").
		Arg("value").
		Returns("bool").
		Impl(func(self *Bytes, _ context.Context, args ...Object) (Object, error) {
			ok, err := self.Contains(args[0])
			if err != nil {
				return nil, err
			}
			return NewBool(ok), nil
		})

	r.Define("count").
		Doc("Count non-overlapping occurrences of a subsequence").
		Arg("sub").
		Returns("int").
		Impl(func(self *Bytes, _ context.Context, args ...Object) (Object, error) {
			n, err := self.Count(args[0])
			if err != nil {
				return nil, err
			}
			return NewInt(int64(n)), nil
		})

	r.Define("index").
		Doc("Return the offset of a subsequence, or -1").
		Arg("sub").
		Returns("int").
		Impl(func(self *Bytes, _ context.Context, args ...Object) (Object, error) {
			n, err := self.Index(args[0])
			if err != nil {
				return nil, err
			}
			return NewInt(int64(n)), nil
		})

	r.Define("index_byte").
		Doc("Return the offset of a byte, or -1").
		Arg("value").
		Returns("int").
		Impl(func(self *Bytes, _ context.Context, args ...Object) (Object, error) {
			n, err := self.IndexByte(args[0])
			if err != nil {
				return nil, err
			}
			return NewInt(int64(n)), nil
		})

	r.Define("has_prefix").
		Doc("Check whether the bytes start with a prefix").
		Arg("prefix").
		Returns("bool").
		Impl(func(self *Bytes, _ context.Context, args ...Object) (Object, error) {
			ok, err := self.HasPrefix(args[0])
			if err != nil {
				return nil, err
			}
			return NewBool(ok), nil
		})

	r.Define("has_suffix").
		Doc("Check whether the bytes end with a suffix").
		Arg("suffix").
		Returns("bool").
		Impl(func(self *Bytes, _ context.Context, args ...Object) (Object, error) {
			ok, err := self.HasSuffix(args[0])
			if err != nil {
				return nil, err
			}
			return NewBool(ok), nil
		})

	r.Define("repeat").
		Doc("Return the bytes repeated count times").
		Arg("count").
		Returns("bytes").
		Impl(func(self *Bytes, ctx context.Context, args ...Object) (Object, error) {
			return self.Repeat(ctx, args[0])
		})

	r.Define("concat").
		Doc("Return the bytes followed by other").
		Arg("other").
		Returns("bytes").
		Impl(func(self *Bytes, ctx context.Context, args ...Object) (Object, error) {
			return self.Concat(ctx, args[0])
		})

	r.Define("hex").
		Doc("Return the elements as lowercase hexadecimal").
		Returns("string").
		Impl(func(self *Bytes, _ context.Context, _ ...Object) (Object, error) {
			return NewString(self.Hex()), nil
		})

	bytesClass.Require("new", "repr", "len", "eq", "ge", "le", "gt", "lt", "hash", "iter")
}

func registerBytesIterClass() {
	r := NewMethodRegistry[*BytesIter](bytesIterClass)

	r.Define("next").
		Doc("Return the next element as an int").
		Returns("int").
		Impl(func(self *BytesIter, ctx context.Context, _ ...Object) (Object, error) {
			return self.Next(ctx)
		})

	r.Define("iter").
		Doc("Return the iterator itself").
		Returns("bytes_iterator").
		Impl(func(self *BytesIter, _ context.Context, _ ...Object) (Object, error) {
			return self, nil
		})

	r.Define("remaining").
		Doc("Return the number of elements not yet yielded").
		Returns("int").
		Impl(func(self *BytesIter, _ context.Context, _ ...Object) (Object, error) {
			return NewInt(int64(self.Remaining())), nil
		})

	bytesIterClass.Require("next", "iter")
}
