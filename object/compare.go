package object

import (
	"context"

	"github.com/deepnoodle-ai/byteobj/op"
)

// CompareResult is the outcome of a comparison operation: either a boolean
// or NotApplicable, meaning the operand types are not mutually comparable.
// The zero value is NotApplicable.
type CompareResult struct {
	value      bool
	applicable bool
}

// NotApplicable is the result of comparing against an unsupported type.
var NotApplicable = CompareResult{}

// Applicable wraps a boolean comparison outcome.
func Applicable(value bool) CompareResult {
	return CompareResult{value: value, applicable: true}
}

// IsApplicable returns false if the comparison did not apply.
func (r CompareResult) IsApplicable() bool {
	return r.applicable
}

// Value returns the boolean outcome. It is false when not applicable.
func (r CompareResult) Value() bool {
	return r.value
}

// Object converts the result to the object a dispatched comparison
// operation returns: a Bool, or the NotImplemented sentinel.
func (r CompareResult) Object() Object {
	if !r.applicable {
		return NotImplemented
	}
	return NewBool(r.value)
}

// CompareResultOf converts the object returned by a dispatched comparison
// back into a CompareResult. Anything other than NotImplemented applies,
// with its truthiness as the outcome.
func CompareResultOf(obj Object) CompareResult {
	if obj == nil {
		return NotApplicable
	}
	if _, ok := obj.(*NotImplementedType); ok {
		return NotApplicable
	}
	return Applicable(obj.IsTruthy())
}

// RichComparer is implemented by objects that support the comparison
// operators directly. Implementations must never fail: an unsupported
// operand yields NotApplicable.
type RichComparer interface {
	RichCompare(cop op.CompareOpType, other Object) CompareResult
}

// comparisonOps are the operations registered for rich comparers, in the
// order they are listed on a class.
var comparisonOps = []op.CompareOpType{
	op.Equal,
	op.GreaterThanOrEqual,
	op.LessThanOrEqual,
	op.GreaterThan,
	op.LessThan,
}

var comparisonDocs = map[op.CompareOpType]string{
	op.Equal:              "Check equality with another object",
	op.GreaterThanOrEqual: "Check whether this object sorts at or after another",
	op.LessThanOrEqual:    "Check whether this object sorts at or before another",
	op.GreaterThan:        "Check whether this object sorts after another",
	op.LessThan:           "Check whether this object sorts before another",
}

type richObject interface {
	Object
	RichComparer
}

// defineComparisons registers the five comparison operations of T.
func defineComparisons[T richObject](r *MethodRegistry[T]) {
	for _, cop := range comparisonOps {
		r.Define(cop.Operation()).
			Doc(comparisonDocs[cop]).
			Arg("other").
			Returns("bool").
			Impl(func(self T, _ context.Context, args ...Object) (Object, error) {
				return self.RichCompare(cop, args[0]).Object(), nil
			})
	}
}
