package vm

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/byteobj/object"
	"github.com/deepnoodle-ai/byteobj/op"
)

// Compare evaluates a comparison between a and b.
//
// The operation for cop is first looked up on a. If a does not define it,
// or returns NotImplemented, the reflected operation is tried on b. If
// neither applies, equality falls back to identity and ordering fails with
// a TypeError. A missing "ne" operation is derived from "eq".
func Compare(ctx context.Context, cop op.CompareOpType, a, b object.Object) (bool, error) {
	log := zerolog.Ctx(ctx)

	result, err := compareDirect(ctx, cop, a, b)
	if err != nil {
		return false, err
	}
	if result.IsApplicable() {
		return result.Value(), nil
	}

	reflected := cop.Reflect()
	log.Trace().
		Str("op", cop.Operation()).
		Str("left", describe(a)).
		Str("right", describe(b)).
		Str("reflected", reflected.Operation()).
		Msg("comparison not implemented, trying reflected operation")

	result, err = compareDirect(ctx, reflected, b, a)
	if err != nil {
		return false, err
	}
	if result.IsApplicable() {
		return result.Value(), nil
	}

	switch cop {
	case op.Equal:
		log.Trace().Str("left", describe(a)).Str("right", describe(b)).Msg("comparing by identity")
		return a == b, nil
	case op.NotEqual:
		log.Trace().Str("left", describe(a)).Str("right", describe(b)).Msg("comparing by identity")
		return a != b, nil
	}
	return false, object.TypeErrorf("'%s' not supported between instances of '%s' and '%s'",
		cop, describe(a), describe(b))
}

// compareDirect calls self's operation for cop with other as the argument.
func compareDirect(ctx context.Context, cop op.CompareOpType, self, other object.Object) (object.CompareResult, error) {
	name := cop.Operation()
	m, err := lookup(self, name)
	if err != nil {
		return object.NotApplicable, err
	}
	if m == nil && cop == op.NotEqual {
		result, err := compareDirect(ctx, op.Equal, self, other)
		if err != nil || !result.IsApplicable() {
			return result, err
		}
		return object.Applicable(!result.Value()), nil
	}
	if m == nil {
		return object.NotApplicable, nil
	}
	value, err := Call(ctx, self, name, other)
	if err != nil {
		return object.NotApplicable, err
	}
	return object.CompareResultOf(value), nil
}

// Equal reports whether a and b are equal under the comparison protocol.
func Equal(ctx context.Context, a, b object.Object) (bool, error) {
	return Compare(ctx, op.Equal, a, b)
}
