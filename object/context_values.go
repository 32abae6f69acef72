package object

import (
	"context"
)

type contextKey string

const limitsKey = contextKey("byteobj:limits")

// Limits bounds the resources a single construction may use.
type Limits struct {
	// MaxBytesSize is the largest bytes object that may be constructed.
	// Zero means unlimited.
	MaxBytesSize int64
}

// WithLimits adds construction limits to the context.
func WithLimits(ctx context.Context, limits Limits) context.Context {
	return context.WithValue(ctx, limitsKey, limits)
}

// GetLimits returns the limits from the context, if any were set.
func GetLimits(ctx context.Context) (Limits, bool) {
	limits, ok := ctx.Value(limitsKey).(Limits)
	return limits, ok
}

func checkSize(ctx context.Context, size int64) error {
	limits, ok := GetLimits(ctx)
	if !ok || limits.MaxBytesSize <= 0 {
		return nil
	}
	if size > limits.MaxBytesSize {
		return ValueErrorf("bytes size %d exceeds the limit of %d", size, limits.MaxBytesSize)
	}
	return nil
}
