package flcore

import "context"

type ctxKey struct{}

func TryFromContext(ctx context.Context) (Logger, bool) {
	v, ok := ctx.Value(ctxKey{}).(Logger)
	return v, ok
}

// FromContext returns the Logger in ctx, or Discard() if there is none.
func FromContext(ctx context.Context) Logger {
	if l, ok := TryFromContext(ctx); ok {
		return l
	}
	return Discard()
}

func NewContext(parent context.Context, logger Logger) context.Context {
	return context.WithValue(parent, ctxKey{}, logger)
}
