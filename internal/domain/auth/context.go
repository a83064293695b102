package auth

import "context"

// Operator identifies the authenticated staff member for the current
// request. The service runs behind a single shared credential, so the
// operator carries a label rather than a per-user identity.
type Operator struct {
	Name string
}

type contextKey struct{}

// NewContext returns ctx with the operator attached. The HTTP auth
// middleware calls this; use cases read it back for logging.
func NewContext(ctx context.Context, op Operator) context.Context {
	return context.WithValue(ctx, contextKey{}, op)
}

// FromContext returns the operator on ctx, if any.
func FromContext(ctx context.Context) (Operator, bool) {
	op, ok := ctx.Value(contextKey{}).(Operator)
	return op, ok
}
