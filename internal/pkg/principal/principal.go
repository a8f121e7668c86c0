// Package principal carries the authenticated caller through a request context
// so application services can attribute actions without depending on transport.
package principal

import "context"

type ctxKey struct{}

// Principal is the authenticated caller.
type Principal struct {
	PlayerID int64
	Email    string
	Role     string
}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(Principal)
	return p, ok
}

// EmailOr returns the caller's email, or fallback when the context is anonymous.
func EmailOr(ctx context.Context, fallback string) string {
	if p, ok := FromContext(ctx); ok && p.Email != "" {
		return p.Email
	}
	return fallback
}
