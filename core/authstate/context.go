package authstate

import "context"

// The facade travels in a context.Context so consumers never reach for an
// ambient global. An unexported empty-struct key prevents collisions.

type authCtxKey struct{}

// WithAuth returns a new context carrying the facade.
func WithAuth(ctx context.Context, f *Facade) context.Context {
	return context.WithValue(ctx, authCtxKey{}, f)
}

// FromContext extracts the facade placed with WithAuth. Requesting it
// outside an auth scope is a programming error and returns ErrNoAuthScope
// rather than a silent empty state.
func FromContext(ctx context.Context) (*Facade, error) {
	f, ok := ctx.Value(authCtxKey{}).(*Facade)
	if !ok || f == nil {
		return nil, ErrNoAuthScope
	}
	return f, nil
}

// MustFromContext is FromContext that panics on misuse. Use it in code paths
// that are unreachable without an established auth scope.
func MustFromContext(ctx context.Context) *Facade {
	f, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return f
}
