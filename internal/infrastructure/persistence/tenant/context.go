package tenant

import (
	"context"
)

type bypassKey struct{}

// Bypass derives a context whose database operations skip the automatic
// tenant filter and create-stamp. The caller's own context is never
// affected: the capability lives only in the derived context and dies
// with it, so there is no flag to forget to restore.
//
// Only cross-tenant collaborators (partnership, transfer, payment code
// paths that have independently validated the counterparty) may use it.
func Bypass(ctx context.Context) context.Context {
	return context.WithValue(ctx, bypassKey{}, true)
}

// IsBypassed reports whether the context carries the bypass capability
func IsBypassed(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	bypassed, _ := ctx.Value(bypassKey{}).(bool)
	return bypassed
}

// RunUnscoped executes fn with a bypassed context. Scoping on the
// caller's context is structurally untouched on every exit path,
// including panics, because the bypass exists only in the context
// passed to fn.
func RunUnscoped(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(Bypass(ctx))
}
