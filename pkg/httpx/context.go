package httpx

import (
	"context"

	"github.com/opencampus/campus/pkg/idx"
	"github.com/opencampus/campus/pkg/rbac"
)

// VerifiedCaller is the identity reconstructed from a verified token. It is
// the only thing handler logic should consume; handlers never touch the raw
// token.
type VerifiedCaller struct {
	Subject idx.ID
	Role    rbac.Role
}

type ctxKey string

const ctxKeyCaller ctxKey = "verified_caller"

// ContextWithCaller attaches a verified caller to the context.
func ContextWithCaller(ctx context.Context, caller VerifiedCaller) context.Context {
	return context.WithValue(ctx, ctxKeyCaller, caller)
}

// CallerFromContext returns the verified caller, if any. The second return is
// false on unauthenticated requests.
func CallerFromContext(ctx context.Context) (VerifiedCaller, bool) {
	caller, ok := ctx.Value(ctxKeyCaller).(VerifiedCaller)
	return caller, ok
}
