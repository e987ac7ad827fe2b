package httpx

import (
	"net/http"
	"strings"

	"github.com/opencampus/campus/pkg/jwtx"
	"github.com/opencampus/campus/pkg/slogx"
)

// AuthnMiddleware verifies the bearer token and injects the resulting
// VerifiedCaller into the request context. A missing header, a garbled
// header and a bad token all yield the same 401 so callers cannot tell the
// failure modes apart.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w)
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("token verification failed", "err", err)
				writeBearerError(w)
				return
			}

			caller := VerifiedCaller{Subject: claims.SubjectID(), Role: claims.Role}
			next.ServeHTTP(w, r.WithContext(ContextWithCaller(ctx, caller)))
		})
	}
}

// RFC 6750 bearer challenge. One body for every authentication failure.
func writeBearerError(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	WriteError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid bearer token")
}
