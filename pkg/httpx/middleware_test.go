package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opencampus/campus/pkg/idx"
	"github.com/opencampus/campus/pkg/jwtx"
	"github.com/opencampus/campus/pkg/rbac"
)

func tagMiddleware(tag string, order *[]string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*order = append(*order, tag)
			next.ServeHTTP(w, r)
		})
	}
}

func TestChainOrder(t *testing.T) {
	var order []string
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), tagMiddleware("outer", &order), tagMiddleware("inner", &order))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestAuthnMiddleware(t *testing.T) {
	secret := []byte("authn-test-secret")
	signer, err := jwtx.NewHS256Signer(secret)
	require.NoError(t, err)
	verifier := jwtx.NewHS256Verifier(secret, "")

	var got VerifiedCaller
	var reached bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, reached = CallerFromContext(r.Context())
	})
	h := Chain(inner, AuthnMiddleware(verifier))

	do := func(authz string) *httptest.ResponseRecorder {
		reached = false
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		if authz != "" {
			req.Header.Set("Authorization", authz)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid token injects the caller", func(t *testing.T) {
		subject := idx.New()
		token, err := signer.Sign(jwtx.NewClaims(subject, rbac.RoleInstructor, "", time.Now()))
		require.NoError(t, err)

		rec := do("Bearer " + token)
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, reached)
		require.Equal(t, subject, got.Subject)
		require.Equal(t, rbac.RoleInstructor, got.Role)
	})

	t.Run("all failure modes share one response", func(t *testing.T) {
		recs := []*httptest.ResponseRecorder{
			do(""),
			do("Basic dXNlcjpwYXNz"),
			do("Bearer "),
			do("Bearer not.a.token"),
		}
		for _, rec := range recs {
			require.False(t, reached)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
			require.JSONEq(t, recs[0].Body.String(), rec.Body.String())
		}
	})
}
