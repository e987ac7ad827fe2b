package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opencampus/campus/internal/identity/store/drivers/sqlite"
	"github.com/opencampus/campus/pkg/cryptox"
	"github.com/opencampus/campus/pkg/jwtx"
	"github.com/opencampus/campus/pkg/rbac"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "identity-service-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestService(t *testing.T) (*UserService, *jwtx.HS256Verifier) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	secret := []byte("unit-test-secret")
	signer, err := jwtx.NewHS256Signer(secret)
	require.NoError(t, err)

	svc := &UserService{Store: st, Signer: signer, Issuer: "campus-identity"}
	return svc, jwtx.NewHS256Verifier(secret, "campus-identity")
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	params := RegisterParams{
		FirstName: "Ana",
		LastName:  "Rojas",
		Username:  "arojas",
		Email:     "A@X.com",
		Password:  "pw1",
	}

	t.Run("creates a student with a lowercased email", func(t *testing.T) {
		user, err := svc.Register(ctx, params)
		require.NoError(t, err)
		require.False(t, user.ID.IsZero())
		require.Equal(t, "a@x.com", user.Email)
		require.Equal(t, rbac.RoleStudent, user.Role)
		require.NotEqual(t, "pw1", user.PasswordHash)
	})

	t.Run("duplicate email conflicts, original survives", func(t *testing.T) {
		dup := params
		dup.Username = "someone-else"
		_, err := svc.Register(ctx, dup)
		require.ErrorIs(t, err, ErrEmailTaken)

		// Case-insensitive collision too.
		dup.Email = "a@x.COM"
		_, err = svc.Register(ctx, dup)
		require.ErrorIs(t, err, ErrEmailTaken)

		stored, err := svc.Store.Users().GetUserByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		require.Equal(t, "arojas", stored.Username)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		dup := params
		dup.Email = "other@x.com"
		_, err := svc.Register(ctx, dup)
		require.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, verifier := newTestService(t)

	registered, err := svc.Register(ctx, RegisterParams{
		FirstName: "Ana",
		LastName:  "Rojas",
		Username:  "arojas",
		Email:     "a@x.com",
		Password:  "pw1",
	})
	require.NoError(t, err)

	t.Run("issues a token encoding the user's id and role", func(t *testing.T) {
		token, user, err := svc.Login(ctx, "a@x.com", "pw1")
		require.NoError(t, err)
		require.Equal(t, registered.ID, user.ID)

		claims, err := verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, registered.ID, claims.SubjectID())
		require.Equal(t, rbac.RoleStudent, claims.Role)
		require.WithinDuration(t, time.Now().Add(jwtx.TokenTTL), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("case-insensitive email lookup", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "A@X.Com", "pw1")
		require.NoError(t, err)
	})

	t.Run("wrong password and unknown email are the same error", func(t *testing.T) {
		_, _, wrongPw := svc.Login(ctx, "a@x.com", "nope")
		require.ErrorIs(t, wrongPw, ErrInvalidCredentials)

		_, _, unknown := svc.Login(ctx, "nobody@x.com", "pw1")
		require.ErrorIs(t, unknown, ErrInvalidCredentials)

		require.Equal(t, wrongPw, unknown)
	})
}
