package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Keep the pepper out of the working directory.
	dir, err := os.MkdirTemp("", "cryptox-test")
	if err != nil {
		panic(err)
	}
	SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestHashVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	for _, password := range []string{"pw1", "SecurePassword123", "", "päss wörd"} {
		hash, err := HashPassword(password)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))
		require.NoError(t, VerifyPassword(password, hash))
	}
}

func TestVerifyRejectsWrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	err = VerifyPassword("wrong-password", hash)
	require.ErrorIs(t, err, ErrMismatch)
}

func TestHashesAreSalted(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same-password")
	require.NoError(t, err)
	h2, err := HashPassword("same-password")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}

func TestVerifyMalformedHashIsNotMismatch(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"not-a-hash",
		"$argon2id$v=19$m=19456,t=2,p=1$onlyfourparts",
		"$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=nope$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!",
	}
	for _, encoded := range cases {
		err := VerifyPassword("whatever", encoded)
		require.Error(t, err, "hash %q", encoded)
		require.NotErrorIs(t, err, ErrMismatch, "hash %q", encoded)
	}
}
