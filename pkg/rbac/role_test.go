package rbac

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Parallel()

	t.Run("accepts canonical names", func(t *testing.T) {
		for _, s := range []string{"Student", "Instructor", "Admin"} {
			role, err := ParseRole(s)
			require.NoError(t, err)
			require.Equal(t, s, role.String())
		}
	})

	t.Run("rejects case variants and unknowns", func(t *testing.T) {
		for _, s := range []string{"student", "ADMIN", "Instructor ", "", "root"} {
			_, err := ParseRole(s)
			require.Error(t, err, "role %q should not parse", s)
		}
	})
}

func TestDecision(t *testing.T) {
	t.Parallel()

	require.True(t, Allow().Allowed())
	require.False(t, Deny(DenyForbidden).Allowed())
	require.Equal(t, DenyForbidden, Deny(DenyForbidden).Reason())
	require.Equal(t, DenyNotFound, Deny(DenyNotFound).Reason())

	var zero Decision
	require.False(t, zero.Allowed())
}
