package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencampus/campus/pkg/idx"
	"github.com/opencampus/campus/pkg/rbac"
)

func TestDecideCreate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		role    rbac.Role
		allowed bool
	}{
		{rbac.RoleInstructor, true},
		{rbac.RoleStudent, false},
		{rbac.RoleAdmin, false},
		{rbac.Role("Superuser"), false},
	}
	for _, tc := range cases {
		d := decideCreate(tc.role)
		require.Equal(t, tc.allowed, d.Allowed(), "role %s", tc.role)
		if !tc.allowed {
			require.Equal(t, rbac.DenyForbidden, d.Reason())
		}
	}
}

func TestDecideUpdate(t *testing.T) {
	t.Parallel()

	owner := idx.New()
	other := idx.New()

	require.True(t, decideUpdate(owner, owner).Allowed())

	d := decideUpdate(other, owner)
	require.False(t, d.Allowed())
	require.Equal(t, rbac.DenyForbidden, d.Reason())
}
