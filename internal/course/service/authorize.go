package service

import (
	"github.com/opencampus/campus/pkg/idx"
	"github.com/opencampus/campus/pkg/rbac"
)

// The authorization decisions are pure functions so they can be reasoned
// about and tested without a store. Creation is role-gated, mutation is
// ownership-gated; being an Instructor is necessary to create a course but
// never sufficient to edit someone else's.

// decideCreate allows course creation for Instructors only. Admin carries no
// implicit instructor privileges.
func decideCreate(role rbac.Role) rbac.Decision {
	switch role {
	case rbac.RoleInstructor:
		return rbac.Allow()
	case rbac.RoleStudent, rbac.RoleAdmin:
		return rbac.Deny(rbac.DenyForbidden)
	}
	return rbac.Deny(rbac.DenyForbidden)
}

// decideUpdate allows mutation only for the owning identity, irrespective of
// role.
func decideUpdate(subject, owner idx.ID) rbac.Decision {
	if subject == owner {
		return rbac.Allow()
	}
	return rbac.Deny(rbac.DenyForbidden)
}
