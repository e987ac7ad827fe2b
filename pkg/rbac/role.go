// Package rbac defines the closed role enumeration and the allow/deny
// decision type used by authorization checks across services. Roles carry no
// implicit hierarchy: Admin is not a superset of Instructor.
package rbac

import "fmt"

// Role is the closed set of user roles. The wire representation is the exact
// case-sensitive name, matching both the users table and the "role" token
// claim.
type Role string

const (
	RoleStudent    Role = "Student"
	RoleInstructor Role = "Instructor"
	RoleAdmin      Role = "Admin"
)

// ParseRole validates a wire value against the closed enumeration.
// Comparison is exact; "student" is not a role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("rbac: unknown role %q", s)
}

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

func (r Role) String() string { return string(r) }
