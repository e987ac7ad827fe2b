package rbac

// DenyReason distinguishes why a decision denied the operation. NotFound is a
// deliberate member: for mutations the existence check runs before the
// ownership check so a missing resource never leaks who owns what.
type DenyReason string

const (
	DenyForbidden DenyReason = "forbidden"
	DenyNotFound  DenyReason = "not_found"
)

// Decision is the outcome of an authorization check. The zero value denies.
type Decision struct {
	allowed bool
	reason  DenyReason
}

// Allow is the single allowing decision.
func Allow() Decision { return Decision{allowed: true} }

// Deny produces a denying decision with the given reason.
func Deny(reason DenyReason) Decision { return Decision{reason: reason} }

// Allowed reports whether the operation may proceed.
func (d Decision) Allowed() bool { return d.allowed }

// Reason returns the deny reason. Only meaningful when Allowed is false.
func (d Decision) Reason() DenyReason { return d.reason }
