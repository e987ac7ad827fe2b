package domain

import (
	"time"

	"github.com/opencampus/campus/pkg/idx"
	"github.com/opencampus/campus/pkg/rbac"
)

// User is an identity record. Everything except the role is immutable after
// registration; no operation here mutates the role either.
type User struct {
	ID           idx.ID
	FirstName    string
	LastName     string
	Username     string
	Email        string // stored lowercased, unique
	PasswordHash string // argon2id encoded, never serialized outward
	Role         rbac.Role
	CreatedAt    time.Time
}
