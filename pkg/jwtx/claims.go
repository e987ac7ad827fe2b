// Package jwtx issues and verifies the signed identity tokens shared by the
// campus services. Tokens are HS256-signed with a symmetric secret known only
// to the issuing and verifying processes, and are fully self-contained: no
// server-side session or revocation lookup exists.
package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/opencampus/campus/pkg/idx"
	"github.com/opencampus/campus/pkg/rbac"
)

// TokenTTL is the fixed validity window for issued tokens. Not configurable
// per call.
const TokenTTL = 24 * time.Hour

// Claims are the signed token payload: the subject's id and a snapshot of
// their role at issuance time. A later role change does not affect tokens
// already in the wild until they expire.
type Claims struct {
	jwt.RegisteredClaims

	Role rbac.Role `json:"role"`
}

// NewClaims builds claims for a verified identity, expiring TokenTTL after
// now.
func NewClaims(subject idx.ID, role rbac.Role, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			ID:        uuid.NewString(),
		},
		Role: role,
	}
}

// Validate performs the structural check: the subject must be a well-formed
// id, the role one of the closed enumeration, and an expiry must be present.
func (c Claims) Validate() error {
	if _, err := idx.Parse(c.Subject); err != nil {
		return ErrInvalidClaim
	}
	if !c.Role.Valid() {
		return ErrInvalidClaim
	}
	if c.ExpiresAt == nil {
		return ErrInvalidClaim
	}
	return nil
}

// SubjectID returns the subject as a typed id. Call only after Validate.
func (c Claims) SubjectID() idx.ID {
	return idx.ID(c.Subject)
}
