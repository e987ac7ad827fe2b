package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is anything that can turn claims into a signed compact token.
type Signer interface {
	Sign(Claims) (string, error)
}

// HS256Signer signs tokens with a symmetric secret. The secret is loaded once
// per process lifetime and never rotated while running.
type HS256Signer struct {
	secret []byte
}

func NewHS256Signer(secret []byte) (*HS256Signer, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty signing secret")
	}
	return &HS256Signer{secret: secret}, nil
}

// Sign produces the three-segment base64url compact form.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return token, nil
}
