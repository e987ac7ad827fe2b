package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/opencampus/campus/internal/identity/domain"
	"github.com/opencampus/campus/internal/identity/store"
	"github.com/opencampus/campus/pkg/cryptox"
	"github.com/opencampus/campus/pkg/idx"
	"github.com/opencampus/campus/pkg/jwtx"
	"github.com/opencampus/campus/pkg/rbac"
	"github.com/opencampus/campus/pkg/slogx"
)

var (
	// ErrEmailTaken reports a registration against an already-used email or
	// username.
	ErrEmailTaken = errors.New("service: email or username already registered")

	// ErrInvalidCredentials covers both "unknown email" and "wrong password"
	// so a caller cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("service: invalid credentials")
)

// UserService performs registration and login. It owns no state beyond its
// collaborators; every operation is request-scoped.
type UserService struct {
	Store  store.Store
	Signer jwtx.Signer
	Issuer string
}

// RegisterParams is the validated registration input.
type RegisterParams struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

// Register hashes the password and inserts a new Student user. The email is
// lowercased before storage so uniqueness is case-insensitive.
func (s *UserService) Register(ctx context.Context, p RegisterParams) (domain.User, error) {
	hash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New(),
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Username:     p.Username,
		Email:        strings.ToLower(strings.TrimSpace(p.Email)),
		PasswordHash: hash,
		Role:         rbac.RoleStudent,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and issues a signed token snapshotting the
// user's id and role. Unknown email and wrong password are indistinguishable
// to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return "", domain.User{}, ErrInvalidCredentials
		}
		// A stored hash we cannot parse is an operator problem, not a
		// credential problem.
		log.Error("stored password hash is unusable", "user_id", user.ID.String(), "err", err)
		return "", domain.User{}, fmt.Errorf("verify password: %w", err)
	}

	token, err := s.Signer.Sign(jwtx.NewClaims(user.ID, user.Role, s.Issuer, time.Now()))
	if err != nil {
		return "", domain.User{}, fmt.Errorf("sign token: %w", err)
	}

	return token, user, nil
}
