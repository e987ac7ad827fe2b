package store

import (
	"context"
	"errors"

	"github.com/opencampus/campus/internal/identity/domain"
	"github.com/opencampus/campus/pkg/idx"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface for the identity service. Concrete
// drivers (sqlite today) implement it.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists on an email or username collision; it never
	// overwrites.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByEmail looks up a user by lowercased email, for login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id idx.ID) (domain.User, error)
}
