package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/opencampus/campus/internal/identity/domain"
	"github.com/opencampus/campus/pkg/idx"
	"github.com/opencampus/campus/pkg/rbac"
)

type usersRepo struct {
	db *sql.DB
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, first_name, last_name, username, email, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID.String(),
		u.FirstName,
		u.LastName,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.Role.String(),
		u.CreatedAt.UTC().Format(time.RFC3339),
	)
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, username, email, password_hash, role, created_at
		FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id idx.ID) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, username, email, password_hash, role, created_at
		FROM users WHERE id = ?`, id.String())
	return scanUser(row)
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u         domain.User
		id        string
		role      string
		createdAt string
	)
	err := row.Scan(&id, &u.FirstName, &u.LastName, &u.Username, &u.Email, &u.PasswordHash, &role, &createdAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.ID = idx.ID(id)
	u.Role = rbac.Role(role)
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		u.CreatedAt = t
	}
	return u, nil
}
