package store

import (
	"context"
	"errors"

	"github.com/opencampus/campus/internal/course/domain"
	"github.com/opencampus/campus/pkg/idx"
)

var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface for the course service.
type Store interface {
	Courses() Courses

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Courses interface {
	// CreateCourse inserts a new course (id is provided by the app via ULID).
	CreateCourse(ctx context.Context, c domain.Course) error

	// GetCourseByID returns a course by id, or ErrNotFound.
	GetCourseByID(ctx context.Context, id idx.ID) (domain.Course, error)

	// ListCourses returns all courses, oldest first.
	ListCourses(ctx context.Context) ([]domain.Course, error)

	// UpdateCourse applies a partial update: only non-nil fields change.
	// Returns ErrNotFound when the id does not exist.
	UpdateCourse(ctx context.Context, id idx.ID, update domain.CourseUpdate) error
}
