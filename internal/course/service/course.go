package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/opencampus/campus/internal/course/domain"
	"github.com/opencampus/campus/internal/course/store"
	"github.com/opencampus/campus/pkg/httpx"
	"github.com/opencampus/campus/pkg/idx"
)

var (
	// ErrForbidden reports an authenticated caller lacking the role or the
	// ownership the operation demands.
	ErrForbidden = errors.New("service: forbidden")

	// ErrNotFound reports a missing course. Deliberately distinct from
	// ErrForbidden; the reverse would leak resource existence.
	ErrNotFound = errors.New("service: course not found")
)

// CourseService gates course operations behind the authorization decisions
// and delegates storage to the store.
type CourseService struct {
	Store store.Store
}

// Create makes a new course owned by the caller. Only Instructors may
// create; the owner is always the verified subject, never caller-supplied.
func (s *CourseService) Create(ctx context.Context, caller httpx.VerifiedCaller, name string, description *string) (domain.Course, error) {
	if d := decideCreate(caller.Role); !d.Allowed() {
		return domain.Course{}, ErrForbidden
	}

	course := domain.Course{
		ID:           idx.New(),
		InstructorID: caller.Subject,
		Name:         name,
		Description:  description,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Store.Courses().CreateCourse(ctx, course); err != nil {
		return domain.Course{}, fmt.Errorf("create course: %w", err)
	}
	return course, nil
}

// Get returns a course by id. Open to any caller.
func (s *CourseService) Get(ctx context.Context, id idx.ID) (domain.Course, error) {
	course, err := s.Store.Courses().GetCourseByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Course{}, ErrNotFound
		}
		return domain.Course{}, fmt.Errorf("get course: %w", err)
	}
	return course, nil
}

// List returns all courses. Open to any caller.
func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.Store.Courses().ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// Update applies a partial update to a course. The order is fixed: existence
// first, then ownership, then the write. A missing course never reveals
// ownership and a wrong-owner request never writes.
func (s *CourseService) Update(ctx context.Context, caller httpx.VerifiedCaller, id idx.ID, update domain.CourseUpdate) (domain.Course, error) {
	current, err := s.Store.Courses().GetCourseByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Course{}, ErrNotFound
		}
		return domain.Course{}, fmt.Errorf("check course: %w", err)
	}

	if d := decideUpdate(caller.Subject, current.InstructorID); !d.Allowed() {
		return domain.Course{}, ErrForbidden
	}

	if !update.Empty() {
		if err := s.Store.Courses().UpdateCourse(ctx, id, update); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Course{}, ErrNotFound
			}
			return domain.Course{}, fmt.Errorf("update course: %w", err)
		}
	}

	updated, err := s.Store.Courses().GetCourseByID(ctx, id)
	if err != nil {
		return domain.Course{}, fmt.Errorf("reload course: %w", err)
	}
	return updated, nil
}
