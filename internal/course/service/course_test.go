package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencampus/campus/internal/course/domain"
	"github.com/opencampus/campus/internal/course/store/drivers/sqlite"
	"github.com/opencampus/campus/pkg/httpx"
	"github.com/opencampus/campus/pkg/idx"
	"github.com/opencampus/campus/pkg/rbac"
)

func newTestService(t *testing.T) *CourseService {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	return &CourseService{Store: st}
}

func instructor() httpx.VerifiedCaller {
	return httpx.VerifiedCaller{Subject: idx.New(), Role: rbac.RoleInstructor}
}

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	t.Run("instructor creates and owns the course", func(t *testing.T) {
		caller := instructor()
		course, err := svc.Create(ctx, caller, "Intro to Go", strPtr("A beginner course."))
		require.NoError(t, err)
		require.Equal(t, caller.Subject, course.InstructorID)
		require.False(t, course.ID.IsZero())

		stored, err := svc.Get(ctx, course.ID)
		require.NoError(t, err)
		require.Equal(t, course.ID, stored.ID)
		require.Equal(t, caller.Subject, stored.InstructorID)
	})

	t.Run("student is forbidden", func(t *testing.T) {
		caller := httpx.VerifiedCaller{Subject: idx.New(), Role: rbac.RoleStudent}
		_, err := svc.Create(ctx, caller, "Nope", nil)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin is forbidden too, no role hierarchy", func(t *testing.T) {
		caller := httpx.VerifiedCaller{Subject: idx.New(), Role: rbac.RoleAdmin}
		_, err := svc.Create(ctx, caller, "Nope", nil)
		require.ErrorIs(t, err, ErrForbidden)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	owner := instructor()
	course, err := svc.Create(ctx, owner, "Intro to Go", strPtr("Original description"))
	require.NoError(t, err)

	t.Run("owner updates only the supplied fields", func(t *testing.T) {
		updated, err := svc.Update(ctx, owner, course.ID, domain.CourseUpdate{
			Name: strPtr("Advanced Go"),
		})
		require.NoError(t, err)
		require.Equal(t, "Advanced Go", updated.Name)
		require.NotNil(t, updated.Description)
		require.Equal(t, "Original description", *updated.Description)
	})

	t.Run("empty update changes nothing", func(t *testing.T) {
		updated, err := svc.Update(ctx, owner, course.ID, domain.CourseUpdate{})
		require.NoError(t, err)
		require.Equal(t, "Advanced Go", updated.Name)
	})

	t.Run("another instructor is forbidden", func(t *testing.T) {
		_, err := svc.Update(ctx, instructor(), course.ID, domain.CourseUpdate{Name: strPtr("Hijacked")})
		require.ErrorIs(t, err, ErrForbidden)

		current, err := svc.Get(ctx, course.ID)
		require.NoError(t, err)
		require.Equal(t, "Advanced Go", current.Name)
	})

	t.Run("a non-owner admin is forbidden", func(t *testing.T) {
		admin := httpx.VerifiedCaller{Subject: idx.New(), Role: rbac.RoleAdmin}
		_, err := svc.Update(ctx, admin, course.ID, domain.CourseUpdate{Name: strPtr("Hijacked")})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("missing course is not found regardless of caller", func(t *testing.T) {
		_, err := svc.Update(ctx, owner, idx.New(), domain.CourseUpdate{Name: strPtr("Ghost")})
		require.ErrorIs(t, err, ErrNotFound)

		_, err = svc.Update(ctx, instructor(), idx.New(), domain.CourseUpdate{Name: strPtr("Ghost")})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetAndList(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Get(ctx, idx.New())
	require.ErrorIs(t, err, ErrNotFound)

	courses, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, courses)

	a, err := svc.Create(ctx, instructor(), "First", nil)
	require.NoError(t, err)
	b, err := svc.Create(ctx, instructor(), "Second", strPtr("desc"))
	require.NoError(t, err)

	courses, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	require.Equal(t, a.ID, courses[0].ID)
	require.Equal(t, b.ID, courses[1].ID)
	require.Nil(t, courses[0].Description)
	require.NotNil(t, courses[1].Description)
}
