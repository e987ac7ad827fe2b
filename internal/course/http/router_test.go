package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	httpapi "github.com/opencampus/campus/internal/course/http"
	"github.com/opencampus/campus/internal/course/service"
	"github.com/opencampus/campus/internal/course/store/drivers/sqlite"
	"github.com/opencampus/campus/pkg/idx"
	"github.com/opencampus/campus/pkg/jwtx"
	"github.com/opencampus/campus/pkg/rbac"
	"github.com/opencampus/campus/pkg/sdk"
)

const (
	testSecret = "router-test-secret"
	testIssuer = "campus-identity"
)

type testEnv struct {
	client *sdk.Client
	signer *jwtx.HS256Signer
}

func newTestServer(t *testing.T) testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewHS256Signer([]byte(testSecret))
	require.NoError(t, err)
	verifier := jwtx.NewHS256Verifier([]byte(testSecret), testIssuer)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := httpapi.NewRouter("test", st, verifier, logger)
	router.CourseService = &service.CourseService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return testEnv{
		client: sdk.NewClient("", srv.URL),
		signer: signer,
	}
}

func (e testEnv) tokenFor(t *testing.T, subject idx.ID, role rbac.Role) string {
	t.Helper()
	token, err := e.signer.Sign(jwtx.NewClaims(subject, role, testIssuer, time.Now()))
	require.NoError(t, err)
	return token
}

func strPtr(s string) *string { return &s }

func requireAPIError(t *testing.T, err error, status int) *sdk.APIError {
	t.Helper()
	var apiErr *sdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	return apiErr
}

func TestCreateCourseEndpoint(t *testing.T) {
	ctx := context.Background()
	env := newTestServer(t)

	req := sdk.CreateCourseRequest{
		Name:        "Introduction to Go",
		Description: strPtr("A beginner course."),
	}

	t.Run("no token is unauthorized", func(t *testing.T) {
		_, err := env.client.CreateCourse(ctx, "", req)
		requireAPIError(t, err, 401)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		_, err := env.client.CreateCourse(ctx, "not-a-token", req)
		requireAPIError(t, err, 401)
	})

	t.Run("expired token is unauthorized", func(t *testing.T) {
		token, err := env.signer.Sign(jwtx.NewClaims(idx.New(), rbac.RoleInstructor, testIssuer,
			time.Now().Add(-25*time.Hour)))
		require.NoError(t, err)
		_, err = env.client.CreateCourse(ctx, token, req)
		requireAPIError(t, err, 401)
	})

	t.Run("student token is forbidden", func(t *testing.T) {
		token := env.tokenFor(t, idx.New(), rbac.RoleStudent)
		_, err := env.client.CreateCourse(ctx, token, req)
		requireAPIError(t, err, 403)
	})

	t.Run("instructor token creates an owned course", func(t *testing.T) {
		instructorID := idx.New()
		token := env.tokenFor(t, instructorID, rbac.RoleInstructor)

		course, err := env.client.CreateCourse(ctx, token, req)
		require.NoError(t, err)
		require.Equal(t, instructorID.String(), course.InstructorID)
		require.Equal(t, "Introduction to Go", course.Name)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		token := env.tokenFor(t, idx.New(), rbac.RoleInstructor)
		_, err := env.client.CreateCourse(ctx, token, sdk.CreateCourseRequest{Name: "  "})
		requireAPIError(t, err, 400)
	})
}

func TestReadCourseEndpoints(t *testing.T) {
	ctx := context.Background()
	env := newTestServer(t)

	token := env.tokenFor(t, idx.New(), rbac.RoleInstructor)
	created, err := env.client.CreateCourse(ctx, token, sdk.CreateCourseRequest{Name: "Networks"})
	require.NoError(t, err)

	t.Run("list is public", func(t *testing.T) {
		courses, err := env.client.ListCourses(ctx)
		require.NoError(t, err)
		require.Len(t, courses, 1)
		require.Equal(t, created.ID, courses[0].ID)
	})

	t.Run("get is public", func(t *testing.T) {
		course, err := env.client.GetCourse(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, "Networks", course.Name)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := env.client.GetCourse(ctx, idx.New().String())
		requireAPIError(t, err, 404)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		_, err := env.client.GetCourse(ctx, "definitely-not-an-id")
		requireAPIError(t, err, 404)
	})
}

func TestUpdateCourseEndpoint(t *testing.T) {
	ctx := context.Background()
	env := newTestServer(t)

	ownerID := idx.New()
	ownerToken := env.tokenFor(t, ownerID, rbac.RoleInstructor)
	created, err := env.client.CreateCourse(ctx, ownerToken, sdk.CreateCourseRequest{
		Name:        "Databases",
		Description: strPtr("Relational systems."),
	})
	require.NoError(t, err)

	t.Run("owner updates a single field", func(t *testing.T) {
		updated, err := env.client.UpdateCourse(ctx, ownerToken, created.ID, sdk.UpdateCourseRequest{
			Description: strPtr("Relational and document systems."),
		})
		require.NoError(t, err)
		require.Equal(t, "Databases", updated.Name)
		require.NotNil(t, updated.Description)
		require.Equal(t, "Relational and document systems.", *updated.Description)
	})

	t.Run("no token is unauthorized", func(t *testing.T) {
		_, err := env.client.UpdateCourse(ctx, "", created.ID, sdk.UpdateCourseRequest{
			Name: strPtr("Hijacked"),
		})
		requireAPIError(t, err, 401)
	})

	t.Run("another instructor is forbidden", func(t *testing.T) {
		otherToken := env.tokenFor(t, idx.New(), rbac.RoleInstructor)
		_, err := env.client.UpdateCourse(ctx, otherToken, created.ID, sdk.UpdateCourseRequest{
			Name: strPtr("Hijacked"),
		})
		requireAPIError(t, err, 403)
	})

	t.Run("admin token is forbidden", func(t *testing.T) {
		adminToken := env.tokenFor(t, idx.New(), rbac.RoleAdmin)
		_, err := env.client.UpdateCourse(ctx, adminToken, created.ID, sdk.UpdateCourseRequest{
			Name: strPtr("Hijacked"),
		})
		requireAPIError(t, err, 403)
	})

	t.Run("unknown id is not found even for a non-owner", func(t *testing.T) {
		otherToken := env.tokenFor(t, idx.New(), rbac.RoleInstructor)
		_, err := env.client.UpdateCourse(ctx, otherToken, idx.New().String(), sdk.UpdateCourseRequest{
			Name: strPtr("Ghost"),
		})
		requireAPIError(t, err, 404)
	})
}
