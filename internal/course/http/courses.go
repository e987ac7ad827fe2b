package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/opencampus/campus/internal/course/domain"
	"github.com/opencampus/campus/internal/course/service"
	"github.com/opencampus/campus/pkg/httpx"
	"github.com/opencampus/campus/pkg/idx"
	"github.com/opencampus/campus/pkg/sdk"
	"github.com/opencampus/campus/pkg/slogx"
)

func courseResponse(c domain.Course) sdk.CourseResponse {
	return sdk.CourseResponse{
		ID:           c.ID.String(),
		InstructorID: c.InstructorID.String(),
		Name:         c.Name,
		Description:  c.Description,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
	}
}

// CreateCourseHandler serves POST /api/v1/courses.
type CreateCourseHandler struct {
	CourseService *service.CourseService
}

// ServeHTTP godoc
//
//	@Summary		Create a course
//	@Description	Creates a course owned by the calling instructor. Only the Instructor role may create courses.
//	@Tags			Courses
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		sdk.CreateCourseRequest	true	"Course payload"
//	@Success		201		{object}	sdk.CourseResponse
//	@Failure		400		{object}	sdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	sdk.ErrorResponse	"missing or invalid bearer token"
//	@Failure		403		{object}	sdk.ErrorResponse	"caller is not an instructor"
//	@Failure		500		{object}	sdk.ErrorResponse	"error, error_description"
//	@Router			/api/v1/courses [post].
func (h *CreateCourseHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := httpx.CallerFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	var req sdk.CreateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON in request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "course_name is required")
		return
	}

	course, err := h.CourseService.Create(ctx, caller, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			httpx.WriteError(w, http.StatusForbidden, "forbidden", "Only instructors can create courses")
			return
		}
		log.Error("course creation failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Course creation failed")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, courseResponse(course))
}

// ListCoursesHandler serves GET /api/v1/courses.
type ListCoursesHandler struct {
	CourseService *service.CourseService
}

// ServeHTTP godoc
//
//	@Summary		List courses
//	@Description	Returns all courses in creation order. No authentication required.
//	@Tags			Courses
//	@Produce		json
//	@Success		200	{array}		sdk.CourseResponse
//	@Failure		500	{object}	sdk.ErrorResponse	"error, error_description"
//	@Router			/api/v1/courses [get].
func (h *ListCoursesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	courses, err := h.CourseService.List(ctx)
	if err != nil {
		log.Error("course listing failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Course listing failed")
		return
	}

	out := make([]sdk.CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, courseResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// GetCourseHandler serves GET /api/v1/courses/{id}.
type GetCourseHandler struct {
	CourseService *service.CourseService
}

// ServeHTTP godoc
//
//	@Summary		Get a course
//	@Description	Returns a single course by id. No authentication required.
//	@Tags			Courses
//	@Produce		json
//	@Param			id	path		string	true	"Course id"
//	@Success		200	{object}	sdk.CourseResponse
//	@Failure		404	{object}	sdk.ErrorResponse	"unknown course id"
//	@Failure		500	{object}	sdk.ErrorResponse	"error, error_description"
//	@Router			/api/v1/courses/{id} [get].
func (h *GetCourseHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := idx.Parse(r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Course not found")
		return
	}

	course, err := h.CourseService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Course not found")
			return
		}
		log.Error("course lookup failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Course lookup failed")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, courseResponse(course))
}

// UpdateCourseHandler serves PUT /api/v1/courses/{id}.
type UpdateCourseHandler struct {
	CourseService *service.CourseService
}

// ServeHTTP godoc
//
//	@Summary		Update a course
//	@Description	Partially updates a course. Only the owning instructor may update; omitted fields keep their current values.
//	@Tags			Courses
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"Course id"
//	@Param			request	body		sdk.UpdateCourseRequest	true	"Fields to change"
//	@Success		200		{object}	sdk.CourseResponse
//	@Failure		400		{object}	sdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	sdk.ErrorResponse	"missing or invalid bearer token"
//	@Failure		403		{object}	sdk.ErrorResponse	"caller does not own the course"
//	@Failure		404		{object}	sdk.ErrorResponse	"unknown course id"
//	@Failure		500		{object}	sdk.ErrorResponse	"error, error_description"
//	@Router			/api/v1/courses/{id} [put].
func (h *UpdateCourseHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := httpx.CallerFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	id, err := idx.Parse(r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Course not found")
		return
	}

	var req sdk.UpdateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON in request body")
		return
	}

	course, err := h.CourseService.Update(ctx, caller, id, domain.CourseUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Course not found")
		case errors.Is(err, service.ErrForbidden):
			httpx.WriteError(w, http.StatusForbidden, "forbidden", "Only the course owner can update it")
		default:
			log.Error("course update failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Course update failed")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, courseResponse(course))
}
