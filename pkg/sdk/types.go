// Package sdk provides the wire types for the campus HTTP APIs and a small
// client for calling them. The server handlers and the client share these
// shapes so the two cannot drift apart.
package sdk

// ErrorResponse is the standard error envelope returned by every endpoint.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// RegisterRequest is the payload for POST /api/v1/auth/register.
type RegisterRequest struct {
	FirstName string `json:"first_name" example:"Juan"`
	LastName  string `json:"last_name" example:"Allende"`
	Username  string `json:"username" example:"jallende"`
	Email     string `json:"email" example:"juan@example.com"`
	Password  string `json:"password" example:"SecurePassword123"`
}

// UserResponse is the public view of a user. It never carries the password
// hash.
type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// LoginRequest is the payload for POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" example:"juan@example.com"`
	Password string `json:"password" example:"SecurePassword123"`
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// CreateCourseRequest is the payload for POST /api/v1/courses.
type CreateCourseRequest struct {
	Name        string  `json:"course_name" example:"Introduction to Go"`
	Description *string `json:"course_description,omitempty" example:"A beginner course on the Go programming language."`
}

// UpdateCourseRequest is the payload for PUT /api/v1/courses/{id}. Only the
// supplied fields are changed.
type UpdateCourseRequest struct {
	Name        *string `json:"course_name,omitempty"`
	Description *string `json:"course_description,omitempty"`
}

// CourseResponse is the public view of a course.
type CourseResponse struct {
	ID           string  `json:"id"`
	InstructorID string  `json:"instructor_id"`
	Name         string  `json:"course_name"`
	Description  *string `json:"course_description,omitempty"`
	CreatedAt    string  `json:"course_created_at,omitempty"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}
