package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client calls the campus services. Identity and course endpoints live on
// separate base URLs since the services deploy independently.
type Client struct {
	IdentityURL string
	CourseURL   string
	HTTPClient  *http.Client
}

// NewClient builds a client with a sane default timeout.
func NewClient(identityURL, courseURL string) *Client {
	return &Client{
		IdentityURL: strings.TrimSuffix(identityURL, "/"),
		CourseURL:   strings.TrimSuffix(courseURL, "/"),
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Register creates a new user account. Duplicate emails yield an *APIError
// with status 409.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	var user UserResponse
	err := c.do(ctx, http.MethodPost, c.IdentityURL+"/api/v1/auth/register", "", req, &user, http.StatusCreated)
	return user, err
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	var token TokenResponse
	err := c.do(ctx, http.MethodPost, c.IdentityURL+"/api/v1/auth/login", "", req, &token, http.StatusOK)
	return token, err
}

// CreateCourse creates a course owned by the token's subject. Requires an
// Instructor token.
func (c *Client) CreateCourse(ctx context.Context, token string, req CreateCourseRequest) (CourseResponse, error) {
	var course CourseResponse
	err := c.do(ctx, http.MethodPost, c.CourseURL+"/api/v1/courses", token, req, &course, http.StatusCreated)
	return course, err
}

// ListCourses returns all courses. No authentication required.
func (c *Client) ListCourses(ctx context.Context) ([]CourseResponse, error) {
	var courses []CourseResponse
	err := c.do(ctx, http.MethodGet, c.CourseURL+"/api/v1/courses", "", nil, &courses, http.StatusOK)
	return courses, err
}

// GetCourse returns a single course by id. No authentication required.
func (c *Client) GetCourse(ctx context.Context, id string) (CourseResponse, error) {
	var course CourseResponse
	err := c.do(ctx, http.MethodGet, c.CourseURL+"/api/v1/courses/"+id, "", nil, &course, http.StatusOK)
	return course, err
}

// UpdateCourse updates the supplied fields of a course. Only the owning
// instructor's token is accepted.
func (c *Client) UpdateCourse(ctx context.Context, token, id string, req UpdateCourseRequest) (CourseResponse, error) {
	var course CourseResponse
	err := c.do(ctx, http.MethodPut, c.CourseURL+"/api/v1/courses/"+id, token, req, &course, http.StatusOK)
	return course, err
}

// do sends one request and decodes either the expected response or the error
// envelope.
func (c *Client) do(ctx context.Context, method, url, token string, body, out any, wantStatus int) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("sdk: encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("sdk: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("sdk: send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != wantStatus {
		return apiErrorFrom(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("sdk: decode response: %w", err)
	}
	return nil
}
