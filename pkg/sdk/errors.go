package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response decoded into the standard error envelope.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("campus api: %d %s: %s", e.StatusCode, e.Code, e.Description)
	}
	return fmt.Sprintf("campus api: %d %s", e.StatusCode, e.Code)
}

// apiErrorFrom decodes the error envelope from resp. The body may be empty
// or unparseable; the status code alone is still meaningful.
func apiErrorFrom(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, Code: http.StatusText(resp.StatusCode)}

	var envelope ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != "" {
		apiErr.Code = envelope.Error
		apiErr.Description = envelope.ErrorDescription
	}
	return apiErr
}
