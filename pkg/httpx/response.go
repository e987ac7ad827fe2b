package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/opencampus/campus/pkg/sdk"
)

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache marks the response as non-cacheable. Required for token responses.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// WriteError writes the standard error envelope. Internal details never go in
// here; log them instead.
func WriteError(w http.ResponseWriter, code int, errCode, description string) {
	WriteJSON(w, code, sdk.ErrorResponse{
		Error:            errCode,
		ErrorDescription: description,
	})
}
