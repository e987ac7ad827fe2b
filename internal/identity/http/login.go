package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/opencampus/campus/internal/identity/service"
	"github.com/opencampus/campus/pkg/httpx"
	"github.com/opencampus/campus/pkg/sdk"
	"github.com/opencampus/campus/pkg/slogx"
)

// LoginHandler serves POST /api/v1/auth/login.
type LoginHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Login
//	@Description	Verifies credentials and returns a signed bearer token valid for 24 hours.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.LoginRequest	true	"Login payload"
//	@Success		200		{object}	sdk.TokenResponse
//	@Failure		400		{object}	sdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	sdk.ErrorResponse	"invalid credentials"
//	@Failure		500		{object}	sdk.ErrorResponse	"error, error_description"
//	@Header			200		{string}	Cache-Control		"no-store"
//	@Router			/api/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req sdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON in request body")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "email and password are required")
		return
	}

	token, _, err := h.UserService.Login(ctx, req.Email, req.Password)
	if err != nil {
		// One response for unknown email and wrong password.
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "Invalid email or password")
			return
		}
		log.Error("login failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Login failed")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, sdk.TokenResponse{Token: token})
}
