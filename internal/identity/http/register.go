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

// RegisterHandler serves POST /api/v1/auth/register.
type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Register a new user
//	@Description	Creates a new user account with the Student role. Emails are unique case-insensitively.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.RegisterRequest	true	"Registration payload"
//	@Success		201		{object}	sdk.UserResponse
//	@Failure		400		{object}	sdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	sdk.ErrorResponse	"email or username already in use"
//	@Failure		500		{object}	sdk.ErrorResponse	"error, error_description"
//	@Router			/api/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req sdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON in request body")
		return
	}

	for field, value := range map[string]string{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"username":   req.Username,
		"email":      req.Email,
		"password":   req.Password,
	} {
		if strings.TrimSpace(value) == "" {
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", field+" is required")
			return
		}
	}

	user, err := h.UserService.Register(ctx, service.RegisterParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			httpx.WriteError(w, http.StatusConflict, "conflict", "Email or username already in use")
			return
		}
		log.Error("registration failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Registration failed")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, sdk.UserResponse{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role.String(),
	})
}
