package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campuskit/rollcall/internal/auth/service"
	"github.com/campuskit/rollcall/pkg/httpx"
	"github.com/campuskit/rollcall/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Exchange a username and password for a signed access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		loginRequest	true	"username and password"
//	@Success		200		{object}	LoginResponse	"message, token"
//	@Failure		400		{object}	httpx.Message	"message"
//	@Failure		401		{object}	httpx.Message	"message"
//	@Failure		500		{object}	httpx.Message	"message"
//	@Router			/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, token, err := h.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteMessage(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		log.Error("failed to log in user", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	// Tokens must never land in shared caches
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, LoginResponse{
		Message: user.Username + " is back!",
		Token:   token,
	})
}
