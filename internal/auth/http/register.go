package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campuskit/rollcall/internal/auth/domain"
	"github.com/campuskit/rollcall/internal/auth/service"
	"github.com/campuskit/rollcall/pkg/httpx"
	"github.com/campuskit/rollcall/pkg/slogx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	RoleName string `json:"role_name"`
}

// ServeHTTP godoc
//
//	@Summary		Register Endpoint
//	@Description	Create a new user account. A blank role defaults to "student".
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		registerRequest	true	"username, password and optional role_name"
//	@Success		201		{object}	UserResponse	"id, username, role_name"
//	@Failure		400		{object}	httpx.Message	"message"
//	@Failure		422		{object}	httpx.Message	"message"
//	@Failure		500		{object}	httpx.Message	"message"
//	@Router			/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "username is required")
		return
	}
	if req.Password == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "password is required")
		return
	}

	user, err := h.AuthService.Register(ctx, req.Username, req.Password, req.RoleName)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoleNameAdmin):
			httpx.WriteMessage(w, http.StatusUnprocessableEntity, msgRoleNameAdmin)
		case errors.Is(err, domain.ErrRoleNameTooLong):
			httpx.WriteMessage(w, http.StatusUnprocessableEntity, msgRoleNameTooLong)
		default:
			log.Error("failed to register user", "err", err)
			httpx.WriteMessage(w, http.StatusInternalServerError, msgServerError)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, UserResponse{
		ID:       user.ID,
		Username: user.Username,
		RoleName: user.RoleName,
	})
}
