package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/campuskit/rollcall/internal/auth/service"
	"github.com/campuskit/rollcall/internal/auth/store"
	"github.com/campuskit/rollcall/pkg/httpx"
	"github.com/campuskit/rollcall/pkg/slogx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleList godoc
//
//	@Summary		List Users Endpoint
//	@Description	List all registered user accounts.
//	@Tags			Users
//	@Produce		json
//	@Security		TokenAuth
//	@Success		200	{array}		UserResponse	"id, username, role_name"
//	@Failure		401	{object}	httpx.Message	"message"
//	@Failure		500	{object}	httpx.Message	"message"
//	@Router			/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.UserService.ListUsers(ctx)
	if err != nil {
		log.Error("failed to list users", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserResponse{
			ID:       u.ID,
			Username: u.Username,
			RoleName: u.RoleName,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Get User Endpoint
//	@Description	Fetch a single user account by ID. Admin role required.
//	@Tags			Users
//	@Produce		json
//	@Security		TokenAuth
//	@Param			id	path		int				true	"User ID"
//	@Success		200	{object}	UserResponse	"id, username, role_name"
//	@Failure		401	{object}	httpx.Message	"message"
//	@Failure		403	{object}	httpx.Message	"message"
//	@Failure		404	{object}	httpx.Message	"message"
//	@Failure		500	{object}	httpx.Message	"message"
//	@Router			/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteMessage(w, http.StatusNotFound, msgUserNotFound)
		return
	}

	user, err := h.UserService.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteMessage(w, http.StatusNotFound, msgUserNotFound)
			return
		}
		log.Error("failed to get user", "err", err, "user_id", id)
		httpx.WriteMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, UserResponse{
		ID:       user.ID,
		Username: user.Username,
		RoleName: user.RoleName,
	})
}
