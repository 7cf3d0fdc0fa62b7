package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campuskit/rollcall/internal/auth/service"
	"github.com/campuskit/rollcall/internal/auth/store/drivers/sqlite"
	"github.com/campuskit/rollcall/pkg/jwtx"
)

const testSecret = "test-signing-secret"

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewHS256([]byte(testSecret))
	require.NoError(t, err)

	r := NewRouter(signer, "test", st, slog.New(slog.DiscardHandler))
	r.AuthService = &service.AuthService{
		Store:    st,
		Signer:   signer,
		TokenTTL: jwtx.TokenTTL,
	}
	r.UserService = &service.UserService{Store: st}
	r.ApplyRoutes()

	return r
}

func doJSON(t *testing.T, h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func registerUser(t *testing.T, h http.Handler, username, password, roleName string) UserResponse {
	t.Helper()

	body, err := json.Marshal(registerRequest{Username: username, Password: password, RoleName: roleName})
	require.NoError(t, err)

	rec := doJSON(t, h, http.MethodPost, "/register", string(body), "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func loginUser(t *testing.T, h http.Handler, username, password string) string {
	t.Helper()

	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	require.NoError(t, err)

	rec := doJSON(t, h, http.MethodPost, "/login", string(body), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token
}

func TestRegisterHandler(t *testing.T) {
	r := newTestRouter(t)

	resp := registerUser(t, r, "alice", "hunter2!", "")
	require.NotZero(t, resp.ID)
	require.Equal(t, "alice", resp.Username)
	require.Equal(t, "student", resp.RoleName)

	resp = registerUser(t, r, "bob", "hunter2!", "teacher")
	require.Equal(t, "teacher", resp.RoleName)
}

func TestRegisterHandler_RoleValidation(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name     string
		roleName string
		wantBody string
	}{
		{
			name:     "admin rejected",
			roleName: "admin",
			wantBody: `{"message":"Role name can not be admin"}`,
		},
		{
			name:     "padded admin rejected",
			roleName: "  admin  ",
			wantBody: `{"message":"Role name can not be admin"}`,
		},
		{
			name:     "long role rejected",
			roleName: strings.Repeat("a", 33),
			wantBody: `{"message":"Role name can not be longer than 32 chars"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(registerRequest{Username: "carol", Password: "hunter2!", RoleName: tt.roleName})
			require.NoError(t, err)

			rec := doJSON(t, r, http.MethodPost, "/register", string(body), "")
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			require.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestRegisterHandler_BadRequests(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/register", "{not json", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/register", `{"password":"hunter2!"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/register", `{"username":"alice"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterHandler_DuplicateUsername(t *testing.T) {
	r := newTestRouter(t)
	registerUser(t, r, "alice", "hunter2!", "")

	body := `{"username":"alice","password":"hunter2!"}`
	rec := doJSON(t, r, http.MethodPost, "/register", body, "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
}

func TestLoginHandler(t *testing.T) {
	r := newTestRouter(t)
	registerUser(t, r, "alice", "hunter2!", "")

	rec := doJSON(t, r, http.MethodPost, "/login", `{"username":"alice","password":"hunter2!"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "alice is back!", resp.Message)

	verifier, err := jwtx.NewHS256([]byte(testSecret))
	require.NoError(t, err)

	claims, err := verifier.Verify(resp.Token)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, "student", claims.RoleName)
	require.Equal(t, jwtx.TokenTTL, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	r := newTestRouter(t)
	registerUser(t, r, "alice", "hunter2!", "")

	// Unknown user and wrong password are indistinguishable to the caller.
	for _, body := range []string{
		`{"username":"nobody","password":"hunter2!"}`,
		`{"username":"alice","password":"wrong"}`,
	} {
		rec := doJSON(t, r, http.MethodPost, "/login", body, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"message":"Invalid credentials"}`, rec.Body.String())
	}
}

func TestUsersList(t *testing.T) {
	r := newTestRouter(t)
	registerUser(t, r, "alice", "hunter2!", "")
	registerUser(t, r, "bob", "hunter2!", "teacher")
	token := loginUser(t, r, "alice", "hunter2!")

	rec := doJSON(t, r, http.MethodGet, "/users", "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var users []UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 2)
	require.Equal(t, "alice", users[0].Username)
	require.Equal(t, "bob", users[1].Username)
}

func TestUsersList_RequiresToken(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/users", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"message":"Token required"}`, rec.Body.String())

	rec = doJSON(t, r, http.MethodGet, "/users", "", "garbage")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"message":"Token invalid"}`, rec.Body.String())
}

func TestUsersGet_AdminGate(t *testing.T) {
	r := newTestRouter(t)
	alice := registerUser(t, r, "alice", "hunter2!", "")
	registerUser(t, r, "root", "hunter2!", "Admin")

	studentToken := loginUser(t, r, "alice", "hunter2!")
	adminToken := loginUser(t, r, "root", "hunter2!")

	rec := doJSON(t, r, http.MethodGet, "/users/1", "", studentToken)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.JSONEq(t, `{"message":"This is not for you"}`, rec.Body.String())

	// "Admin" is a valid stored role but does not satisfy the exact "admin" gate.
	rec = doJSON(t, r, http.MethodGet, "/users/1", "", adminToken)
	require.Equal(t, http.StatusForbidden, rec.Code)

	adminUser := registerAdminDirect(t, r)
	token := loginUser(t, r, adminUser, "hunter2!")

	rec = doJSON(t, r, http.MethodGet, "/users/1", "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, alice.ID, resp.ID)
	require.Equal(t, "alice", resp.Username)
}

// registerAdminDirect seeds an admin through the store, since registration
// refuses the role.
func registerAdminDirect(t *testing.T, r *Router) string {
	t.Helper()

	user, err := r.AuthService.Register(t.Context(), "warden", "hunter2!", "staff")
	require.NoError(t, err)

	_, err = r.store.Users().UpdateUserRole(t.Context(), user.ID, "admin")
	require.NoError(t, err)
	return user.Username
}

func TestUsersGet_MissingHeaderShortCircuits(t *testing.T) {
	r := newTestRouter(t)

	// Authn runs before the role gate, so an absent token never reaches it.
	rec := doJSON(t, r, http.MethodGet, "/users/1", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"message":"Token required"}`, rec.Body.String())
}

func TestUsersGet_NotFound(t *testing.T) {
	r := newTestRouter(t)
	registerAdminDirect(t, r)
	token := loginUser(t, r, "warden", "hunter2!")

	rec := doJSON(t, r, http.MethodGet, "/users/999", "", token)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"message":"User not found"}`, rec.Body.String())

	rec = doJSON(t, r, http.MethodGet, "/users/abc", "", token)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthEndpoints(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/livez", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var live HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &live))
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	rec = doJSON(t, r, http.MethodGet, "/readyz", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var ready HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ready))
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}

func TestExpiredTokenRejected(t *testing.T) {
	r := newTestRouter(t)

	signer, err := jwtx.NewHS256([]byte(testSecret))
	require.NoError(t, err)

	claims := jwtx.NewClaims(1, "alice", "student", jwtx.TokenTTL, time.Now().Add(-25*time.Hour))
	expired, err := signer.Sign(claims)
	require.NoError(t, err)

	rec := doJSON(t, r, http.MethodGet, "/users", "", expired)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"message":"Token invalid"}`, rec.Body.String())
}
