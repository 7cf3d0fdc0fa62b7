package http

// Client-facing failure messages for the auth pipeline. The exact wording
// is part of the API contract.
const (
	msgInvalidCredentials = "Invalid credentials"
	msgRoleNameAdmin      = "Role name can not be admin"
	msgRoleNameTooLong    = "Role name can not be longer than 32 chars"
	msgUserNotFound       = "User not found"
	msgServerError        = "Internal server error"
)

// UserResponse is the public view of a user. Password hashes are never
// echoed in any response.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	RoleName string `json:"role_name"`
}

// LoginResponse carries the greeting and the signed token.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// HealthResponse is returned by the livez and readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
