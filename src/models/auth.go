package models

// LoginRequest represents the body of a login request.
// Project and domain are optional; blank values fall back to the sample
// deployment defaults during normalization.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Project  string `json:"project"`
	Domain   string `json:"domain"`
}

// AuthResponse represents the response after a login attempt.
type AuthResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	User    *UserInfo `json:"user,omitempty"`
}

// UserInfo represents the identity Keystone reported for a session.
type UserInfo struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Domain  string       `json:"domain"`
	Project *ProjectInfo `json:"project,omitempty"`
	Roles   []string     `json:"roles"`
}

// ProjectInfo represents the project scope of an authenticated session.
type ProjectInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

// AuthStatusResponse reports whether the caller currently holds a session.
type AuthStatusResponse struct {
	Authenticated bool   `json:"authenticated"`
	SessionID     string `json:"sessionId"`
}

// LogoutResponse confirms session invalidation.
type LogoutResponse struct {
	Message string `json:"message"`
}
