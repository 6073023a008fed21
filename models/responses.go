package models

// ErrorResponse is the JSON error body of every API.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// AuthResponse is returned by the backend on register and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// LoginResponse is returned by the gateway on register and login.
type LoginResponse struct {
	SessionID string `json:"session_id"`
	User      User   `json:"user"`
}

// VersionResponse describes the running backend build.
type VersionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}
