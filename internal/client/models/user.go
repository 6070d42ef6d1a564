// Package models defines the payloads exchanged with the SuperApp backend.
// Field names mirror the backend's JSON one-to-one; the client never reshapes
// a response body.
package models

// User is the authenticated identity held by the session.
type User struct {
	ID              string  `json:"id"`
	Email           string  `json:"email"`
	Username        string  `json:"username"`
	TokenBalance    int64   `json:"token_balance"`
	ReputationScore float64 `json:"reputation_score"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse covers both auth endpoints. Registration answers with
// user_id and token, login with token, refresh_token and user; absent
// fields stay zero.
type AuthResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	UserID       string `json:"user_id,omitempty"`
	User         *User  `json:"user,omitempty"`
}
