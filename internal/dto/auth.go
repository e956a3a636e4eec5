package dto

// LoginRequest carries the credentials for a login attempt.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserSummary is the public identity summary returned on login.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// LoginResponse represents the response for a successful login. The token
// pair itself travels in HttpOnly cookies, not in the body.
type LoginResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// MessageResponse is a generic confirmation body (refresh, logout).
type MessageResponse struct {
	Message string `json:"message"`
}
