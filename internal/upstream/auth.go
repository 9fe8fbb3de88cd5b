package upstream

import (
	"context"
	"net/http"
)

const (
	loginPath    = "/api/user_login.php"
	registerPath = "/api/user_register.php"
)

// AuthResult is the backend's response to a successful login or register.
type AuthResult struct {
	SessionToken string `json:"session_token"`
	UserID       int64  `json:"user_id"`
	Username     string `json:"username"`
	UserType     string `json:"user_type"`
	Avatar       string `json:"avatar"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the register payload.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials against the backend.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	var resp struct {
		envelope
		AuthResult
	}
	if err := c.do(ctx, http.MethodPost, loginPath, nil, creds, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, apiError(resp.envelope, "Invalid email or password")
	}
	return &resp.AuthResult, nil
}

// Register creates a new account on the backend.
func (c *Client) Register(ctx context.Context, reg Registration) (*AuthResult, error) {
	var resp struct {
		envelope
		AuthResult
	}
	if err := c.do(ctx, http.MethodPost, registerPath, nil, reg, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, apiError(resp.envelope, "Failed to register")
	}
	return &resp.AuthResult, nil
}
