package api

import (
	"context"
	"net/http"
)

// TokenPair is the credential pair issued on login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Email       string       `json:"email"`
	Password    string       `json:"password"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	var tokens TokenPair
	err := c.do(ctx, "login", http.MethodPost, "/auth/login", LoginRequest{Email: email, Password: password}, &tokens)
	if err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Register creates a new account. The caller logs in separately afterwards.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, "register", http.MethodPost, "/auth/register", req, nil)
}

// Logout invalidates the current session on the backend.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, "logout", http.MethodPost, "/auth/logout", struct{}{}, nil)
}
