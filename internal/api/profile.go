package api

import (
	"context"
	"net/http"
)

// Preferences are the per-user settings stored behind the profile.
type Preferences struct {
	IsVietnamese bool `json:"isVietnamese"`
	UseRAG       bool `json:"useRAG,omitempty"`
}

// User is the authenticated user's profile.
type User struct {
	ID          string       `json:"id"`
	Email       string       `json:"email"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// UpdateProfileRequest updates names and preferences in one call.
type UpdateProfileRequest struct {
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// preferencesEnvelope wraps the preferences-only endpoint response.
type preferencesEnvelope struct {
	Preferences Preferences `json:"preferences"`
}

// GetProfile fetches the current user's profile.
func (c *Client) GetProfile(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, "get_profile", http.MethodGet, "/profile/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile updates the current user's profile.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) error {
	return c.do(ctx, "update_profile", http.MethodPut, "/profile/", req, nil)
}

// GetPreferences fetches only the preferences block.
func (c *Client) GetPreferences(ctx context.Context) (*Preferences, error) {
	var env preferencesEnvelope
	if err := c.do(ctx, "get_preferences", http.MethodGet, "/profile/preferences", nil, &env); err != nil {
		return nil, err
	}
	return &env.Preferences, nil
}
