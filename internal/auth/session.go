package auth

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Crusty-Banana/medbot-client/internal/api"
)

// Session drives the login/logout flows against the backend and keeps the
// store in sync.
type Session struct {
	store *Store
	api   *api.Client
	log   zerolog.Logger
}

// NewSession wires a session over the given store and backend client.
func NewSession(store *Store, client *api.Client, log zerolog.Logger) *Session {
	return &Session{
		store: store,
		api:   client,
		log:   log.With().Str("component", "auth").Logger(),
	}
}

// Login exchanges credentials for tokens and caches the profile. On any
// failure after the token exchange, the tokens stay stored so the user is
// still signed in; the profile is fetched again on next use.
func (s *Session) Login(ctx context.Context, email, password string) (*api.User, error) {
	tokens, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetTokens(tokens.AccessToken, tokens.RefreshToken); err != nil {
		return nil, err
	}
	s.log.Info().Str("email", email).Msg("Logged in")

	user, err := s.FetchProfile(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("Logged in but profile fetch failed")
		return nil, nil
	}
	return user, nil
}

// FetchProfile refreshes the cached profile from the backend. When the
// backend rejects the token, local state is cleared — same as the web
// client's logout-on-profile-failure behavior.
func (s *Session) FetchProfile(ctx context.Context) (*api.User, error) {
	user, err := s.api.GetProfile(ctx)
	if err != nil {
		if apiErr, ok := err.(*api.APIError); ok && apiErr.IsAuthError() {
			s.log.Warn().Msg("Token rejected, clearing local session")
			if clearErr := s.store.Clear(); clearErr != nil {
				s.log.Error().Err(clearErr).Msg("Failed to clear credentials")
			}
		}
		return nil, err
	}
	if err := s.store.SetProfile(user); err != nil {
		return nil, fmt.Errorf("cache profile: %w", err)
	}
	return user, nil
}

// CurrentUser returns the cached profile, fetching it when missing.
func (s *Session) CurrentUser(ctx context.Context) (*api.User, error) {
	user, err := s.store.Profile()
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}
	return s.FetchProfile(ctx)
}

// Logout tells the backend to invalidate the session and always clears
// local state, even when the backend call fails.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		s.log.Warn().Err(err).Msg("Backend logout failed, clearing local state anyway")
	}
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.log.Info().Msg("Logged out")
	return nil
}
