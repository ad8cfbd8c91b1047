// Package auth keeps the client's only durable local state: the token pair
// issued at login and a cached copy of the user profile. Everything else
// lives behind the backend.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Crusty-Banana/medbot-client/internal/api"
)

// Credentials is what gets written to the credentials file.
type Credentials struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	Profile      *api.User `json:"profile,omitempty"`
}

// ErrNotAuthenticated is returned when no token pair is stored.
var ErrNotAuthenticated = errors.New("not logged in")

// Store persists credentials to a mode-0600 JSON file.
// It implements api.TokenSource.
type Store struct {
	path string

	mu    sync.Mutex
	creds Credentials
}

// NewStore creates a store backed by the given file path. The file is read
// lazily on first access; a missing file means signed out.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read credentials: %w", err)
	}
	if err := json.Unmarshal(raw, &s.creds); err != nil {
		return fmt.Errorf("parse credentials file %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	raw, err := json.MarshalIndent(s.creds, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// AccessToken returns the stored access token, empty when signed out.
func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds.AccessToken
}

// SetTokens stores a fresh token pair.
func (s *Store) SetTokens(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds.AccessToken = access
	s.creds.RefreshToken = refresh
	return s.save()
}

// SetProfile caches the user profile alongside the tokens.
func (s *Store) SetProfile(user *api.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds.Profile = user
	return s.save()
}

// Profile returns the cached profile, or ErrNotAuthenticated when signed
// out, or nil profile when logged in but nothing cached yet.
func (s *Store) Profile() (*api.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds.AccessToken == "" {
		return nil, ErrNotAuthenticated
	}
	return s.creds.Profile, nil
}

// Clear wipes all local state, both in memory and on disk.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = Credentials{}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}
