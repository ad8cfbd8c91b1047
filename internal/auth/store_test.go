package auth

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/Crusty-Banana/medbot-client/internal/api"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials.json")
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestStore_EmptyWhenFileMissing(t *testing.T) {
	s := tempStore(t)

	if s.AccessToken() != "" {
		t.Errorf("expected empty token, got %q", s.AccessToken())
	}
	if _, err := s.Profile(); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if err := s.SetTokens("acc", "ref"); err != nil {
		t.Fatalf("SetTokens: %v", err)
	}
	if err := s.SetProfile(&api.User{ID: "u1", Email: "a@b.c", FirstName: "Ada"}); err != nil {
		t.Fatalf("SetProfile: %v", err)
	}

	// Reload from disk through a second store.
	reloaded, err := NewStore(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.AccessToken() != "acc" {
		t.Errorf("expected access token to survive reload, got %q", reloaded.AccessToken())
	}
	user, err := reloaded.Profile()
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if user == nil || user.Email != "a@b.c" {
		t.Errorf("expected cached profile, got %+v", user)
	}
}

func TestStore_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "credentials.json")
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := s.SetTokens("acc", "ref"); err != nil {
		t.Fatalf("SetTokens: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("expected 0600 credentials file, got %o", perm)
	}
}

func TestStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := s.SetTokens("acc", "ref"); err != nil {
		t.Fatalf("SetTokens: %v", err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s.AccessToken() != "" {
		t.Error("expected token cleared in memory")
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected credentials file removed, got %v", err)
	}

	// Clearing again is a no-op.
	if err := s.Clear(); err != nil {
		t.Errorf("second Clear should be a no-op, got %v", err)
	}
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := NewStore(path); err == nil {
		t.Error("expected error for corrupt credentials file")
	}
}
