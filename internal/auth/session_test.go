package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Crusty-Banana/medbot-client/internal/api"
)

// newTestBackend serves the minimal auth + profile surface.
func newTestBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req api.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "good" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"bad credentials"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(api.TokenPair{AccessToken: "acc-1", RefreshToken: "ref-1"})
	})
	mux.HandleFunc("GET /profile/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer acc-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(api.User{ID: "u1", Email: "a@b.c", FirstName: "Ada", LastName: "L"})
	})
	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return httptest.NewServer(mux)
}

func newTestSession(t *testing.T, baseURL string) (*Session, *Store) {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "credentials.json"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	client := api.New(baseURL, store)
	return NewSession(store, client, zerolog.Nop()), store
}

func TestSession_LoginStoresTokensAndProfile(t *testing.T) {
	srv := newTestBackend(t)
	defer srv.Close()

	session, store := newTestSession(t, srv.URL)

	user, err := session.Login(context.Background(), "a@b.c", "good")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user == nil || user.Email != "a@b.c" {
		t.Errorf("expected profile after login, got %+v", user)
	}
	if store.AccessToken() != "acc-1" {
		t.Errorf("expected token stored, got %q", store.AccessToken())
	}

	cached, err := store.Profile()
	if err != nil || cached == nil || cached.ID != "u1" {
		t.Errorf("expected cached profile, got %+v err=%v", cached, err)
	}
}

func TestSession_LoginRejected(t *testing.T) {
	srv := newTestBackend(t)
	defer srv.Close()

	session, store := newTestSession(t, srv.URL)

	if _, err := session.Login(context.Background(), "a@b.c", "wrong"); err == nil {
		t.Fatal("expected error for bad credentials")
	}
	if store.AccessToken() != "" {
		t.Error("expected no token stored after rejected login")
	}
}

func TestSession_FetchProfile_ClearsOnAuthError(t *testing.T) {
	srv := newTestBackend(t)
	defer srv.Close()

	session, store := newTestSession(t, srv.URL)
	if err := store.SetTokens("stale-token", "stale-ref"); err != nil {
		t.Fatalf("SetTokens: %v", err)
	}

	if _, err := session.FetchProfile(context.Background()); err == nil {
		t.Fatal("expected error for stale token")
	}
	if store.AccessToken() != "" {
		t.Error("expected local session cleared after auth rejection")
	}
}

func TestSession_Logout_ClearsEvenWhenBackendFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	session, store := newTestSession(t, srv.URL)
	if err := store.SetTokens("acc", "ref"); err != nil {
		t.Fatalf("SetTokens: %v", err)
	}

	if err := session.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if store.AccessToken() != "" {
		t.Error("expected local state cleared despite backend failure")
	}
}
