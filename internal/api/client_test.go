package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticTokens string

func (s staticTokens) AccessToken() string { return string(s) }

func TestClient_AuthHeaders(t *testing.T) {
	var gotAuth, gotAPIAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAPIAuth = r.Header.Get("X-API-Auth")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := New(srv.URL, staticTokens("tok-123"))
	if _, err := c.ListConversations(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer tok-123" {
		t.Errorf("expected Authorization 'Bearer tok-123', got %q", gotAuth)
	}
	if gotAPIAuth != "Bearer tok-123" {
		t.Errorf("expected X-API-Auth 'Bearer tok-123', got %q", gotAPIAuth)
	}
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(TokenPair{AccessToken: "a", RefreshToken: "r"})
	}))
	defer srv.Close()

	c := New(srv.URL, staticTokens(""))
	if _, err := c.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no Authorization header when signed out, got %q", gotAuth)
	}
}

func TestClient_Login_DecodesTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email != "a@b.c" || req.Password != "secret" {
			t.Errorf("unexpected login payload: %+v", req)
		}
		_ = json.NewEncoder(w).Encode(TokenPair{AccessToken: "acc", RefreshToken: "ref"})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	tokens, err := c.Login(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens.AccessToken != "acc" || tokens.RefreshToken != "ref" {
		t.Errorf("unexpected tokens: %+v", tokens)
	}
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"invalid credentials"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.GetProfile(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", apiErr.StatusCode)
	}
	if apiErr.Detail != "invalid credentials" {
		t.Errorf("expected detail from body, got %q", apiErr.Detail)
	}
	if !apiErr.IsAuthError() {
		t.Error("expected IsAuthError for 401")
	}
}

func TestClient_CreateMessage_Body(t *testing.T) {
	var got CreateMessageRequest
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL, staticTokens("t"))
	err := c.CreateMessage(context.Background(), "conv-9", CreateMessageRequest{
		Role:    "assistant",
		Content: "Hello there",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/conversations/conv-9/messages" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if got.Role != "assistant" || got.Content != "Hello there" {
		t.Errorf("unexpected body: %+v", got)
	}
	if got.MessageType != MessageTypeText {
		t.Errorf("expected message_type defaulted to %q, got %q", MessageTypeText, got.MessageType)
	}
}

func TestClient_Any2xxIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, staticTokens("t"))
	if err := c.DeleteConversation(context.Background(), "conv-1"); err != nil {
		t.Errorf("expected 204 to be success, got %v", err)
	}
}

func TestVoiceSession_Credentials(t *testing.T) {
	tests := []struct {
		name      string
		session   VoiceSession
		fallback  string
		wantURL   string
		wantToken string
	}{
		{
			name:      "server provided",
			session:   VoiceSession{LivekitURL: "wss://rt.example.com", LivekitToken: "lk-tok"},
			fallback:  "wss://fallback",
			wantURL:   "wss://rt.example.com",
			wantToken: "lk-tok",
		},
		{
			name:      "legacy bare token",
			session:   VoiceSession{Token: "bare-tok"},
			fallback:  "wss://fallback",
			wantURL:   "wss://fallback",
			wantToken: "bare-tok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, token := tt.session.Credentials(tt.fallback)
			if url != tt.wantURL {
				t.Errorf("expected url %q, got %q", tt.wantURL, url)
			}
			if token != tt.wantToken {
				t.Errorf("expected token %q, got %q", tt.wantToken, token)
			}
		})
	}
}

func TestClient_CreateVoiceSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/voice/session/create" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req CreateVoiceSessionRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.ConversationID != "conv-1" {
			t.Errorf("unexpected conversation id %q", req.ConversationID)
		}
		_ = json.NewEncoder(w).Encode(VoiceSession{LivekitURL: "wss://rt", LivekitToken: "tok"})
	}))
	defer srv.Close()

	c := New(srv.URL, staticTokens("t"))
	session, err := c.CreateVoiceSession(context.Background(), CreateVoiceSessionRequest{ConversationID: "conv-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.LivekitURL != "wss://rt" || session.LivekitToken != "tok" {
		t.Errorf("unexpected session: %+v", session)
	}
}
