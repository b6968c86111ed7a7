package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smartpark/internal/service"
	"smartpark/internal/sessions"
)

type stubSessions struct {
	session *sessions.Session
}

func (s *stubSessions) Get(_ context.Context, id string) (*sessions.Session, error) {
	if s.session == nil || s.session.ID != id {
		return nil, sessions.ErrNotFound
	}
	return s.session, nil
}

func newGate(t *testing.T, store SessionGetter) (http.Handler, *service.TokenService, *Principal) {
	t.Helper()
	tokens := service.NewTokenService("test-secret", time.Hour)
	var seen Principal
	handler := Auth(tokens, store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := PrincipalFromContext(r.Context())
		if !ok {
			t.Error("principal missing from context")
		}
		seen = principal
		w.WriteHeader(http.StatusOK)
	}))
	return handler, tokens, &seen
}

func TestAuthAcceptsBearerToken(t *testing.T) {
	handler, tokens, seen := newGate(t, &stubSessions{})

	token, err := tokens.GenerateToken(7, "admin", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if seen.UserID != 7 || seen.Username != "admin" {
		t.Fatalf("unexpected principal %+v", seen)
	}
}

func TestAuthAcceptsSessionCookie(t *testing.T) {
	store := &stubSessions{session: &sessions.Session{ID: "sess-1", UserID: 3, Username: "operator", Role: "operator"}}
	handler, _, seen := newGate(t, store)

	req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "sess-1"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if seen.UserID != 3 || seen.Role != "operator" {
		t.Fatalf("unexpected principal %+v", seen)
	}
}

func TestAuthRejections(t *testing.T) {
	handler, _, _ := newGate(t, &stubSessions{})

	foreign := service.NewTokenService("other-secret", time.Hour)
	badToken, err := foreign.GenerateToken(1, "admin", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	cases := []struct {
		name    string
		prepare func(r *http.Request)
	}{
		{"no credentials", func(*http.Request) {}},
		{"malformed header", func(r *http.Request) { r.Header.Set("Authorization", "Token abc") }},
		{"foreign token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+badToken) }},
		{"unknown session", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "ghost"})
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
			tc.prepare(req)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status %d, want 401", rec.Code)
			}
		})
	}
}
