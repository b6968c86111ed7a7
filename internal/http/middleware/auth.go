package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"smartpark/internal/service"
	"smartpark/internal/sessions"
)

// SessionCookie is the name of the browser session cookie set at login.
const SessionCookie = "session_id"

type contextKey string

const principalKey contextKey = "principal"

// Principal is the authenticated caller, regardless of which credential
// transport it arrived on.
type Principal struct {
	UserID   int64
	Username string
	Role     string
}

// SessionGetter resolves a session cookie into server-side session state.
type SessionGetter interface {
	Get(ctx context.Context, id string) (*sessions.Session, error)
}

// Auth accepts either an Authorization bearer token or a session cookie and
// puts the resulting principal on the request context. Both transports go
// through this single gate.
func Auth(tokens *service.TokenService, store SessionGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := authenticate(r, tokens, store)
			if !ok {
				unauthorized(w)
				return
			}
			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func authenticate(r *http.Request, tokens *service.TokenService, store SessionGetter) (Principal, bool) {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return Principal{}, false
		}
		claims, err := tokens.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			return Principal{}, false
		}
		return Principal{UserID: claims.UserID, Username: claims.Username, Role: claims.Role}, true
	}

	cookie, err := r.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return Principal{}, false
	}
	session, err := store.Get(r.Context(), cookie.Value)
	if err != nil {
		return Principal{}, false
	}
	return Principal{UserID: session.UserID, Username: session.Username, Role: session.Role}, true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "authentication required"})
}

// PrincipalFromContext retrieves the authenticated principal.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	val := ctx.Value(principalKey)
	if val == nil {
		return Principal{}, false
	}
	principal, ok := val.(Principal)
	return principal, ok
}
