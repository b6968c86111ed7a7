package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"smartpark/internal/models"
	"smartpark/internal/password"
	"smartpark/internal/repository"
	"smartpark/internal/sessions"
)

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.Username]; ok {
		return repository.ErrDuplicate
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

type fakeSessionStore struct {
	store   map[string]*sessions.Session
	deleted []string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{store: make(map[string]*sessions.Session)}
}

func (f *fakeSessionStore) Create(_ context.Context, userID int64, username, role string) (*sessions.Session, error) {
	session := &sessions.Session{
		ID:        "sess-1",
		UserID:    userID,
		Username:  username,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	f.store[session.ID] = session
	return session, nil
}

func (f *fakeSessionStore) Get(_ context.Context, id string) (*sessions.Session, error) {
	session, ok := f.store[id]
	if !ok {
		return nil, sessions.ErrNotFound
	}
	return session, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.store, id)
	return nil
}

func newAuthServiceForTest(repo UserRepository, store SessionStore) *AuthService {
	hasher := password.NewBcryptHasher(4)
	tokens := NewTokenService("test-secret", time.Hour)
	return NewAuthService(repo, hasher, tokens, store, zap.NewNop())
}

func TestAuthServiceRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthServiceForTest(repo, newFakeSessionStore())

	user, err := svc.Register(context.Background(), " Admin ", "secret", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Username != "admin" {
		t.Fatalf("username not normalized: %q", user.Username)
	}
	if user.Role != "operator" {
		t.Fatalf("expected operator default role, got %q", user.Role)
	}
	if user.PasswordHash == "secret" || user.PasswordHash == "" {
		t.Fatal("password stored without hashing")
	}
}

func TestAuthServiceRegisterDuplicateUsername(t *testing.T) {
	svc := newAuthServiceForTest(newFakeUserRepo(), newFakeSessionStore())

	if _, err := svc.Register(context.Background(), "admin", "secret", ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(context.Background(), "Admin", "other", ""); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthServiceRegisterValidation(t *testing.T) {
	svc := newAuthServiceForTest(newFakeUserRepo(), newFakeSessionStore())

	if _, err := svc.Register(context.Background(), "", "secret", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty username, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "admin", "", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty password, got %v", err)
	}
}

func TestAuthServiceLogin(t *testing.T) {
	repo := newFakeUserRepo()
	store := newFakeSessionStore()
	svc := newAuthServiceForTest(repo, store)

	if _, err := svc.Register(context.Background(), "admin", "secret", "admin"); err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := svc.Login(context.Background(), "ADMIN", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Fatal("login returned no token")
	}
	if result.Session == nil || result.Session.Username != "admin" {
		t.Fatalf("login returned no session: %+v", result.Session)
	}

	claims, err := svc.tokens.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("validate issued token: %v", err)
	}
	if claims.UserID != result.User.ID || claims.Role != "admin" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestAuthServiceLoginFailures(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthServiceForTest(repo, newFakeSessionStore())

	if _, err := svc.Register(context.Background(), "admin", "secret", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	cases := []struct {
		name     string
		username string
		plain    string
	}{
		{"wrong password", "admin", "nope"},
		{"unknown user", "ghost", "secret"},
		{"empty username", "", "secret"},
		{"empty password", "admin", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Login(context.Background(), tc.username, tc.plain); !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthServiceLogout(t *testing.T) {
	store := newFakeSessionStore()
	svc := newAuthServiceForTest(newFakeUserRepo(), store)

	session, _ := store.Create(context.Background(), 1, "admin", "admin")
	if err := svc.Logout(context.Background(), session.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != session.ID {
		t.Fatalf("session not deleted: %v", store.deleted)
	}

	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("logout with empty session id must be a no-op, got %v", err)
	}
}
