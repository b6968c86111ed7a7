package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"smartpark/internal/models"
	"smartpark/internal/password"
	"smartpark/internal/repository"
	"smartpark/internal/sessions"
)

// UserRepository defines the storage contract used by AuthService.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// SessionStore defines the server-side session contract.
type SessionStore interface {
	Create(ctx context.Context, userID int64, username, role string) (*sessions.Session, error)
	Get(ctx context.Context, id string) (*sessions.Session, error)
	Delete(ctx context.Context, id string) error
}

// AuthService contains registration and login logic. A successful login
// yields both a bearer token and a cookie session; the auth middleware
// accepts either.
type AuthService struct {
	repo     UserRepository
	hasher   password.Hasher
	tokens   *TokenService
	sessions SessionStore
	logger   *zap.Logger
}

// NewAuthService builds AuthService.
func NewAuthService(repo UserRepository, hasher password.Hasher, tokens *TokenService, store SessionStore, logger *zap.Logger) *AuthService {
	return &AuthService{
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		sessions: store,
		logger:   logger,
	}
}

// Register creates a new operator account.
func (s *AuthService) Register(ctx context.Context, username, plain, role string) (*models.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, fmt.Errorf("%w: username required", ErrValidation)
	}
	if plain == "" {
		return nil, fmt.Errorf("%w: password required", ErrValidation)
	}
	if role == "" {
		role = "operator"
	}

	hash, err := s.hasher.Hash(plain)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	s.logger.Info("user registered", zap.Int64("user_id", user.ID), zap.String("username", user.Username))
	return user, nil
}

// LoginResult carries both credentials produced at login.
type LoginResult struct {
	User    *models.User
	Token   string
	Session *sessions.Session
}

// Login authenticates a user and produces a JWT plus a server-side session.
func (s *AuthService) Login(ctx context.Context, username, plain string) (*LoginResult, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || plain == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, plain); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.Create(ctx, user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Token: token, Session: session}, nil
}

// Logout drops the server-side session. Bearer tokens simply expire.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}
