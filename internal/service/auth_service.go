package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hagwonlab/academy-api/internal/auth"
	"github.com/hagwonlab/academy-api/internal/models"
	"github.com/hagwonlab/academy-api/internal/repository"
)

type AuthService struct {
	users      *repository.UserRepository
	sessions   *repository.SessionRepository
	sessionTTL time.Duration
}

func NewAuthService(users *repository.UserRepository, sessions *repository.SessionRepository, sessionTTL time.Duration) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 72 * time.Hour
	}
	return &AuthService{users: users, sessions: sessions, sessionTTL: sessionTTL}
}

// Login verifies credentials and issues an opaque session token.
func (s *AuthService) Login(ctx context.Context, email, password, ip, userAgent string) (string, *models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !user.Active {
		return "", nil, ErrInvalidCredentials
	}
	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !user.Approved {
		return "", nil, ErrNotApproved
	}

	token, err := auth.NewSessionToken()
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	expiresAt := time.Now().UTC().Add(s.sessionTTL)
	if err := s.sessions.Create(ctx, user.ID, auth.HashToken(token), expiresAt); err != nil {
		return "", nil, err
	}

	// The session is already issued; a failed audit write must not fail the login.
	_ = s.sessions.InsertLoginLog(ctx, user.ID, ip, userAgent)

	return token, user, nil
}

// Authenticate resolves a bearer token to its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrSessionInvalid
	}
	session, err := s.sessions.FindByTokenHash(ctx, auth.HashToken(token))
	if err != nil {
		return nil, err
	}
	if session == nil || session.RevokedAt != nil || session.ExpiresAt.Before(time.Now().UTC()) {
		return nil, ErrSessionInvalid
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, ErrSessionInvalid
	}
	return user, nil
}

// Logout revokes every open session for the user.
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	return s.sessions.RevokeByUser(ctx, userID)
}
