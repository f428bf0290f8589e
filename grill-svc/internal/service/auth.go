package service

import (
	"context"
	"log"
	"strings"
	"time"

	"mikes-grill/grill-svc/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	admins   AdminRepository
	sessions SessionStore
	throttle LoginThrottle
}

func NewAuthService(admins AdminRepository, sessions SessionStore, throttle LoginThrottle) *AuthService {
	return &AuthService{
		admins:   admins,
		sessions: sessions,
		throttle: throttle,
	}
}

func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.Session, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	if s.throttle != nil {
		if wait, err := s.throttle.WaitSeconds(ctx, username); err == nil && wait > 0 {
			return nil, ErrLoginThrottled
		}
	}

	user, err := s.admins.GetAdminByUsername(username)
	if err != nil {
		if notFound(err) != ErrNotFound {
			return nil, err
		}
		s.recordFailure(ctx, username)
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.recordFailure(ctx, username)
		return nil, ErrInvalidCredentials
	}

	session := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	if s.throttle != nil {
		_ = s.throttle.Reset(ctx, username)
	}
	return session, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.DeleteSession(ctx, token)
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrInvalidCredentials
	}
	session, err := s.sessions.GetSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrInvalidCredentials
	}

	// A deleted admin loses access at once instead of at session expiry.
	user, err := s.admins.GetAdmin(session.UserID)
	if err != nil && notFound(err) != ErrNotFound {
		return nil, err
	}
	if err != nil || user.Username != session.Username {
		if err := s.sessions.DeleteSession(ctx, token); err != nil {
			log.Printf("ERROR: Failed to drop session of removed admin %d: %v", session.UserID, err)
		}
		return nil, ErrInvalidCredentials
	}
	return session, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		log.Printf("ERROR: Failed to record login failure for %q: %v", username, err)
	}
}

var _ AuthServiceInterface = (*AuthService)(nil)
