// Package service provides business logic layer for the session module.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teamarena/gateway/internal/session/repository"
	"github.com/teamarena/gateway/internal/upstream"

	sessionModel "github.com/teamarena/gateway/internal/session/model"
)

// Backend is the subset of the upstream client the session service uses.
type Backend interface {
	Login(ctx context.Context, creds upstream.Credentials) (*upstream.AuthResult, error)
	Register(ctx context.Context, reg upstream.Registration) (*upstream.AuthResult, error)
}

// Service defines the interface for session business logic operations.
type Service interface {
	// Login verifies credentials upstream and opens a session.
	Login(ctx context.Context, req *sessionModel.LoginRequest) (*sessionModel.AuthResponse, error)

	// Register creates an account upstream and opens a session.
	Register(ctx context.Context, req *sessionModel.RegisterRequest) (*sessionModel.AuthResponse, error)

	// Authenticate resolves a bearer token to the current user.
	Authenticate(ctx context.Context, token string) (*sessionModel.CurrentUser, error)

	// Logout closes the session behind a bearer token.
	Logout(ctx context.Context, token string) error
}

type service struct {
	backend Backend
	repo    repository.Repository
	secret  []byte
	ttl     time.Duration
	logger  *zap.SugaredLogger
	now     func() time.Time
}

// New creates a new session service instance.
func New(backend Backend, repo repository.Repository, secret string, ttl time.Duration, logger *zap.SugaredLogger) Service {
	return &service{
		backend: backend,
		repo:    repo,
		secret:  []byte(secret),
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
	}
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Login verifies credentials upstream and opens a session.
func (s *service) Login(ctx context.Context, req *sessionModel.LoginRequest) (*sessionModel.AuthResponse, error) {
	result, err := s.backend.Login(ctx, upstream.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return s.openSession(ctx, result)
}

// Register creates an account upstream and opens a session.
func (s *service) Register(ctx context.Context, req *sessionModel.RegisterRequest) (*sessionModel.AuthResponse, error) {
	result, err := s.backend.Register(ctx, upstream.Registration{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return s.openSession(ctx, result)
}

func (s *service) openSession(ctx context.Context, result *upstream.AuthResult) (*sessionModel.AuthResponse, error) {
	now := s.now()
	session := &sessionModel.Session{
		ID:        uuid.NewString(),
		UserID:    result.UserID,
		Username:  result.Username,
		Avatar:    result.Avatar,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, err
	}

	token, err := s.signToken(session)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("session opened", "user_id", session.UserID, "expires_at", session.ExpiresAt)

	return &sessionModel.AuthResponse{
		Token:     token,
		UserID:    session.UserID,
		Username:  session.Username,
		Avatar:    session.Avatar,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *service) signToken(session *sessionModel.Session) (string, error) {
	claims := sessionClaims{
		SessionID: session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.Username,
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *service) parseToken(token string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, sessionModel.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, sessionModel.ErrSessionExpired
		}
		return nil, sessionModel.ErrInvalidToken
	}
	if !parsed.Valid || claims.SessionID == "" {
		return nil, sessionModel.ErrInvalidToken
	}
	return claims, nil
}

// Authenticate resolves a bearer token to the current user.
func (s *service) Authenticate(ctx context.Context, token string) (*sessionModel.CurrentUser, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, err
	}

	session, err := s.repo.GetByID(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}

	if session.Expired(s.now()) {
		if err := s.repo.Delete(ctx, session.ID); err != nil {
			s.logger.Warnw("failed to remove expired session", "session_id", session.ID, "error", err)
		}
		return nil, sessionModel.ErrSessionExpired
	}

	return &sessionModel.CurrentUser{
		ID:       session.UserID,
		Username: session.Username,
	}, nil
}

// Logout closes the session behind a bearer token.
func (s *service) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, claims.SessionID)
}
