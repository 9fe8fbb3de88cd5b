// Package repository provides data access layer for the session module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	sessionModel "github.com/teamarena/gateway/internal/session/model"
)

// Repository defines the interface for session data access operations.
type Repository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *sessionModel.Session) error

	// GetByID finds a session by its identifier.
	GetByID(ctx context.Context, id string) (*sessionModel.Session, error)

	// Delete removes a session.
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes every session past its expiry.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new session repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new session.
func (r *repository) Create(ctx context.Context, session *sessionModel.Session) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(session).Error
}

// GetByID finds a session by its identifier.
func (r *repository) GetByID(ctx context.Context, id string) (*sessionModel.Session, error) {
	var session sessionModel.Session
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&session).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sessionModel.ErrSessionNotFound
		}
		return nil, err
	}

	return &session, nil
}

// Delete removes a session.
func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&sessionModel.Session{}).Error
}

// DeleteExpired removes every session past its expiry.
func (r *repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&sessionModel.Session{})
	return result.RowsAffected, result.Error
}
