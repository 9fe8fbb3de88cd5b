// Package model provides the session domain model and DTOs.
package model

import "time"

// Session is a persisted login session.
// Matches the sessions table schema.
type Session struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Username  string    `gorm:"column:username;type:varchar(255);not null" json:"username"`
	Avatar    string    `gorm:"column:avatar" json:"avatar,omitempty"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null;index" json:"expires_at"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// CurrentUser is the authenticated identity injected into request handling.
// It is always passed explicitly; nothing reads it from ambient state.
type CurrentUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LoginRequest carries credentials for the backend check.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest carries the fields for creating a backend account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after a successful login or register.
type AuthResponse struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}
