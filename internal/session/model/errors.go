package model

import "errors"

var (
	// ErrSessionNotFound indicates that no session exists for the token.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates the session is past its expiry.
	ErrSessionExpired = errors.New("session expired")
	// ErrInvalidToken indicates the token failed signature or claim checks.
	ErrInvalidToken = errors.New("invalid session token")
)
