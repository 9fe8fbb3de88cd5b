package model

import "errors"

var (
	// ErrNotAuthenticated indicates the operation requires a logged-in user.
	ErrNotAuthenticated = errors.New("must be logged in")
	// ErrNameRequired indicates that the team name is empty.
	ErrNameRequired = errors.New("team name is required")
	// ErrNameTooLong indicates that the team name exceeds 255 characters.
	ErrNameTooLong = errors.New("team name must be less than 255 characters")
	// ErrImageTooLarge indicates that the encoded image exceeds 2MB.
	ErrImageTooLarge = errors.New("image must be less than 2MB")
	// ErrInvalidAction indicates an unknown join-request action.
	ErrInvalidAction = errors.New("action must be accept or reject")
	// ErrInvalidTeamID indicates a missing or non-numeric team identifier.
	ErrInvalidTeamID = errors.New("invalid team id")
)
