package model

import "errors"

var (
	// ErrNotAuthenticated indicates the operation requires a logged-in user.
	ErrNotAuthenticated = errors.New("must be logged in to join a tournament")
	// ErrNotFound indicates the requested tournament does not exist.
	ErrNotFound = errors.New("tournament not found")
	// ErrJoinInFlight indicates a join for the same tournament and user is
	// already being processed.
	ErrJoinInFlight = errors.New("join already in progress")
	// ErrRegistrationClosed indicates the tournament status disallows joining.
	ErrRegistrationClosed = errors.New("tournament is not open for registration")
	// ErrInvalidTournamentID indicates a missing or non-numeric identifier.
	ErrInvalidTournamentID = errors.New("invalid tournament id")
)
