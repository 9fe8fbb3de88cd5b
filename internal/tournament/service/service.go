// Package service provides business logic layer for the tournament module.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/teamarena/gateway/internal/upstream"

	tournamentModel "github.com/teamarena/gateway/internal/tournament/model"
)

// Backend is the subset of the upstream client the tournament service uses.
type Backend interface {
	TournamentBySlug(ctx context.Context, slug string) (*tournamentModel.Tournament, error)
	JoinTournament(ctx context.Context, tournamentID, userID int64) (string, error)
	AcceptedParticipants(ctx context.Context, tournamentID int64) (*tournamentModel.ParticipantList, error)
	MyTournaments(ctx context.Context, userID int64) ([]tournamentModel.Tournament, error)
}

// Service defines the interface for tournament business logic operations.
type Service interface {
	// Get fetches a tournament and derives the user's join state.
	Get(ctx context.Context, slug string, userID int64) (*tournamentModel.Detail, error)

	// Join registers the user and returns the refreshed detail.
	Join(ctx context.Context, tournamentID int64, slug string, userID int64) (*tournamentModel.Detail, string, error)

	// Participants lists the accepted participants of a tournament.
	Participants(ctx context.Context, tournamentID int64) (*tournamentModel.ParticipantList, error)

	// MyTournaments lists the user's tournaments with local filters applied.
	MyTournaments(ctx context.Context, userID int64, filters tournamentModel.Filters) ([]tournamentModel.Tournament, error)
}

type service struct {
	backend Backend
	logger  *zap.SugaredLogger

	// joining holds one entry per (tournament, user) pair with a join in
	// flight. A second Join for the same pair is rejected, not queued.
	mu      sync.Mutex
	joining map[string]struct{}
}

// New creates a new tournament service instance.
func New(backend Backend, logger *zap.SugaredLogger) Service {
	return &service{
		backend: backend,
		logger:  logger,
		joining: make(map[string]struct{}),
	}
}

// Get fetches a tournament and derives the user's join state.
func (s *service) Get(ctx context.Context, slug string, userID int64) (*tournamentModel.Detail, error) {
	if slug == "" {
		return nil, tournamentModel.ErrInvalidTournamentID
	}

	tournament, err := s.backend.TournamentBySlug(ctx, slug)
	if err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) {
			return nil, tournamentModel.ErrNotFound
		}
		return nil, err
	}

	return s.buildDetail(ctx, tournament, userID)
}

func (s *service) buildDetail(ctx context.Context, tournament *tournamentModel.Tournament, userID int64) (*tournamentModel.Detail, error) {
	detail := &tournamentModel.Detail{
		Tournament:    tournament,
		StatusMessage: tournament.Status.Message(),
	}

	if userID != 0 {
		mine, err := s.backend.MyTournaments(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, t := range mine {
			if t.ID == tournament.ID {
				detail.HasJoined = true
				break
			}
		}
	}

	detail.CanJoin = userID != 0 &&
		!detail.HasJoined &&
		tournament.Status.AllowsRegistration()

	return detail, nil
}

// Join registers the user and returns the refreshed detail together with
// the backend's confirmation message. Exactly one upstream mutation runs
// per (tournament, user) pair at a time.
func (s *service) Join(ctx context.Context, tournamentID int64, slug string, userID int64) (*tournamentModel.Detail, string, error) {
	if userID == 0 {
		return nil, "", tournamentModel.ErrNotAuthenticated
	}
	if tournamentID <= 0 {
		return nil, "", tournamentModel.ErrInvalidTournamentID
	}

	key := joinKey(tournamentID, userID)
	if !s.tryAcquire(key) {
		return nil, "", tournamentModel.ErrJoinInFlight
	}
	defer s.release(key)

	tournament, err := s.backend.TournamentBySlug(ctx, slug)
	if err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) {
			return nil, "", tournamentModel.ErrNotFound
		}
		return nil, "", err
	}

	if !tournament.Status.AllowsRegistration() {
		return nil, "", fmt.Errorf("%w: %s", tournamentModel.ErrRegistrationClosed, tournament.Status.Message())
	}

	message, err := s.backend.JoinTournament(ctx, tournamentID, userID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Infow("tournament joined", "tournament_id", tournamentID, "user_id", userID)

	// Re-fetch so registration counts reflect the mutation.
	refreshed, err := s.backend.TournamentBySlug(ctx, slug)
	if err != nil {
		return nil, "", err
	}

	detail := &tournamentModel.Detail{
		Tournament:    refreshed,
		HasJoined:     true,
		CanJoin:       false,
		StatusMessage: refreshed.Status.Message(),
	}
	return detail, message, nil
}

func joinKey(tournamentID, userID int64) string {
	return fmt.Sprintf("%d:%d", tournamentID, userID)
}

func (s *service) tryAcquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, inFlight := s.joining[key]; inFlight {
		return false
	}
	s.joining[key] = struct{}{}
	return true
}

func (s *service) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.joining, key)
}

// Participants lists the accepted participants of a tournament.
func (s *service) Participants(ctx context.Context, tournamentID int64) (*tournamentModel.ParticipantList, error) {
	if tournamentID <= 0 {
		return nil, tournamentModel.ErrInvalidTournamentID
	}

	list, err := s.backend.AcceptedParticipants(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if list.Participants == nil {
		list.Participants = []tournamentModel.Participant{}
	}
	return list, nil
}

// MyTournaments lists the user's tournaments with local filters applied.
func (s *service) MyTournaments(ctx context.Context, userID int64, filters tournamentModel.Filters) ([]tournamentModel.Tournament, error) {
	if userID == 0 {
		return nil, tournamentModel.ErrNotAuthenticated
	}

	tournaments, err := s.backend.MyTournaments(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := []tournamentModel.Tournament{}
	for _, t := range tournaments {
		if filters.Matches(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}
