// Package service provides business logic layer for the teams module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	sessionModel "github.com/teamarena/gateway/internal/session/model"
	teamsModel "github.com/teamarena/gateway/internal/teams/model"
)

// maxImageBytes is the decoded size limit for a team logo.
const maxImageBytes = 2 * 1024 * 1024

// defaultTeamGame is the game every team is registered under.
const defaultTeamGame = "Valorant"

// Backend is the subset of the upstream client the teams service uses.
type Backend interface {
	ListTeams(ctx context.Context) ([]teamsModel.Team, error)
	TeamStats(ctx context.Context, teamID int64) (*teamsModel.Stats, error)
	TeamMembers(ctx context.Context, teamID int64) ([]teamsModel.Member, error)
	TeamRequests(ctx context.Context, teamID int64) ([]teamsModel.JoinRequest, error)
	TeamSettings(ctx context.Context, teamID int64) (*teamsModel.Settings, error)
	ResolveRequest(ctx context.Context, body teamsModel.ResolveRequestBody) error
	UpdateSettings(ctx context.Context, body teamsModel.UpdateSettingsRequest) error
	DeleteTeam(ctx context.Context, teamID int64) error
	CreateTeam(ctx context.Context, body teamsModel.CreateTeamRequest) error
	SendJoinRequest(ctx context.Context, body teamsModel.JoinRequestBody) error
	CheckInvolvement(ctx context.Context, teamID, userID int64) (bool, error)
}

// Service defines the interface for teams business logic operations.
type Service interface {
	// LoadDirectory returns the team directory partitioned for the user.
	LoadDirectory(ctx context.Context, userID int64) (*teamsModel.Directory, error)

	// LoadPanel fetches the four panel sub-resources of a team.
	LoadPanel(ctx context.Context, teamID int64) (*teamsModel.Panel, error)

	// ResolveRequest accepts or rejects a join request and re-fetches the panel.
	ResolveRequest(ctx context.Context, teamID, requestID int64, action teamsModel.RequestAction) (*teamsModel.Panel, error)

	// UpdateSettings replaces team settings and re-fetches the panel.
	UpdateSettings(ctx context.Context, teamID int64, form *teamsModel.UpdateSettingsRequest) (*teamsModel.Panel, error)

	// DeleteTeam removes a team.
	DeleteTeam(ctx context.Context, teamID int64) error

	// CreateTeam validates the form locally, then creates the team upstream.
	CreateTeam(ctx context.Context, user *sessionModel.CurrentUser, form *teamsModel.CreateTeamRequest) error

	// SendJoinRequest applies to join a team on behalf of the user.
	SendJoinRequest(ctx context.Context, user *sessionModel.CurrentUser, body *teamsModel.JoinRequestBody) error

	// CheckInvolvement reports whether the user belongs to or owns the team.
	CheckInvolvement(ctx context.Context, userID int64, team *teamsModel.Team) (bool, error)
}

type service struct {
	backend Backend
	logger  *zap.SugaredLogger
}

// New creates a new teams service instance.
func New(backend Backend, logger *zap.SugaredLogger) Service {
	return &service{backend: backend, logger: logger}
}

// Partition splits teams into the user's own teams and the full list.
// Ownership or membership both count as "mine". Pure over its inputs;
// userID 0 yields an empty Mine without scanning memberships.
func Partition(teams []teamsModel.Team, userID int64) *teamsModel.Directory {
	dir := &teamsModel.Directory{
		All:  teams,
		Mine: []teamsModel.Team{},
	}
	if userID == 0 {
		return dir
	}

	for _, team := range teams {
		if team.OwnerID == userID {
			dir.Mine = append(dir.Mine, team)
			continue
		}
		for _, member := range team.Members {
			if member.UserID == userID {
				dir.Mine = append(dir.Mine, team)
				break
			}
		}
	}
	return dir
}

// Search filters teams by a case-insensitive substring of the name.
// The empty term returns the input unchanged.
func Search(teams []teamsModel.Team, term string) []teamsModel.Team {
	if term == "" {
		return teams
	}

	needle := strings.ToLower(term)
	matched := []teamsModel.Team{}
	for _, team := range teams {
		if strings.Contains(strings.ToLower(team.Name), needle) {
			matched = append(matched, team)
		}
	}
	return matched
}

// LoadDirectory returns the team directory partitioned for the user.
// A logged-out caller gets an empty directory without any upstream call.
func (s *service) LoadDirectory(ctx context.Context, userID int64) (*teamsModel.Directory, error) {
	if userID == 0 {
		return &teamsModel.Directory{All: []teamsModel.Team{}, Mine: []teamsModel.Team{}}, nil
	}

	teams, err := s.backend.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	return Partition(teams, userID), nil
}

// LoadPanel fetches stats, members, requests and settings concurrently.
// Any sub-fetch failure fails the whole panel; no partial data escapes.
func (s *service) LoadPanel(ctx context.Context, teamID int64) (*teamsModel.Panel, error) {
	if teamID <= 0 {
		return nil, teamsModel.ErrInvalidTeamID
	}

	panel := &teamsModel.Panel{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.backend.TeamStats(gctx, teamID)
		if err != nil {
			return err
		}
		panel.Stats = stats
		return nil
	})
	g.Go(func() error {
		members, err := s.backend.TeamMembers(gctx, teamID)
		if err != nil {
			return err
		}
		panel.Members = members
		return nil
	})
	g.Go(func() error {
		requests, err := s.backend.TeamRequests(gctx, teamID)
		if err != nil {
			return err
		}
		panel.Requests = requests
		return nil
	})
	g.Go(func() error {
		settings, err := s.backend.TeamSettings(gctx, teamID)
		if err != nil {
			return err
		}
		panel.Settings = settings
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if panel.Members == nil {
		panel.Members = []teamsModel.Member{}
	}
	if panel.Requests == nil {
		panel.Requests = []teamsModel.JoinRequest{}
	}

	return panel, nil
}

// ResolveRequest accepts or rejects a join request and re-fetches the panel.
// The re-fetch is pessimistic: the caller only ever sees backend state.
func (s *service) ResolveRequest(ctx context.Context, teamID, requestID int64, action teamsModel.RequestAction) (*teamsModel.Panel, error) {
	if !action.Valid() {
		return nil, teamsModel.ErrInvalidAction
	}

	err := s.backend.ResolveRequest(ctx, teamsModel.ResolveRequestBody{
		TeamID:    teamID,
		RequestID: requestID,
		Action:    action.WireStatus(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("join request resolved", "team_id", teamID, "request_id", requestID, "action", action)

	return s.LoadPanel(ctx, teamID)
}

// UpdateSettings replaces team settings and re-fetches the panel.
func (s *service) UpdateSettings(ctx context.Context, teamID int64, form *teamsModel.UpdateSettingsRequest) (*teamsModel.Panel, error) {
	form.TeamID = teamID
	if err := s.backend.UpdateSettings(ctx, *form); err != nil {
		return nil, err
	}

	return s.LoadPanel(ctx, teamID)
}

// DeleteTeam removes a team.
func (s *service) DeleteTeam(ctx context.Context, teamID int64) error {
	if teamID <= 0 {
		return teamsModel.ErrInvalidTeamID
	}
	if err := s.backend.DeleteTeam(ctx, teamID); err != nil {
		return err
	}
	s.logger.Infow("team deleted", "team_id", teamID)
	return nil
}

// CreateTeam validates the form locally, then creates the team upstream.
// Every precondition failure is resolved before any network call.
func (s *service) CreateTeam(ctx context.Context, user *sessionModel.CurrentUser, form *teamsModel.CreateTeamRequest) error {
	if user == nil || user.ID == 0 {
		return teamsModel.ErrNotAuthenticated
	}

	name := strings.TrimSpace(form.Name)
	if name == "" {
		return teamsModel.ErrNameRequired
	}
	if len(form.Name) > 255 {
		return teamsModel.ErrNameTooLong
	}
	// Base64 inflates the payload by a third; compare the decoded size.
	if form.Image != "" && float64(len(form.Image))*0.75 > maxImageBytes {
		return teamsModel.ErrImageTooLarge
	}

	form.OwnerID = user.ID
	form.OwnerName = user.Username
	if form.TeamGame == "" {
		form.TeamGame = defaultTeamGame
	}

	if err := s.backend.CreateTeam(ctx, *form); err != nil {
		return err
	}

	s.logger.Infow("team created", "owner_id", user.ID, "name", name)
	return nil
}

// SendJoinRequest applies to join a team on behalf of the user.
func (s *service) SendJoinRequest(ctx context.Context, user *sessionModel.CurrentUser, body *teamsModel.JoinRequestBody) error {
	if user == nil || user.ID == 0 {
		return teamsModel.ErrNotAuthenticated
	}
	if body.TeamID <= 0 {
		return teamsModel.ErrInvalidTeamID
	}

	body.UserID = user.ID
	if body.Role == "" {
		body.Role = "Mid"
	}
	if body.Rank == "" {
		body.Rank = "Unranked"
	}

	return s.backend.SendJoinRequest(ctx, *body)
}

// CheckInvolvement reports whether the user belongs to or owns the team.
// Ownership short-circuits without an upstream call.
func (s *service) CheckInvolvement(ctx context.Context, userID int64, team *teamsModel.Team) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	if team.OwnerID == userID {
		return true, nil
	}
	return s.backend.CheckInvolvement(ctx, team.ID, userID)
}
