package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	teamsModel "github.com/teamarena/gateway/internal/teams/model"
)

const (
	teamsListPath   = "/api/get_teams.php"
	teamAPIPath     = "/api/team_api.php"
	createTeamPath  = "/api/create_team.php"
	involvementPath = "/api/check_team_involvement.php"
)

// teamQuery builds the team_api.php query for one sub-resource endpoint.
func teamQuery(endpoint string, teamID int64) url.Values {
	q := url.Values{}
	q.Set("endpoint", endpoint)
	q.Set("team_id", strconv.FormatInt(teamID, 10))
	return q
}

// ListTeams fetches the full team list.
func (c *Client) ListTeams(ctx context.Context) ([]teamsModel.Team, error) {
	var resp struct {
		envelope
		Data []teamsModel.Team `json:"data"`
	}
	if err := c.get(ctx, teamsListPath, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, apiError(resp.envelope, "Failed to fetch teams")
	}
	return resp.Data, nil
}

// TeamStats fetches the stats sub-resource of a team.
func (c *Client) TeamStats(ctx context.Context, teamID int64) (*teamsModel.Stats, error) {
	var resp struct {
		envelope
		Data *teamsModel.Stats `json:"data"`
	}
	if err := c.get(ctx, teamAPIPath, teamQuery("team-stats", teamID), &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, apiError(resp.envelope, "Failed to fetch team stats")
	}
	return resp.Data, nil
}

// TeamMembers fetches the members sub-resource of a team.
func (c *Client) TeamMembers(ctx context.Context, teamID int64) ([]teamsModel.Member, error) {
	var resp struct {
		envelope
		Data []teamsModel.Member `json:"data"`
	}
	if err := c.get(ctx, teamAPIPath, teamQuery("team-members", teamID), &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, apiError(resp.envelope, "Failed to fetch team members")
	}
	return resp.Data, nil
}

// TeamRequests fetches the pending join requests of a team.
func (c *Client) TeamRequests(ctx context.Context, teamID int64) ([]teamsModel.JoinRequest, error) {
	var resp struct {
		envelope
		Data []teamsModel.JoinRequest `json:"data"`
	}
	if err := c.get(ctx, teamAPIPath, teamQuery("team-requests", teamID), &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, apiError(resp.envelope, "Failed to fetch team requests")
	}
	return resp.Data, nil
}

// TeamSettings fetches the settings sub-resource of a team.
func (c *Client) TeamSettings(ctx context.Context, teamID int64) (*teamsModel.Settings, error) {
	var resp struct {
		envelope
		Data *teamsModel.Settings `json:"data"`
	}
	if err := c.get(ctx, teamAPIPath, teamQuery("team-settings", teamID), &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, apiError(resp.envelope, "Failed to fetch team settings")
	}
	return resp.Data, nil
}

// ResolveRequest accepts or rejects a pending join request. The action must
// already be in the backend's vocabulary (accepted, rejected).
func (c *Client) ResolveRequest(ctx context.Context, body teamsModel.ResolveRequestBody) error {
	q := url.Values{}
	q.Set("endpoint", "team-requests")

	var resp envelope
	if err := c.do(ctx, http.MethodPost, teamAPIPath, q, body, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return apiError(resp, "Failed to resolve request")
	}
	return nil
}

// UpdateSettings replaces the team settings sub-resource.
func (c *Client) UpdateSettings(ctx context.Context, body teamsModel.UpdateSettingsRequest) error {
	q := url.Values{}
	q.Set("endpoint", "team-settings")

	var resp envelope
	if err := c.do(ctx, http.MethodPut, teamAPIPath, q, body, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return apiError(resp, "Failed to update settings")
	}
	return nil
}

// DeleteTeam deletes a team.
func (c *Client) DeleteTeam(ctx context.Context, teamID int64) error {
	var resp envelope
	if err := c.do(ctx, http.MethodDelete, teamAPIPath, teamQuery("team-settings", teamID), nil, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return apiError(resp, "Failed to delete team")
	}
	return nil
}

// CreateTeam creates a new team owned by the requesting user.
func (c *Client) CreateTeam(ctx context.Context, body teamsModel.CreateTeamRequest) error {
	var resp envelope
	if err := c.do(ctx, http.MethodPost, createTeamPath, nil, body, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return apiError(resp, "Failed to create team")
	}
	return nil
}

// SendJoinRequest applies to join a team.
func (c *Client) SendJoinRequest(ctx context.Context, body teamsModel.JoinRequestBody) error {
	q := url.Values{}
	q.Set("endpoint", "join-request")

	var resp envelope
	if err := c.do(ctx, http.MethodPost, teamAPIPath, q, body, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return apiError(resp, "Failed to send join request")
	}
	return nil
}

// CheckInvolvement reports whether the user is involved with the team.
func (c *Client) CheckInvolvement(ctx context.Context, teamID, userID int64) (bool, error) {
	body := map[string]int64{
		"team_id": teamID,
		"user_id": userID,
	}
	var resp struct {
		envelope
		IsInvolved bool `json:"is_involved"`
	}
	if err := c.do(ctx, http.MethodPost, involvementPath, nil, body, &resp); err != nil {
		return false, err
	}
	if !resp.Success {
		return false, apiError(resp.envelope, "Failed to check team membership status")
	}
	return resp.IsInvolved, nil
}
