package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	tournamentModel "github.com/teamarena/gateway/internal/tournament/model"
)

const (
	tournamentPath     = "/api/get_tournament.php"
	joinTournamentPath = "/api/user_join_tournament.php"
	participantsPath   = "/api/get_accepted_participants.php"
	myTournamentsPath  = "/api/my-tournament.php"
)

// TournamentBySlug fetches a single tournament by its slug.
func (c *Client) TournamentBySlug(ctx context.Context, slug string) (*tournamentModel.Tournament, error) {
	q := url.Values{}
	q.Set("slug", slug)

	var resp struct {
		envelope
		Data *tournamentModel.Tournament `json:"data"`
	}
	if err := c.get(ctx, tournamentPath, q, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Data == nil {
		return nil, apiError(resp.envelope, "Failed to fetch tournament")
	}
	return resp.Data, nil
}

// JoinTournament registers the user for the tournament and returns the
// backend's confirmation message.
func (c *Client) JoinTournament(ctx context.Context, tournamentID, userID int64) (string, error) {
	body := map[string]int64{
		"tournament_id": tournamentID,
		"user_id":       userID,
	}
	var resp envelope
	if err := c.do(ctx, http.MethodPost, joinTournamentPath, nil, body, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", apiError(resp, "Failed to join the tournament")
	}
	return resp.Message, nil
}

// AcceptedParticipants lists the accepted participants of a tournament.
func (c *Client) AcceptedParticipants(ctx context.Context, tournamentID int64) (*tournamentModel.ParticipantList, error) {
	q := url.Values{}
	q.Set("tournament_id", strconv.FormatInt(tournamentID, 10))

	var resp struct {
		envelope
		Participants   []tournamentModel.Participant `json:"participants"`
		TournamentType string                        `json:"tournament_type"`
	}
	if err := c.get(ctx, participantsPath, q, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, apiError(resp.envelope, "Failed to fetch participants")
	}
	return &tournamentModel.ParticipantList{
		Participants:   resp.Participants,
		TournamentType: resp.TournamentType,
	}, nil
}

// MyTournaments lists the tournaments the user participates in.
func (c *Client) MyTournaments(ctx context.Context, userID int64) ([]tournamentModel.Tournament, error) {
	q := url.Values{}
	q.Set("user_id", strconv.FormatInt(userID, 10))

	var resp struct {
		envelope
		Tournaments []tournamentModel.Tournament `json:"tournaments"`
	}
	if err := c.get(ctx, myTournamentsPath, q, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, apiError(resp.envelope, "Failed to fetch participant tournaments")
	}
	return resp.Tournaments, nil
}
