package model

// RequestAction is the UI-level decision on a pending join request.
type RequestAction string

const (
	ActionAccept RequestAction = "accept"
	ActionReject RequestAction = "reject"
)

// WireStatus maps the action to the status vocabulary the backend expects.
func (a RequestAction) WireStatus() string {
	if a == ActionAccept {
		return "accepted"
	}
	return "rejected"
}

// Valid reports whether the action is one of the two known values.
func (a RequestAction) Valid() bool {
	return a == ActionAccept || a == ActionReject
}

// ResolveRequestBody is the mutation body for accepting or rejecting a request.
type ResolveRequestBody struct {
	TeamID    int64  `json:"team_id"`
	RequestID int64  `json:"request_id"`
	Action    string `json:"action"`
}

// UpdateSettingsRequest is a full replace of the settings sub-resource.
type UpdateSettingsRequest struct {
	TeamID       int64  `json:"team_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	PrivacyLevel string `json:"privacy_level"`
	TeamGame     string `json:"team_game"`
	Division     string `json:"division"`
}

// Requirements describes who a new team is looking for.
type Requirements struct {
	MinRank   string `json:"minRank"`
	Region    string `json:"region"`
	PlayStyle string `json:"playStyle"`
	Role      string `json:"role"`
}

// CreateTeamRequest is the payload for creating a team. OwnerID and
// OwnerName are filled from the session, never from client input.
type CreateTeamRequest struct {
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Privacy      string       `json:"privacy"`
	Image        string       `json:"image,omitempty"`
	OwnerID      int64        `json:"owner_id"`
	OwnerName    string       `json:"owner_name"`
	TeamGame     string       `json:"team_game"`
	Requirements Requirements `json:"requirements"`
}

// JoinRequestBody is the payload for applying to join a team.
type JoinRequestBody struct {
	TeamID int64  `json:"team_id"`
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	Rank   string `json:"rank"`
}

// PanelResponse is the handler response for the team panel, with a flag
// telling the caller whether its own team list should be refreshed.
type PanelResponse struct {
	Panel        *Panel `json:"panel"`
	RefreshTeams bool   `json:"refresh_teams"`
}
