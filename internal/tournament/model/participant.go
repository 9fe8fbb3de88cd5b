package model

// ParticipantTypeTeam tags team registrations in participant listings.
const ParticipantTypeTeam = "team"

// Participant is an accepted tournament registration: either an individual
// user or a team, discriminated by Type.
type Participant struct {
	RegistrationID   int64  `json:"registration_id"`
	Type             string `json:"type"`
	Username         string `json:"username,omitempty"`
	Avatar           string `json:"avatar,omitempty"`
	TeamName         string `json:"team_name,omitempty"`
	TeamAvatar       string `json:"team_avatar,omitempty"`
	TournamentsCount int    `json:"tournaments_count,omitempty"`
	MemberCount      int    `json:"member_count,omitempty"`
}

// IsTeam reports whether the registration is a team entry.
func (p Participant) IsTeam() bool {
	return p.Type == ParticipantTypeTeam
}

// DisplayName returns the name to render for the card.
func (p Participant) DisplayName() string {
	if p.IsTeam() {
		return p.TeamName
	}
	return p.Username
}

// ParticipantList is the participants response together with the
// tournament's participation type ("team" or individual).
type ParticipantList struct {
	Participants   []Participant `json:"participants"`
	TournamentType string        `json:"tournament_type"`
}
