// Package model provides domain models and DTOs for the teams module.
package model

// Member represents a user belonging to a team.
type Member struct {
	UserID  int64  `json:"user_id"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar,omitempty"`
	Role    string `json:"role"`
	Rank    string `json:"rank"`
	IsOwner bool   `json:"is_owner"`
}

// Team represents a team as served by the backend team listing.
type Team struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Image        string   `json:"image,omitempty"`
	OwnerID      int64    `json:"owner_id"`
	PrivacyLevel string   `json:"privacy_level"`
	TeamGame     string   `json:"team_game"`
	Division     string   `json:"division"`
	TotalMembers int      `json:"total_members"`
	Members      []Member `json:"members"`
	CreatedAt    string   `json:"created_at,omitempty"`
}

// Stats holds aggregate team statistics shown on the panel overview.
type Stats struct {
	TotalMembers int    `json:"total_members"`
	WinRate      int    `json:"win_rate"`
	WinRateTrend int    `json:"win_rate_trend"`
	MMR          int    `json:"mmr"`
	RegionalRank string `json:"regional_rank"`
	AverageRank  string `json:"average_rank"`
	Division     string `json:"division"`
}

// JoinRequest is a pending application by a user to join a team.
type JoinRequest struct {
	ID      int64  `json:"id"`
	TeamID  int64  `json:"team_id"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar,omitempty"`
	Role    string `json:"role"`
	Rank    string `json:"rank"`
	Region  string `json:"region,omitempty"`
	Message string `json:"message"`
}

// Settings is the editable settings sub-resource of a team.
type Settings struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	PrivacyLevel string `json:"privacy_level"`
	TeamGame     string `json:"team_game"`
	Division     string `json:"division"`
}

// Panel aggregates the four team sub-resources fetched for the detail view.
// It is only ever fully populated: a failed sub-fetch fails the whole panel.
type Panel struct {
	Stats    *Stats        `json:"stats"`
	Members  []Member      `json:"members"`
	Requests []JoinRequest `json:"requests"`
	Settings *Settings     `json:"settings"`
}

// Directory partitions the full team list for the current user.
type Directory struct {
	All  []Team `json:"all"`
	Mine []Team `json:"mine"`
}
