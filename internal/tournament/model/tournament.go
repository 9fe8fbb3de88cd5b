// Package model provides domain models for the tournament module.
package model

// Status is the backend's fixed status enumeration. The wire values are
// French; they must be preserved exactly for compatibility.
type Status string

const (
	// StatusOpen means the tournament is open for registration.
	StatusOpen Status = "Ouvert aux inscriptions"
	// StatusInProgress means the tournament is running.
	StatusInProgress Status = "En cours"
	// StatusFinished means the tournament is over.
	StatusFinished Status = "Terminé"
)

// AllowsRegistration reports whether the join action may be offered.
func (s Status) AllowsRegistration() bool {
	return s == StatusOpen
}

// Message returns the fixed informational text rendered instead of the
// join action for non-open statuses.
func (s Status) Message() string {
	switch s {
	case StatusOpen:
		return ""
	case StatusInProgress:
		return "Tournament is in progress ..."
	default:
		return "Tournament is " + string(s)
	}
}

// Tournament represents a tournament as served by the backend. Field names
// follow the backend's wire vocabulary.
type Tournament struct {
	ID                int64  `json:"id"`
	Slug              string `json:"slug"`
	Name              string `json:"nom_des_qualifications"`
	Description       string `json:"description_des_qualifications"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	Status            Status `json:"status"`
	MaxParticipants   int    `json:"nombre_maximum"`
	PrizePool         string `json:"prize_pool"`
	Format            string `json:"format_des_qualifications"`
	MatchType         string `json:"type_de_match"`
	GameType          string `json:"type_de_jeu"`
	Rules             string `json:"rules"`
	Image             string `json:"image,omitempty"`
	ParticipationType string `json:"participation_type"`
	RegisteredCount   int    `json:"registered_count"`
	SpotsRemaining    int    `json:"spots_remaining"`
}

// Detail is the participation view of a single tournament: the record plus
// the derived join state for the current user.
type Detail struct {
	Tournament *Tournament `json:"tournament"`
	HasJoined  bool        `json:"has_joined"`
	CanJoin    bool        `json:"can_join"`
	// StatusMessage is non-empty when the status disallows joining.
	StatusMessage string `json:"status_message,omitempty"`
}

// Filters narrows the my-tournaments listing. Empty fields match everything.
type Filters struct {
	Status Status
	Format string
}

// Matches reports whether the tournament passes the filters.
func (f Filters) Matches(t Tournament) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Format != "" && t.Format != f.Format {
		return false
	}
	return true
}
