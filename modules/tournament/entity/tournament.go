package entity

import (
	"pickleball-api/core/entity"

	"github.com/google/uuid"
)

// Tournament statuses
const (
	TournamentStatusUpcoming  = "upcoming"
	TournamentStatusActive    = "active"
	TournamentStatusCompleted = "completed"
)

type Tournament struct {
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Date        string `db:"date" json:"date"`
	Format      string `db:"format" json:"format"`
	MaxTeams    int    `db:"max_teams" json:"max_teams"`
	EntryFee    int    `db:"entry_fee" json:"entry_fee"`
	Status      string `db:"status" json:"status"`
	entity.BaseEntity
}

// Registration is one team's entry in a tournament, accumulating match
// results as the bracket progresses.
type Registration struct {
	TournamentID  uuid.UUID `db:"tournament_id" json:"tournament_id"`
	UserID        uuid.UUID `db:"user_id" json:"user_id"`
	TeamName      string    `db:"team_name" json:"team_name"`
	Wins          int       `db:"wins" json:"wins"`
	Losses        int       `db:"losses" json:"losses"`
	PointsFor     int       `db:"points_for" json:"points_for"`
	PointsAgainst int       `db:"points_against" json:"points_against"`
	entity.BaseEntity
}

// PointDiff is the standings tiebreaker after wins.
func (r *Registration) PointDiff() int {
	return r.PointsFor - r.PointsAgainst
}
