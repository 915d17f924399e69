package dto

import (
	"time"

	"pickleball-api/modules/tournament/entity"

	"github.com/google/uuid"
)

type CreateTournamentRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required"`
	Format      string `json:"format"`
	MaxTeams    int    `json:"max_teams"`
	EntryFee    int    `json:"entry_fee"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type RegisterRequest struct {
	TeamName string `json:"team_name" validate:"required"`
}

type RecordResultRequest struct {
	WinnerID     uuid.UUID `json:"winner_id" validate:"required"`
	LoserID      uuid.UUID `json:"loser_id" validate:"required"`
	WinnerPoints int       `json:"winner_points"`
	LoserPoints  int       `json:"loser_points"`
}

type TournamentResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Date            string    `json:"date"`
	Format          string    `json:"format"`
	MaxTeams        int       `json:"max_teams"`
	EntryFee        int       `json:"entry_fee"`
	Status          string    `json:"status"`
	RegisteredTeams int       `json:"registered_teams"`
	CreatedAt       time.Time `json:"created_at"`
}

type StandingRow struct {
	Rank           int       `json:"rank"`
	RegistrationID uuid.UUID `json:"registration_id"`
	TeamName       string    `json:"team_name"`
	Wins           int       `json:"wins"`
	Losses         int       `json:"losses"`
	PointsFor      int       `json:"points_for"`
	PointsAgainst  int       `json:"points_against"`
	PointDiff      int       `json:"point_diff"`
}

type StandingsResponse struct {
	TournamentID uuid.UUID     `json:"tournament_id"`
	Standings    []StandingRow `json:"standings"`
}

func ToTournamentResponse(t *entity.Tournament, registered int) *TournamentResponse {
	return &TournamentResponse{
		ID:              t.ID,
		Name:            t.Name,
		Description:     t.Description,
		Date:            t.Date,
		Format:          t.Format,
		MaxTeams:        t.MaxTeams,
		EntryFee:        t.EntryFee,
		Status:          t.Status,
		RegisteredTeams: registered,
		CreatedAt:       t.CreatedAt,
	}
}
