package repository

import (
	"context"
	"database/sql"

	"pickleball-api/core/database"
	"pickleball-api/core/logger"
	"pickleball-api/modules/tournament/entity"

	"github.com/google/uuid"
)

type TournamentRepository struct {
	db database.IDatabase
}

func NewTournamentRepository(db database.IDatabase) *TournamentRepository {
	return &TournamentRepository{db: db}
}

// TournamentRepositoryInterface defines the repository contract
type TournamentRepositoryInterface interface {
	Create(ctx context.Context, tournament *entity.Tournament) error
	GetAll(ctx context.Context) ([]entity.Tournament, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Tournament, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	CreateRegistration(ctx context.Context, reg *entity.Registration) error
	GetRegistrationByUser(ctx context.Context, tournamentID, userID uuid.UUID) (*entity.Registration, error)
	GetRegistrations(ctx context.Context, tournamentID uuid.UUID) ([]entity.Registration, error)
	CountRegistrations(ctx context.Context, tournamentID uuid.UUID) (int, error)
	ApplyResult(ctx context.Context, registrationID uuid.UUID, won bool, pointsFor, pointsAgainst int) error
}

const tournamentColumns = `id, name, description, date, format, max_teams, entry_fee, status, created_at, updated_at`

const registrationColumns = `id, tournament_id, user_id, team_name, wins, losses, points_for, points_against, created_at, updated_at`

func (r *TournamentRepository) Create(ctx context.Context, tournament *entity.Tournament) error {
	query := `
		INSERT INTO tournaments (name, description, date, format, max_teams, entry_fee, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.db.GetContext(ctx, tournament, query,
		tournament.Name, tournament.Description, tournament.Date, tournament.Format,
		tournament.MaxTeams, tournament.EntryFee, tournament.Status)
	if err != nil {
		logger.Error("TournamentRepository:Create", err)
		return err
	}
	return nil
}

func (r *TournamentRepository) GetAll(ctx context.Context) ([]entity.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments ORDER BY date ASC`

	var tournaments []entity.Tournament
	err := r.db.SelectContext(ctx, &tournaments, query)
	if err != nil {
		logger.Error("TournamentRepository:GetAll", err)
		return nil, err
	}
	return tournaments, nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = $1`

	var tournament entity.Tournament
	err := r.db.GetContext(ctx, &tournament, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TournamentRepository:GetByID", err)
		return nil, err
	}
	return &tournament, nil
}

func (r *TournamentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE tournaments SET status = $2, updated_at = NOW() WHERE id = $1`
	err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		logger.Error("TournamentRepository:UpdateStatus", err)
		return err
	}
	return nil
}

func (r *TournamentRepository) CreateRegistration(ctx context.Context, reg *entity.Registration) error {
	query := `
		INSERT INTO tournament_registrations (tournament_id, user_id, team_name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := r.db.GetContext(ctx, reg, query, reg.TournamentID, reg.UserID, reg.TeamName)
	if err != nil {
		logger.Error("TournamentRepository:CreateRegistration", err)
		return err
	}
	return nil
}

func (r *TournamentRepository) GetRegistrationByUser(ctx context.Context, tournamentID, userID uuid.UUID) (*entity.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM tournament_registrations
		WHERE tournament_id = $1 AND user_id = $2
	`

	var reg entity.Registration
	err := r.db.GetContext(ctx, &reg, query, tournamentID, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TournamentRepository:GetRegistrationByUser", err)
		return nil, err
	}
	return &reg, nil
}

func (r *TournamentRepository) GetRegistrations(ctx context.Context, tournamentID uuid.UUID) ([]entity.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM tournament_registrations
		WHERE tournament_id = $1
	`

	var regs []entity.Registration
	err := r.db.SelectContext(ctx, &regs, query, tournamentID)
	if err != nil {
		logger.Error("TournamentRepository:GetRegistrations", err)
		return nil, err
	}
	return regs, nil
}

func (r *TournamentRepository) CountRegistrations(ctx context.Context, tournamentID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM tournament_registrations WHERE tournament_id = $1`
	err := r.db.GetContext(ctx, &count, query, tournamentID)
	if err != nil {
		logger.Error("TournamentRepository:CountRegistrations", err)
		return 0, err
	}
	return count, nil
}

// ApplyResult folds one match result into a registration's running totals.
func (r *TournamentRepository) ApplyResult(ctx context.Context, registrationID uuid.UUID, won bool, pointsFor, pointsAgainst int) error {
	query := `
		UPDATE tournament_registrations
		SET wins = wins + $2,
		    losses = losses + $3,
		    points_for = points_for + $4,
		    points_against = points_against + $5,
		    updated_at = NOW()
		WHERE id = $1
	`
	winInc, lossInc := 0, 1
	if won {
		winInc, lossInc = 1, 0
	}
	err := r.db.ExecContext(ctx, query, registrationID, winInc, lossInc, pointsFor, pointsAgainst)
	if err != nil {
		logger.Error("TournamentRepository:ApplyResult", err)
		return err
	}
	return nil
}
