package repository

import (
	"context"
	"database/sql"

	"pickleball-api/core/database"
	"pickleball-api/core/logger"
	"pickleball-api/modules/facility/entity"

	"github.com/google/uuid"
)

type FacilityRepository struct {
	db database.IDatabase
}

func NewFacilityRepository(db database.IDatabase) *FacilityRepository {
	return &FacilityRepository{db: db}
}

// FacilityRepositoryInterface defines the repository contract
type FacilityRepositoryInterface interface {
	GetAllCourts(ctx context.Context) ([]entity.Court, error)
	GetCourtByID(ctx context.Context, id uuid.UUID) (*entity.Court, error)
	CreateCourt(ctx context.Context, court *entity.Court) error
	UpdateCourt(ctx context.Context, court *entity.Court) error
	DeleteCourt(ctx context.Context, id uuid.UUID) error
}

const courtColumns = `
	id, name, description, hourly_rate, amenities, image_key,
	facility_id, facility_name, facility_address, facility_description, facility_image_key,
	created_at, updated_at
`

func (r *FacilityRepository) GetAllCourts(ctx context.Context) ([]entity.Court, error) {
	query := `SELECT ` + courtColumns + ` FROM courts ORDER BY facility_name, name`

	var courts []entity.Court
	err := r.db.SelectContext(ctx, &courts, query)
	if err != nil {
		logger.Error("FacilityRepository:GetAllCourts", err)
		return nil, err
	}
	return courts, nil
}

func (r *FacilityRepository) GetCourtByID(ctx context.Context, id uuid.UUID) (*entity.Court, error) {
	query := `SELECT ` + courtColumns + ` FROM courts WHERE id = $1`

	var court entity.Court
	err := r.db.GetContext(ctx, &court, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("FacilityRepository:GetCourtByID", err)
		return nil, err
	}
	return &court, nil
}

func (r *FacilityRepository) CreateCourt(ctx context.Context, court *entity.Court) error {
	query := `
		INSERT INTO courts (name, description, hourly_rate, amenities, image_key,
		                    facility_id, facility_name, facility_address, facility_description, facility_image_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	err := r.db.GetContext(ctx, court, query,
		court.Name, court.Description, court.HourlyRate, court.Amenities, court.ImageKey,
		court.FacilityID, court.FacilityName, court.FacilityAddress, court.FacilityDescription, court.FacilityImageKey)
	if err != nil {
		logger.Error("FacilityRepository:CreateCourt", err)
		return err
	}
	return nil
}

func (r *FacilityRepository) UpdateCourt(ctx context.Context, court *entity.Court) error {
	query := `
		UPDATE courts
		SET name = $2, description = $3, hourly_rate = $4, amenities = $5, image_key = $6,
		    facility_name = $7, facility_address = $8, facility_description = $9, facility_image_key = $10,
		    updated_at = NOW()
		WHERE id = $1
	`
	err := r.db.ExecContext(ctx, query,
		court.ID, court.Name, court.Description, court.HourlyRate, court.Amenities, court.ImageKey,
		court.FacilityName, court.FacilityAddress, court.FacilityDescription, court.FacilityImageKey)
	if err != nil {
		logger.Error("FacilityRepository:UpdateCourt", err)
		return err
	}
	return nil
}

func (r *FacilityRepository) DeleteCourt(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM courts WHERE id = $1`
	err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("FacilityRepository:DeleteCourt", err)
		return err
	}
	return nil
}
