package repository

import (
	"context"
	"database/sql"

	"pickleball-api/core/database"
	"pickleball-api/core/logger"
	"pickleball-api/modules/user/entity"

	"github.com/google/uuid"
)

type UserRepository struct {
	db database.IDatabase
}

func NewUserRepository(db database.IDatabase) *UserRepository {
	return &UserRepository{db: db}
}

// UserRepositoryInterface defines the repository contract
type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, user *entity.User) error
	AppendBookingID(ctx context.Context, userID uuid.UUID, bookingID uuid.UUID) error
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, email, full_name, phone, COALESCE(booking_ids, '{}') AS booking_ids, created_at, updated_at
		FROM users WHERE id = $1
	`

	var user entity.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByID", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET full_name = $2, phone = $3, updated_at = NOW()
		WHERE id = $1
	`
	err := r.db.ExecContext(ctx, query, user.ID, user.FullName, user.Phone)
	if err != nil {
		logger.Error("UserRepository:UpdateProfile", err)
		return err
	}
	return nil
}

// AppendBookingID is the single-field profile update performed after a
// booking commit. It is a second, independently-failable write: the caller
// logs a failure but does not roll the booking back.
func (r *UserRepository) AppendBookingID(ctx context.Context, userID uuid.UUID, bookingID uuid.UUID) error {
	query := `
		UPDATE users
		SET booking_ids = array_append(COALESCE(booking_ids, '{}'), $2), updated_at = NOW()
		WHERE id = $1
	`
	err := r.db.ExecContext(ctx, query, userID, bookingID.String())
	if err != nil {
		logger.Error("UserRepository:AppendBookingID", err)
		return err
	}
	return nil
}
