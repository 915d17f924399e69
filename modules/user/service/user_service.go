package service

import (
	"context"

	"pickleball-api/core/errors"
	"pickleball-api/modules/user/dto"
	"pickleball-api/modules/user/repository"

	"github.com/google/uuid"
)

type UserServiceInterface interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, *errors.AppError)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, *errors.AppError)
}

type UserService struct {
	repo repository.UserRepositoryInterface
}

func NewUserService(repo repository.UserRepositoryInterface) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, *errors.AppError) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load profile", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}
	return dto.ToProfileResponse(user), nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, *errors.AppError) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load profile", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if err := s.repo.UpdateProfile(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update profile", err)
	}
	return dto.ToProfileResponse(user), nil
}
