package service

import (
	"context"
	"sort"

	"pickleball-api/core/config"
	"pickleball-api/core/errors"
	"pickleball-api/core/logger"
	"pickleball-api/core/storage"
	"pickleball-api/modules/facility/dto"
	"pickleball-api/modules/facility/entity"
	"pickleball-api/modules/facility/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type FacilityServiceInterface interface {
	LoadCatalog(ctx context.Context, demo bool) (*dto.CatalogResponse, *errors.AppError)
	GetCourt(ctx context.Context, id uuid.UUID) (*dto.CourtResponse, *errors.AppError)
	CreateCourt(ctx context.Context, req *dto.SaveCourtRequest) (*dto.CourtResponse, *errors.AppError)
	UpdateCourt(ctx context.Context, id uuid.UUID, req *dto.SaveCourtRequest) (*dto.CourtResponse, *errors.AppError)
	DeleteCourt(ctx context.Context, id uuid.UUID) *errors.AppError
}

type FacilityService struct {
	repo    repository.FacilityRepositoryInterface
	storage storage.IStorage
	cfg     config.BookingConfig
}

func NewFacilityService(repo repository.FacilityRepositoryInterface, st storage.IStorage, cfg config.BookingConfig) *FacilityService {
	return &FacilityService{repo: repo, storage: st, cfg: cfg}
}

// LoadCatalog retrieves all courts and synthesizes the facility list by
// grouping on facility_id. When the live catalog is empty or unreadable the
// built-in fixture dataset is substituted only if the caller requested demo
// mode, otherwise the empty catalog is returned with an informational notice.
func (s *FacilityService) LoadCatalog(ctx context.Context, demo bool) (*dto.CatalogResponse, *errors.AppError) {
	courts, err := s.repo.GetAllCourts(ctx)
	if err != nil {
		logger.Warn("FacilityService:LoadCatalog:LiveCatalogUnreadable", "error", err)
		courts = nil
	}

	usedDemo := false
	if len(courts) == 0 {
		if demo && s.cfg.DemoFixturesEnabled {
			courts = fixtureCourts()
			usedDemo = true
			logger.Info("FacilityService:LoadCatalog:DemoFixtures", "courts", len(courts))
		} else {
			return &dto.CatalogResponse{
				Facilities: []dto.FacilityResponse{},
				Notice:     "no courts are configured yet",
			}, nil
		}
	}

	return &dto.CatalogResponse{
		Facilities: s.groupByFacility(ctx, courts),
		Demo:       usedDemo,
	}, nil
}

func (s *FacilityService) groupByFacility(ctx context.Context, courts []entity.Court) []dto.FacilityResponse {
	byFacility := map[string]*dto.FacilityResponse{}
	var order []string

	for i := range courts {
		c := &courts[i]
		fac, ok := byFacility[c.FacilityID]
		if !ok {
			fac = &dto.FacilityResponse{
				ID:          c.FacilityID,
				Name:        c.FacilityName,
				Slug:        slug.Make(c.FacilityName),
				Address:     c.FacilityAddress,
				Description: c.FacilityDescription,
				ImageURL:    s.resolveImage(ctx, c.FacilityImageKey),
			}
			byFacility[c.FacilityID] = fac
			order = append(order, c.FacilityID)
		}
		fac.Courts = append(fac.Courts, dto.ToCourtResponse(c, s.resolveImage(ctx, c.ImageKey)))
		fac.CourtCount = len(fac.Courts)
	}

	out := make([]dto.FacilityResponse, 0, len(order))
	for _, id := range order {
		out = append(out, *byFacility[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *FacilityService) resolveImage(ctx context.Context, key string) string {
	if key == "" || s.storage == nil {
		return ""
	}
	url, err := s.storage.ResolveImageURL(ctx, key)
	if err != nil {
		// image resolution is best-effort, the catalog still loads
		return ""
	}
	return url
}

func (s *FacilityService) GetCourt(ctx context.Context, id uuid.UUID) (*dto.CourtResponse, *errors.AppError) {
	court, err := s.repo.GetCourtByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load court", err)
	}
	if court == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "court not found", nil)
	}
	resp := dto.ToCourtResponse(court, s.resolveImage(ctx, court.ImageKey))
	return &resp, nil
}

func (s *FacilityService) CreateCourt(ctx context.Context, req *dto.SaveCourtRequest) (*dto.CourtResponse, *errors.AppError) {
	if req.Name == "" || req.FacilityID == "" || req.HourlyRate < 1 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "name, facility_id and a positive hourly_rate are required", nil)
	}

	court := courtFromRequest(req)
	if err := s.repo.CreateCourt(ctx, court); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create court", err)
	}

	logger.Info("FacilityService:CreateCourt:Success", "court_id", court.ID, "facility_id", court.FacilityID)
	resp := dto.ToCourtResponse(court, s.resolveImage(ctx, court.ImageKey))
	return &resp, nil
}

func (s *FacilityService) UpdateCourt(ctx context.Context, id uuid.UUID, req *dto.SaveCourtRequest) (*dto.CourtResponse, *errors.AppError) {
	existing, err := s.repo.GetCourtByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load court", err)
	}
	if existing == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "court not found", nil)
	}

	court := courtFromRequest(req)
	court.BaseEntity = existing.BaseEntity
	if err := s.repo.UpdateCourt(ctx, court); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update court", err)
	}

	resp := dto.ToCourtResponse(court, s.resolveImage(ctx, court.ImageKey))
	return &resp, nil
}

func (s *FacilityService) DeleteCourt(ctx context.Context, id uuid.UUID) *errors.AppError {
	if err := s.repo.DeleteCourt(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete court", err)
	}
	return nil
}

func courtFromRequest(req *dto.SaveCourtRequest) *entity.Court {
	return &entity.Court{
		Name:                req.Name,
		Description:         req.Description,
		HourlyRate:          req.HourlyRate,
		Amenities:           req.Amenities,
		ImageKey:            req.ImageKey,
		FacilityID:          req.FacilityID,
		FacilityName:        req.FacilityName,
		FacilityAddress:     req.FacilityAddress,
		FacilityDescription: req.FacilityDescription,
		FacilityImageKey:    req.FacilityImageKey,
	}
}
