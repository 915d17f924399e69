package service

import (
	"context"
	"sort"

	"pickleball-api/core/errors"
	"pickleball-api/core/logger"
	"pickleball-api/modules/tournament/dto"
	"pickleball-api/modules/tournament/entity"
	"pickleball-api/modules/tournament/repository"

	"github.com/google/uuid"
)

type TournamentServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateTournamentRequest) (*dto.TournamentResponse, *errors.AppError)
	List(ctx context.Context) ([]dto.TournamentResponse, *errors.AppError)
	Get(ctx context.Context, id uuid.UUID) (*dto.TournamentResponse, *errors.AppError)
	Register(ctx context.Context, userID, tournamentID uuid.UUID, req *dto.RegisterRequest) (*entity.Registration, *errors.AppError)
	Standings(ctx context.Context, tournamentID uuid.UUID) (*dto.StandingsResponse, *errors.AppError)
	RecordResult(ctx context.Context, tournamentID uuid.UUID, req *dto.RecordResultRequest) *errors.AppError
	UpdateStatus(ctx context.Context, tournamentID uuid.UUID, req *dto.UpdateStatusRequest) (*dto.TournamentResponse, *errors.AppError)
}

type TournamentService struct {
	repo repository.TournamentRepositoryInterface
}

func NewTournamentService(repo repository.TournamentRepositoryInterface) *TournamentService {
	return &TournamentService{repo: repo}
}

func (s *TournamentService) Create(ctx context.Context, req *dto.CreateTournamentRequest) (*dto.TournamentResponse, *errors.AppError) {
	if req.Name == "" || req.Date == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Name and date are required", nil)
	}
	if req.MaxTeams <= 0 {
		req.MaxTeams = 16
	}
	if req.Format == "" {
		req.Format = "round_robin"
	}

	tournament := &entity.Tournament{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Format:      req.Format,
		MaxTeams:    req.MaxTeams,
		EntryFee:    req.EntryFee,
		Status:      entity.TournamentStatusUpcoming,
	}
	if err := s.repo.Create(ctx, tournament); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create tournament", err)
	}

	logger.Info("TournamentService:Create:Created", "tournament_id", tournament.ID, "name", tournament.Name)
	return dto.ToTournamentResponse(tournament, 0), nil
}

func (s *TournamentService) List(ctx context.Context) ([]dto.TournamentResponse, *errors.AppError) {
	tournaments, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list tournaments", err)
	}

	responses := make([]dto.TournamentResponse, 0, len(tournaments))
	for i := range tournaments {
		count, err := s.repo.CountRegistrations(ctx, tournaments[i].ID)
		if err != nil {
			count = 0
		}
		responses = append(responses, *dto.ToTournamentResponse(&tournaments[i], count))
	}
	return responses, nil
}

func (s *TournamentService) Get(ctx context.Context, id uuid.UUID) (*dto.TournamentResponse, *errors.AppError) {
	tournament, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get tournament", err)
	}
	if tournament == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Tournament not found", nil)
	}

	count, err := s.repo.CountRegistrations(ctx, id)
	if err != nil {
		count = 0
	}
	return dto.ToTournamentResponse(tournament, count), nil
}

func (s *TournamentService) Register(ctx context.Context, userID, tournamentID uuid.UUID, req *dto.RegisterRequest) (*entity.Registration, *errors.AppError) {
	if req.TeamName == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Team name is required", nil)
	}

	tournament, err := s.repo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get tournament", err)
	}
	if tournament == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Tournament not found", nil)
	}
	if tournament.Status != entity.TournamentStatusUpcoming {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Registration is closed for this tournament", nil)
	}

	existing, err := s.repo.GetRegistrationByUser(ctx, tournamentID, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check registration", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Already registered for this tournament", nil)
	}

	count, err := s.repo.CountRegistrations(ctx, tournamentID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to count registrations", err)
	}
	if count >= tournament.MaxTeams {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Tournament is full", nil)
	}

	reg := &entity.Registration{
		TournamentID: tournamentID,
		UserID:       userID,
		TeamName:     req.TeamName,
	}
	if err := s.repo.CreateRegistration(ctx, reg); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to register", err)
	}

	logger.Info("TournamentService:Register:Registered",
		"tournament_id", tournamentID,
		"user_id", userID,
		"team", req.TeamName,
	)
	return reg, nil
}

// UpdateStatus moves a tournament along upcoming -> active -> completed.
// Status never moves backwards.
func (s *TournamentService) UpdateStatus(ctx context.Context, tournamentID uuid.UUID, req *dto.UpdateStatusRequest) (*dto.TournamentResponse, *errors.AppError) {
	order := map[string]int{
		entity.TournamentStatusUpcoming:  0,
		entity.TournamentStatusActive:    1,
		entity.TournamentStatusCompleted: 2,
	}
	next, ok := order[req.Status]
	if !ok {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown tournament status", nil)
	}

	tournament, err := s.repo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get tournament", err)
	}
	if tournament == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Tournament not found", nil)
	}
	if next < order[tournament.Status] {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Tournament status cannot move backwards", nil)
	}

	if err := s.repo.UpdateStatus(ctx, tournamentID, req.Status); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update tournament", err)
	}
	tournament.Status = req.Status

	count, err := s.repo.CountRegistrations(ctx, tournamentID)
	if err != nil {
		count = 0
	}

	logger.Info("TournamentService:UpdateStatus:Updated", "tournament_id", tournamentID, "status", req.Status)
	return dto.ToTournamentResponse(tournament, count), nil
}

// Standings ranks registrations by wins, then point differential, then team
// name for a stable order.
func (s *TournamentService) Standings(ctx context.Context, tournamentID uuid.UUID) (*dto.StandingsResponse, *errors.AppError) {
	tournament, err := s.repo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get tournament", err)
	}
	if tournament == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Tournament not found", nil)
	}

	regs, err := s.repo.GetRegistrations(ctx, tournamentID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get registrations", err)
	}

	sort.Slice(regs, func(i, j int) bool {
		if regs[i].Wins != regs[j].Wins {
			return regs[i].Wins > regs[j].Wins
		}
		if regs[i].PointDiff() != regs[j].PointDiff() {
			return regs[i].PointDiff() > regs[j].PointDiff()
		}
		return regs[i].TeamName < regs[j].TeamName
	})

	rows := make([]dto.StandingRow, 0, len(regs))
	for i := range regs {
		rows = append(rows, dto.StandingRow{
			Rank:           i + 1,
			RegistrationID: regs[i].ID,
			TeamName:       regs[i].TeamName,
			Wins:           regs[i].Wins,
			Losses:         regs[i].Losses,
			PointsFor:      regs[i].PointsFor,
			PointsAgainst:  regs[i].PointsAgainst,
			PointDiff:      regs[i].PointDiff(),
		})
	}

	return &dto.StandingsResponse{TournamentID: tournamentID, Standings: rows}, nil
}

func (s *TournamentService) RecordResult(ctx context.Context, tournamentID uuid.UUID, req *dto.RecordResultRequest) *errors.AppError {
	if req.WinnerID == req.LoserID {
		return errors.NewAppError(errors.ErrInvalidInput, "Winner and loser must differ", nil)
	}
	if req.WinnerPoints < req.LoserPoints {
		return errors.NewAppError(errors.ErrInvalidInput, "Winner points must be at least loser points", nil)
	}

	tournament, err := s.repo.GetByID(ctx, tournamentID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get tournament", err)
	}
	if tournament == nil {
		return errors.NewAppError(errors.ErrNotFound, "Tournament not found", nil)
	}

	if tournament.Status == entity.TournamentStatusUpcoming {
		if err := s.repo.UpdateStatus(ctx, tournamentID, entity.TournamentStatusActive); err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "Failed to activate tournament", err)
		}
	}

	if err := s.repo.ApplyResult(ctx, req.WinnerID, true, req.WinnerPoints, req.LoserPoints); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to record result", err)
	}
	if err := s.repo.ApplyResult(ctx, req.LoserID, false, req.LoserPoints, req.WinnerPoints); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to record result", err)
	}

	logger.Info("TournamentService:RecordResult:Recorded",
		"tournament_id", tournamentID,
		"winner", req.WinnerID,
		"loser", req.LoserID,
	)
	return nil
}
