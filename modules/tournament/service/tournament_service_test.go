package service

import (
	"context"
	"testing"

	"pickleball-api/core/errors"
	"pickleball-api/modules/tournament/dto"
	"pickleball-api/modules/tournament/entity"

	"github.com/google/uuid"
)

type fakeTournamentRepo struct {
	tournaments   map[uuid.UUID]*entity.Tournament
	registrations map[uuid.UUID]*entity.Registration
}

func newFakeTournamentRepo() *fakeTournamentRepo {
	return &fakeTournamentRepo{
		tournaments:   map[uuid.UUID]*entity.Tournament{},
		registrations: map[uuid.UUID]*entity.Registration{},
	}
}

func (r *fakeTournamentRepo) Create(ctx context.Context, t *entity.Tournament) error {
	t.ID = uuid.New()
	r.tournaments[t.ID] = t
	return nil
}

func (r *fakeTournamentRepo) GetAll(ctx context.Context) ([]entity.Tournament, error) {
	var out []entity.Tournament
	for _, t := range r.tournaments {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTournamentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Tournament, error) {
	t, ok := r.tournaments[id]
	if !ok {
		return nil, nil
	}
	return t, nil
}

func (r *fakeTournamentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if t, ok := r.tournaments[id]; ok {
		t.Status = status
	}
	return nil
}

func (r *fakeTournamentRepo) CreateRegistration(ctx context.Context, reg *entity.Registration) error {
	reg.ID = uuid.New()
	r.registrations[reg.ID] = reg
	return nil
}

func (r *fakeTournamentRepo) GetRegistrationByUser(ctx context.Context, tournamentID, userID uuid.UUID) (*entity.Registration, error) {
	for _, reg := range r.registrations {
		if reg.TournamentID == tournamentID && reg.UserID == userID {
			return reg, nil
		}
	}
	return nil, nil
}

func (r *fakeTournamentRepo) GetRegistrations(ctx context.Context, tournamentID uuid.UUID) ([]entity.Registration, error) {
	var out []entity.Registration
	for _, reg := range r.registrations {
		if reg.TournamentID == tournamentID {
			out = append(out, *reg)
		}
	}
	return out, nil
}

func (r *fakeTournamentRepo) CountRegistrations(ctx context.Context, tournamentID uuid.UUID) (int, error) {
	regs, _ := r.GetRegistrations(ctx, tournamentID)
	return len(regs), nil
}

func (r *fakeTournamentRepo) ApplyResult(ctx context.Context, registrationID uuid.UUID, won bool, pointsFor, pointsAgainst int) error {
	reg := r.registrations[registrationID]
	if won {
		reg.Wins++
	} else {
		reg.Losses++
	}
	reg.PointsFor += pointsFor
	reg.PointsAgainst += pointsAgainst
	return nil
}

func (r *fakeTournamentRepo) addRegistration(tournamentID uuid.UUID, team string, wins, losses, pf, pa int) {
	reg := &entity.Registration{
		TournamentID:  tournamentID,
		UserID:        uuid.New(),
		TeamName:      team,
		Wins:          wins,
		Losses:        losses,
		PointsFor:     pf,
		PointsAgainst: pa,
	}
	reg.ID = uuid.New()
	r.registrations[reg.ID] = reg
}

func TestStandingsOrdering(t *testing.T) {
	repo := newFakeTournamentRepo()
	svc := NewTournamentService(repo)

	tournament := &entity.Tournament{Name: "Fall Open", Date: "2026-10-01", Status: entity.TournamentStatusActive}
	_ = repo.Create(context.Background(), tournament)

	// wins decide first, then point diff, then name
	repo.addRegistration(tournament.ID, "Charlie", 2, 1, 40, 30)
	repo.addRegistration(tournament.ID, "Alpha", 3, 0, 33, 20)
	repo.addRegistration(tournament.ID, "Bravo", 2, 1, 45, 30)
	repo.addRegistration(tournament.ID, "Delta", 2, 1, 40, 30)

	resp, appErr := svc.Standings(context.Background(), tournament.ID)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	want := []string{"Alpha", "Bravo", "Charlie", "Delta"}
	if len(resp.Standings) != len(want) {
		t.Fatalf("got %d rows, want %d", len(resp.Standings), len(want))
	}
	for i, row := range resp.Standings {
		if row.TeamName != want[i] {
			t.Errorf("rank %d = %q, want %q", i+1, row.TeamName, want[i])
		}
		if row.Rank != i+1 {
			t.Errorf("rank field = %d, want %d", row.Rank, i+1)
		}
	}
	if resp.Standings[1].PointDiff != 15 {
		t.Errorf("Bravo point diff = %d, want 15", resp.Standings[1].PointDiff)
	}
}

func TestRegisterCapacityAndDuplicates(t *testing.T) {
	repo := newFakeTournamentRepo()
	svc := NewTournamentService(repo)

	tournament := &entity.Tournament{Name: "Small Cup", Date: "2026-10-01", MaxTeams: 1, Status: entity.TournamentStatusUpcoming}
	_ = repo.Create(context.Background(), tournament)

	userID := uuid.New()
	if _, appErr := svc.Register(context.Background(), userID, tournament.ID, &dto.RegisterRequest{TeamName: "Dinks"}); appErr != nil {
		t.Fatalf("first registration failed: %v", appErr)
	}

	// same user again
	_, appErr := svc.Register(context.Background(), userID, tournament.ID, &dto.RegisterRequest{TeamName: "Dinks"})
	if appErr == nil || appErr.Code != errors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", appErr)
	}

	// capacity reached
	_, appErr = svc.Register(context.Background(), uuid.New(), tournament.ID, &dto.RegisterRequest{TeamName: "Lobbers"})
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("expected capacity rejection, got %v", appErr)
	}
}

func TestUpdateStatusNeverMovesBackwards(t *testing.T) {
	repo := newFakeTournamentRepo()
	svc := NewTournamentService(repo)

	tournament := &entity.Tournament{Name: "Fall Open", Date: "2026-10-01", Status: entity.TournamentStatusUpcoming}
	_ = repo.Create(context.Background(), tournament)

	resp, appErr := svc.UpdateStatus(context.Background(), tournament.ID, &dto.UpdateStatusRequest{Status: entity.TournamentStatusCompleted})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if resp.Status != entity.TournamentStatusCompleted {
		t.Errorf("status = %q, want completed", resp.Status)
	}

	_, appErr = svc.UpdateStatus(context.Background(), tournament.ID, &dto.UpdateStatusRequest{Status: entity.TournamentStatusActive})
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("expected rejection of backwards transition, got %v", appErr)
	}

	_, appErr = svc.UpdateStatus(context.Background(), tournament.ID, &dto.UpdateStatusRequest{Status: "postponed"})
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("expected rejection of unknown status, got %v", appErr)
	}
}

func TestRecordResultUpdatesBothSides(t *testing.T) {
	repo := newFakeTournamentRepo()
	svc := NewTournamentService(repo)

	tournament := &entity.Tournament{Name: "Fall Open", Date: "2026-10-01", Status: entity.TournamentStatusUpcoming}
	_ = repo.Create(context.Background(), tournament)
	repo.addRegistration(tournament.ID, "Alpha", 0, 0, 0, 0)
	repo.addRegistration(tournament.ID, "Bravo", 0, 0, 0, 0)

	var alpha, bravo uuid.UUID
	for id, reg := range repo.registrations {
		if reg.TeamName == "Alpha" {
			alpha = id
		} else {
			bravo = id
		}
	}

	appErr := svc.RecordResult(context.Background(), tournament.ID, &dto.RecordResultRequest{
		WinnerID: alpha, LoserID: bravo, WinnerPoints: 11, LoserPoints: 7,
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	if repo.registrations[alpha].Wins != 1 || repo.registrations[alpha].PointsFor != 11 || repo.registrations[alpha].PointsAgainst != 7 {
		t.Errorf("winner totals wrong: %+v", repo.registrations[alpha])
	}
	if repo.registrations[bravo].Losses != 1 || repo.registrations[bravo].PointsFor != 7 || repo.registrations[bravo].PointsAgainst != 11 {
		t.Errorf("loser totals wrong: %+v", repo.registrations[bravo])
	}
	if repo.tournaments[tournament.ID].Status != entity.TournamentStatusActive {
		t.Error("first result should activate the tournament")
	}
}
