package service

import (
	"context"
	"strings"
	"testing"

	"pickleball-api/core/params"
	"pickleball-api/core/queue"
	"pickleball-api/modules/notification/entity"

	"github.com/google/uuid"
)

type fakeNotificationRepo struct {
	created []*entity.Notification
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	r.created = append(r.created, n)
	return nil
}

func (r *fakeNotificationRepo) GetByUserID(ctx context.Context, userID uuid.UUID, qp params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	return &entity.PaginatedNotificationEntity{}, nil
}

func (r *fakeNotificationRepo) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) error {
	return nil
}

func (r *fakeNotificationRepo) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return nil
}

func (r *fakeNotificationRepo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	return 0, nil
}

func TestNotifyBookingConfirmedRendersCourtName(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)
	userID := uuid.New()

	err := svc.NotifyBookingConfirmed(context.Background(), &queue.BookingTaskPayload{
		BookingID: uuid.NewString(),
		UserID:    userID.String(),
		CourtID:   uuid.NewString(),
		CourtName: "Center Court",
		Date:      "2026-09-02",
		TimeSlot:  "10:00-12:00",
		Price:     50,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("created %d notifications, want 1", len(repo.created))
	}
	n := repo.created[0]
	if n.UserID != userID || n.Type != entity.TypeBookingConfirmed {
		t.Errorf("notification user/type = %v/%q", n.UserID, n.Type)
	}
	if n.Message != "Your booking for Center Court on 2026-09-02 (10:00-12:00) is confirmed." {
		t.Errorf("message = %q", n.Message)
	}
}

func TestNotifyBookingCancelledRendersCourtName(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)

	err := svc.NotifyBookingCancelled(context.Background(), &queue.BookingTaskPayload{
		BookingID: uuid.NewString(),
		UserID:    uuid.NewString(),
		CourtID:   uuid.NewString(),
		CourtName: "Court 1",
		Date:      "2026-09-02",
		TimeSlot:  "10:00-11:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("created %d notifications, want 1", len(repo.created))
	}
	n := repo.created[0]
	if n.Type != entity.TypeBookingCancelled {
		t.Errorf("type = %q, want %q", n.Type, entity.TypeBookingCancelled)
	}
	if n.Message != "Your booking for Court 1 on 2026-09-02 (10:00-11:00) was cancelled." {
		t.Errorf("message = %q", n.Message)
	}
	if strings.Contains(n.Message, "for  on") {
		t.Error("message rendered with an empty court name")
	}
}

func TestNotifyRejectsMalformedUserID(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)

	err := svc.NotifyBookingConfirmed(context.Background(), &queue.BookingTaskPayload{UserID: "not-a-uuid"})
	if err == nil {
		t.Fatal("expected an error for a malformed user id")
	}
	if len(repo.created) != 0 {
		t.Errorf("created %d notifications, want none", len(repo.created))
	}
}
