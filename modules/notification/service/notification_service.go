package service

import (
	"context"
	"fmt"
	"time"

	coreEntity "pickleball-api/core/entity"
	"pickleball-api/core/params"
	"pickleball-api/core/queue"
	"pickleball-api/modules/notification/dto"
	"pickleball-api/modules/notification/entity"
	"pickleball-api/modules/notification/repository"

	"github.com/google/uuid"
)

type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) error {
	notif := &entity.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
		Data:    entity.JSONB(req.Data),
		IsRead:  false,
		BaseEntity: coreEntity.BaseEntity{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	return s.repo.Create(ctx, notif)
}

// NotifyBookingConfirmed records a notification for a freshly confirmed booking.
// Invoked by the queue worker, not by request handlers.
func (s *NotificationService) NotifyBookingConfirmed(ctx context.Context, p *queue.BookingTaskPayload) error {
	userID, err := uuid.Parse(p.UserID)
	if err != nil {
		return err
	}
	return s.Create(ctx, &dto.CreateNotificationRequest{
		UserID:  userID,
		Title:   "Booking confirmed",
		Message: fmt.Sprintf("Your booking for %s on %s (%s) is confirmed.", p.CourtName, p.Date, p.TimeSlot),
		Type:    entity.TypeBookingConfirmed,
		Data: map[string]interface{}{
			"booking_id": p.BookingID,
			"court_id":   p.CourtID,
			"date":       p.Date,
			"time_slot":  p.TimeSlot,
			"price":      p.Price,
		},
	})
}

// NotifyBookingCancelled records a notification for a cancelled booking.
func (s *NotificationService) NotifyBookingCancelled(ctx context.Context, p *queue.BookingTaskPayload) error {
	userID, err := uuid.Parse(p.UserID)
	if err != nil {
		return err
	}
	return s.Create(ctx, &dto.CreateNotificationRequest{
		UserID:  userID,
		Title:   "Booking cancelled",
		Message: fmt.Sprintf("Your booking for %s on %s (%s) was cancelled.", p.CourtName, p.Date, p.TimeSlot),
		Type:    entity.TypeBookingCancelled,
		Data: map[string]interface{}{
			"booking_id": p.BookingID,
			"court_id":   p.CourtID,
			"date":       p.Date,
			"time_slot":  p.TimeSlot,
		},
	})
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	return s.repo.GetByUserID(ctx, userID, queryParams)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) error {
	return s.repo.MarkAsRead(ctx, userID, ids)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}
