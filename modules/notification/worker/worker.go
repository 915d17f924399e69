package worker

import (
	"context"
	"encoding/json"

	"pickleball-api/core/constants"
	"pickleball-api/core/logger"
	"pickleball-api/core/queue"
	"pickleball-api/modules/notification/service"

	"github.com/hibiken/asynq"
)

// Worker turns booking lifecycle tasks into notification rows.
type Worker struct {
	notifications *service.NotificationService
}

func NewWorker(notifications *service.NotificationService) *Worker {
	return &Worker{notifications: notifications}
}

// Register attaches the task handlers to an asynq mux.
func (w *Worker) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(constants.TaskBookingConfirmed, w.HandleBookingConfirmed)
	mux.HandleFunc(constants.TaskBookingCancelled, w.HandleBookingCancelled)
}

func (w *Worker) HandleBookingConfirmed(ctx context.Context, t *asynq.Task) error {
	var p queue.BookingTaskPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		logger.Error("Worker:HandleBookingConfirmed:UnmarshalError", "error", err)
		return err
	}

	if err := w.notifications.NotifyBookingConfirmed(ctx, &p); err != nil {
		logger.Error("Worker:HandleBookingConfirmed:Error", "booking_id", p.BookingID, "error", err)
		return err
	}

	logger.Info("Worker:HandleBookingConfirmed:Done", "booking_id", p.BookingID, "user_id", p.UserID)
	return nil
}

func (w *Worker) HandleBookingCancelled(ctx context.Context, t *asynq.Task) error {
	var p queue.BookingTaskPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		logger.Error("Worker:HandleBookingCancelled:UnmarshalError", "error", err)
		return err
	}

	if err := w.notifications.NotifyBookingCancelled(ctx, &p); err != nil {
		logger.Error("Worker:HandleBookingCancelled:Error", "booking_id", p.BookingID, "error", err)
		return err
	}

	logger.Info("Worker:HandleBookingCancelled:Done", "booking_id", p.BookingID, "user_id", p.UserID)
	return nil
}
