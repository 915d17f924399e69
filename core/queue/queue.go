package queue

import (
	"context"
	"encoding/json"

	"pickleball-api/core/config"
	"pickleball-api/core/logger"

	"github.com/hibiken/asynq"
)

// BookingTaskPayload is the payload for booking lifecycle tasks
type BookingTaskPayload struct {
	BookingID string `json:"booking_id"`
	UserID    string `json:"user_id"`
	CourtID   string `json:"court_id"`
	CourtName string `json:"court_name"`
	Date      string `json:"date"`
	TimeSlot  string `json:"time_slot"`
	Price     int    `json:"price"`
}

// IQueue enqueues background tasks; services depend on this interface so
// tests can swap in a no-op implementation
type IQueue interface {
	Enqueue(ctx context.Context, taskType string, payload BookingTaskPayload) error
}

type Queue struct {
	client *asynq.Client
}

var instance *Queue

func GetQueue() IQueue {
	return instance
}

func InitQueue(cfg config.RedisConfig) *Queue {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	instance = &Queue{client: client}
	logger.Info("Task queue initialized", "addr", cfg.Addr)
	return instance
}

func (q *Queue) Enqueue(ctx context.Context, taskType string, payload BookingTaskPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	task := asynq.NewTask(taskType, data)
	info, err := q.client.EnqueueContext(ctx, task, asynq.MaxRetry(3))
	if err != nil {
		logger.Error("Queue:Enqueue:Error", "type", taskType, "error", err)
		return err
	}
	logger.Debug("Queue:Enqueue:Success", "type", taskType, "task_id", info.ID)
	return nil
}

func (q *Queue) Close() error {
	return q.client.Close()
}

// NewServer builds the asynq worker that processes booking lifecycle tasks
func NewServer(cfg config.RedisConfig) *asynq.Server {
	return asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
		asynq.Config{
			Concurrency: 5,
		},
	)
}
