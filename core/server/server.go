package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pickleball-api/core/cache"
	"pickleball-api/core/config"
	"pickleball-api/core/database"
	"pickleball-api/core/logger"
	"pickleball-api/core/middleware"
	"pickleball-api/core/queue"
	"pickleball-api/core/storage"
	"pickleball-api/modules/analytics"
	"pickleball-api/modules/booking"
	"pickleball-api/modules/facility"
	"pickleball-api/modules/notification"
	"pickleball-api/modules/notification/worker"
	"pickleball-api/modules/shop"
	"pickleball-api/modules/tournament"
	"pickleball-api/modules/user"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/robfig/cron/v3"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Run boots the API: config, database, cache, queue, storage, routes, the
// background worker and the cache prune job, then serves until interrupted.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}

	c, err := cache.InitCache(cfg.Redis)
	if err != nil {
		return err
	}

	q := queue.InitQueue(cfg.Redis)
	defer q.Close()

	st := storage.InitStorage(cfg.S3)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/healthz", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	mw := middleware.NewMiddleware()

	courtRepo := facility.Init(e, db, mw, st)
	userRepo := user.Init(e, db, mw)
	booking.Init(e, db, mw, courtRepo, userRepo, c, q)
	notificationSvc := notification.Init(e, db, mw)
	tournament.Init(e, db, mw)
	shop.Init(e, db, mw, st)
	analytics.Init(e, db, mw)

	// background worker for booking lifecycle tasks
	srv := queue.NewServer(cfg.Redis)
	mux := asynq.NewServeMux()
	worker.NewWorker(notificationSvc).Register(mux)
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Error("Server:Worker:Stopped", "error", err)
		}
	}()

	// nightly prune of stale availability snapshots
	scheduler := cron.New()
	_, err = scheduler.AddFunc("30 3 * * *", func() {
		today := time.Now().Format("2006-01-02")
		deleted, err := c.DeleteAvailabilityKeys(context.Background(), today)
		if err != nil {
			logger.Error("Server:AvailabilityPrune:Error", "error", err)
			return
		}
		logger.Info("Server:AvailabilityPrune:Done", "deleted", deleted)
	})
	if err != nil {
		return fmt.Errorf("schedule availability prune: %w", err)
	}
	scheduler.Start()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start:Error", "error", err)
		}
	}()
	logger.Info("Server started", "addr", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	scheduler.Stop()
	srv.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
