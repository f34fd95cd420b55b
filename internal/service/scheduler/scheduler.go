package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"SqueezeWatch/internal/usecase"
	"SqueezeWatch/pkg/config"
	xlogger "SqueezeWatch/pkg/logger"
)

// Scheduler runs the daily scanner refresh.
type Scheduler struct {
	cron    *gocron.Scheduler
	scanner *usecase.MarketScanner
	refresh string
	logger  *xlogger.Logger
}

func New(cfg *config.Config, scanner *usecase.MarketScanner, logger *xlogger.Logger) *Scheduler {
	return &Scheduler{
		cron:    gocron.NewScheduler(time.UTC),
		scanner: scanner,
		refresh: cfg.Scanner.RefreshAt,
		logger:  logger,
	}
}

// Start registers the refresh job and begins the schedule in the background.
func (s *Scheduler) Start() error {
	_, err := s.cron.Every(1).Day().At(s.refresh).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := s.scanner.Refresh(ctx); err != nil {
			s.logger.Error("scheduled scanner refresh failed", xlogger.Error(err))
		}
	})
	if err != nil {
		return err
	}
	s.cron.StartAsync()
	s.logger.Info("scheduler started", xlogger.String("refresh_at", s.refresh))
	return nil
}

// Stop halts the schedule and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
