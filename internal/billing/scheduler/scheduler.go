// Package scheduler runs the billing auto-pay sweep on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"greatglobal/internal/billing/models"
)

// Sweeper charges due auto-pay subscriptions.
type Sweeper interface {
	RunAutoPay(ctx context.Context) (models.AutoPayReport, error)
}

// Scheduler owns the cron runner for billing jobs.
type Scheduler struct {
	cron     *cron.Cron
	sweeper  Sweeper
	logger   *slog.Logger
	schedule string
	timeout  time.Duration
}

// New builds a scheduler. timeout bounds each sweep; zero means one minute.
func New(sweeper Sweeper, logger *slog.Logger, schedule string, timeout time.Duration) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Scheduler{
		cron:     cron.New(cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger))),
		sweeper:  sweeper,
		logger:   logger,
		schedule: schedule,
		timeout:  timeout,
	}
}

// Start registers the auto-pay job and starts the runner.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runAutoPay); err != nil {
		return fmt.Errorf("schedule auto-pay %q: %w", s.schedule, err)
	}
	s.logger.Info("scheduled auto-pay job", "schedule", s.schedule)
	s.cron.Start()
	return nil
}

// Stop halts the runner. The returned context is done once running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) runAutoPay() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	report, err := s.sweeper.RunAutoPay(ctx)
	if err != nil {
		s.logger.Error("auto-pay sweep failed",
			"charged", report.Charged,
			"failed", report.Failed,
			"error", err,
		)
	}
}
