package scheduler

import (
	"context"
	"log/slog"

	"LostFoundAPI/internal/config"
	"LostFoundAPI/internal/repository"
	"LostFoundAPI/internal/scheduler/job"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cfg     *config.AppConfig
	reports *repository.ReportRepository
	cron    *cron.Cron
}

func New(cfg *config.AppConfig, reports *repository.ReportRepository) *Scheduler {
	return &Scheduler{
		cfg:     cfg,
		reports: reports,
		cron:    cron.New(),
	}
}

func (s *Scheduler) Start() {
	slog.Info("Starting Scheduler...")

	s.registerJobs()

	s.cron.Start()
	slog.Info("Scheduler started successfully")
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) registerJobs() {
	_, err := s.cron.AddFunc(s.cfg.ReportExpiryCron, func() {
		slog.Info("Starting Report Expiry Job")
		ctx := context.Background()
		if err := job.RunReportExpiry(ctx, s.reports, s.cfg); err != nil {
			slog.Error("Report Expiry Job failed", "error", err)
		} else {
			slog.Info("Report Expiry Job completed")
		}
	})
	if err != nil {
		slog.Error("Failed to register Report Expiry job", "error", err)
	} else {
		slog.Info("Registered Report Expiry Job", "schedule", s.cfg.ReportExpiryCron)
	}
}
