package job

import (
	"context"
	"log/slog"
	"time"

	"LostFoundAPI/internal/config"
	"LostFoundAPI/internal/repository"
)

// RunReportExpiry flips ACTIVE reports older than the retention window to
// EXPIRED so stale listings age out of the public feed.
func RunReportExpiry(ctx context.Context, reports *repository.ReportRepository, cfg *config.AppConfig) error {
	retentionDays := cfg.ReportRetentionDays
	if retentionDays < 0 {
		retentionDays = 90
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)

	slog.Info("Running Report Expiry", "cutoff", cutoff)

	expired, err := reports.ExpireOlderThan(ctx, cutoff)
	if err != nil {
		slog.Error("Failed to expire reports", "error", err)
		return err
	}

	slog.Info("Expired stale reports", "count", expired)
	return nil
}
