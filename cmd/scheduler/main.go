package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"LostFoundAPI/internal/config"
	"LostFoundAPI/internal/repository"
	"LostFoundAPI/internal/scheduler"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.LoadAppConfig()

	client, db := config.InitMongo(cfg)
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			slog.Error("Failed to disconnect from MongoDB", "error", err)
		}
	}()

	reportRepository := repository.NewReportRepository(db)

	sched := scheduler.New(cfg, reportRepository)
	sched.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down scheduler...")
	sched.Stop()
}
