package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"

	"LostFoundAPI/internal/adapter"
	"LostFoundAPI/internal/bootstrap"
	"LostFoundAPI/internal/config"
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

	redisAdapter, err := adapter.NewRedisAdapter(cfg)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer redisAdapter.Close()

	validate := config.NewValidator()
	chiMux := config.NewChi(cfg)

	bootstrap.Init(cfg, db, validate, redisAdapter, chiMux)

	addr := net.JoinHostPort(cfg.AppHost, cfg.AppPort)
	slog.Info("Starting server", "address", addr)
	if err := http.ListenAndServe(addr, chiMux); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
