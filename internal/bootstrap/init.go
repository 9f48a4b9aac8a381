package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"LostFoundAPI/internal/adapter"
	"LostFoundAPI/internal/config"
	"LostFoundAPI/internal/controller"
	"LostFoundAPI/internal/middleware"
	"LostFoundAPI/internal/repository"
	"LostFoundAPI/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

func Init(cfg *config.AppConfig, db *mongo.Database, validate *validator.Validate, redisAdapter *adapter.RedisAdapter, chiMux *chi.Mux) {
	userRepository := repository.NewUserRepository(db)
	reportRepository := repository.NewReportRepository(db)
	rateLimitRepository := repository.NewRateLimitRepository(redisAdapter)

	ensureIndexes(userRepository, reportRepository)

	authService := service.NewAuthService(userRepository, cfg, validate)
	reportService := service.NewReportService(reportRepository, userRepository, cfg, validate)

	authController := controller.NewAuthController(authService)
	reportController := controller.NewReportController(reportService, cfg)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(rateLimitRepository, cfg)

	route := NewRoute(chiMux, authController, reportController, authMiddleware, rateLimitMiddleware)
	route.Register()
}

func ensureIndexes(userRepository *repository.UserRepository, reportRepository *repository.ReportRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := userRepository.EnsureIndexes(ctx); err != nil {
		slog.Error("Failed to ensure user indexes", "error", err)
	}
	if err := reportRepository.EnsureIndexes(ctx); err != nil {
		slog.Error("Failed to ensure report indexes", "error", err)
	}
}
