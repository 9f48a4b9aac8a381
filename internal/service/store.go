package service

import (
	"context"
	"time"

	"LostFoundAPI/internal/entity"
	"LostFoundAPI/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore is the persistence surface the services need for users.
// Implemented by repository.UserRepository.
type UserStore interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]entity.User, error)
}

// ReportStore is the persistence surface for reports.
// Implemented by repository.ReportRepository.
type ReportStore interface {
	Save(ctx context.Context, report *entity.Report) (*entity.Report, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Report, error)
	FindByReporter(ctx context.Context, reporterID primitive.ObjectID) ([]entity.Report, error)
	FindPublicActivePage(ctx context.Context, reportType, status string, p model.Pageable) ([]entity.Report, int64, error)
	FindNear(ctx context.Context, latitude, longitude, radiusMeters float64, reportType, status string) ([]entity.Report, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountByType(ctx context.Context, reportType string) (int64, error)
	Count(ctx context.Context) (int64, error)
	FindByPersonNameContaining(ctx context.Context, name string) ([]entity.Report, error)
	FindByItemNameContaining(ctx context.Context, name string) ([]entity.Report, error)
	FindByCreatedAtBetween(ctx context.Context, start, end time.Time) ([]entity.Report, error)
}
