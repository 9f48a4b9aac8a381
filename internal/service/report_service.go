package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"LostFoundAPI/internal/config"
	"LostFoundAPI/internal/constant"
	"LostFoundAPI/internal/entity"
	"LostFoundAPI/internal/helper"
	"LostFoundAPI/internal/model"
	"LostFoundAPI/internal/repository"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReportService struct {
	reports   ReportStore
	users     UserStore
	cfg       *config.AppConfig
	validator *validator.Validate
}

func NewReportService(reports ReportStore, users UserStore, cfg *config.AppConfig, validator *validator.Validate) *ReportService {
	return &ReportService{
		reports:   reports,
		users:     users,
		cfg:       cfg,
		validator: validator,
	}
}

func (s *ReportService) Create(ctx context.Context, principal *model.UserDTO, req model.CreateReportRequest) (*model.ReportResponse, error) {
	if principal == nil {
		return nil, helper.NewUnauthorizedError("")
	}

	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Create report validation failed", "error", err)
		return nil, helper.NewBadRequestError(err.Error())
	}
	if err := validateVariant(req); err != nil {
		return nil, err
	}

	report := toReportEntity(req, principal.ID)

	saved, err := s.reports.Save(ctx, report)
	if err != nil {
		slog.Error("Failed to save report", "error", err)
		return nil, helper.NewServiceUnavailableError("")
	}

	reporters, err := s.resolveReporters(ctx, []entity.Report{*saved})
	if err != nil {
		return nil, err
	}

	resp := toReportResponse(saved, reporters)
	return &resp, nil
}

func (s *ReportService) GetByID(ctx context.Context, id string) (*model.ReportResponse, error) {
	reportID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, helper.NewBadRequestError("Invalid report id")
	}

	report, err := s.reports.FindByID(ctx, reportID)
	if err != nil {
		return nil, s.reportStoreError(err)
	}

	reporters, err := s.resolveReporters(ctx, []entity.Report{*report})
	if err != nil {
		return nil, err
	}

	resp := toReportResponse(report, reporters)
	return &resp, nil
}

// ListPublic serves the public listing. isPublic is always enforced; an
// omitted status defaults to ACTIVE.
func (s *ReportService) ListPublic(ctx context.Context, reportType, status string, p model.Pageable) (*model.ReportPage, error) {
	if reportType != "" && !constant.IsValidReportType(reportType) {
		return nil, helper.NewBadRequestError("Unknown report type: " + reportType)
	}
	if status == "" {
		status = constant.ReportStatusActive
	} else if !constant.IsValidReportStatus(status) {
		return nil, helper.NewBadRequestError("Unknown report status: " + status)
	}

	reports, total, err := s.reports.FindPublicActivePage(ctx, reportType, status, p)
	if err != nil {
		slog.Error("Failed to list reports", "error", err)
		return nil, helper.NewServiceUnavailableError("")
	}

	reporters, err := s.resolveReporters(ctx, reports)
	if err != nil {
		return nil, err
	}

	return &model.ReportPage{
		Content:       toReportResponses(reports, reporters),
		PageNumber:    p.Page,
		PageSize:      p.Size,
		TotalElements: total,
		TotalPages:    helper.TotalPages(total, p.Size),
	}, nil
}

// MyReports returns all of the caller's reports, any status, any visibility.
func (s *ReportService) MyReports(ctx context.Context, principal *model.UserDTO) ([]model.ReportResponse, error) {
	if principal == nil {
		return nil, helper.NewUnauthorizedError("")
	}

	reports, err := s.reports.FindByReporter(ctx, principal.ID)
	if err != nil {
		slog.Error("Failed to list my reports", "error", err)
		return nil, helper.NewServiceUnavailableError("")
	}

	reporters, err := s.resolveReporters(ctx, reports)
	if err != nil {
		return nil, err
	}

	return toReportResponses(reports, reporters), nil
}

// Nearby returns ACTIVE public reports within radiusMeters of the point,
// ordered by ascending distance. A non-positive radius falls back to the
// configured default.
func (s *ReportService) Nearby(ctx context.Context, latitude, longitude, radiusMeters float64, reportType string) ([]model.ReportResponse, error) {
	if latitude < -90 || latitude > 90 {
		return nil, helper.NewBadRequestError("Latitude must be between -90 and 90")
	}
	if longitude < -180 || longitude > 180 {
		return nil, helper.NewBadRequestError("Longitude must be between -180 and 180")
	}
	if reportType != "" && !constant.IsValidReportType(reportType) {
		return nil, helper.NewBadRequestError("Unknown report type: " + reportType)
	}
	if radiusMeters <= 0 {
		radiusMeters = s.cfg.NearbyRadiusMeters
	}

	reports, err := s.reports.FindNear(ctx, latitude, longitude, radiusMeters, reportType, constant.ReportStatusActive)
	if err != nil {
		slog.Error("Failed to query nearby reports", "error", err)
		return nil, helper.NewServiceUnavailableError("")
	}

	reporters, err := s.resolveReporters(ctx, reports)
	if err != nil {
		return nil, err
	}

	return toReportResponses(reports, reporters), nil
}

// UpdateStatus transitions a report's lifecycle state. Only the reporter or
// an admin may do so.
func (s *ReportService) UpdateStatus(ctx context.Context, principal *model.UserDTO, id, status string) error {
	if principal == nil {
		return helper.NewUnauthorizedError("")
	}

	reportID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return helper.NewBadRequestError("Invalid report id")
	}
	if !constant.IsValidReportStatus(status) {
		return helper.NewBadRequestError("Unknown report status: " + status)
	}

	report, err := s.reports.FindByID(ctx, reportID)
	if err != nil {
		return s.reportStoreError(err)
	}

	if report.ReporterID != principal.ID && !principal.HasRole(constant.RoleAdmin) {
		return helper.NewForbiddenError("Not authorized to update this report")
	}

	if err := s.reports.UpdateStatus(ctx, reportID, status); err != nil {
		return s.reportStoreError(err)
	}
	return nil
}

// Stats aggregates report counts by status and type. Admin only.
func (s *ReportService) Stats(ctx context.Context, principal *model.UserDTO) (*model.ReportStats, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	stats := &model.ReportStats{
		ByStatus: make(map[string]int64, len(constant.ReportStatuses)),
		ByType:   make(map[string]int64, len(constant.ReportTypes)),
	}

	total, err := s.reports.Count(ctx)
	if err != nil {
		slog.Error("Failed to count reports", "error", err)
		return nil, helper.NewServiceUnavailableError("")
	}
	stats.Total = total

	for _, status := range constant.ReportStatuses {
		n, err := s.reports.CountByStatus(ctx, status)
		if err != nil {
			slog.Error("Failed to count reports by status", "status", status, "error", err)
			return nil, helper.NewServiceUnavailableError("")
		}
		stats.ByStatus[status] = n
	}

	for _, reportType := range constant.ReportTypes {
		n, err := s.reports.CountByType(ctx, reportType)
		if err != nil {
			slog.Error("Failed to count reports by type", "type", reportType, "error", err)
			return nil, helper.NewServiceUnavailableError("")
		}
		stats.ByType[reportType] = n
	}

	return stats, nil
}

// SearchByName searches person or item names case-insensitively. Admin only.
func (s *ReportService) SearchByName(ctx context.Context, principal *model.UserDTO, name, kind string) ([]model.ReportResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, helper.NewBadRequestError("Name must not be blank")
	}

	var (
		reports []entity.Report
		err     error
	)
	switch kind {
	case "person":
		reports, err = s.reports.FindByPersonNameContaining(ctx, name)
	case "item":
		reports, err = s.reports.FindByItemNameContaining(ctx, name)
	default:
		return nil, helper.NewBadRequestError("Kind must be person or item")
	}
	if err != nil {
		slog.Error("Failed to search reports", "kind", kind, "error", err)
		return nil, helper.NewServiceUnavailableError("")
	}

	reporters, err := s.resolveReporters(ctx, reports)
	if err != nil {
		return nil, err
	}

	return toReportResponses(reports, reporters), nil
}

// ReportsBetween returns reports created within [start, end]. Admin only.
func (s *ReportService) ReportsBetween(ctx context.Context, principal *model.UserDTO, start, end time.Time) ([]model.ReportResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, helper.NewBadRequestError("Start must not be after end")
	}

	reports, err := s.reports.FindByCreatedAtBetween(ctx, start, end)
	if err != nil {
		slog.Error("Failed to query reports by date range", "error", err)
		return nil, helper.NewServiceUnavailableError("")
	}

	reporters, err := s.resolveReporters(ctx, reports)
	if err != nil {
		return nil, err
	}

	return toReportResponses(reports, reporters), nil
}

// validateVariant enforces the tagged-variant rule: exactly the sub-record
// matching the report type must be present.
func validateVariant(req model.CreateReportRequest) error {
	switch {
	case constant.IsPersonType(req.Type):
		if req.PersonDetails == nil || strings.TrimSpace(req.PersonDetails.FullName) == "" {
			return helper.NewBadRequestError("personDetails.fullName is required for person reports")
		}
		if req.ItemDetails != nil {
			return helper.NewBadRequestError("itemDetails must be absent for person reports")
		}
	case constant.IsItemType(req.Type):
		if req.ItemDetails == nil || strings.TrimSpace(req.ItemDetails.ItemName) == "" {
			return helper.NewBadRequestError("itemDetails.itemName is required for item reports")
		}
		if req.PersonDetails != nil {
			return helper.NewBadRequestError("personDetails must be absent for item reports")
		}
	}
	return nil
}

func requireAdmin(principal *model.UserDTO) error {
	if principal == nil {
		return helper.NewUnauthorizedError("")
	}
	if !principal.HasRole(constant.RoleAdmin) {
		return helper.NewForbiddenError("")
	}
	return nil
}

// resolveReporters batch-loads the reporter projection for a set of reports.
func (s *ReportService) resolveReporters(ctx context.Context, reports []entity.Report) (map[primitive.ObjectID]model.UserSummary, error) {
	seen := make(map[primitive.ObjectID]bool, len(reports))
	ids := make([]primitive.ObjectID, 0, len(reports))
	for _, r := range reports {
		if !r.ReporterID.IsZero() && !seen[r.ReporterID] {
			seen[r.ReporterID] = true
			ids = append(ids, r.ReporterID)
		}
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		slog.Error("Failed to resolve reporters", "error", err)
		return nil, helper.NewServiceUnavailableError("")
	}

	summaries := make(map[primitive.ObjectID]model.UserSummary, len(users))
	for i := range users {
		u := &users[i]
		summaries[u.ID] = model.UserSummary{
			ID:       u.ID.Hex(),
			Username: u.Username,
			FullName: u.FullName(),
		}
	}
	return summaries, nil
}

func (s *ReportService) reportStoreError(err error) error {
	if errors.Is(err, repository.ErrReportNotFound) {
		return helper.NewNotFoundError("Report not found")
	}
	slog.Error("Report store failure", "error", err)
	return helper.NewServiceUnavailableError("")
}
