package controller

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"LostFoundAPI/internal/config"
	"LostFoundAPI/internal/helper"
	"LostFoundAPI/internal/middleware"
	"LostFoundAPI/internal/model"
	"LostFoundAPI/internal/service"

	"github.com/go-chi/chi/v5"
)

type ReportController struct {
	reportService *service.ReportService
	cfg           *config.AppConfig
}

func NewReportController(reportService *service.ReportService, cfg *config.AppConfig) *ReportController {
	return &ReportController{
		reportService: reportService,
		cfg:           cfg,
	}
}

// CreateReport godoc
// @Summary      Create Report
// @Description  File a missing person, lost item, found person or found item report
// @Tags         report
// @Accept       json
// @Produce      json
// @Param        request body model.CreateReportRequest true "Create Report Request"
// @Success      200  {object}  helper.ResponseSuccess{data=model.ReportResponse}
// @Failure      400  {object}  helper.ResponseError
// @Failure      401  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /reports [post]
func (c *ReportController) CreateReport(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFromContext(r.Context())

	var req model.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("Invalid request body", "error", err)
		helper.WriteError(w, helper.NewBadRequestError(""))
		return
	}

	resp, err := c.reportService.Create(r.Context(), principal, req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// ListReports godoc
// @Summary      List Reports
// @Description  Browse public reports with pagination, sorting and filtering
// @Tags         report
// @Produce      json
// @Param        page     query int    false "zero-based page"           default(0)
// @Param        size     query int    false "page size, clamped to max" default(10)
// @Param        sortBy   query string false "createdAt|updatedAt|rewardAmount|incidentDateTime"
// @Param        sortDir  query string false "asc|desc"                  default(desc)
// @Param        type     query string false "report type filter"
// @Param        status   query string false "status filter"             default(ACTIVE)
// @Success      200  {object}  helper.ResponseSuccess{data=model.ReportPage}
// @Failure      400  {object}  helper.ResponseError
// @Router       /reports [get]
func (c *ReportController) ListReports(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	pageable, err := helper.ParsePageable(query, c.cfg.MaxPageSize)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	resp, err := c.reportService.ListPublic(r.Context(), query.Get("type"), query.Get("status"), pageable)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// GetReport godoc
// @Summary      Get Report
// @Description  Fetch a single report by id
// @Tags         report
// @Produce      json
// @Param        id path string true "report id"
// @Success      200  {object}  helper.ResponseSuccess{data=model.ReportResponse}
// @Failure      400  {object}  helper.ResponseError
// @Failure      404  {object}  helper.ResponseError
// @Router       /reports/{id} [get]
func (c *ReportController) GetReport(w http.ResponseWriter, r *http.Request) {
	resp, err := c.reportService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// MyReports godoc
// @Summary      My Reports
// @Description  List all of the caller's reports, any status or visibility
// @Tags         report
// @Produce      json
// @Success      200  {object}  helper.ResponseSuccess{data=[]model.ReportResponse}
// @Failure      401  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /reports/my-reports [get]
func (c *ReportController) MyReports(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFromContext(r.Context())

	resp, err := c.reportService.MyReports(r.Context(), principal)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// NearbyReports godoc
// @Summary      Nearby Reports
// @Description  List ACTIVE public reports near a point, closest first
// @Tags         report
// @Produce      json
// @Param        latitude       query number true  "query point latitude"
// @Param        longitude      query number true  "query point longitude"
// @Param        radiusInMeters query number false "search radius" default(10000)
// @Param        type           query string false "report type filter"
// @Success      200  {object}  helper.ResponseSuccess{data=[]model.ReportResponse}
// @Failure      400  {object}  helper.ResponseError
// @Router       /reports/nearby [get]
func (c *ReportController) NearbyReports(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	latitude, err := strconv.ParseFloat(query.Get("latitude"), 64)
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("latitude is required and must be a number"))
		return
	}
	longitude, err := strconv.ParseFloat(query.Get("longitude"), 64)
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("longitude is required and must be a number"))
		return
	}

	var radius float64
	if raw := query.Get("radiusInMeters"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			helper.WriteError(w, helper.NewBadRequestError("radiusInMeters must be a number"))
			return
		}
	}

	resp, err := c.reportService.Nearby(r.Context(), latitude, longitude, radius, query.Get("type"))
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// UpdateReportStatus godoc
// @Summary      Update Report Status
// @Description  Transition a report's lifecycle state; reporter or admin only
// @Tags         report
// @Produce      json
// @Param        id     path  string true "report id"
// @Param        status query string true "new status"
// @Success      200  {object}  helper.ResponseSuccess
// @Failure      400  {object}  helper.ResponseError
// @Failure      401  {object}  helper.ResponseError
// @Failure      403  {object}  helper.ResponseError
// @Failure      404  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /reports/{id}/status [put]
func (c *ReportController) UpdateReportStatus(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFromContext(r.Context())

	err := c.reportService.UpdateStatus(r.Context(), principal, chi.URLParam(r, "id"), r.URL.Query().Get("status"))
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, "Report status updated successfully")
}

// ReportStats godoc
// @Summary      Report Stats
// @Description  Aggregate report counts by status and type; admin only
// @Tags         report
// @Produce      json
// @Success      200  {object}  helper.ResponseSuccess{data=model.ReportStats}
// @Failure      401  {object}  helper.ResponseError
// @Failure      403  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /reports/stats [get]
func (c *ReportController) ReportStats(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFromContext(r.Context())

	resp, err := c.reportService.Stats(r.Context(), principal)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// SearchReports godoc
// @Summary      Search Reports
// @Description  Case-insensitive name search over person or item reports; admin only
// @Tags         report
// @Produce      json
// @Param        name query string true "substring to match"
// @Param        kind query string true "person|item"
// @Success      200  {object}  helper.ResponseSuccess{data=[]model.ReportResponse}
// @Failure      400  {object}  helper.ResponseError
// @Failure      401  {object}  helper.ResponseError
// @Failure      403  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /reports/search [get]
func (c *ReportController) SearchReports(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFromContext(r.Context())
	query := r.URL.Query()

	resp, err := c.reportService.SearchByName(r.Context(), principal, query.Get("name"), query.Get("kind"))
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// ReportsInRange godoc
// @Summary      Reports In Range
// @Description  List reports created within an RFC3339 time range; admin only
// @Tags         report
// @Produce      json
// @Param        start query string true "range start (RFC3339)"
// @Param        end   query string true "range end (RFC3339)"
// @Success      200  {object}  helper.ResponseSuccess{data=[]model.ReportResponse}
// @Failure      400  {object}  helper.ResponseError
// @Failure      401  {object}  helper.ResponseError
// @Failure      403  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /reports/range [get]
func (c *ReportController) ReportsInRange(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFromContext(r.Context())
	query := r.URL.Query()

	start, err := time.Parse(time.RFC3339, query.Get("start"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("start must be an RFC3339 timestamp"))
		return
	}
	end, err := time.Parse(time.RFC3339, query.Get("end"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("end must be an RFC3339 timestamp"))
		return
	}

	resp, err := c.reportService.ReportsBetween(r.Context(), principal, start, end)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}
