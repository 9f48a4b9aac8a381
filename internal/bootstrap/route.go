package bootstrap

import (
	"net/http"
	"time"

	"LostFoundAPI/internal/controller"
	"LostFoundAPI/internal/middleware"

	"github.com/go-chi/chi/v5"
)

type Route struct {
	chi              *chi.Mux
	authController   *controller.AuthController
	reportController *controller.ReportController
	auth             *middleware.AuthMiddleware
	rateLimit        *middleware.RateLimitMiddleware
}

func NewRoute(chi *chi.Mux, authController *controller.AuthController, reportController *controller.ReportController, auth *middleware.AuthMiddleware, rateLimit *middleware.RateLimitMiddleware) *Route {
	return &Route{
		chi:              chi,
		authController:   authController,
		reportController: reportController,
		auth:             auth,
		rateLimit:        rateLimit,
	}
}

func (route *Route) Register() {
	route.chi.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	route.chi.Route("/auth", func(r chi.Router) {
		r.With(route.rateLimit.Limit("register", 5, time.Minute)).Post("/register", route.authController.Register)
		r.With(route.rateLimit.Limit("login", 10, time.Minute)).Post("/login", route.authController.Login)
		r.With(route.rateLimit.Limit("google", 10, time.Minute)).Post("/google", route.authController.GoogleExchange)
		r.With(route.auth.VerifyToken).Get("/me", route.authController.Me)
	})

	route.chi.Route("/reports", func(r chi.Router) {
		r.Get("/", route.reportController.ListReports)
		r.Get("/nearby", route.reportController.NearbyReports)
		r.Get("/{id}", route.reportController.GetReport)

		r.Group(func(r chi.Router) {
			r.Use(route.auth.VerifyToken)
			r.Post("/", route.reportController.CreateReport)
			r.Get("/my-reports", route.reportController.MyReports)
			r.Get("/stats", route.reportController.ReportStats)
			r.Get("/search", route.reportController.SearchReports)
			r.Get("/range", route.reportController.ReportsInRange)
			r.Put("/{id}/status", route.reportController.UpdateReportStatus)
		})
	})
}
