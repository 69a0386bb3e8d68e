package http

import (
	"log/slog"
	"os"

	"github.com/clockwise-hr/timetrack-backend-go/internal/config"
	"github.com/clockwise-hr/timetrack-backend-go/internal/handler/http/middleware"
	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Attendance   AttendanceHandler
	Correction   CorrectionHandler
	Exception    ExceptionHandler
	Sweep        SweepHandler
	Catalog      CatalogHandler
	Assignment   AssignmentHandler
	TimeRule     TimeRuleHandler
	Report       ReportHandler
	Notification NotificationHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timetrack"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Everything requires authentication; token issuance lives in the
		// identity service.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/clock", h.Attendance.Clock)
				r.Get("/my", h.Attendance.ListMine)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/", h.Attendance.List)
					r.Get("/{id}", h.Attendance.Get)
					r.Put("/{id}/punches", h.Attendance.OverwritePunches)
				})
			})

			r.Route("/corrections", func(r chi.Router) {
				r.Post("/", h.Correction.Create)
				r.Get("/{id}", h.Correction.Get)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/", h.Correction.List)
					r.Patch("/{id}/status", h.Correction.UpdateStatus)
				})
			})

			// Manager only
			r.Group(func(r chi.Router) {
				r.Use(middleware.ManagerOnly)

				r.Route("/exceptions", func(r chi.Router) {
					r.Post("/", h.Exception.Create)
					r.Get("/", h.Exception.List)
					r.Get("/{id}", h.Exception.Get)
					r.Patch("/{id}/status", h.Exception.UpdateStatus)
				})

				r.Route("/sweeps", func(r chi.Router) {
					r.Post("/exception-escalation", h.Sweep.ExceptionEscalation)
					r.Post("/payroll-cutoff", h.Sweep.PayrollCutoff)
				})

				r.Route("/shift-types", func(r chi.Router) {
					r.Post("/", h.Catalog.CreateShiftType)
					r.Get("/", h.Catalog.ListShiftTypes)
					r.Get("/{id}", h.Catalog.GetShiftType)
					r.Put("/{id}", h.Catalog.UpdateShiftType)
					r.Delete("/{id}", h.Catalog.DeleteShiftType)
				})

				r.Route("/shifts", func(r chi.Router) {
					r.Post("/", h.Catalog.CreateShift)
					r.Get("/", h.Catalog.ListShifts)
					r.Get("/{id}", h.Catalog.GetShift)
					r.Put("/{id}", h.Catalog.UpdateShift)
					r.Delete("/{id}", h.Catalog.DeleteShift)
				})

				r.Route("/schedule-rules", func(r chi.Router) {
					r.Post("/", h.Catalog.CreateScheduleRule)
					r.Get("/", h.Catalog.ListScheduleRules)
					r.Get("/{id}", h.Catalog.GetScheduleRule)
					r.Put("/{id}", h.Catalog.UpdateScheduleRule)
					r.Delete("/{id}", h.Catalog.DeleteScheduleRule)
				})

				r.Route("/assignments", func(r chi.Router) {
					r.Post("/", h.Assignment.Create)
					r.Post("/bulk", h.Assignment.BulkCreate)
					r.Get("/", h.Assignment.List)
					r.Get("/resolve", h.Assignment.Resolve)
					r.Get("/{id}", h.Assignment.Get)
					r.Patch("/{id}", h.Assignment.Update)
					r.Delete("/{id}", h.Assignment.Delete)
				})

				r.Route("/overtime-rules", func(r chi.Router) {
					r.Post("/", h.TimeRule.CreateOvertimeRule)
					r.Get("/", h.TimeRule.ListOvertimeRules)
					r.Get("/{id}", h.TimeRule.GetOvertimeRule)
					r.Put("/{id}", h.TimeRule.UpdateOvertimeRule)
					r.Delete("/{id}", h.TimeRule.DeleteOvertimeRule)
				})

				r.Route("/lateness-rules", func(r chi.Router) {
					r.Post("/", h.TimeRule.CreateLatenessRule)
					r.Get("/", h.TimeRule.ListLatenessRules)
					r.Get("/{id}", h.TimeRule.GetLatenessRule)
					r.Put("/{id}", h.TimeRule.UpdateLatenessRule)
					r.Delete("/{id}", h.TimeRule.DeleteLatenessRule)
				})

				r.Route("/holidays", func(r chi.Router) {
					r.Post("/", h.TimeRule.CreateHoliday)
					r.Get("/", h.TimeRule.ListHolidays)
					r.Get("/{id}", h.TimeRule.GetHoliday)
					r.Put("/{id}", h.TimeRule.UpdateHoliday)
					r.Delete("/{id}", h.TimeRule.DeleteHoliday)
				})

				r.Route("/reports", func(r chi.Router) {
					r.Get("/attendance", h.Report.Attendance)
					r.Get("/overtime", h.Report.Overtime)
					r.Get("/exceptions", h.Report.Exceptions)
				})

				r.Get("/notifications", h.Notification.List)
			})
		})
	})
	return r
}
