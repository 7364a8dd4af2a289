package http

import (
	"log/slog"
	"os"

	"github.com/agroverde/packhouse-backend-go/internal/handler/http/middleware"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Worker     WorkerHandler
	Attendance AttendanceHandler
	Session    SessionHandler
	Bag        BagHandler
	Master     MasterHandler
	RateCard   RateCardHandler
	Report     ReportHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "packhouse-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/auth/register", h.Auth.RegisterUser)
			})

			r.Route("/workers", func(r chi.Router) {
				r.Get("/", h.Worker.List)
				r.Get("/{id}", h.Worker.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.SupervisorOrAdmin)
					r.Get("/{workerID}/earnings/daily", h.RateCard.DailyEarnings)
					r.Get("/{workerID}/stats", h.Report.WorkerDetail)
					r.Post("/", h.Worker.Enroll)
					r.Put("/{id}", h.Worker.Update)
					r.Delete("/{id}", h.Worker.Deactivate)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Get("/{id}", h.Attendance.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.SupervisorOrAdmin)
					r.Post("/check-in", h.Attendance.CheckIn)
					r.Post("/{id}/check-out", h.Attendance.CheckOut)
				})
			})

			r.Route("/sessions", func(r chi.Router) {
				r.Get("/", h.Session.List)
				r.Get("/{id}", h.Session.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.SupervisorOrAdmin)
					r.Post("/", h.Session.Open)
					r.Post("/{id}/close", h.Session.Close)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/validate", h.Session.MarkValidated)
				})
			})

			r.Route("/bags", func(r chi.Router) {
				r.Get("/", h.Bag.List)
				r.Get("/{id}", h.Bag.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.SupervisorOrAdmin)
					r.Post("/", h.Bag.Record)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Patch("/{id}/status", h.Bag.ProgressStatus)
				})
			})

			r.Route("/exporters", func(r chi.Router) {
				r.Get("/", h.Master.ListExporters)
				r.Get("/{id}", h.Master.GetExporter)
				r.Get("/{exporterID}/rate-cards", h.RateCard.ListByExporter)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Master.CreateExporter)
					r.Put("/{id}", h.Master.UpdateExporter)
					r.Delete("/{id}", h.Master.DeactivateExporter)
				})
			})

			r.Route("/cooperatives", func(r chi.Router) {
				r.Get("/", h.Master.ListCooperatives)
				r.Get("/{id}", h.Master.GetCooperative)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Master.CreateCooperative)
					r.Put("/{id}", h.Master.UpdateCooperative)
					r.Delete("/{id}", h.Master.DeactivateCooperative)
				})
			})

			r.Route("/facilities", func(r chi.Router) {
				r.Get("/", h.Master.ListFacilities)
				r.Get("/{id}", h.Master.GetFacility)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Master.CreateFacility)
					r.Put("/{id}", h.Master.UpdateFacility)
					r.Delete("/{id}", h.Master.DeactivateFacility)
				})
			})

			r.Route("/rate-cards", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.RateCard.Create)
				r.Get("/{id}", h.RateCard.Get)
				r.Delete("/{id}", h.RateCard.Deactivate)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.SupervisorOrAdmin)
				r.Get("/daily-operations", h.Report.DailyOperations)
				r.Get("/workforce", h.Report.WorkforceStats)
				r.Get("/attendance", h.Report.AttendanceReport)
				r.Get("/exporter-ranking", h.Report.ExporterRanking)
			})
		})
	})
	return r
}
