package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/glowpoint/salon-backend-go/internal/handler/http/middleware"
	"github.com/glowpoint/salon-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	masterHandler MasterHandler,
	revenueHandler RevenueHandler,
	bonusHandler BonusHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "salon-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", authHandler.Profile)

			r.Route("/branches", func(r chi.Router) {
				r.Get("/", masterHandler.ListBranches)
				r.Get("/{id}", masterHandler.GetBranch)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", masterHandler.CreateBranch)
					r.Put("/{id}", masterHandler.UpdateBranch)
					r.Delete("/{id}", masterHandler.DeactivateBranch)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", masterHandler.ListEmployees)
				r.Get("/{id}", masterHandler.GetEmployee)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", masterHandler.CreateEmployee)
					r.Put("/{id}", masterHandler.UpdateEmployee)
					r.Post("/{id}/resign", masterHandler.ResignEmployee)
				})
			})

			r.Route("/revenues", func(r chi.Router) {
				r.Post("/", revenueHandler.Record)
				r.Get("/", revenueHandler.List)
				r.Get("/{id}", revenueHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", revenueHandler.Delete)
				})
			})

			r.Route("/bonuses", func(r chi.Router) {
				r.Post("/compute", bonusHandler.Compute)
				r.Get("/", bonusHandler.List)
				r.Get("/audit-logs", bonusHandler.AuditLogs)
				r.Get("/{id}", bonusHandler.Get)
				r.Post("/{id}/discrepancy-check", bonusHandler.CheckDiscrepancies)

				// Branch supervisors request the payout
				r.Post("/{id}/{action:request}", bonusHandler.Transition)

				// Head office decides and pays
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/{action:approve|reject|pay}", bonusHandler.Transition)
					r.Delete("/{id}", bonusHandler.Delete)
				})
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
