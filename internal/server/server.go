// Package server wires the application together: database, services,
// handlers, middleware, and routes. It is the composition root — every
// dependency is assembled here and nowhere else.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sakif/maintainer-match/internal/auth"
	"github.com/sakif/maintainer-match/internal/config"
	"github.com/sakif/maintainer-match/internal/handler"
	"github.com/sakif/maintainer-match/internal/middleware"
	sqliteRepo "github.com/sakif/maintainer-match/internal/repository/sqlite"
	"github.com/sakif/maintainer-match/internal/service"
)

// Server owns the router and the database connection. The connection is
// closed during graceful shutdown, after in-flight requests drain.
type Server struct {
	router *chi.Mux
	config config.Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New opens the database and assembles the full dependency chain:
// db → sub-stores → services → handlers → routes. Handlers never touch the
// database; services never touch HTTP.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}
	s.setupRoutes()
	return s, nil
}

// setupRoutes configures middleware and the route table.
//
// Middleware order matters: RequestID first so the logger can pick it up,
// Recoverer last so a panicking handler still produces a logged 500.
func (s *Server) setupRoutes() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(chimiddleware.Recoverer)

	// The SPA is served from a different origin and sends the session cookie
	// with every API call, so credentials must be allowed — which rules out a
	// wildcard origin.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{s.config.FrontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	users := s.db.Users()
	sessions := s.db.Sessions()

	userService := service.NewUserService(users, s.logger)
	projectService := service.NewProjectService(s.db.Projects(), s.logger)
	maintainerService := service.NewMaintainerService(s.db.Maintainers(), s.logger)
	matchService := service.NewMatchService(s.db.Matches(), s.logger)
	authService := service.NewAuthService(users, sessions, s.logger)

	provider := auth.NewGitHubProvider(s.config.GitHubClientID, s.config.GitHubSecret, s.config.CallbackURL())
	if !provider.Configured() {
		s.logger.Warn("GitHub OAuth credentials not set, logins will fail")
	}

	userHandler := handler.NewUserHandler(userService, s.logger)
	projectHandler := handler.NewProjectHandler(projectService, s.logger)
	maintainerHandler := handler.NewMaintainerHandler(maintainerService, s.logger)
	matchHandler := handler.NewMatchHandler(matchService, s.logger)
	authHandler := handler.NewAuthHandler(authService, provider, s.logger)

	s.router.Get("/", handler.HandleRoot)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/users", userHandler.HandleList)
		r.Post("/users", userHandler.HandleCreate)
		r.Get("/users/{id}", userHandler.HandleGet)

		r.Get("/projects", projectHandler.HandleList)
		r.With(auth.RequireAuth(sessions, users)).Post("/projects", projectHandler.HandleCreate)
		r.Get("/projects/{id}", projectHandler.HandleGet)

		r.Get("/maintainers", maintainerHandler.HandleList)
		r.Post("/maintainers", maintainerHandler.HandleCreate)
		r.Get("/maintainers/{id}", maintainerHandler.HandleGet)

		r.Get("/matches", matchHandler.HandleList)
		r.Post("/matches", matchHandler.HandleCreate)
	})

	s.router.Route("/auth", func(r chi.Router) {
		r.Get("/login", authHandler.HandleLogin)
		r.Get("/callback", authHandler.HandleCallback)
		r.Get("/logout", authHandler.HandleLogout)
		r.Get("/me", authHandler.HandleMe)
	})
}

// Start runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests for up to 30 seconds and closes the database.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
