// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/emateapp/emate/internal/auth"
	"github.com/emateapp/emate/internal/config"
	"github.com/emateapp/emate/internal/email"
	"github.com/emateapp/emate/internal/handler"
	"github.com/emateapp/emate/internal/middleware"
	"github.com/emateapp/emate/internal/repository"
	"github.com/emateapp/emate/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	refereeRepo := repository.NewRefereeRepository(db)
	reportRepo := repository.NewReportRepository(db)
	promptRepo := repository.NewPromptRepository(db)

	// Initialize identity resolution
	tokenManager := auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.ExpiryPeriod)
	resolver := auth.NewIdentityResolver(cfg.Auth.Mode, tokenManager, userRepo)

	// Initialize email service
	emailService, err := email.NewEmailService(cfg, email.ProviderSendgrid)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	// Initialize cache service
	cacheConfig := service.CacheConfig{
		TTL:         30 * time.Second,
		CleanupFreq: 1 * time.Minute,
	}
	cacheService := service.NewCacheService(cacheConfig)
	defer cacheService.Close()

	// Initialize services
	dashboardService := service.NewDashboardService(projectRepo, refereeRepo, userRepo, cacheService)
	projectService := service.NewProjectService(projectRepo, orgRepo, dashboardService)
	reportService := service.NewReportService(reportRepo)
	refereeService := service.NewRefereeService(refereeRepo, projectRepo, emailService, dashboardService)
	userService := service.NewUserService(userRepo, orgRepo, projectRepo, refereeRepo, dashboardService, emailService, cfg)
	promptService := service.NewPromptService(promptRepo)

	// Initialize handlers
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	projectHandler := handler.NewProjectHandler(projectService)
	reportHandler := handler.NewReportHandler(reportService)
	refereeHandler := handler.NewRefereeHandler(refereeService)
	userHandler := handler.NewUserHandler(userService, cfg)
	paymentHandler := handler.NewPaymentHandler(userService, cfg.Paystack.SecretKey)
	promptHandler := handler.NewPromptHandler(promptService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes. The webhook authenticates with its own signature.
		r.Post("/payments/webhook", paymentHandler.Webhook)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(resolver))

			r.Get("/dashboard", dashboardHandler.GetDashboard)

			r.Route("/user", func(r chi.Router) {
				r.Get("/", userHandler.GetMe)
				r.Post("/initialize", userHandler.Initialize)
				r.Post("/update-profile-image", userHandler.UpdateProfileImage)
				r.Patch("/profile", userHandler.UpdateProfile)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", projectHandler.ListProjects)
				r.Post("/", projectHandler.CreateProject)
				r.Get("/{id}", projectHandler.GetProject)
				r.Patch("/{id}", projectHandler.UpdateProject)
				r.Put("/{id}/outcomes", projectHandler.SetOutcome)
				r.Delete("/{id}", projectHandler.DeleteProject)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/", reportHandler.ListReports)
				r.Post("/", reportHandler.CreateReport)
				r.Get("/{id}", reportHandler.GetReport)
				r.Patch("/{id}", reportHandler.UpdateReport)
				r.Post("/{id}/transition", reportHandler.TransitionReport)
				r.Post("/{id}/history", reportHandler.AppendHistory)
				r.Post("/{id}/feedback", reportHandler.AddFeedback)
				r.Post("/{id}/tags", reportHandler.LinkTags)
				r.Delete("/{id}", reportHandler.DeleteReport)
			})

			r.Route("/referees", func(r chi.Router) {
				r.Get("/", refereeHandler.ListReferees)
				r.Post("/", refereeHandler.CreateReferee)
				r.Get("/{id}", refereeHandler.GetReferee)
				r.Patch("/{id}", refereeHandler.UpdateReferee)
				r.Put("/{id}/projects", refereeHandler.AssociateProjects)
				r.Delete("/{id}", refereeHandler.DeleteReferee)
			})

			r.Route("/prompts", func(r chi.Router) {
				r.Get("/", promptHandler.ListPrompts)
				r.Post("/{name}/render", promptHandler.RenderPrompt)
			})
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port, "authMode", cfg.Auth.Mode)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte("{\"error\":\"error encountered\"}"))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
