package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"sportclash/internal/config"
	"sportclash/internal/database"
	"sportclash/internal/handlers"
	"sportclash/internal/repository"
	"sportclash/internal/security"
	"sportclash/internal/service"
)

func main() {
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Seed sports and unlock definitions
	if err := db.SeedCatalog(); err != nil {
		log.Printf("Warning: Failed to seed catalog: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	classRepo := repository.NewClassRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	scoreRepo := repository.NewScoreRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret, err = security.GenerateSecureToken(32)
		if err != nil {
			log.Fatalf("Failed to generate JWT secret: %v", err)
		}
		log.Println("JWT_SECRET not set; using an ephemeral secret, tokens will not survive a restart")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtSecret, cfg.TokenTTL)
	emailService, err := service.NewEmailService(cfg.SESRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	statsService := service.NewStatsService(studentRepo, attendanceRepo, scoreRepo, catalogRepo, cfg.LevelStep, cfg.DemoStudentID)
	notifier := service.NewNotifierService(statsService, studentRepo, emailService)
	sessionService := service.NewSessionService(sessionRepo, classRepo, catalogRepo)
	attendanceService := service.NewAttendanceService(sessionRepo, classRepo, attendanceRepo, notifier)
	scoreService := service.NewScoreService(sessionRepo, classRepo, studentRepo, catalogRepo, scoreRepo, attendanceRepo, notifier)
	rankingService := service.NewRankingService(classRepo, studentRepo, scoreRepo, attendanceRepo)
	rosterService := service.NewRosterService(classRepo, studentRepo)
	backupService := service.NewBackupService(db)

	var googleOAuth *oauth2.Config
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		googleOAuth = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"openid", "email", "profile"},
			RedirectURL:  cfg.OAuthRedirectBaseURL + "/api/auth/google/callback",
		}
	}

	// Initialize handlers
	loginLimiter := security.NewRateLimiter(10, time.Minute)
	middleware := handlers.NewMiddleware(authService, loginLimiter)
	authHandler := handlers.NewAuthHandler(authService, emailService, googleOAuth)
	sessionHandler := handlers.NewSessionHandler(sessionService, attendanceService, scoreService)
	scoreHandler := handlers.NewScoreHandler(scoreService)
	statsHandler := handlers.NewStatsHandler(statsService, rankingService)
	rosterHandler := handlers.NewRosterHandler(rosterService)
	adminHandler := handlers.NewAdminHandler(backupService)

	// Setup routes
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("POST /api/auth/register", middleware.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /api/auth/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("GET /api/auth/google/start", authHandler.StartGoogleOAuth)
	mux.HandleFunc("GET /api/auth/google/callback", authHandler.GoogleOAuthCallback)

	// Roster management
	mux.HandleFunc("POST /api/classes", middleware.RequireAuth(rosterHandler.CreateClass))
	mux.HandleFunc("POST /api/students", middleware.RequireAuth(rosterHandler.CreateStudent))
	mux.HandleFunc("POST /api/classes/{id}/enroll", middleware.RequireAuth(rosterHandler.Enroll))
	mux.HandleFunc("GET /api/classes/{id}/roster", middleware.RequireAuth(rosterHandler.GetRoster))

	// Session lifecycle and recorders
	mux.HandleFunc("POST /api/sessions", middleware.RequireAuth(sessionHandler.CreateSession))
	mux.HandleFunc("GET /api/sessions/{id}", middleware.RequireAuth(sessionHandler.GetSession))
	mux.HandleFunc("GET /api/classes/{id}/sessions", middleware.RequireAuth(sessionHandler.ListClassSessions))
	mux.HandleFunc("GET /api/sessions/{id}/attendance", middleware.RequireAuth(sessionHandler.GetSessionAttendance))
	mux.HandleFunc("POST /api/sessions/{id}/attendance", middleware.RequireAuth(sessionHandler.RecordAttendance))
	mux.HandleFunc("POST /api/sessions/{id}/scores", middleware.RequireAuth(sessionHandler.RecordBatchScores))
	mux.HandleFunc("POST /api/sessions/{id}/complete", middleware.RequireAuth(sessionHandler.CompleteSession))
	mux.HandleFunc("POST /api/scores", middleware.RequireAuth(scoreHandler.RecordScore))

	// Derived read-only views
	mux.HandleFunc("GET /api/students/{id}/statistics", statsHandler.GetStatistics)
	mux.HandleFunc("GET /api/students/{id}/unlocks", statsHandler.GetUnlocks)
	mux.HandleFunc("GET /api/classes/{id}/ranking", statsHandler.GetRanking)
	mux.HandleFunc("GET /api/students/{id}/ranking", statsHandler.GetStudentRanking)

	// Admin
	mux.HandleFunc("GET /api/admin/export", middleware.RequireAdmin(adminHandler.ExportData))

	handler := handlers.Logging(mux)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
