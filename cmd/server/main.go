package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	httpapi "learnhub-backend/internal/api/http"
	"learnhub-backend/internal/config"
	"learnhub-backend/internal/logger"
	"learnhub-backend/internal/repository/postgres"
	"learnhub-backend/internal/security"
	"learnhub-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting LearnHub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	// Initialize Email Service
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)

	// Initialize Services
	auditSvc := service.NewAuditService(store.AuditRepository)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository, auditSvc)
	promotionSvc := service.NewPromotionService(store.PromotionRepository, store.UserRepository, auditSvc, emailSvc)
	roleChangeSvc := service.NewRoleChangeService(store.RoleChangeRepository, store.UserRepository, auditSvc, emailSvc)
	settingsSvc := service.NewSettingsService(store.SettingsRepository, auditSvc)
	quizSvc := service.NewQuizService(store.QuizRepository)

	// Set up HTTP routes
	router := httpapi.NewRouter(httpapi.RouterDeps{
		TokenManager: tokenManager,
		Auth:         authSvc,
		Users:        userSvc,
		Promotions:   promotionSvc,
		RoleChanges:  roleChangeSvc,
		Settings:     settingsSvc,
		Audit:        auditSvc,
		Quizzes:      quizSvc,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
