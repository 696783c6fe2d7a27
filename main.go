package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Rohanrwt/Naqsh-Resort-MVP/internal/api"
	"github.com/Rohanrwt/Naqsh-Resort-MVP/internal/auth"
	"github.com/Rohanrwt/Naqsh-Resort-MVP/internal/config"
	"github.com/Rohanrwt/Naqsh-Resort-MVP/internal/database"
	"github.com/Rohanrwt/Naqsh-Resort-MVP/internal/models"
	"github.com/Rohanrwt/Naqsh-Resort-MVP/internal/pricing"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()
	cfg := config.Load()

	// Rate table is fixed at startup
	rates, err := pricing.Load(cfg.RatesPath)
	if err != nil {
		log.Fatalf("Failed to load rate table: %v", err)
	}

	log.Printf("Opening record store at %s", cfg.DatabasePath)
	store, err := database.Open(database.Config{Path: cfg.DatabasePath})
	if err != nil {
		log.Fatalf("Failed to open record store: %v", err)
	}
	defer store.Close()

	if err := createDefaultAdminIfNeeded(store, cfg); err != nil {
		log.Printf("Warning: failed to create default admin: %v", err)
	}

	authSvc := auth.NewService(store, cfg.SessionTTL)
	loginLimiter := auth.DefaultRateLimiter()

	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// API routes
	handlers := api.New(store, rates, authSvc, loginLimiter)
	handlers.Register(e.Group("/api"))

	// Marketing site
	e.Static("/", cfg.StaticDir)

	log.Printf("Starting Naqsh Resort backend on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

// createDefaultAdminIfNeeded bootstraps the admins collection on first run
func createDefaultAdminIfNeeded(store *database.Store, cfg *config.Config) error {
	admins, err := store.Admins()
	if err != nil {
		return err
	}
	if len(admins) > 0 {
		return nil // Admins already exist
	}

	log.Printf("Creating default admin user (%s) - CHANGE THIS PASSWORD!", cfg.AdminUsername)

	passwordHash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	return store.WriteAdmins([]models.Admin{{
		Username:     cfg.AdminUsername,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}})
}
