package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/skogge/CountryCurrencyPicker/internal/adapters/icons"
	"github.com/skogge/CountryCurrencyPicker/internal/adapters/xtext"
	"github.com/skogge/CountryCurrencyPicker/internal/core/services"
	"github.com/skogge/CountryCurrencyPicker/internal/handlers"
	"github.com/skogge/CountryCurrencyPicker/internal/middleware"
	"github.com/skogge/CountryCurrencyPicker/internal/platform/config"
)

// @title Country Currency Catalog API
// @version 1.0
// @description Selectable lists of countries and currencies with display names, flag icons and ISO codes.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := xtext.NewDatabase()
	if err != nil {
		logger.Error("Failed to load locale database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Locale database loaded",
		slog.Int("countries", len(db.ISOCountries())),
		slog.Int("locales", len(db.AvailableLocales())),
	)

	var manifest *icons.Manifest
	if cfg.IconManifestPath != "" {
		manifest, err = icons.LoadManifest(cfg.IconManifestPath)
		if err != nil {
			logger.Error("Failed to load icon manifest", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
	iconResolver := icons.NewResolver(cfg.IconPrefix, cfg.IconFallback, manifest)

	enumerator, err := xtext.NewEnumerator(cfg.CurrencyEnumeration, db)
	if err != nil {
		logger.Error("Failed to create currency enumerator", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := services.NewServiceContainer(db, iconResolver, enumerator, cfg.DisplayLocale)

	rateLimiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Accept", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader, middleware.HeaderRateLimitRemaining},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimit(rateLimiter))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("display_locale", cfg.DisplayLocale.String()),
		slog.String("currency_enumeration", cfg.CurrencyEnumeration),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
