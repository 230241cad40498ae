package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"phrase-svc/app/clients"
	"phrase-svc/app/handlers"
	"phrase-svc/app/services"
	"phrase-svc/app/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// App represents the application
type App struct {
	Config        *Config
	Logger        *zap.Logger
	Storage       clients.PhraseStore
	PhraseService *services.PhraseService
	JWTService    *services.JWTService
	Router        *gin.Engine

	closer io.Closer
}

// Close releases the storage backend
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// Bootstrap initializes the application
func Bootstrap(ctx context.Context, cfg *Config, logger *zap.Logger) (*App, error) {
	factory := services.NewStorageFactory(logger, utils.DefaultRetryPolicy())
	store, closer, err := factory.Create(ctx, services.StorageOptions{
		Driver:      cfg.StoreDriver,
		FilePath:    cfg.StorePath,
		SQLitePath:  cfg.SQLitePath,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	phraseService := services.NewPhraseService(store, cfg.Location, logger)
	jwtService := services.NewJWTService(cfg.AdminJWTSecret, cfg.AdminJWTTTL)

	if cfg.SeedPath != "" {
		seed, err := services.LoadSeedFile(cfg.SeedPath)
		if err != nil {
			closer.Close()
			return nil, err
		}
		if _, err := phraseService.SeedIfEmpty(ctx, seed); err != nil {
			closer.Close()
			return nil, fmt.Errorf("failed to seed phrases: %w", err)
		}
	}

	app := &App{
		Config:        cfg,
		Logger:        logger,
		Storage:       store,
		PhraseService: phraseService,
		JWTService:    jwtService,
		Router:        NewRouter(cfg, phraseService, jwtService, logger),
		closer:        closer,
	}

	return app, nil
}

// NewRouter builds the gin engine with middleware and routes
func NewRouter(cfg *Config, phraseService *services.PhraseService, jwtService *services.JWTService, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handlers.RequestID())
	router.Use(handlers.RequestLogger(logger))
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	phraseHandler := handlers.NewPhraseHandler(phraseService, logger)
	healthHandler := handlers.NewHealthHandler(phraseService, logger)
	handlers.RegisterRoutes(router, phraseHandler, healthHandler, jwtService)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", handlers.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", handlers.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	allowed := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
		if origin != "" {
			allowed = append(allowed, origin)
		}
	}
	if len(allowed) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = allowed
	cfg.AllowCredentials = true
	return cfg
}
