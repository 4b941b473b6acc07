package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/gln-plastics/smartfix-api/internal/api"
	"github.com/gln-plastics/smartfix-api/internal/infrastructure/config"
	"github.com/gln-plastics/smartfix-api/internal/infrastructure/db/sqlite"
	"github.com/gln-plastics/smartfix-api/internal/infrastructure/storage"
	"github.com/gln-plastics/smartfix-api/internal/infrastructure/vision"
	"github.com/gln-plastics/smartfix-api/pkg/logger"
)

// @title           SmartFix API
// @version         1.0
// @description     Quality inspection logging for injection molded parts.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	db, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DB.Path).Msg("failed to open database")
	}

	images, err := storage.NewDiskImageStore(cfg.Paths.ImageDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Paths.ImageDir).Msg("failed to prepare image directory")
	}

	classifier := vision.NewONNXClassifier()
	defer classifier.Close()

	e, inspections := api.NewRouter(api.RouterConfig{
		DB:         db,
		Classifier: classifier,
		Images:     images,
		JWTSecret:  cfg.JWTSecret,
		TokenTTL:   cfg.TokenTTL,
	})

	// Load the classifier model at startup when one is configured. A missing
	// or bad artifact is not fatal: the service still serves auth, history
	// and export, and an admin can upload a model later.
	if cfg.Paths.ModelPath != "" {
		if err := loadStartupModel(inspections, cfg.Paths.ModelPath); err != nil {
			log.Warn().Err(err).Str("path", cfg.Paths.ModelPath).
				Msg("startup model load failed, classification unavailable until a model is uploaded")
		} else {
			log.Info().Str("path", cfg.Paths.ModelPath).Msg("classifier model loaded")
		}
	}

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

type modelReloader interface {
	ReloadModel(ctx context.Context, artifact []byte) error
}

func loadStartupModel(svc modelReloader, path string) error {
	artifact, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return svc.ReloadModel(ctx, artifact)
}
