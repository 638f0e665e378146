package main

import (
	"context"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"alabaztrum_echo/internal/config"
	"alabaztrum_echo/internal/handlers"
	"alabaztrum_echo/internal/logging"
	"alabaztrum_echo/internal/render"
	"alabaztrum_echo/internal/server"
	"alabaztrum_echo/internal/services"
	"alabaztrum_echo/web/templates"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	if envErr != nil {
		logger.Debug("No .env file found, using system environment")
	}

	// Templates are embedded unless a directory is given for live editing
	var templateFS fs.FS = templates.FS
	if cfg.TemplatesDir != "" {
		templateFS = os.DirFS(cfg.TemplatesDir)
	}
	renderer, err := render.NewTemplateRenderer(templateFS)
	if err != nil {
		logger.WithError(err).Fatal("Failed to parse templates")
	}

	var checkers []handlers.HealthChecker
	if cfg.RedisURL != "" {
		redisChecker, err := services.NewRedisChecker(cfg.RedisURL)
		if err != nil {
			logger.WithError(err).Fatal("Invalid REDIS_URL")
		}
		defer redisChecker.Close()
		checkers = append(checkers, redisChecker)
	}

	e := server.New(cfg, logger, renderer, checkers...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"address":     cfg.Address(),
	}).Info("Configuration loaded")

	if err := server.Run(ctx, e, cfg, logger); err != nil {
		logger.WithError(err).Fatal("Server stopped with error")
	}
	logger.Info("Server stopped")
}
