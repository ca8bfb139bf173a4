package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/orderboard/orderboard/internal/api"
	"github.com/orderboard/orderboard/internal/core/ports"
	"github.com/orderboard/orderboard/internal/core/service"
	"github.com/orderboard/orderboard/internal/infrastructure/catalog"
	"github.com/orderboard/orderboard/internal/infrastructure/config"
	"github.com/orderboard/orderboard/internal/infrastructure/pdf"
	"github.com/orderboard/orderboard/internal/infrastructure/store/memory"
	"github.com/orderboard/orderboard/pkg/logger"
)

func main() {
	// .env is a development convenience; in production variables are set
	// directly on the process.
	if os.Getenv("ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// The catalog loads exactly once, before the server starts listening.
	// A failed load degrades to an empty catalog rather than aborting.
	loader := catalog.NewLoader(cfg.Catalog.Source, cfg.Catalog.Timeout, log)
	cat := loader.Load(context.Background())
	if len(cat) == 0 {
		log.Warn().Msg("starting with an empty catalog")
	}

	repo := memory.NewClientRepository()
	clientService := service.NewClientService(repo, cat, log)
	reportService := service.NewReportService(repo, cat, func() ports.DocumentRenderer {
		return pdf.NewRenderer()
	}, log)

	e := api.NewRouter(clientService, reportService, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("order board listening")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
