package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pos-service/config"
	"pos-service/controllers"
	"pos-service/services"
	"pos-service/store"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	_ = godotenv.Load()
	cfg := config.LoadConfig()
	if cfg.SpreadsheetID == "" {
		log.Fatal().Msg("SPREADSHEET_ID is required")
	}

	sheetStore, err := store.NewSheetStore(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("spreadsheet client initialization failed")
	}

	catalog := services.NewCatalogService(sheetStore)
	checkout := services.NewCheckoutService(sheetStore)
	report := services.NewReportService(sheetStore)
	ctrl := controllers.NewPOSController(catalog, checkout, report)

	r := controllers.NewPOSRouter(cfg, ctrl)

	addr := ":" + cfg.POSPort
	log.Info().Str("addr", addr).Msg("POS service starting")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
