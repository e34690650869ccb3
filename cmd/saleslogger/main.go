package main

import (
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

	recorder := services.NewSaleRecorder(store.NewSalesLog(cfg.SalesFile))
	ctrl := controllers.NewSalesController(recorder)

	r := controllers.NewSalesRouter(cfg, ctrl)

	addr := ":" + cfg.LoggerPort
	log.Info().Str("addr", addr).Str("file", cfg.SalesFile).Msg("sales logger starting")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
