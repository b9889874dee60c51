package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/aparatus-booking/internal/cache"
	"github.com/BruksfildServices01/aparatus-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/aparatus-booking/internal/db"
	"github.com/BruksfildServices01/aparatus-booking/internal/routes"
	"github.com/BruksfildServices01/aparatus-booking/internal/timezone"
)

func main() {

	cfg := config.Load()

	log := newLogger(cfg.LogLevel)

	// fuso de operação explícito; nunca o fuso do host
	if !timezone.IsValid(cfg.Timezone) {
		log.Fatal().Str("tz", cfg.Timezone).Msg("APP_TIMEZONE inválido")
	}
	timezone.SetDefault(cfg.Timezone)

	db := dbpkg.NewDB(cfg, log)

	rdb := cache.NewRedis(cfg)
	pages := cache.NewPages(rdb)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, pages, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).Level(lvl).With().Timestamp().Logger()
}
