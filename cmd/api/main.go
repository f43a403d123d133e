package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/jlbeauty/salon-booking-api/internal/config"
	"github.com/jlbeauty/salon-booking-api/internal/db"
	"github.com/jlbeauty/salon-booking-api/internal/logger"
	"github.com/jlbeauty/salon-booking-api/internal/middleware"
	"github.com/jlbeauty/salon-booking-api/internal/reminder"
	"github.com/jlbeauty/salon-booking-api/internal/routes"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New("salon-booking-api")

	database := db.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	dispatcher := routes.RegisterRoutes(r, database, rdb, cfg, log)

	reminders := reminder.New(database, dispatcher, log, cfg.Timezone)
	if err := reminders.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start reminder scheduler")
	}
	defer reminders.Stop()

	log.Info().Str("addr", cfg.Addr()).Msg("starting server")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
