package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/donbarbero/booking-api/internal/config"
	"github.com/donbarbero/booking-api/internal/db"
	"github.com/donbarbero/booking-api/internal/middleware"
	"github.com/donbarbero/booking-api/internal/routes"
)

func main() {
	cfg := config.Load()

	database := db.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, database, rdb, cfg)

	log.Printf("servidor ouvindo em %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("erro ao iniciar servidor: %v", err)
	}
}
