package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/smartserve-app/smartserve-api/internal/cache"
	"github.com/smartserve-app/smartserve-api/internal/chat"
	"github.com/smartserve-app/smartserve-api/internal/config"
	dbpkg "github.com/smartserve-app/smartserve-api/internal/db"
	"github.com/smartserve-app/smartserve-api/internal/middleware"
	"github.com/smartserve-app/smartserve-api/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := cache.NewRedis(cfg)

	hub := chat.NewHub()
	relay := chat.NewRelay(rdb, hub)
	go relay.Run(context.Background())

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, hub, relay)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
