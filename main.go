package main

import (
	"fmt"
	"log"

	"github.com/rodriguezalexp/little-lemon-api/configs"
	"github.com/rodriguezalexp/little-lemon-api/middlewares"
	"github.com/rodriguezalexp/little-lemon-api/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectDB(cfg)
	db := configs.DB()

	// migrate + seeds
	configs.SetupDatabase()
	if err := configs.SeedManager(); err != nil {
		log.Fatalf("seed manager failed: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
