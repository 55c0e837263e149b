package main

import (
	"fmt"
	"log"

	"backend/configs"
	"backend/middlewares"
	"backend/repository"
	"backend/routes"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	// seed ข้อมูล mock (ครั้งแรก insert / ครั้งถัดไป merge field ใหม่)
	if err := configs.SeedAll(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	// HTTP
	r := gin.Default()

	// ✅ Enable CORS
	r.Use(middlewares.CORSMiddleware())

	// ✅ Review feed hub
	hub := ws.NewReviewHub(services.NewStoreService(repository.NewStoreRepository(db)))
	go hub.Run()

	// ✅ Register API routes
	routes.RegisterRoutes(r, db, cfg, hub)

	// ✅ Start server
	port := cfg.Port
	addr := fmt.Sprintf(":%s", port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
