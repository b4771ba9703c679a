package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hireflow/config"
	"hireflow/internal/app"
	"hireflow/internal/database"
	"hireflow/internal/server"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := database.Migrate(dbPool); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Redis is optional; without it job detail reads just skip the cache.
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = database.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("WARN: Failed to connect to Redis: %v. Continuing without cache.", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	validate := validator.New()

	application := app.NewApplication(cfg, dbPool, redisClient, validate)

	if cfg.Seed.Demo {
		if err := database.SeedDemoData(context.Background(), dbPool, application.UserRepo, application.JobRepo); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	log.Println("Application gracefully stopped.")
}
