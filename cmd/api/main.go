// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lastbite/lastbite-backend/internal/config"
	"github.com/lastbite/lastbite-backend/internal/domain/cart"
	"github.com/lastbite/lastbite-backend/internal/domain/catalog"
	"github.com/lastbite/lastbite-backend/internal/domain/checkout"
	"github.com/lastbite/lastbite-backend/internal/domain/profile"
	"github.com/lastbite/lastbite-backend/internal/infrastructure/database/postgres"
	"github.com/lastbite/lastbite-backend/internal/infrastructure/database/redis"
	"github.com/lastbite/lastbite-backend/internal/interfaces/http"
	"github.com/lastbite/lastbite-backend/internal/interfaces/http/routes"
	"github.com/lastbite/lastbite-backend/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	logger := newLogger(cfg)

	// Assemble the store chain. Postgres and Redis are optional tiers; the
	// in-memory tier always backstops them so the API works with nothing
	// but the binary.
	var tiers []store.Store

	if cfg.Database.Enabled {
		db, err := postgres.NewConnection(cfg)
		if err != nil {
			log.Printf("Warning: Postgres unavailable, continuing without it: %v", err)
		} else {
			defer db.Close()
			tier, err := store.NewPostgres(db.GetDB(), logger)
			if err != nil {
				log.Printf("Warning: Postgres store setup failed, continuing without it: %v", err)
			} else {
				tiers = append(tiers, tier)
			}
		}
	}

	if cfg.Redis.Enabled {
		redisClient, err := redis.NewConnection(cfg)
		if err != nil {
			log.Printf("Warning: Redis unavailable, continuing without it: %v", err)
		} else {
			defer redisClient.Close()
			tiers = append(tiers, store.NewRedis(redisClient.GetClient(), logger))
		}
	}

	tiers = append(tiers, store.NewMemory(logger))
	sessionStore := store.NewChain(tiers...)

	// Seed the deal catalog
	catalogService, err := catalog.NewService(catalog.Seed(), logger)
	if err != nil {
		log.Fatalf("Failed to load deal catalog: %v", err)
	}
	log.Printf("✅ Deal catalog loaded with %d deals", catalogService.Len())

	// Wire domain services
	cartService := cart.NewService(sessionStore, catalogService, logger)
	checkoutService := checkout.NewService(sessionStore, cartService, cfg, logger)
	profileService := profile.NewService(sessionStore, cfg, logger)

	log.Println("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, routes.Deps{
		Catalog:  catalogService,
		Cart:     cartService,
		Checkout: checkoutService,
		Profile:  profileService,
	})

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("✅ Server shutdown completed")
}

// newLogger builds the shared logrus logger from config
func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
