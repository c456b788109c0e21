package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/globalantic/globot/api"
	"github.com/globalantic/globot/assistant"
	"github.com/globalantic/globot/catalog"
	"github.com/globalantic/globot/config"
	"github.com/globalantic/globot/domain"
	"github.com/globalantic/globot/hub"
	"github.com/globalantic/globot/policy"
	"github.com/globalantic/globot/shop"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting GloBot assistant service...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Catalog: %s", cfg.CatalogDSN)
	log.Printf("Reply delay: %s", cfg.ReplyDelay)

	// Initialize catalog
	cat, err := catalog.NewSQLiteCatalog(cfg.CatalogDSN)
	if err != nil {
		log.Fatalf("Failed to initialize catalog: %v", err)
	}
	defer cat.Close()

	// Initialize policy engine
	ctx := context.Background()
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Cart and wishlist collaborators
	cart := shop.NewItemStore()
	wishlist := shop.NewItemStore()

	// Connection hub for the live message stream
	h := hub.New()

	// Assemble the assistant core
	responder := assistant.NewResponder(cat, cart, wishlist, policyEngine)
	scheduler := assistant.NewScheduler(cfg.ReplyDelay)
	emitter := assistant.EmitterFunc(func(sessionID string, msg domain.Message) {
		if err := h.BroadcastJSON(sessionID, msg); err != nil {
			log.Printf("ERROR: failed to broadcast message: %v", err)
		}
	})
	mgr := assistant.NewManager(responder, scheduler, emitter)

	// Initialize handler
	handler := api.NewHandler(mgr, cat, cart, wishlist, h, cfg)

	// Create Echo server
	server := echo.New()
	server.HideBanner = true

	// Middleware
	server.Use(middleware.Logger())
	server.Use(middleware.Recover())
	server.Use(middleware.CORS())

	// Register routes
	handler.RegisterRoutes(server)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Assistant API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down assistant service...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Assistant service stopped")
}
