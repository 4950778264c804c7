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

	"mandi-backend/internal/config"
	"mandi-backend/internal/database"
	"mandi-backend/internal/handlers"
	"mandi-backend/internal/repository"
	"mandi-backend/internal/router"
	"mandi-backend/internal/services"
)

func main() {
	log.Println("🌾 Starting Multilingual Mandi Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("✗ Configuration failed: %v", err)
	}
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize PostgreSQL Connection Pool ────
	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	// ──── Step 3: Initialize Redis ────
	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("✗ Redis connection failed: %v", err)
	}
	defer redisClient.Close()
	log.Println("✓ Redis connected")

	// ──── Step 4: Run Database Migrations ────
	if err := database.RunMigrations(pool, "migrations"); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// ──── Initialize Repositories ────
	cropRateRepo := repository.NewCropRateRepo(pool)
	negotiationRepo := repository.NewNegotiationRepo(pool)

	// ──── Step 5: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiConcurrentReqs, cfg.GeminiTimeoutSecs)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Println("✓ Gemini Flash client initialized")

	// ──── Initialize Services ────
	translationService := services.NewTranslationService(geminiService, redisClient, cfg.TranslationCacheTTLHours)
	marketService := services.NewMarketRateService(cropRateRepo)
	negotiationAssistant := services.NewNegotiationAssistant(geminiService, negotiationRepo, marketService)

	// ──── Initialize Handlers ────
	translationHandler := handlers.NewTranslationHandler(translationService)
	marketHandler := handlers.NewMarketHandler(marketService)
	negotiationHandler := handlers.NewNegotiationHandler(negotiationAssistant)

	// ──── Step 6: Start Market Rate Refresher ────
	rateRefresher := services.NewRateRefresher(cropRateRepo, cfg.MarketRefreshMinutes)
	rateRefresher.Start()

	// ──── Step 7: Start HTTP Server ────
	r := router.New(translationHandler, marketHandler, negotiationHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		rateRefresher.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Multilingual Mandi Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
