package main

import (
	"context"
	"io"
	"log"

	"legalsummary-backend/config"
	"legalsummary-backend/generator"
	"legalsummary-backend/handlers"
	"legalsummary-backend/service"
	"legalsummary-backend/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Initialize text generation model
	gen, err := generator.NewGenerator(ctx, generator.GeneratorConfig{
		Type:           generator.GeneratorType(cfg.ModelProvider),
		Region:         cfg.AWSRegion,
		BedrockModelID: cfg.BedrockModelID,
		AWSAccessKey:   cfg.AWSAccessKey,
		AWSSecretKey:   cfg.AWSSecretKey,
		GeminiAPIKey:   cfg.GeminiAPIKey,
		GeminiModel:    cfg.GeminiModel,
	})
	if err != nil {
		log.Fatalf("Failed to initialize model provider: %v", err)
	}
	if closer, ok := gen.(io.Closer); ok {
		defer closer.Close()
	}
	log.Printf("Model provider initialized: %s", gen.Name())

	// Initialize optional document storage
	docStorage, err := storage.NewStorage(ctx, storage.StorageConfig{
		Type:         storage.StorageType(cfg.StorageType),
		LocalPath:    cfg.StorageLocalPath,
		S3Bucket:     cfg.S3Bucket,
		S3Region:     cfg.AWSRegion,
		AWSAccessKey: cfg.AWSAccessKey,
		AWSSecretKey: cfg.AWSSecretKey,
	})
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	if docStorage != nil {
		log.Printf("Document storage initialized: %s", cfg.StorageType)
	}

	// Initialize services
	summaryService := service.NewSummaryService(
		service.SummaryWithGenerator(gen),
	)

	// Initialize handlers
	summaryHandler := handlers.NewSummaryHandler(summaryService, docStorage)
	pageHandler := handlers.NewPageHandler()

	// Setup Gin router
	r := handlers.NewRouter(cfg.CORSAllowedOrigins)
	handlers.RegisterRoutes(r, summaryHandler, pageHandler)

	log.Printf("Server starting on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
