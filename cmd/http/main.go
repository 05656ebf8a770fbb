package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"product-catalog/internal/config"
	"product-catalog/internal/database"
	handlerhttp "product-catalog/internal/handler/http"
	middleware_http "product-catalog/internal/middleware/http"
	"product-catalog/internal/repository"
	"product-catalog/internal/service"
	"product-catalog/internal/telemetry"
	"product-catalog/pkg/logger"
)

func main() {
	ctx := context.Background()
	log := logger.New()

	cfg := config.Instance()

	// Telemetry (OpenTelemetry + Pyroscope)
	shutdown := telemetry.Init(ctx, log, telemetry.AppConfig{
		AppName:      cfg.AppName,
		OtelRPCURI:   cfg.RemoteTraceRpcURI,
		PyroscopeURI: cfg.RemoteProfilingHttpURI,
	})
	defer shutdown()

	// Connect to MongoDB
	db, err := database.Instance(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Error("Failed to connect to MongoDB", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wiring
	productRepo := repository.NewProductRepository(db.Database)
	companyRepo := repository.NewCompanyRepository(db.Database)
	categoryRepo := repository.NewCategoryRepository(db.Database)

	catalogService := service.NewCatalogService(productRepo, companyRepo, categoryRepo)
	healthService := service.NewHealthService(db.Client)

	catalogHandler := handlerhttp.NewCatalogHandler(catalogService)
	healthHandler := handlerhttp.NewHealthHandler(healthService)

	router := handlerhttp.NewRouter(ctx, catalogHandler, healthHandler,
		middleware_http.QueryNormalizer(productRepo))

	server := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("HTTP server running", slog.String("addr", server.Addr))

	if err := server.ListenAndServe(); err != nil {
		log.Error("Server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
