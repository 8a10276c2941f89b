// Citro voice kernel main entry point
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/citro-voice-kernel/internal/config"
	"github.com/citro-voice-kernel/internal/intent"
	"github.com/citro-voice-kernel/internal/knowledge"
	"github.com/citro-voice-kernel/internal/pipeline"
	"github.com/citro-voice-kernel/internal/resolver"
	"github.com/citro-voice-kernel/internal/server"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	logger.Info("Starting Citro voice kernel")

	cfg := config.FromEnv()

	catalog := knowledge.DefaultCatalog()
	if cfg.CatalogPath != "" {
		loaded, err := knowledge.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			logger.Fatal("Failed to load catalog", zap.String("path", cfg.CatalogPath), zap.Error(err))
		}
		catalog = loaded
		logger.Info("Catalog loaded from file", zap.String("path", cfg.CatalogPath))
	}

	kb := knowledge.NewBase(catalog, logger)
	engine := intent.NewEngine(kb, logger)
	res := resolver.New(kb,
		resolver.NewHTTPDashboardService(cfg.DashboardURL, logger),
		resolver.NewHTTPEventService(cfg.EventServiceURL, logger),
		logger)

	p, err := pipeline.New(pipeline.Config{DetectionCacheSize: cfg.DetectionCacheSize}, engine, res, logger)
	if err != nil {
		logger.Fatal("Failed to create pipeline", zap.Error(err))
	}
	defer p.Close()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.New(p, cfg.AllowedOrigins, logger).Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	srv.Shutdown(ctx)

	logger.Info("Shutdown complete")
}
