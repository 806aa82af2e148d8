package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"ccip-dashboard-backend/config"
	"ccip-dashboard-backend/internal/dataservice"
	"ccip-dashboard-backend/internal/server"
	"ccip-dashboard-backend/internal/source"
)

func main() {
	log.Printf("🚀 Starting CCIP Dashboard Backend")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.DefaultConfig()
	log.Printf("Configuration loaded: source=%s, %d files", cfg.SourceKind, len(cfg.CSVFiles))

	src, err := newSource(cfg)
	if err != nil {
		fmt.Printf("Failed to create data source: %v\n", err)
		os.Exit(1)
	}

	data := dataservice.NewService(cfg, src)
	srv := server.NewServer(cfg, data)

	var wg sync.WaitGroup

	// Kick off the initial load; the API serves 503 until it completes and
	// partial data if some files fail
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := data.LoadData(ctx); err != nil {
			log.Printf("❌ Initial load failed: %v", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := srv.Start(ctx); err != nil {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	log.Printf("✅ CCIP Dashboard Backend started on %s", cfg.Port)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Printf("🛑 Shutdown signal received...")

	cancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Printf("✅ Graceful shutdown completed")
	case <-time.After(10 * time.Second):
		log.Printf("⚠️ Shutdown timeout reached")
	}
}

// newSource selects the export source from configuration
func newSource(cfg *config.Config) (source.Source, error) {
	switch cfg.SourceKind {
	case config.SourceHTTP:
		return source.NewHTTPSource(cfg.DataBaseURL), nil
	case config.SourceMinIO:
		return source.NewMinIOSource(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket, cfg.MinIOUseSSL)
	case config.SourceDir:
		return source.NewDirSource(cfg.DataDir), nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.SourceKind)
	}
}
