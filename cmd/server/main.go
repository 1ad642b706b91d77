package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"lens-finder/config"
	"lens-finder/internal/api/rest"
	"lens-finder/internal/container"
	"lens-finder/internal/infrastructure/storage"
	"lens-finder/internal/infrastructure/vision"
	"lens-finder/internal/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log.Init(cfg.LogLevel)

	detector := vision.NewImageDetector(cfg.Vision, cfg.Camera.Width, cfg.Camera.Height)
	appContainer := container.New(storage.NewMemoryUserRepository(), detector, vision.TextDescriber{})

	server := rest.NewServer(cfg.HTTPPort, appContainer.ScanService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		if err := server.Shutdown(); err != nil {
			log.Warn("http shutdown failed", "error", err)
		}
	}()

	if err := server.Start(); err != nil {
		log.Error("http server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("http server stopped")
}
