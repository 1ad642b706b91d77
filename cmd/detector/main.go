package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"lens-finder/config"
	"lens-finder/internal/infrastructure/camera"
	"lens-finder/internal/log"
)

func main() {
	os.Exit(run())
}

// run возвращает код выхода: 0 для выхода по клавише, сбоя чтения
// и отсутствующей камеры, 1 для сборки без gocv и неверной конфигурации.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", "error", err)
		return 1
	}
	log.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = camera.Run(ctx, cfg.Camera, cfg.Vision)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, camera.ErrGoCVDisabled):
		log.Error("live detection requires a build with -tags gocv")
		return 1
	case errors.Is(err, camera.ErrCaptureNotOpened):
		log.Warn("camera is not available", "index", cfg.Camera.Index, "error", err)
		return 0
	default:
		log.Error("camera loop failed", "error", err)
		return 1
	}
}
