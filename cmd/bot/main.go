package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"lens-finder/config"
	telegram "lens-finder/internal/api"
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

	if cfg.TelegramToken == "" {
		log.Error("TELEGRAM_TOKEN is required")
		os.Exit(1)
	}

	// Создаём хранилище пользователей
	userRepo := storage.NewMemoryUserRepository()

	// Детектор приводит фото к размеру кадра камеры, чтобы пороги в пикселях сохраняли смысл
	detector := vision.NewImageDetector(cfg.Vision, cfg.Camera.Width, cfg.Camera.Height)

	// Собираем сервисы приложения
	appContainer := container.New(userRepo, detector, vision.TextDescriber{MaxListed: 10})

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer)
	if err != nil {
		log.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("bot is running")
	if err := bot.Run(ctx); err != nil {
		log.Error("bot stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("bot stopped")
}
