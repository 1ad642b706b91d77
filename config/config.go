package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"lens-finder/internal/infrastructure/camera"
	"lens-finder/internal/infrastructure/vision"
)

type Config struct {
	Camera        camera.Config
	Vision        vision.Config
	TelegramToken string
	HTTPPort      string
	LogLevel      string
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Camera: camera.Config{
			WindowTitle: getEnv("WINDOW_TITLE", "Hidden Camera Detector (Improved)"),
		},
	}

	var err error
	if cfg.Camera.Index, err = getInt("CAMERA_INDEX", 0); err != nil {
		return nil, err
	}
	if cfg.Camera.Width, err = getInt("FRAME_WIDTH", 640); err != nil {
		return nil, err
	}
	if cfg.Camera.Height, err = getInt("FRAME_HEIGHT", 480); err != nil {
		return nil, err
	}
	if cfg.Camera.Width <= 0 || cfg.Camera.Height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", cfg.Camera.Width, cfg.Camera.Height)
	}

	quit := []rune(getEnv("QUIT_KEY", "q"))
	if len(quit) != 1 {
		return nil, fmt.Errorf("QUIT_KEY must be a single character")
	}
	cfg.Camera.QuitKey = quit[0]

	if cfg.Vision, err = loadVision(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadVision() (vision.Config, error) {
	v := vision.DefaultConfig()

	var err error
	if v.BlurKernel, err = getInt("BLUR_KERNEL", v.BlurKernel); err != nil {
		return v, err
	}

	threshold, err := getInt("BRIGHTNESS_THRESHOLD", int(v.BrightnessThreshold))
	if err != nil {
		return v, err
	}
	if threshold < 0 || threshold > 255 {
		return v, fmt.Errorf("BRIGHTNESS_THRESHOLD must be within [0, 255], got %d", threshold)
	}
	v.BrightnessThreshold = uint8(threshold)

	if v.MinArea, err = getFloat("MIN_AREA", v.MinArea); err != nil {
		return v, err
	}
	if v.MaxArea, err = getFloat("MAX_AREA", v.MaxArea); err != nil {
		return v, err
	}
	if v.MinCircularity, err = getFloat("MIN_CIRCULARITY", v.MinCircularity); err != nil {
		return v, err
	}
	if v.EdgeMargin, err = getInt("EDGE_MARGIN", v.EdgeMargin); err != nil {
		return v, err
	}
	if v.BoxThickness, err = getInt("BOX_THICKNESS", v.BoxThickness); err != nil {
		return v, err
	}
	if v.BoxColor, err = vision.ParseColor(getEnv("BOX_COLOR", "#ff0000")); err != nil {
		return v, err
	}
	if v.LabelColor, err = vision.ParseColor(getEnv("LABEL_COLOR", "#00ff00")); err != nil {
		return v, err
	}

	if err := v.Validate(); err != nil {
		return v, fmt.Errorf("vision config: %w", err)
	}
	return v, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return f, nil
}
