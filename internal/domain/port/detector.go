package port

import (
	"context"

	"lens-finder/internal/domain/entity"
)

// LensDetector интерфейс детектора бликов объективов
type LensDetector interface {
	// Inspect анализирует изображение и возвращает найденных кандидатов
	Inspect(ctx context.Context, imageData []byte) (*entity.ScanResult, error)

	// Highlight создаёт изображение с рамками вокруг кандидатов
	Highlight(imageData []byte, result *entity.ScanResult) ([]byte, error)
}
