package port

import (
	"context"

	"lens-finder/internal/domain/entity"
)

// ScanDescriber интерфейс описателя результата сканирования
type ScanDescriber interface {
	// Describe генерирует текстовое описание найденных кандидатов
	Describe(ctx context.Context, result *entity.ScanResult) (*entity.ScanDescription, error)
}
