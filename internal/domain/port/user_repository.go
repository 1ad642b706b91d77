package port

import (
	"context"
	"time"

	"lens-finder/internal/domain/entity"
)

// UserRepository хранит шаг диалога и итог последней проверки собеседника
type UserRepository interface {
	// Get возвращает пользователя, новый начинает с StateIdle
	Get(ctx context.Context, userID, chatID int64) (*entity.User, error)

	// Save сохраняет пользователя целиком
	Save(ctx context.Context, user *entity.User) error

	// RecordScan записывает число бликов завершённой проверки
	RecordScan(ctx context.Context, userID int64, count int, at time.Time) error
}
