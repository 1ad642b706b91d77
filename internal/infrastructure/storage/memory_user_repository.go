package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"lens-finder/internal/domain/entity"
	"lens-finder/internal/domain/port"
)

// ErrUserNotFound возвращается при обновлении неизвестного пользователя
var ErrUserNotFound = errors.New("user not found")

// MemoryUserRepository in-memory хранилище диалогов и итогов проверок.
// Наружу отдаются копии, чтобы вызывающий код не менял хранилище в обход Save.
type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[int64]entity.User
}

// NewMemoryUserRepository создаёт новое in-memory хранилище
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[int64]entity.User),
	}
}

// Get возвращает пользователя по ID, создаёт нового если не найден
func (r *MemoryUserRepository) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		user = *entity.NewUser(userID, chatID)
		r.users[userID] = user
	}
	return &user, nil
}

// Save сохраняет состояние пользователя
func (r *MemoryUserRepository) Save(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("nil user")
	}

	r.mu.Lock()
	r.users[user.ID] = *user
	r.mu.Unlock()

	return nil
}

// RecordScan записывает итог проверки существующего пользователя
func (r *MemoryUserRepository) RecordScan(ctx context.Context, userID int64, count int, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	user.RecordScan(count, at)
	r.users[userID] = user

	return nil
}

// Проверка реализации интерфейса
var _ port.UserRepository = (*MemoryUserRepository)(nil)
