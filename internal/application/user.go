package app

import (
	"context"
	"fmt"
	"time"

	"lens-finder/internal/domain/entity"
	"lens-finder/internal/domain/port"
)

// UserService управляет состоянием диалога пользователей бота.
type UserService struct {
	repo port.UserRepository
	now  func() time.Time
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo, now: time.Now}
}

func (s *UserService) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Get(ctx, userID, chatID)
}

// SetState загружает пользователя, меняет состояние и сохраняет его.
func (s *UserService) SetState(ctx context.Context, userID, chatID int64, state entity.DialogState) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}

	user.SetState(state)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user %d: %w", userID, err)
	}

	return user, nil
}

// BeginCheck переводит пользователя в ожидание фото помещения.
func (s *UserService) BeginCheck(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingPhoto)
}

// Cancel сбрасывает диалог к ожиданию команды.
func (s *UserService) Cancel(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateIdle)
}

// RecordScan сохраняет число бликов завершённой проверки и сбрасывает диалог.
func (s *UserService) RecordScan(ctx context.Context, userID, chatID int64, count int) (*entity.User, error) {
	// Get создаёт пользователя, если запись пропала.
	if _, err := s.repo.Get(ctx, userID, chatID); err != nil {
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}
	if err := s.repo.RecordScan(ctx, userID, count, s.now()); err != nil {
		return nil, fmt.Errorf("record scan for user %d: %w", userID, err)
	}
	return s.repo.Get(ctx, userID, chatID)
}
