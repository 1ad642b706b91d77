package app

import (
	"context"
	"errors"
	"fmt"

	"lens-finder/internal/domain/entity"
	"lens-finder/internal/domain/port"
)

// ErrDetectorNotConfigured возвращается, если сервис собран без детектора.
var ErrDetectorNotConfigured = errors.New("detector is not configured")

type ScanService struct {
	users     *UserService
	detector  port.LensDetector
	describer port.ScanDescriber
}

// ScanOutput содержит результат поиска бликов, картинку с рамками и описание.
type ScanOutput struct {
	Result      *entity.ScanResult
	Highlighted []byte
	Description *entity.ScanDescription
}

// NewScanService создаёт сервис, который управляет проверкой фотографий.
func NewScanService(users *UserService, detector port.LensDetector, describer port.ScanDescriber) *ScanService {
	return &ScanService{
		users:     users,
		detector:  detector,
		describer: describer,
	}
}

// AcceptPhoto отмечает, что фото пользователя взято в обработку.
func (s *ScanService) AcceptPhoto(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.users.SetState(ctx, userID, chatID, entity.StateScanning)
}

// Finish завершает проверку. Без результата (ошибка обработки) диалог
// просто сбрасывается, иначе число бликов запоминается.
func (s *ScanService) Finish(ctx context.Context, userID, chatID int64, result *entity.ScanResult) (*entity.User, error) {
	if result == nil {
		return s.users.SetState(ctx, userID, chatID, entity.StateIdle)
	}
	return s.users.RecordScan(ctx, userID, chatID, result.Count)
}

// ProcessPhoto запускает детектор и возвращает результат с подсветкой и описанием.
// Подсвеченная картинка строится только если найдены кандидаты.
func (s *ScanService) ProcessPhoto(ctx context.Context, photo []byte) (*ScanOutput, error) {
	if s.detector == nil {
		return nil, ErrDetectorNotConfigured
	}

	result, err := s.detector.Inspect(ctx, photo)
	if err != nil {
		return nil, err
	}

	out := &ScanOutput{Result: result}
	if result.HasCandidates {
		out.Highlighted, err = s.detector.Highlight(photo, result)
		if err != nil {
			return nil, fmt.Errorf("highlight: %w", err)
		}
	}

	if s.describer != nil {
		out.Description, err = s.describer.Describe(ctx, result)
		if err != nil {
			return nil, fmt.Errorf("describe: %w", err)
		}
	}

	return out, nil
}

// Annotate возвращает фото с рамками и счётчиком независимо от результата.
func (s *ScanService) Annotate(ctx context.Context, photo []byte) ([]byte, *entity.ScanResult, error) {
	if s.detector == nil {
		return nil, nil, ErrDetectorNotConfigured
	}

	result, err := s.detector.Inspect(ctx, photo)
	if err != nil {
		return nil, nil, err
	}

	highlighted, err := s.detector.Highlight(photo, result)
	if err != nil {
		return nil, nil, fmt.Errorf("highlight: %w", err)
	}
	return highlighted, result, nil
}
