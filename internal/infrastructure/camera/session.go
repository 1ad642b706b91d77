//go:build gocv
// +build gocv

package camera

import (
	"context"
	"errors"
	"fmt"

	"gocv.io/x/gocv"

	"lens-finder/internal/infrastructure/vision"
	"lens-finder/internal/log"
)

// Session держит устройство захвата и окно. Close освобождает оба.
type Session struct {
	cfg     Config
	capture *gocv.VideoCapture
	window  *gocv.Window
}

// Open открывает камеру с заданным индексом и создаёт окно просмотра.
func Open(cfg Config) (*Session, error) {
	capture, err := gocv.OpenVideoCapture(cfg.Index)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCaptureNotOpened, err)
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, ErrCaptureNotOpened
	}

	capture.Set(gocv.VideoCaptureFrameWidth, float64(cfg.Width))
	capture.Set(gocv.VideoCaptureFrameHeight, float64(cfg.Height))

	return &Session{
		cfg:     cfg,
		capture: capture,
		window:  gocv.NewWindow(cfg.WindowTitle),
	}, nil
}

// Read читает следующий кадр. false означает, что кадр получить не удалось.
func (s *Session) Read(frame *gocv.Mat) bool {
	return s.capture.Read(frame) && !frame.Empty()
}

// Show выводит кадр и ждёт клавишу до 1 мс. true, если нажата клавиша выхода.
func (s *Session) Show(frame gocv.Mat) bool {
	s.window.IMShow(frame)
	return isQuitKey(s.window.WaitKey(1), s.cfg.QuitKey)
}

// Close освобождает окно и устройство захвата.
func (s *Session) Close() error {
	var errs []error
	if s.window != nil {
		if err := s.window.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close window: %w", err))
		}
	}
	if s.capture != nil {
		if err := s.capture.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close capture: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Run крутит цикл захват, анализ, показ до клавиши выхода, сбоя чтения
// или отмены ctx.
func Run(ctx context.Context, cfg Config, vcfg vision.Config) error {
	session, err := Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Warn("camera close failed", "error", err)
		}
	}()

	analyzer := vision.NewMatAnalyzer(vcfg)
	defer analyzer.Close()

	frame := gocv.NewMat()
	defer frame.Close()

	log.Info("camera opened", "index", cfg.Index, "width", cfg.Width, "height", cfg.Height)

	for {
		if err := ctx.Err(); err != nil {
			log.Info("camera loop stopped", "reason", err)
			return nil
		}

		if !session.Read(&frame) {
			log.Warn("failed to read frame, stopping")
			return nil
		}

		result := analyzer.Analyze(&frame)
		analyzer.DrawCount(&frame, result.Count)
		log.Debug("frame analyzed", "count", result.Count, "rejected", result.Rejected)

		if session.Show(frame) {
			log.Info("quit key pressed")
			return nil
		}
	}
}
