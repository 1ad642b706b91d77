package vision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"

	"lens-finder/internal/domain/entity"
	"lens-finder/internal/domain/port"
)

var (
	ErrEmptyImage = errors.New("empty image")
	ErrDecode     = errors.New("failed to decode image")
)

// ImageDetector ищет блики на присланных фотографиях.
type ImageDetector struct {
	analyzer  *Analyzer
	MaxWidth  int // фото больше этого размера уменьшаются перед анализом
	MaxHeight int
	Quality   int // качество JPEG для подсвеченного изображения
}

// NewImageDetector создаёт детектор, приводящий фото к размеру кадра камеры,
// чтобы пороги площади и отступа сохраняли смысл.
func NewImageDetector(cfg Config, maxWidth, maxHeight int) *ImageDetector {
	return &ImageDetector{
		analyzer:  NewAnalyzer(cfg),
		MaxWidth:  maxWidth,
		MaxHeight: maxHeight,
		Quality:   90,
	}
}

// Inspect декодирует изображение и запускает поиск кандидатов.
func (d *ImageDetector) Inspect(ctx context.Context, imageData []byte) (*entity.ScanResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	frame, err := d.decode(imageData)
	if err != nil {
		return nil, err
	}
	return d.analyzer.Analyze(frame), nil
}

// Highlight рисует рамки кандидатов и счётчик и возвращает JPEG.
func (d *ImageDetector) Highlight(imageData []byte, result *entity.ScanResult) ([]byte, error) {
	frame, err := d.decode(imageData)
	if err != nil {
		return nil, err
	}

	cfg := d.analyzer.Config()
	for _, r := range result.Candidates {
		DrawBox(frame, image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height), cfg.BoxColor, cfg.BoxThickness)
	}
	DrawCount(frame, result.Count, cfg.LabelColor)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, frame, imaging.JPEG, imaging.JPEGQuality(d.Quality)); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// decode превращает байты изображения в RGBA-кадр нужного размера.
func (d *ImageDetector) decode(imageData []byte) (*image.RGBA, error) {
	if len(imageData) == 0 {
		return nil, ErrEmptyImage
	}

	img, err := imaging.Decode(bytes.NewReader(imageData), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	if d.MaxWidth > 0 && d.MaxHeight > 0 && (b.Dx() > d.MaxWidth || b.Dy() > d.MaxHeight) {
		img = imaging.Fit(img, d.MaxWidth, d.MaxHeight, imaging.Lanczos)
	}
	return clone.AsRGBA(img), nil
}

// Проверка реализации интерфейса
var _ port.LensDetector = (*ImageDetector)(nil)
