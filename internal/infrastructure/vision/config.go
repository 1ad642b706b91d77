package vision

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Config задаёт параметры поиска бликов на кадре.
type Config struct {
	BlurKernel          int        // размер ядра Гаусса, нечётный; <= 1 отключает размытие
	BrightnessThreshold uint8      // пиксели ярче порога считаются бликом
	MinArea             float64    // минимальная площадь контура
	MaxArea             float64    // максимальная площадь контура
	MinCircularity      float64    // минимальная округлость 4π·S/P²
	EdgeMargin          int        // отступ от краёв кадра в пикселях
	BoxColor            color.RGBA // цвет рамки вокруг кандидата
	BoxThickness        int        // толщина рамки
	LabelColor          color.RGBA // цвет надписи со счётчиком
}

// DefaultConfig возвращает параметры, подобранные для кадра 640x480.
func DefaultConfig() Config {
	return Config{
		BlurKernel:          7,
		BrightnessThreshold: 240,
		MinArea:             5,
		MaxArea:             80,
		MinCircularity:      0.75,
		EdgeMargin:          30,
		BoxColor:            color.RGBA{R: 255, A: 255},
		BoxThickness:        2,
		LabelColor:          color.RGBA{G: 255, A: 255},
	}
}

// Validate проверяет согласованность параметров.
func (c Config) Validate() error {
	if c.BlurKernel > 1 && c.BlurKernel%2 == 0 {
		return fmt.Errorf("blur kernel must be odd, got %d", c.BlurKernel)
	}
	if c.MinArea < 0 || c.MaxArea < c.MinArea {
		return fmt.Errorf("invalid area range [%g, %g]", c.MinArea, c.MaxArea)
	}
	if c.MinCircularity < 0 || c.MinCircularity > 1 {
		return fmt.Errorf("circularity must be within [0, 1], got %g", c.MinCircularity)
	}
	if c.EdgeMargin < 0 {
		return errors.New("edge margin must not be negative")
	}
	if c.BoxThickness < 1 {
		return errors.New("box thickness must be positive")
	}
	return nil
}

// Sigma возвращает сигму Гаусса для BlurKernel так же, как OpenCV при sigma = 0.
func (c Config) Sigma() float64 {
	if c.BlurKernel <= 1 {
		return 0
	}
	return 0.3*(float64(c.BlurKernel-1)*0.5-1) + 0.8
}

// ParseColor разбирает цвет в формате #rrggbb.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
