package vision

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/convolution"
	"github.com/disintegration/imaging"

	"lens-finder/internal/domain/entity"
)

// Analyzer ищет блики объективов на кадре без OpenCV.
// Анализ не хранит состояния между вызовами.
type Analyzer struct {
	cfg    Config
	kernel *convolution.Kernel // nil, если размытие отключено
}

// NewAnalyzer создаёт анализатор с заданными параметрами.
func NewAnalyzer(cfg Config) *Analyzer {
	a := &Analyzer{cfg: cfg}
	if cfg.BlurKernel > 1 {
		a.kernel = gaussianKernel(cfg.BlurKernel, cfg.Sigma())
	}
	return a
}

// Config возвращает параметры анализатора.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Regions находит все яркие области кадра и помечает, какие из них прошли фильтры.
// Кадр не изменяется.
func (a *Analyzer) Regions(frame image.Image) []entity.Region {
	bounds := frame.Bounds()
	mask := a.threshold(frame)

	contours := findExternalContours(mask)
	regions := make([]entity.Region, 0, len(contours))
	for _, c := range contours {
		box := c.BoundingRect().Add(bounds.Min)
		regions = append(regions, a.cfg.Evaluate(c.Area(), c.Perimeter(), box, bounds))
	}
	return regions
}

// Analyze рисует рамки вокруг кандидатов прямо на кадре и возвращает результат.
func (a *Analyzer) Analyze(frame *image.RGBA) *entity.ScanResult {
	regions := a.Regions(frame)

	candidates := make([]entity.Region, 0, len(regions))
	for _, r := range regions {
		if !r.Accepted() {
			continue
		}
		box := image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
		DrawBox(frame, box, a.cfg.BoxColor, a.cfg.BoxThickness)
		candidates = append(candidates, r)
	}

	bounds := frame.Bounds()
	return entity.NewScanResult(bounds.Dx(), bounds.Dy(), candidates, len(regions)-len(candidates))
}

// threshold переводит кадр в яркость, сглаживает и оставляет пиксели ярче порога.
func (a *Analyzer) threshold(frame image.Image) *binaryMask {
	gray := imaging.Grayscale(frame)
	pix, stride := gray.Pix, gray.Stride
	if a.kernel != nil {
		// Bias 0.5 превращает отбрасывание дробной части в округление, как у OpenCV.
		blurred := convolution.Convolve(gray, a.kernel, &convolution.Options{Bias: 0.5, KeepAlpha: true})
		pix, stride = blurred.Pix, blurred.Stride
	}

	w, h := gray.Rect.Dx(), gray.Rect.Dy()
	mask := newBinaryMask(w, h)
	for y := 0; y < h; y++ {
		row := pix[y*stride:]
		for x := 0; x < w; x++ {
			if row[x*4] > a.cfg.BrightnessThreshold {
				mask.set(x, y)
			}
		}
	}
	return mask
}

// gaussianKernel строит нормированное ядро Гаусса size x size.
// Края кадра продолжаются крайними пикселями.
func gaussianKernel(size int, sigma float64) *convolution.Kernel {
	r := size / 2
	weights := make([]float64, size)
	var sum float64
	for i := range weights {
		d := float64(i - r)
		weights[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += weights[i]
	}

	k := convolution.NewKernel(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			k.Matrix[y*k.Width+x] = weights[x] * weights[y] / (sum * sum)
		}
	}
	return k
}
