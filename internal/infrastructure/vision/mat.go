//go:build gocv
// +build gocv

package vision

import (
	"image"

	"gocv.io/x/gocv"

	"lens-finder/internal/domain/entity"
)

// MatAnalyzer ищет блики на кадре OpenCV. Промежуточные матрицы
// переиспользуются между кадрами, результат от них не зависит.
type MatAnalyzer struct {
	cfg  Config
	gray gocv.Mat
	blur gocv.Mat
	mask gocv.Mat
}

// NewMatAnalyzer создаёт анализатор; после использования нужно вызвать Close.
func NewMatAnalyzer(cfg Config) *MatAnalyzer {
	return &MatAnalyzer{
		cfg:  cfg,
		gray: gocv.NewMat(),
		blur: gocv.NewMat(),
		mask: gocv.NewMat(),
	}
}

// Analyze рисует рамки вокруг кандидатов на кадре BGR и возвращает результат.
func (a *MatAnalyzer) Analyze(frame *gocv.Mat) *entity.ScanResult {
	gocv.CvtColor(*frame, &a.gray, gocv.ColorBGRToGray)

	src := a.gray
	if k := a.cfg.BlurKernel; k > 1 {
		// Сигма передаётся явно: при нуле OpenCV берёт для ядер до 7x7 табличные веса.
		sigma := a.cfg.Sigma()
		gocv.GaussianBlur(a.gray, &a.blur, image.Pt(k, k), sigma, sigma, gocv.BorderReplicate)
		src = a.blur
	}

	// Оставляем только очень яркие точки.
	gocv.Threshold(src, &a.mask, float32(a.cfg.BrightnessThreshold), 255, gocv.ThresholdBinary)

	contours := gocv.FindContours(a.mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	bounds := image.Rect(0, 0, frame.Cols(), frame.Rows())
	candidates := make([]entity.Region, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		c := contours.At(i)
		region := a.cfg.Evaluate(gocv.ContourArea(c), gocv.ArcLength(c, true), gocv.BoundingRect(c), bounds)
		if !region.Accepted() {
			continue
		}

		box := image.Rect(region.X, region.Y, region.X+region.Width, region.Y+region.Height)
		gocv.Rectangle(frame, box, a.cfg.BoxColor, a.cfg.BoxThickness)
		candidates = append(candidates, region)
	}

	return entity.NewScanResult(frame.Cols(), frame.Rows(), candidates, contours.Size()-len(candidates))
}

// DrawCount выводит надпись со счётчиком в LabelOrigin.
func (a *MatAnalyzer) DrawCount(frame *gocv.Mat, count int) {
	gocv.PutText(frame, CountLabel(count), LabelOrigin, gocv.FontHersheySimplex, 1, a.cfg.LabelColor, 2)
}

// Close освобождает матрицы OpenCV.
func (a *MatAnalyzer) Close() error {
	a.gray.Close()
	a.blur.Close()
	a.mask.Close()
	return nil
}
