package vision

import (
	"image"
	"math"

	"lens-finder/internal/domain/entity"
)

// Circularity возвращает изопериметрическое отношение 4π·S/P².
// Для идеального круга оно равно 1, для вытянутых фигур меньше.
func Circularity(area, perimeter float64) float64 {
	if perimeter == 0 {
		return 0
	}
	return 4 * math.Pi * area / (perimeter * perimeter)
}

// Evaluate прогоняет область через фильтры размера, вырожденности, формы и
// близости к краю. Первый сработавший фильтр определяет причину отказа.
func (c Config) Evaluate(area, perimeter float64, box, frame image.Rectangle) entity.Region {
	region := entity.Region{
		X:         box.Min.X,
		Y:         box.Min.Y,
		Width:     box.Dx(),
		Height:    box.Dy(),
		Area:      area,
		Perimeter: perimeter,
	}

	if area < c.MinArea || area > c.MaxArea {
		region.Rejection = entity.RejectSize
		return region
	}
	if perimeter == 0 {
		region.Rejection = entity.RejectDegenerate
		return region
	}

	region.Circularity = Circularity(area, perimeter)
	if region.Circularity < c.MinCircularity {
		region.Rejection = entity.RejectShape
		return region
	}

	m := c.EdgeMargin
	if box.Min.X-frame.Min.X < m || box.Min.Y-frame.Min.Y < m ||
		box.Max.X > frame.Max.X-m || box.Max.Y > frame.Max.Y-m {
		region.Rejection = entity.RejectEdge
	}
	return region
}
