package vision

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LabelOrigin задаёт точку базовой линии надписи со счётчиком.
var LabelOrigin = image.Pt(10, 30)

// CountLabel формирует текст надписи со счётчиком.
func CountLabel(count int) string {
	return fmt.Sprintf("Detected Cameras: %d", count)
}

// DrawBox рисует рамку от r.Min до r.Max включительно заданной толщины.
func DrawBox(dst draw.Image, r image.Rectangle, c color.Color, thickness int) {
	for o := -(thickness / 2); o < thickness-thickness/2; o++ {
		strokeRect(dst, r.Min.X+o, r.Min.Y+o, r.Max.X-o, r.Max.Y-o, c)
	}
}

func strokeRect(dst draw.Image, x0, y0, x1, y1 int, c color.Color) {
	if x1 < x0 || y1 < y0 {
		return
	}
	for x := x0; x <= x1; x++ {
		dst.Set(x, y0, c)
		dst.Set(x, y1, c)
	}
	for y := y0; y <= y1; y++ {
		dst.Set(x0, y, c)
		dst.Set(x1, y, c)
	}
}

// DrawLabel выводит текст от точки базовой линии at и возвращает занятую область.
func DrawLabel(dst draw.Image, text string, at image.Point, c color.Color) image.Rectangle {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(at.X, at.Y),
	}
	bounds, _ := d.BoundString(text)
	d.DrawString(text)
	return image.Rect(bounds.Min.X.Floor(), bounds.Min.Y.Floor(), bounds.Max.X.Ceil(), bounds.Max.Y.Ceil())
}

// DrawCount выводит надпись "Detected Cameras: N" в LabelOrigin.
func DrawCount(dst draw.Image, count int, c color.Color) image.Rectangle {
	return DrawLabel(dst, CountLabel(count), LabelOrigin, c)
}
