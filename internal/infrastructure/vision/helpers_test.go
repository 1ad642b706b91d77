package vision

import (
	"image"
	"image/color"
	"image/draw"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// newFrame создаёт чёрный непрозрачный кадр.
func newFrame(w, h int) *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(frame, frame.Bounds(), image.NewUniform(color.RGBA{A: 255}), image.Point{}, draw.Src)
	return frame
}

// drawDisk закрашивает белым пиксели, центры которых лежат в круге диаметра d.
func drawDisk(frame *image.RGBA, cx, cy, d float64) {
	r := d / 2
	b := frame.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				frame.SetRGBA(x, y, white)
			}
		}
	}
}

func fillRect(frame *image.RGBA, r image.Rectangle) {
	draw.Draw(frame, r, image.NewUniform(white), image.Point{}, draw.Src)
}

func maskFromRows(rows ...string) *binaryMask {
	m := newBinaryMask(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				m.set(x, y)
			}
		}
	}
	return m
}

func cloneFrame(frame *image.RGBA) *image.RGBA {
	c := image.NewRGBA(frame.Bounds())
	copy(c.Pix, frame.Pix)
	return c
}
