package vision

import (
	"image"
	"math"
)

// binaryMask хранит бинарное изображение после порога.
type binaryMask struct {
	width  int
	height int
	bits   []bool
}

func newBinaryMask(width, height int) *binaryMask {
	return &binaryMask{width: width, height: height, bits: make([]bool, width*height)}
}

func (m *binaryMask) set(x, y int) {
	m.bits[y*m.width+x] = true
}

func (m *binaryMask) at(p image.Point) bool {
	if p.X < 0 || p.Y < 0 || p.X >= m.width || p.Y >= m.height {
		return false
	}
	return m.bits[p.Y*m.width+p.X]
}

// Contour описывает внешнюю границу области в порядке обхода по часовой стрелке.
type Contour []image.Point

// Area возвращает площадь многоугольника, заданного точками контура.
func (c Contour) Area() float64 {
	if len(c) < 3 {
		return 0
	}
	var sum int
	for i, p := range c {
		q := c[(i+1)%len(c)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(float64(sum)) / 2
}

// Perimeter возвращает длину замкнутого контура.
func (c Contour) Perimeter() float64 {
	if len(c) < 2 {
		return 0
	}
	var length float64
	for i, p := range c {
		q := c[(i+1)%len(c)]
		length += math.Hypot(float64(q.X-p.X), float64(q.Y-p.Y))
	}
	return length
}

// BoundingRect возвращает ограничивающий прямоугольник; Max не включается.
func (c Contour) BoundingRect() image.Rectangle {
	if len(c) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: c[0], Max: c[0]}
	for _, p := range c[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	r.Max = r.Max.Add(image.Pt(1, 1))
	return r
}

// Соседи по Муру, по часовой стрелке начиная с востока (ось Y вниз).
var mooreNeighbours = [8]image.Point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func neighbourIndex(d image.Point) int {
	for i, n := range mooreNeighbours {
		if n == d {
			return i
		}
	}
	return -1
}

// findExternalContours находит внешние контуры 8-связных областей маски.
// Внутренние границы (дыры) не возвращаются.
func findExternalContours(m *binaryMask) []Contour {
	visited := make([]bool, len(m.bits))
	var contours []Contour
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			i := y*m.width + x
			if !m.bits[i] || visited[i] {
				continue
			}
			markComponent(m, visited, image.Pt(x, y))
			contours = append(contours, traceBorder(m, image.Pt(x, y)))
		}
	}
	return contours
}

// markComponent помечает всю 8-связную область, чтобы не обходить её повторно.
func markComponent(m *binaryMask, visited []bool, start image.Point) {
	stack := []image.Point{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !m.at(p) {
			continue
		}
		i := p.Y*m.width + p.X
		if visited[i] {
			continue
		}
		visited[i] = true

		for _, d := range mooreNeighbours {
			stack = append(stack, p.Add(d))
		}
	}
}

// traceBorder обходит границу области от её верхней левой точки.
// Остановка по критерию Джейкоба: возврат в start с тем же первым шагом.
func traceBorder(m *binaryMask, start image.Point) Contour {
	first, back, ok := nextBorderPixel(m, start, start.Add(image.Pt(-1, 0)))
	if !ok {
		return Contour{start}
	}

	contour := Contour{start}
	current := first
	for {
		next, nextBack, _ := nextBorderPixel(m, current, back)
		if current == start && next == first {
			break
		}
		contour = append(contour, current)
		current, back = next, nextBack
	}
	return contour
}

// nextBorderPixel ищет следующий пиксель границы, перебирая соседей current
// по часовой стрелке после фонового пикселя back.
func nextBorderPixel(m *binaryMask, current, back image.Point) (image.Point, image.Point, bool) {
	d := neighbourIndex(back.Sub(current))
	prev := back
	for i := 1; i <= len(mooreNeighbours); i++ {
		p := current.Add(mooreNeighbours[(d+i)%len(mooreNeighbours)])
		if m.at(p) {
			return p, prev, true
		}
		prev = p
	}
	return current, back, false
}
