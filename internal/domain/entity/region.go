package entity

// Rejection причина, по которой область не прошла фильтры
type Rejection string

const (
	RejectNone       Rejection = ""           // область принята
	RejectSize       Rejection = "size"       // площадь вне допустимого диапазона
	RejectDegenerate Rejection = "degenerate" // нулевой периметр
	RejectShape      Rejection = "shape"      // форма недостаточно круглая
	RejectEdge       Rejection = "edge"       // слишком близко к краю кадра
)

// Region представляет яркую область, найденную на кадре
type Region struct {
	X           int       // координата X левого верхнего угла
	Y           int       // координата Y левого верхнего угла
	Width       int       // ширина ограничивающего прямоугольника
	Height      int       // высота ограничивающего прямоугольника
	Area        float64   // площадь контура в пикселях
	Perimeter   float64   // длина замкнутого контура в пикселях
	Circularity float64   // 4π·площадь/периметр²
	Rejection   Rejection // причина отказа, пустая для принятой области
}

// Center возвращает координаты центра области
func (r Region) Center() (x, y int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Accepted сообщает, прошла ли область все фильтры
func (r Region) Accepted() bool {
	return r.Rejection == RejectNone
}
