// Package camera владеет устройством захвата и окном просмотра живого видео.
package camera

import "errors"

var (
	// ErrGoCVDisabled возвращается, если бинарник собран без тега gocv.
	ErrGoCVDisabled = errors.New("gocv build tag is not enabled")
	// ErrCaptureNotOpened означает, что устройство захвата недоступно.
	ErrCaptureNotOpened = errors.New("capture device is not opened")
)

// Config описывает устройство захвата и окно.
type Config struct {
	Index       int
	Width       int
	Height      int
	WindowTitle string
	QuitKey     rune
}

// isQuitKey сравнивает код из WaitKey с клавишей выхода.
// WaitKey возвращает -1, если клавиша не нажата.
func isQuitKey(key int, quit rune) bool {
	if key < 0 {
		return false
	}
	return rune(key&0xff) == quit
}
