//go:build !gocv
// +build !gocv

package camera

import (
	"context"

	"lens-finder/internal/infrastructure/vision"
)

// Run без gocv недоступен.
func Run(_ context.Context, _ Config, _ vision.Config) error {
	return ErrGoCVDisabled
}
