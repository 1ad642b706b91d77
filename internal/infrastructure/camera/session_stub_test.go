//go:build !gocv
// +build !gocv

package camera

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"lens-finder/internal/infrastructure/vision"
)

func TestRun_WithoutGoCV(t *testing.T) {
	err := Run(context.Background(), Config{Width: 640, Height: 480}, vision.DefaultConfig())
	require.ErrorIs(t, err, ErrGoCVDisabled)
}
