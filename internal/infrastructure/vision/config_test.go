package vision

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 7, cfg.BlurKernel)
	require.Equal(t, uint8(240), cfg.BrightnessThreshold)
	require.Equal(t, 5.0, cfg.MinArea)
	require.Equal(t, 80.0, cfg.MaxArea)
	require.Equal(t, 0.75, cfg.MinCircularity)
	require.Equal(t, 30, cfg.EdgeMargin)
	require.Equal(t, color.RGBA{R: 255, A: 255}, cfg.BoxColor)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"even kernel", func(c *Config) { c.BlurKernel = 6 }},
		{"negative area", func(c *Config) { c.MinArea = -1 }},
		{"inverted area range", func(c *Config) { c.MinArea, c.MaxArea = 90, 10 }},
		{"circularity above one", func(c *Config) { c.MinCircularity = 1.5 }},
		{"negative margin", func(c *Config) { c.EdgeMargin = -1 }},
		{"zero thickness", func(c *Config) { c.BoxThickness = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}

	cfg := DefaultConfig()
	cfg.BlurKernel = 0
	require.NoError(t, cfg.Validate())
}

func TestConfigSigma(t *testing.T) {
	cfg := DefaultConfig()
	require.InDelta(t, 1.4, cfg.Sigma(), 1e-9)

	cfg.BlurKernel = 5
	require.InDelta(t, 1.1, cfg.Sigma(), 1e-9)

	cfg.BlurKernel = 1
	require.Zero(t, cfg.Sigma())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff0000")
	require.NoError(t, err)
	require.Equal(t, color.RGBA{R: 255, A: 255}, c)

	c, err = ParseColor("#00ff00")
	require.NoError(t, err)
	require.Equal(t, color.RGBA{G: 255, A: 255}, c)

	_, err = ParseColor("red")
	require.Error(t, err)
}
