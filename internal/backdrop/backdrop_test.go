package backdrop

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRescalesAndForcesOpaque(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i] = 90
		src.Pix[i+1] = 60
		src.Pix[i+2] = 30
		src.Pix[i+3] = 128 // semi-transparent on purpose
	}

	path := filepath.Join(t.TempDir(), "bd.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	got, err := Load(path, 16)
	require.NoError(t, err)
	require.Equal(t, 16, got.Bounds().Dx())
	require.Equal(t, 16, got.Bounds().Dy())

	for i := 3; i < len(got.Pix); i += 4 {
		assert.Equal(t, uint8(255), got.Pix[i], "alpha must be forced opaque")
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("/nonexistent/bd.png", 16)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backdrop: open")

	path := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))
	_, err = Load(path, 16)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backdrop: decode")
}

func TestSolid(t *testing.T) {
	img := Solid(color.NRGBA{1, 2, 3, 255}, 4)
	require.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, color.NRGBA{1, 2, 3, 255}, img.NRGBAAt(2, 2))
}
