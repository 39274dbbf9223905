package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		p, ok := Lookup(name)
		require.Truef(t, ok, "theme %q", name)
		assert.Greater(t, p.FogDensity, float32(0))
		assert.Greater(t, p.KeyIntensity, float32(0))
	}

	_, ok := Lookup("solarized")
	assert.False(t, ok)

	_, ok = Lookup(Default)
	assert.True(t, ok, "default theme must exist")
}

func TestRGB(t *testing.T) {
	assert.Equal(t, Color{0, 0, 0}, RGB(0, 0, 0))
	assert.Equal(t, Color{1, 1, 1}, RGB(255, 255, 255))
	assert.InDelta(t, 127.0/255.0, float64(RGB(127, 0, 0)[0]), 1e-6)
}

// Every theme-driven value is supposed to change with the theme; a field
// accidentally shared between dark and light would go unnoticed visually.
func TestThemesFullyDistinct(t *testing.T) {
	dark, _ := Lookup("dark")
	light, _ := Lookup("light")

	assert.NotEqual(t, dark.Background, light.Background)
	assert.NotEqual(t, dark.Fog, light.Fog)
	assert.NotEqual(t, dark.FogDensity, light.FogDensity)
	assert.NotEqual(t, dark.MeshColor, light.MeshColor)
	assert.NotEqual(t, dark.MeshEmissive, light.MeshEmissive)
	assert.NotEqual(t, dark.ParticleColor, light.ParticleColor)
	assert.NotEqual(t, dark.KeyColor, light.KeyColor)
	assert.NotEqual(t, dark.KeyIntensity, light.KeyIntensity)
	assert.NotEqual(t, dark.RimColor, light.RimColor)
	assert.NotEqual(t, dark.RimIntensity, light.RimIntensity)
	assert.NotEqual(t, dark.AmbientColor, light.AmbientColor)
	assert.NotEqual(t, dark.AmbientIntensity, light.AmbientIntensity)
}

// Fog must fade into the page background, so the two colors match per theme.
func TestFogMatchesBackground(t *testing.T) {
	for _, name := range Names() {
		p, _ := Lookup(name)
		assert.Equalf(t, p.Background, p.Fog, "theme %q", name)
	}
}
