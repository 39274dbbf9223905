package raster

import (
	"math"

	dvec3 "github.com/flywave/go3d/float64/vec3"
	"github.com/flywave/go3d/vec3"

	"tendril-bg-renderer/internal/palette"
)

// Fixed light directions; the palette only recolors them. Intensities and
// colors are theme-driven, directions are part of the composition.
var (
	keyLightDir = dvec3.T{180, 260, 140}
	rimLightDir = dvec3.T{-160, 130, -210}
)

// Shader holds per-frame lighting state derived from the active palette.
// All colors are kept in linear space; tonemapping happens per pixel.
type Shader struct {
	keyDir dvec3.T
	rimDir dvec3.T
	half   dvec3.T // Blinn-Phong half-vector for the key light

	key      [3]float64 // light color × intensity, linear
	rim      [3]float64
	ambient  [3]float64
	base     [3]float64
	emissive [3]float64

	fogDensity float64
	fogSRGB    [3]float64 // fog color as 0..255 sRGB, blended post-tonemap

	specInt  float64
	specPow  float64
	exposure float64
	invGamma float64
}

// NewShader precomputes light vectors and linearized palette colors.
// viewDir is the unit direction the camera looks along.
func NewShader(p palette.Palette, viewDir vec3.T) *Shader {
	s := &Shader{
		keyDir:     keyLightDir,
		rimDir:     rimLightDir,
		fogDensity: float64(p.FogDensity),
		specInt:    0.45,
		specPow:    12.0,
		exposure:   1.05,
		invGamma:   1.0 / 2.2,
	}
	s.keyDir.Normalize()
	s.rimDir.Normalize()

	vd := dvec3.T{float64(viewDir[0]), float64(viewDir[1]), float64(viewDir[2])}
	s.half = dvec3.Sub(&s.keyDir, &vd)
	s.half.Normalize()

	s.key = linearColor(p.KeyColor, p.KeyIntensity)
	s.rim = linearColor(p.RimColor, p.RimIntensity)
	s.ambient = linearColor(p.AmbientColor, p.AmbientIntensity)
	s.base = linearColor(p.MeshColor, 1)
	s.emissive = linearColor(p.MeshEmissive, 1)

	for k := 0; k < 3; k++ {
		s.fogSRGB[k] = float64(p.Fog[k]) * 255
	}
	return s
}

// ShadeVertex returns the linear, exposure-scaled lit color for a unit
// vertex normal. Lambert terms use abs() so the tube interior never goes
// black when a wave turns a face away from the light.
func (s *Shader) ShadeVertex(n vec3.T) (r, g, b float64) {
	nx := float64(n[0])
	ny := float64(n[1])
	nz := float64(n[2])

	ndKey := math.Abs(nx*s.keyDir[0] + ny*s.keyDir[1] + nz*s.keyDir[2])
	ndRim := math.Abs(nx*s.rimDir[0] + ny*s.rimDir[1] + nz*s.rimDir[2])

	// Hemisphere fill folded into the ambient term.
	hemi := (1.0-math.Abs(ny))*0.5 + 0.5

	ndh := nx*s.half[0] + ny*s.half[1] + nz*s.half[2]
	if ndh < 0 {
		ndh = 0
	}
	spec := math.Pow(ndh, s.specPow) * s.specInt

	for k := 0; k < 3; k++ {
		light := s.ambient[k]*hemi + s.key[k]*ndKey + s.rim[k]*ndRim
		c := (s.base[k]*light + s.key[k]*spec + s.emissive[k]) * s.exposure
		switch k {
		case 0:
			r = c
		case 1:
			g = c
		case 2:
			b = c
		}
	}
	return r, g, b
}

// FogFactor is exp² fog over view depth; 0 = untouched, 1 = fog color.
func (s *Shader) FogFactor(depth float64) float64 {
	d := s.fogDensity * depth
	return 1 - math.Exp(-d*d)
}

// Encode tonemaps and gamma-encodes one linear channel to 0..255.
func (s *Shader) Encode(linear float64) float64 {
	return math.Pow(ACESTonemap(linear), s.invGamma) * 255
}

// SpriteColor returns the encoded (0..255) channel values for the particle
// tint, brightened so the additive sprites read against both themes.
func (s *Shader) SpriteColor(c palette.Color) (er, eg, eb float64) {
	lin := linearColor(c, 1.6)
	return s.Encode(lin[0] * s.exposure),
		s.Encode(lin[1] * s.exposure),
		s.Encode(lin[2] * s.exposure)
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

// linearColor converts an sRGB palette color to linear and applies an
// intensity multiplier.
func linearColor(c palette.Color, intensity float32) [3]float64 {
	var out [3]float64
	for k := 0; k < 3; k++ {
		out[k] = math.Pow(float64(c[k]), 2.2) * float64(intensity)
	}
	return out
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
