// Package palette maps theme names to every color and intensity the scene
// reads. Switching themes is a pure re-read of this record; geometry is
// never involved.
package palette

// Color is an sRGB triple in [0,1].
type Color [3]float32

// RGB builds a Color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255}
}

// Palette holds all theme-driven values: background and fog, the sculpture
// material, the particle tint and the three lights.
type Palette struct {
	Background Color
	Fog        Color
	FogDensity float32

	MeshColor    Color
	MeshEmissive Color

	ParticleColor Color

	KeyColor     Color
	KeyIntensity float32

	RimColor     Color
	RimIntensity float32

	AmbientColor     Color
	AmbientIntensity float32
}

// Default is the theme used when nothing else is requested.
const Default = "dark"

var themes = map[string]Palette{
	"dark": {
		Background: RGB(5, 7, 14),
		Fog:        RGB(5, 7, 14),
		FogDensity: 0.028,

		MeshColor:    RGB(38, 72, 126),
		MeshEmissive: RGB(10, 26, 54),

		ParticleColor: RGB(127, 212, 255),

		KeyColor:     RGB(102, 170, 255),
		KeyIntensity: 1.5,

		RimColor:     RGB(255, 102, 196),
		RimIntensity: 0.6,

		AmbientColor:     RGB(34, 38, 58),
		AmbientIntensity: 0.55,
	},
	"light": {
		Background: RGB(242, 244, 248),
		Fog:        RGB(242, 244, 248),
		FogDensity: 0.022,

		MeshColor:    RGB(176, 196, 226),
		MeshEmissive: RGB(120, 140, 176),

		ParticleColor: RGB(58, 110, 168),

		KeyColor:     RGB(255, 255, 255),
		KeyIntensity: 1.2,

		RimColor:     RGB(255, 217, 160),
		RimIntensity: 0.5,

		AmbientColor:     RGB(207, 212, 222),
		AmbientIntensity: 0.7,
	},
}

// Lookup returns the palette for a theme name; ok is false for unknown
// names so callers can no-op.
func Lookup(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// Names lists the available themes.
func Names() []string {
	return []string{"dark", "light"}
}
