package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"tendril-bg-renderer/internal/palette"
)

// Config holds all configurable render settings.
type Config struct {
	// Output
	OutputPath string `json:"output_path"`

	// Scene
	Theme        string `json:"theme"`
	Seed         int64  `json:"seed"`
	BackdropPath string `json:"backdrop_path"`

	// Render settings
	Size        int `json:"size"`
	Supersample int `json:"supersample"`
	Frames      int `json:"frames"`
	FPS         int `json:"fps"`
	Workers     int `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Output   string
	Theme    string
	Backdrop string
	Size     int
	Frames   int
	FPS      int
	Workers  int
	Seed     int64
}

// Resolve applies CLI overrides, then fills any remaining empty fields with
// defaults. CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Output != "" {
		c.OutputPath = flags.Output
	}
	if flags.Theme != "" {
		c.Theme = flags.Theme
	}
	if flags.Backdrop != "" {
		c.BackdropPath = flags.Backdrop
	}
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}

	if c.OutputPath == "" {
		c.OutputPath = "tendrils.webp"
	}
	if c.Theme == "" {
		c.Theme = palette.Default
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.Size <= 0 {
		c.Size = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 240
	}
	if c.FPS <= 0 {
		c.FPS = 30
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
