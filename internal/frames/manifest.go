package frames

import (
	"encoding/json"
	"os"
)

// Manifest records what a finished render contains, next to the WebP.
type Manifest struct {
	Output string `json:"output"`
	Frames int    `json:"frames"`
	FPS    int    `json:"fps"`
	Size   int    `json:"size"`
	Theme  string `json:"theme"`
	Seed   int64  `json:"seed"`
}

// WriteManifest writes the manifest as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
