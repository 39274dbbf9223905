package frames

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loop.manifest.json")
	want := Manifest{
		Output: "loop.webp",
		Frames: 240,
		FPS:    30,
		Size:   512,
		Theme:  "dark",
		Seed:   1,
	}
	require.NoError(t, WriteManifest(path, want))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Manifest
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, want, got)
}
