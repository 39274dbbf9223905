// Package frames is the offline render pipeline: it plans per-frame state
// sequentially, rasterizes the frames with a worker pool and assembles the
// result into an animated WebP.
package frames

import (
	"fmt"
	"image"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/flywave/go3d/vec3"

	"tendril-bg-renderer/internal/deform"
	"tendril-bg-renderer/internal/palette"
	"tendril-bg-renderer/internal/postprocess"
	"tendril-bg-renderer/internal/raster"
	"tendril-bg-renderer/internal/scene"
)

// Config holds the shared settings for one render run.
type Config struct {
	Size        int
	Supersample int
	FrameCount  int
	FPS         int
	Workers     int
	Backdrop    *image.NRGBA // already scaled to Size*Supersample, or nil
}

// FrameState is the part of a frame's input that must be produced in order:
// the accumulated time value and the particle positions at that tick.
type FrameState struct {
	Time      float32
	Particles []vec3.T
}

// Plan advances the scene once per frame and snapshots the sequential state.
// Deformation and the camera rig are pure functions of time, so planned
// frames can be rendered in any order afterwards.
func Plan(sc *scene.Scene, frameCount int) []FrameState {
	states := make([]FrameState, frameCount)
	for i := range states {
		sc.Advance()
		states[i] = FrameState{
			Time:      sc.Time,
			Particles: sc.Particles.Snapshot(),
		}
	}
	return states
}

// Render rasterizes FrameCount frames with a worker pool and returns the
// ordered image sequence.
func Render(sc *scene.Scene, cfg Config) []*image.NRGBA {
	states := Plan(sc, cfg.FrameCount)
	results := make([]*image.NRGBA, len(states))

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	total := len(states)
	var processed atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	rest := sc.Sculpture.RestPose
	indices := sc.Sculpture.Indices
	pal := sc.Palette

	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Per-worker scratch; the rest pose and indices are shared
			// read-only.
			positions := make([]vec3.T, len(rest))
			normals := make([]vec3.T, len(rest))
			for idx := range frameChan {
				results[idx] = renderFrame(states[idx], rest, indices, positions, normals, pal, cfg)
				processed.Add(1)
			}
		}()
	}

	for i := range states {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

// RenderStill rasterizes a single frame at animation time t using the
// scene's current particle positions.
func RenderStill(sc *scene.Scene, t float32, cfg Config) *image.NRGBA {
	rest := sc.Sculpture.RestPose
	positions := make([]vec3.T, len(rest))
	normals := make([]vec3.T, len(rest))
	st := FrameState{Time: t, Particles: sc.Particles.Snapshot()}
	return renderFrame(st, rest, sc.Sculpture.Indices, positions, normals, sc.Palette, cfg)
}

func renderFrame(
	st FrameState,
	rest []vec3.T,
	indices []uint32,
	positions, normals []vec3.T,
	pal palette.Palette,
	cfg Config,
) *image.NRGBA {
	deform.Displace(rest, positions, st.Time)
	deform.RecomputeNormals(positions, indices, normals)
	cam, yaw, lift := scene.Rig(st.Time)

	renderSize := cfg.Size
	if cfg.Supersample > 1 {
		renderSize = cfg.Size * cfg.Supersample
	}

	img := raster.Render(&raster.Input{
		Positions: positions,
		Normals:   normals,
		Indices:   indices,
		Yaw:       yaw,
		Lift:      lift,
		Camera:    cam,
		Palette:   pal,
		Particles: st.Particles,
		Backdrop:  cfg.Backdrop,
	}, renderSize)

	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Size)
	}
	return img
}

// EncodeAnimation writes the frame sequence as an infinitely looping
// animated WebP.
func EncodeAnimation(w io.Writer, imgs []*image.NRGBA, fps int) error {
	if len(imgs) == 0 {
		return fmt.Errorf("frames: nothing to encode")
	}
	if fps <= 0 {
		fps = 30
	}
	dur := uint(1000 / fps)

	ani := nativewebp.Animation{
		Images:    make([]image.Image, len(imgs)),
		Durations: make([]uint, len(imgs)),
		Disposals: make([]uint, len(imgs)),
		LoopCount: 0, // loop forever
	}
	for i, img := range imgs {
		ani.Images[i] = img
		ani.Durations[i] = dur
	}
	return nativewebp.EncodeAll(w, &ani, nil)
}
