package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"tendril-bg-renderer/internal/backdrop"
	"tendril-bg-renderer/internal/config"
	"tendril-bg-renderer/internal/frames"
	"tendril-bg-renderer/internal/palette"
	"tendril-bg-renderer/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	output := flag.String("output", "", "Output WebP path (default: tendrils.webp)")
	theme := flag.String("theme", "", "Theme name: dark or light (default: dark)")
	backdropPath := flag.String("backdrop", "", "Optional backdrop image (TGA/PNG/JPEG)")
	size := flag.Int("size", 0, "Output size in pixels (default: 512)")
	frameCount := flag.Int("frames", 0, "Frames in the loop (default: 240)")
	fps := flag.Int("fps", 0, "Playback frame rate (default: 30)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	seed := flag.Int64("seed", 0, "Particle field seed (default: 1)")
	still := flag.Float64("still", -1, "Render a single frame at this animation time instead of a loop")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Output:   *output,
		Theme:    *theme,
		Backdrop: *backdropPath,
		Size:     *size,
		Frames:   *frameCount,
		FPS:      *fps,
		Workers:  *workers,
		Seed:     *seed,
	})

	if _, ok := palette.Lookup(cfg.Theme); !ok {
		fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using %q (available: %s)\n",
			cfg.Theme, palette.Default, strings.Join(palette.Names(), ", "))
		cfg.Theme = palette.Default
	}

	// Fail before the heavy work if the output cannot be written.
	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot write output: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	sc := scene.New(cfg.Seed)
	sc.SetTheme(cfg.Theme)

	renderCfg := frames.Config{
		Size:        cfg.Size,
		Supersample: cfg.Supersample,
		FrameCount:  cfg.Frames,
		FPS:         cfg.FPS,
		Workers:     cfg.Workers,
	}

	// Optional backdrop: failures warn and fall back to the theme background.
	if cfg.BackdropPath != "" {
		renderSize := cfg.Size
		if cfg.Supersample > 1 {
			renderSize = cfg.Size * cfg.Supersample
		}
		bd, err := backdrop.Load(cfg.BackdropPath, renderSize)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			renderCfg.Backdrop = bd
		}
	}

	if *still >= 0 {
		img := frames.RenderStill(sc, float32(*still), renderCfg)
		if err := nativewebp.Encode(out, img, nil); err != nil {
			fmt.Fprintf(os.Stderr, "Error: WebP encode: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Still frame (t=%.3f): %s\n", *still, cfg.OutputPath)
		return
	}

	fmt.Printf("Tendril background → animated WebP\n")
	fmt.Printf("Theme: %s, Size: %d, Frames: %d @ %d fps, Workers: %d\n",
		cfg.Theme, cfg.Size, cfg.Frames, cfg.FPS, cfg.Workers)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	imgs := frames.Render(sc, renderCfg)

	if err := frames.EncodeAnimation(out, imgs, cfg.FPS); err != nil {
		fmt.Fprintf(os.Stderr, "Error: WebP encode: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs: %s (%d frames)\n", elapsed.Seconds(), cfg.OutputPath, len(imgs))

	manifestPath := manifestPathFor(cfg.OutputPath)
	if err := frames.WriteManifest(manifestPath, frames.Manifest{
		Output: filepath.Base(cfg.OutputPath),
		Frames: cfg.Frames,
		FPS:    cfg.FPS,
		Size:   cfg.Size,
		Theme:  cfg.Theme,
		Seed:   cfg.Seed,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}
}

func manifestPathFor(output string) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + ".manifest.json"
}
