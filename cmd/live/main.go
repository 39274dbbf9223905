// Command live runs the real-time animation driver and keeps writing the
// latest accepted frame to a file, so a compositor or page can poll it like
// a live wallpaper. SIGUSR1 hides (pauses), SIGUSR2 shows (resumes),
// SIGINT/SIGTERM tear down.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/HugoSmits86/nativewebp"

	"tendril-bg-renderer/internal/config"
	"tendril-bg-renderer/internal/driver"
	"tendril-bg-renderer/internal/palette"
	"tendril-bg-renderer/internal/postprocess"
	"tendril-bg-renderer/internal/raster"
	"tendril-bg-renderer/internal/scene"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	output := flag.String("output", "frame.webp", "Frame file, rewritten on every accepted frame")
	theme := flag.String("theme", "", "Theme name: dark or light (default: dark)")
	size := flag.Int("size", 0, "Frame size in pixels (default: 512)")
	fps := flag.Int("fps", 0, "Target frame rate (default: 30)")
	seed := flag.Int64("seed", 0, "Particle field seed (default: 1)")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Output: *output,
		Theme:  *theme,
		Size:   *size,
		FPS:    *fps,
		Seed:   *seed,
	})

	if _, ok := palette.Lookup(cfg.Theme); !ok {
		fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using %q (available: %s)\n",
			cfg.Theme, palette.Default, strings.Join(palette.Names(), ", "))
		cfg.Theme = palette.Default
	}

	sc := scene.New(cfg.Seed)
	sc.SetTheme(cfg.Theme)

	renderSize := cfg.Size
	if cfg.Supersample > 1 {
		renderSize = cfg.Size * cfg.Supersample
	}

	sink := func(s *scene.Scene) {
		img := raster.Render(s.FrameInput(), renderSize)
		if cfg.Supersample > 1 {
			img = postprocess.Downsample(img, cfg.Size)
		}
		if err := writeFrame(cfg.OutputPath, img); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: frame write: %v\n", err)
		}
	}

	d := driver.New(sc, cfg.FPS, sink)

	// Visibility comes in over signals; the driver consumes them between
	// ticks on its own goroutine.
	visibility := make(chan bool, 1)
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGUSR1, syscall.SIGUSR2)
	go func() {
		for sig := range sigs {
			visibility <- sig == syscall.SIGUSR2
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Live tendril background: %s (theme %s, %d fps)\n", cfg.OutputPath, cfg.Theme, cfg.FPS)
	fmt.Println("SIGUSR1 pauses, SIGUSR2 resumes, SIGINT stops.")

	d.Run(ctx, visibility, nil)
}

// writeFrame writes atomically via rename so a poller never sees a torn file.
func writeFrame(path string, img *image.NRGBA) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
