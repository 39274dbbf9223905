// Command export writes the rest-pose tendril sculpture as a binary glTF
// file for pages that render the background live instead of playing a loop.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"tendril-bg-renderer/internal/export"
	"tendril-bg-renderer/internal/palette"
	"tendril-bg-renderer/internal/tube"
)

func main() {
	output := flag.String("output", "sculpture.glb", "Output .glb path")
	theme := flag.String("theme", palette.Default, "Theme whose material to bake in")

	flag.Parse()

	pal, ok := palette.Lookup(*theme)
	if !ok {
		fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using %q (available: %s)\n",
			*theme, palette.Default, strings.Join(palette.Names(), ", "))
		pal, _ = palette.Lookup(palette.Default)
	}

	mesh := tube.BuildSculpture()
	if err := export.WriteGLB(*output, mesh, pal); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sculpture: %s (%d vertices, %d triangles)\n",
		*output, len(mesh.RestPose), len(mesh.Indices)/3)
}
