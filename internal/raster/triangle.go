package raster

import "math"

// Triangle rasterizes a single Gouraud-shaded triangle with z-buffering.
// Per-vertex linear colors (cr/cg/cb) and fog factors (cf) are interpolated
// barycentrically; each covered pixel is tonemapped, gamma-encoded and then
// blended toward the fog color in sRGB space.
//
// Hot path: no allocation inside the pixel loop.
func (s *Shader) Triangle(
	fb *FrameBuffer,
	px, py, pz []float64,
	cr, cg, cb, cf []float64,
	vi [3]int,
) {
	nv := len(px)
	for _, i := range vi {
		if i < 0 || i >= nv {
			return
		}
	}
	i0, i1, i2 := vi[0], vi[1], vi[2]

	x0, y0, z0 := px[i0], py[i0], pz[i0]
	x1, y1, z1 := px[i1], py[i1], pz[i1]
	x2, y2, z2 := px[i2], py[i2], pz[i2]

	// Bounding box
	w := fb.Width
	h := fb.Height
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	fogR := s.fogSRGB[0]
	fogG := s.fogSRGB[1]
	fogB := s.fogSRGB[2]

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * w
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			r := s.Encode(w0*cr[i0] + w1*cr[i1] + w2*cr[i2])
			g := s.Encode(w0*cg[i0] + w1*cg[i1] + w2*cg[i2])
			b := s.Encode(w0*cb[i0] + w1*cb[i1] + w2*cb[i2])

			f := w0*cf[i0] + w1*cf[i1] + w2*cf[i2]
			if f < 0 {
				f = 0
			} else if f > 1 {
				f = 1
			}

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(r*(1-f) + fogR*f)
			fb.Color[pxIdx+1] = clamp255(g*(1-f) + fogG*f)
			fb.Color[pxIdx+2] = clamp255(b*(1-f) + fogB*f)
			fb.Color[pxIdx+3] = 255
		}
	}
}
