package raster

// Sprite splats a round, additively blended particle sprite centered at
// (x, y) with the given pixel radius. The depth test respects geometry in
// front of the particle but never writes, so overlapping sprites stack.
// er/eg/eb are the already-encoded (0..255) sprite channel values; fog
// scales the whole contribution down with distance.
func (s *Shader) Sprite(fb *FrameBuffer, x, y, z, radius float64, er, eg, eb, fog float64) {
	if radius < 0.5 {
		radius = 0.5
	}
	minX := int(x - radius)
	maxX := int(x + radius + 1)
	minY := int(y - radius)
	maxY := int(y + radius + 1)

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	attn := 1 - fog
	if attn <= 0 {
		return
	}
	invR2 := 1 / (radius * radius)

	for sy := minY; sy <= maxY; sy++ {
		dy := float64(sy) - y
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dx := float64(sx) - x
			d2 := (dx*dx + dy*dy) * invR2
			if d2 >= 1 {
				continue
			}
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			// Soft radial falloff, squared for a glow-like core.
			wgt := (1 - d2) * (1 - d2) * attn

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(float64(fb.Color[pxIdx]) + er*wgt)
			fb.Color[pxIdx+1] = clamp255(float64(fb.Color[pxIdx+1]) + eg*wgt)
			fb.Color[pxIdx+2] = clamp255(float64(fb.Color[pxIdx+2]) + eb*wgt)
		}
	}
}
