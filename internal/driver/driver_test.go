package driver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tendril-bg-renderer/internal/scene"
)

func newTestDriver(t *testing.T, fps int) (*Driver, *int) {
	t.Helper()
	frames := 0
	sc := scene.New(1)
	d := New(sc, fps, func(*scene.Scene) { frames++ })
	return d, &frames
}

func TestTickPacing(t *testing.T) {
	d, frames := newTestDriver(t, 10) // 100ms interval
	start := time.Unix(100, 0)

	// The very first tick is always accepted and anchors the clock.
	require.True(t, d.Tick(start))

	// Sub-interval callbacks do no work at all.
	assert.False(t, d.Tick(start.Add(30*time.Millisecond)))
	assert.False(t, d.Tick(start.Add(60*time.Millisecond)))
	assert.False(t, d.Tick(start.Add(90*time.Millisecond)))
	assert.Equal(t, 1, *frames)

	assert.True(t, d.Tick(start.Add(120*time.Millisecond)))
	assert.Equal(t, 2, *frames)

	// The window advanced to start+100ms, not start+120ms, so the next
	// frame is due at start+200ms rather than start+220ms.
	assert.False(t, d.Tick(start.Add(180*time.Millisecond)))
	assert.True(t, d.Tick(start.Add(210*time.Millisecond)))
}

// Over a long stretch of too-frequent callbacks the accepted count must
// match the target rate exactly; leftover time never accumulates into drift.
func TestTickNoDrift(t *testing.T) {
	d, frames := newTestDriver(t, 10) // 100ms interval
	start := time.Unix(100, 0)

	for k := 0; k <= 200; k++ {
		d.Tick(start.Add(time.Duration(k) * 30 * time.Millisecond))
	}

	// 6 seconds at 10 fps: the anchoring frame plus 60 paced frames.
	assert.Equal(t, 61, *frames)
}

func TestPauseAndResume(t *testing.T) {
	d, frames := newTestDriver(t, 10)
	start := time.Unix(100, 0)

	require.True(t, d.Tick(start))
	assert.Equal(t, Running, d.State())

	d.SetVisible(false, start.Add(time.Second))
	assert.Equal(t, Paused, d.State())

	// Paused ticks are dropped no matter how much time passed.
	assert.False(t, d.Tick(start.Add(10*time.Second)))
	assert.Equal(t, 1, *frames)

	// Resuming resets the pacing clock: no catch-up burst, the next frame
	// is due one full interval after the resume.
	resume := start.Add(20 * time.Second)
	d.SetVisible(true, resume)
	assert.Equal(t, Running, d.State())
	assert.False(t, d.Tick(resume.Add(30*time.Millisecond)))
	assert.True(t, d.Tick(resume.Add(100*time.Millisecond)))
	assert.Equal(t, 2, *frames)
}

func TestThemeAppliedOnAcceptedFrame(t *testing.T) {
	d, _ := newTestDriver(t, 10)
	start := time.Unix(100, 0)

	d.SetVisible(false, start)
	d.SetTheme("light")

	// Queued, not applied: the paused loop must not touch the scene.
	assert.Equal(t, "dark", d.Scene().ThemeName)
	d.Tick(start.Add(time.Second))
	assert.Equal(t, "dark", d.Scene().ThemeName)

	d.SetVisible(true, start.Add(2*time.Second))
	require.True(t, d.Tick(start.Add(2*time.Second).Add(100*time.Millisecond)))
	assert.Equal(t, "light", d.Scene().ThemeName)
}

func TestThemeLastValueWins(t *testing.T) {
	d, _ := newTestDriver(t, 10)
	start := time.Unix(100, 0)

	d.SetTheme("light")
	d.SetTheme("nosuch")
	require.True(t, d.Tick(start))

	// "nosuch" was the last queued value; applying it is a no-op, and the
	// earlier "light" request must not sneak in afterwards.
	assert.Equal(t, "dark", d.Scene().ThemeName)

	d.SetTheme("nosuch")
	d.SetTheme("light")
	require.True(t, d.Tick(start.Add(time.Second)))
	assert.Equal(t, "light", d.Scene().ThemeName)
}

func TestZeroFPSFallsBackToDefault(t *testing.T) {
	sc := scene.New(1)
	d := New(sc, 0, nil)
	assert.Equal(t, time.Second/30, d.interval)
}
