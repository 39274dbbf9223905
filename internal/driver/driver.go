// Package driver is the frame-rate-limited animation loop. One goroutine
// owns all mutation: scheduled ticks, visibility changes and theme changes
// arrive as inbound events and are consumed between frames, so there is no
// locking anywhere in the animation state.
package driver

import (
	"context"
	"time"

	"tendril-bg-renderer/internal/scene"
)

// State of the loop.
type State int

const (
	Running State = iota
	Paused
)

// RenderSink consumes each accepted frame's scene state.
type RenderSink func(*scene.Scene)

// Driver paces ticks against a target frame interval and advances the scene
// by a fixed time step on each accepted frame.
type Driver struct {
	scene    *scene.Scene
	sink     RenderSink
	interval time.Duration

	state    State
	clock    time.Time // start of the current pacing window
	clockSet bool

	pendingTheme string
	themeQueued  bool
}

// New builds a driver targeting the given frame rate.
func New(sc *scene.Scene, fps int, sink RenderSink) *Driver {
	if fps <= 0 {
		fps = 30
	}
	return &Driver{
		scene:    sc,
		sink:     sink,
		interval: time.Second / time.Duration(fps),
		state:    Running,
	}
}

// State reports whether the loop is running or paused.
func (d *Driver) State() State { return d.state }

// Scene exposes the owned context, e.g. for teardown.
func (d *Driver) Scene() *scene.Scene { return d.scene }

// SetVisible records a visibility change. Hidden pauses the loop; visible
// resumes it and resets the pacing clock so no catch-up burst of frames
// follows a long background stretch.
func (d *Driver) SetVisible(visible bool, now time.Time) {
	if visible {
		d.state = Running
		d.clock = now
		d.clockSet = true
	} else {
		d.state = Paused
	}
}

// SetTheme queues a theme to apply on the next accepted frame. Last value
// wins if several arrive between frames.
func (d *Driver) SetTheme(name string) {
	d.pendingTheme = name
	d.themeQueued = true
}

// Tick processes one scheduler callback. It returns true when a frame was
// accepted, false when the callback arrived too soon or the loop is paused.
// Too-soon callbacks do no work at all; the leftover time stays in the
// pacing window, so accepted frames never drift relative to the target rate.
func (d *Driver) Tick(now time.Time) bool {
	if d.state != Running {
		return false
	}
	if d.clockSet {
		if now.Sub(d.clock) < d.interval {
			return false
		}
		// Advance by exactly one interval, not to now: the remainder
		// carries into the next window.
		d.clock = d.clock.Add(d.interval)
	} else {
		d.clock = now
		d.clockSet = true
	}

	if d.themeQueued {
		d.scene.SetTheme(d.pendingTheme)
		d.themeQueued = false
	}

	d.scene.Advance()
	if d.sink != nil {
		d.sink(d.scene)
	}
	return true
}

// Run drives the loop from a ticker until ctx is done, consuming visibility
// and theme events between ticks. Either channel may be nil. On return the
// scene buffers are released; the pending schedule dies with the ticker.
func (d *Driver) Run(ctx context.Context, visibility <-chan bool, themes <-chan string) {
	// Schedule finer than the target interval; pacing in Tick decides
	// which callbacks become frames.
	tick := time.NewTicker(d.interval / 2)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			d.scene.Release()
			return
		case v := <-visibility:
			d.SetVisible(v, time.Now())
		case name := <-themes:
			d.SetTheme(name)
		case now := <-tick.C:
			d.Tick(now)
		}
	}
}
