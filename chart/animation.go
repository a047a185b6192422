package chart

import "time"

// DefaultAnimationDuration is how long bars take to grow to full height.
const DefaultAnimationDuration = 400 * time.Millisecond

// Entrance drives the bars' entrance animation from the frame clock. It
// owns no timers: the widget asks it for the progress at the time of each
// frame and requests another frame while it is running.
type Entrance struct {
	// Duration of the animation. Zero means DefaultAnimationDuration.
	Duration time.Duration
	// Disabled pins the progress at one.
	Disabled bool

	start    time.Time
	started  bool
	finished bool
}

func (e *Entrance) duration() time.Duration {
	if e.Duration <= 0 {
		return DefaultAnimationDuration
	}
	return e.Duration
}

// Start begins the animation at now, unless it has already run.
func (e *Entrance) Start(now time.Time) {
	if e.started || e.finished {
		return
	}
	e.start = now
	e.started = true
}

// Restart plays the animation again from now.
func (e *Entrance) Restart(now time.Time) {
	e.start = now
	e.started = true
	e.finished = false
}

// Cancel stops the animation, leaving the bars at full height.
func (e *Entrance) Cancel() {
	e.finished = true
}

// Progress returns the animation factor at now, a value that grows
// linearly from zero to one over the duration.
func (e *Entrance) Progress(now time.Time) float32 {
	if e.Disabled || e.finished {
		return 1
	}
	if !e.started {
		return 0
	}
	elapsed := now.Sub(e.start)
	if elapsed >= e.duration() {
		e.finished = true
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float32(elapsed) / float32(e.duration())
}

// Running reports whether further frames are needed to finish the
// animation.
func (e *Entrance) Running(now time.Time) bool {
	return e.Progress(now) < 1
}
