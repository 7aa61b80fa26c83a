package scheduler

import (
	"math"
	"sync"
	"time"
)

// FrameFunc renders one animation frame. It is called with the animator's
// lock held and must not call back into the Animator.
type FrameFunc func(value int, final bool)

// Animator owns the animated numeric value of one display element.
// Only one animation runs at a time: starting a new one cancels the
// previous one before its next frame.
type Animator struct {
	frame  time.Duration
	render FrameFunc

	mu      sync.Mutex
	current float64
	target  float64
	gen     uint64
	stop    chan struct{}
}

// NewAnimator creates an animator that renders at the given frame interval
func NewAnimator(frame time.Duration, render FrameFunc) *Animator {
	if frame <= 0 {
		frame = 16 * time.Millisecond
	}
	return &Animator{
		frame:  frame,
		render: render,
	}
}

// Value returns the last rendered value
func (a *Animator) Value() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// Target returns the value the display is heading to
func (a *Animator) Target() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.target
}

// Animate linearly interpolates from the current value to end over duration.
// It returns a channel closed when the animation finishes or is cancelled.
func (a *Animator) Animate(end float64, duration time.Duration) <-chan struct{} {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.cancelLocked()
	a.target = end

	start := a.current
	steps := float64(duration) / float64(a.frame)
	if start == end || steps <= 1 {
		a.finishLocked(end)
		finished := make(chan struct{})
		close(finished)
		return finished
	}

	increment := (end - start) / steps
	stop := make(chan struct{})
	done := make(chan struct{})
	a.stop = stop

	go a.run(a.gen, start, end, increment, stop, done)
	return done
}

// Set jumps straight to value, cancelling any running animation
func (a *Animator) Set(value float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cancelLocked()
	a.target = value
	a.finishLocked(value)
}

// Stop cancels the running animation, leaving the last rendered value
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cancelLocked()
}

func (a *Animator) run(gen uint64, current, end, increment float64, stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		a.mu.Lock()
		if gen != a.gen {
			a.mu.Unlock()
			return
		}

		current += increment
		if (increment > 0 && current >= end) || (increment < 0 && current <= end) {
			a.finishLocked(end)
			a.mu.Unlock()
			return
		}

		a.current = current
		a.render(int(math.Round(current)), false)
		a.mu.Unlock()
	}
}

func (a *Animator) finishLocked(end float64) {
	a.current = end
	a.render(int(math.Round(end)), true)
}

func (a *Animator) cancelLocked() {
	a.gen++
	if a.stop != nil {
		close(a.stop)
		a.stop = nil
	}
}
