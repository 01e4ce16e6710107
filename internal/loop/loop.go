// Package loop drives frame callbacks at a fixed cadence.
//
// A [Loop] owns one callback and one ticker. The callback always runs on
// the goroutine that called [Loop.Run], so a field driven by a loop is
// never touched concurrently. [Group] runs several loops side by side and
// stops all of them together.
package loop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

var (
	ErrRunning = errors.New("loop: already running")
	ErrStopped = errors.New("loop: stopped")
	ErrCadence = errors.New("loop: interval must be positive")
)

// FrameFunc is called once per frame with the tick time.
type FrameFunc func(now time.Time)

type Option func(*Loop)

func WithLogger(l *zap.Logger) Option {
	return func(lp *Loop) {
		if l != nil {
			lp.log = l
		}
	}
}

func WithName(name string) Option {
	return func(lp *Loop) { lp.name = name }
}

// Loop calls a FrameFunc on every tick until stopped.
type Loop struct {
	frame    FrameFunc
	interval time.Duration
	name     string
	log      *zap.Logger

	mu      sync.Mutex
	running bool
	stopped bool
	paused  bool
	ticker  *time.Ticker
	done    chan struct{}

	frames atomic.Uint64
}

func New(frame FrameFunc, interval time.Duration, opts ...Option) *Loop {
	lp := &Loop{
		frame:    frame,
		interval: interval,
		name:     "loop",
		log:      zap.NewNop(),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(lp)
	}
	return lp
}

// FPS converts a frame rate to a tick interval.
func FPS(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Second / time.Duration(n)
}

// Run blocks until ctx is done or Stop is called. It returns nil after
// Stop and ctx.Err() after cancellation. The ticker is released on every
// return path, panics in the frame callback included.
func (lp *Loop) Run(ctx context.Context) error {
	if lp.interval <= 0 {
		return ErrCadence
	}

	lp.mu.Lock()
	switch {
	case lp.stopped:
		lp.mu.Unlock()
		return ErrStopped
	case lp.running:
		lp.mu.Unlock()
		return ErrRunning
	}
	lp.running = true
	ticker := time.NewTicker(lp.interval)
	if lp.paused {
		ticker.Stop()
	}
	lp.ticker = ticker
	lp.mu.Unlock()

	defer func() {
		lp.mu.Lock()
		ticker.Stop()
		lp.ticker = nil
		lp.running = false
		lp.mu.Unlock()
		lp.log.Debug("loop stopped", zap.String("loop", lp.name), zap.Uint64("frames", lp.frames.Load()))
	}()

	lp.log.Debug("loop started", zap.String("loop", lp.name), zap.Duration("interval", lp.interval))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-lp.done:
			return nil
		case now := <-ticker.C:
			if lp.Paused() {
				continue
			}
			lp.frame(now)
			lp.frames.Add(1)
		}
	}
}

// Stop ends Run. Calling it more than once is safe.
func (lp *Loop) Stop() {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	if lp.stopped {
		return
	}
	lp.stopped = true
	close(lp.done)
}

// Pause stops the ticker until Resume. Run keeps blocking, so a paused
// loop can still be stopped or cancelled.
func (lp *Loop) Pause() {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	if lp.paused {
		return
	}
	lp.paused = true
	if lp.ticker != nil {
		lp.ticker.Stop()
	}
	lp.log.Debug("loop paused", zap.String("loop", lp.name))
}

// Resume restarts the ticker with a full interval before the next frame.
func (lp *Loop) Resume() {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	if !lp.paused {
		return
	}
	lp.paused = false
	if lp.ticker != nil {
		lp.ticker.Reset(lp.interval)
	}
	lp.log.Debug("loop resumed", zap.String("loop", lp.name))
}

func (lp *Loop) Paused() bool {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	return lp.paused
}

// Frames reports how many frames have been delivered.
func (lp *Loop) Frames() uint64 { return lp.frames.Load() }
