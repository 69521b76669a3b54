package animation

import (
	"context"
	"sync"
	"time"
)

// Config contains animation timing values.
type Config struct {
	FrameInterval time.Duration

	PulsePeriod time.Duration
	PulseMin    float32
	PulseMax    float32

	RestScale float32
}

// Engine renders the breathing circle and icon pulse of the session view.
//
// The circle eases toward the scale of the current breathing phase; the
// phase length is the tween duration, so the circle reaches its target as
// the next phase begins.
type Engine struct {
	mu     sync.Mutex
	config Config
	render func(Frame)
	cancel context.CancelFunc
	tween  Tween
	began  time.Time
	now    func() time.Time
}

// New creates a new animation engine.
func New(config Config, render func(Frame)) *Engine {
	if config.FrameInterval <= 0 {
		config.FrameInterval = DefaultConfig().FrameInterval
	}
	if config.RestScale <= 0 {
		config.RestScale = 1
	}
	return &Engine{
		config: config,
		render: render,
		now:    time.Now,
	}
}

// Start begins rendering frames until ctx ends or Stop is called. The circle
// starts at rest.
func (engine *Engine) Start(ctx context.Context) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	engine.cancel = cancel
	now := engine.now()
	engine.began = now
	engine.tween = Tween{From: engine.config.RestScale, To: engine.config.RestScale, Start: now}
	engine.mu.Unlock()

	go engine.run(runCtx)
}

// SetTarget eases the circle from its current scale to target over duration.
func (engine *Engine) SetTarget(target float32, duration time.Duration) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	now := engine.now()
	engine.tween = Tween{
		From:     engine.tween.At(now),
		To:       target,
		Start:    now,
		Duration: duration,
	}
}

// Freeze holds the circle at its current scale.
func (engine *Engine) Freeze() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	now := engine.now()
	current := engine.tween.At(now)
	engine.tween = Tween{From: current, To: current, Start: now}
}

// Stop terminates any active animation.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

// Frame computes the frame for the current instant.
func (engine *Engine) Frame() Frame {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.frameLocked(engine.now())
}

func (engine *Engine) frameLocked(now time.Time) Frame {
	return Frame{
		CircleScale: engine.tween.At(now),
		IconScale:   Pulse(now.Sub(engine.began), engine.config.PulsePeriod, engine.config.PulseMin, engine.config.PulseMax),
	}
}

func (engine *Engine) run(ctx context.Context) {
	ticker := time.NewTicker(engine.config.FrameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if engine.render != nil {
				engine.render(engine.Frame())
			}
		}
	}
}
