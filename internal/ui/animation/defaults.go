package animation

import "time"

// DefaultConfig returns timings matching the session view design.
func DefaultConfig() Config {
	return Config{
		FrameInterval: 33 * time.Millisecond,
		PulsePeriod:   2 * time.Second,
		PulseMin:      0.92,
		PulseMax:      1.0,
		RestScale:     1.0,
	}
}
