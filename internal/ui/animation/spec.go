package animation

import (
	"math"
	"time"
)

// Frame is one rendered animation state.
type Frame struct {
	// CircleScale sizes the breathing circle relative to its rest size.
	CircleScale float32
	// IconScale sizes the session icon for the pulse effect.
	IconScale float32
}

// Tween interpolates a scale between two values over a duration.
type Tween struct {
	From     float32
	To       float32
	Start    time.Time
	Duration time.Duration
}

// At returns the eased value at now.
func (tween Tween) At(now time.Time) float32 {
	if tween.Duration <= 0 {
		return tween.To
	}
	if !now.After(tween.Start) {
		return tween.From
	}
	progress := float64(now.Sub(tween.Start)) / float64(tween.Duration)
	if progress >= 1 {
		return tween.To
	}
	eased := easeInOut(progress)
	return tween.From + (tween.To-tween.From)*float32(eased)
}

// Done reports whether the tween has reached its target at now.
func (tween Tween) Done(now time.Time) bool {
	return tween.Duration <= 0 || !now.Before(tween.Start.Add(tween.Duration))
}

// Pulse returns an icon scale oscillating between min and max once per period.
func Pulse(elapsed, period time.Duration, min, max float32) float32 {
	if period <= 0 {
		return max
	}
	angle := 2 * math.Pi * float64(elapsed%period) / float64(period)
	wave := (1 - math.Cos(angle)) / 2
	return min + (max-min)*float32(wave)
}

func easeInOut(progress float64) float64 {
	return (1 - math.Cos(math.Pi*progress)) / 2
}
