package playback

import "time"

const (
	// MaxInterval is the tick interval at speed 0.
	MaxInterval = 1000 * time.Millisecond
	// MinInterval is the fastest tick interval allowed.
	MinInterval = 10 * time.Millisecond
)

// Interval converts a speed setting into a tick interval: MaxInterval minus
// speed milliseconds, never below MinInterval.
func Interval(speed int) time.Duration {
	d := MaxInterval - time.Duration(speed)*time.Millisecond
	if d < MinInterval {
		return MinInterval
	}
	if d > MaxInterval {
		return MaxInterval
	}
	return d
}
