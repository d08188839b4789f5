package playback

import (
	"github.com/aretw0/frontier/pkg/domain"
	"github.com/aretw0/frontier/pkg/ports"
)

// Replay drives a whole playback of tr on r without waiting between ticks
// and returns the abort error, if any.
func Replay(tr domain.Trace, r ports.Renderer, opts ...Option) error {
	clock := NewManualClock()
	s := NewScheduler(r, append(opts, WithClock(clock))...)
	s.Start(tr, MinInterval)
	for s.Status() == domain.StatusRunning {
		if clock.Advance() == 0 {
			break
		}
	}
	return s.Err()
}
