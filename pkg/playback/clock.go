package playback

import (
	"sync"
	"time"
)

// Timer is a handle on a recurring callback.
type Timer interface {
	// Stop cancels future calls. It is safe to call more than once.
	Stop()
}

// Clock schedules recurring callbacks.
type Clock interface {
	Every(d time.Duration, fn func()) Timer
}

// SystemClock runs callbacks from a time.Ticker on its own goroutine.
type SystemClock struct{}

// Every calls fn every d until the returned Timer is stopped.
func (SystemClock) Every(d time.Duration, fn func()) Timer {
	t := &tickerTimer{
		ticker: time.NewTicker(d),
		stop:   make(chan struct{}),
	}
	go func() {
		for {
			select {
			case <-t.stop:
				return
			case <-t.ticker.C:
				fn()
			}
		}
	}()
	return t
}

type tickerTimer struct {
	ticker *time.Ticker
	stop   chan struct{}
	once   sync.Once
}

func (t *tickerTimer) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.stop)
	})
}

// ManualClock fires callbacks only when Advance is called.
type ManualClock struct {
	mu     sync.Mutex
	nextID int
	timers map[int]func()
	order  []int
}

// NewManualClock returns a ManualClock with no timers.
func NewManualClock() *ManualClock {
	return &ManualClock{timers: make(map[int]func())}
}

// Every registers fn. The duration is ignored.
func (c *ManualClock) Every(_ time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	id := c.nextID
	c.timers[id] = fn
	c.order = append(c.order, id)
	return &manualTimer{clock: c, id: id}
}

// Advance fires every active timer once, in registration order, and returns
// how many fired. Callbacks run on the caller's goroutine.
func (c *ManualClock) Advance() int {
	c.mu.Lock()
	fns := make([]func(), 0, len(c.order))
	for _, id := range c.order {
		fns = append(fns, c.timers[id])
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// AdvanceN calls Advance n times.
func (c *ManualClock) AdvanceN(n int) {
	for i := 0; i < n; i++ {
		c.Advance()
	}
}

// Active is the number of timers not yet stopped.
func (c *ManualClock) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

func (c *ManualClock) stop(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.timers[id]; !ok {
		return
	}
	delete(c.timers, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

type manualTimer struct {
	clock *ManualClock
	id    int
}

func (t *manualTimer) Stop() { t.clock.stop(t.id) }
