package playback

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/frontier/internal/logging"
	"github.com/aretw0/frontier/pkg/domain"
	"github.com/aretw0/frontier/pkg/ports"
)

// Scheduler plays one trace at a time on a Renderer.
// All methods are safe for concurrent use. Renderer calls and hooks run with
// the scheduler lock held and must not call back into the Scheduler.
type Scheduler struct {
	renderer  ports.Renderer
	clock     Clock
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	sessionID string

	mu     sync.Mutex
	status domain.PlaybackStatus
	tick   int
	gen    uint64
	timer  Timer
	trace  domain.Trace
	last   []string
	err    error
	done   chan struct{}
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces the SystemClock.
func WithClock(c Clock) Option {
	return func(s *Scheduler) {
		s.clock = c
	}
}

// WithLifecycleHooks registers tick, completion, reset and error callbacks.
func WithLifecycleHooks(h domain.LifecycleHooks) Option {
	return func(s *Scheduler) {
		s.hooks = h
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = l
	}
}

// WithSessionID tags emitted events with a session.
func WithSessionID(id string) Option {
	return func(s *Scheduler) {
		s.sessionID = id
	}
}

// NewScheduler creates an idle Scheduler drawing on r.
func NewScheduler(r ports.Renderer, opts ...Option) *Scheduler {
	s := &Scheduler{
		renderer: r,
		clock:    SystemClock{},
		logger:   logging.NewNop(),
		status:   domain.StatusIdle,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins playing tr, one tick every interval.
// A running playback is reset first. A trace without steps completes at once
// without drawing anything.
func (s *Scheduler) Start(tr domain.Trace, interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == domain.StatusRunning {
		s.resetLocked()
	}
	s.stopLocked()
	s.tick = 0
	s.err = nil
	s.last = nil
	s.done = make(chan struct{})

	if len(tr.Steps) == 0 {
		s.status = domain.StatusComplete
		close(s.done)
		s.logger.Debug("Playback has nothing to play", "session_id", s.sessionID)
		return
	}

	if interval <= 0 {
		interval = MinInterval
	}
	s.trace = tr.Clone()
	s.status = domain.StatusRunning
	gen := s.gen
	s.timer = s.clock.Every(interval, func() { s.fire(gen) })

	s.logger.Debug("Playback started",
		"session_id", s.sessionID,
		"ticks", tr.Ticks(),
		"interval", interval,
	)
}

// Reset stops playback, returns to idle and clears the display.
// Resetting twice leaves the same state as resetting once.
func (s *Scheduler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// Status returns the playback status.
func (s *Scheduler) Status() domain.PlaybackStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Tick returns the index of the next tick to render.
func (s *Scheduler) Tick() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tick
}

// Err reports why the last playback was aborted, if it was.
func (s *Scheduler) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Done is closed when the current playback ends, whether it completed,
// aborted or was reset.
func (s *Scheduler) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// Wait blocks until the current playback ends or ctx is done.
func (s *Scheduler) Wait(ctx context.Context) error {
	select {
	case <-s.Done():
		return s.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// fire is the timer callback. Stale generations are ignored.
func (s *Scheduler) fire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || s.status != domain.StatusRunning {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.abortLocked(fmt.Errorf("%w: panic at tick %d: %v", domain.ErrPlaybackAborted, s.tick, r))
		}
	}()

	if s.tick >= s.trace.Ticks() {
		s.completeLocked()
		return
	}

	phase, node, err := s.renderLocked(s.tick)
	if err != nil {
		s.abortLocked(fmt.Errorf("%w: tick %d: %w", domain.ErrPlaybackAborted, s.tick, err))
		return
	}

	if s.hooks.OnTick != nil {
		s.hooks.OnTick(&domain.TickEvent{
			EventBase: s.event(domain.EventTick),
			Tick:      s.tick,
			Phase:     phase,
			Node:      node,
		})
	}
	s.tick++
}

func (s *Scheduler) renderLocked(t int) (domain.Phase, string, error) {
	explored := len(s.trace.Explored)

	if t < explored {
		node := s.trace.Explored[t]
		if err := s.renderer.HighlightNode(node, domain.StyleExplored); err != nil {
			return "", node, err
		}
		steps := s.trace.StepsAt(t)
		lines := make([]string, 0, len(steps))
		for _, st := range steps {
			lines = append(lines, st.Narration)
		}
		if len(steps) > 0 {
			s.last = steps[len(steps)-1].Snapshot
		}
		if err := s.renderer.ShowNarration(lines); err != nil {
			return "", node, err
		}
		if err := s.renderer.ShowFrontier(s.last); err != nil {
			return "", node, err
		}
		return domain.PhaseExplore, node, nil
	}

	node := s.trace.Path[t-explored]
	if err := s.renderer.HighlightNode(node, domain.StylePath); err != nil {
		return "", node, err
	}
	if err := s.renderer.MoveToken(node); err != nil {
		return "", node, err
	}
	if s.last == nil {
		s.last = s.trace.LastSnapshot()
	}
	move := domain.Step{
		Tick:      t,
		Kind:      domain.StepMove,
		Node:      node,
		Narration: "Move robot to " + node,
		Snapshot:  s.last,
	}
	s.trace.Steps = append(s.trace.Steps, move)
	if err := s.renderer.ShowNarration([]string{move.Narration}); err != nil {
		return "", node, err
	}
	if err := s.renderer.ShowFrontier(s.last); err != nil {
		return "", node, err
	}
	return domain.PhasePath, node, nil
}

// stopLocked cancels the timer and invalidates callbacks already in flight.
func (s *Scheduler) stopLocked() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Scheduler) finishLocked() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

func (s *Scheduler) completeLocked() {
	s.stopLocked()
	s.status = domain.StatusComplete
	s.finishLocked()
	s.logger.Debug("Playback complete", "session_id", s.sessionID, "ticks", s.tick)
	if s.hooks.OnComplete != nil {
		s.hooks.OnComplete(&domain.PlaybackEvent{
			EventBase: s.event(domain.EventComplete),
			Ticks:     s.tick,
		})
	}
}

func (s *Scheduler) abortLocked(err error) {
	s.stopLocked()
	s.err = err
	s.status = domain.StatusComplete
	s.finishLocked()
	s.logger.Warn("Playback aborted", "session_id", s.sessionID, "error", err)
	if s.hooks.OnError != nil {
		s.hooks.OnError(err)
	}
	if s.hooks.OnComplete != nil {
		s.hooks.OnComplete(&domain.PlaybackEvent{
			EventBase: s.event(domain.EventComplete),
			Ticks:     s.tick,
			Err:       err,
		})
	}
}

func (s *Scheduler) resetLocked() {
	s.stopLocked()
	ticks := s.tick
	s.status = domain.StatusIdle
	s.tick = 0
	s.trace = domain.Trace{}
	s.last = nil
	s.err = nil
	s.finishLocked()

	if err := s.renderer.ClearVisuals(); err != nil {
		s.logger.Warn("Failed to clear visuals", "session_id", s.sessionID, "error", err)
	}
	if s.hooks.OnReset != nil {
		s.hooks.OnReset(&domain.PlaybackEvent{
			EventBase: s.event(domain.EventReset),
			Ticks:     ticks,
		})
	}
}

func (s *Scheduler) event(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: time.Now(), Type: t, SessionID: s.sessionID}
}
