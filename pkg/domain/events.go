package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSolve    EventType = "solve"
	EventTick     EventType = "tick"
	EventComplete EventType = "complete"
	EventReset    EventType = "reset"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id,omitempty"`
}

// SolveEvent reports a finished solve call.
type SolveEvent struct {
	EventBase
	Algorithm Algorithm `json:"algorithm"`
	Explored  int       `json:"explored"`
	PathLen   int       `json:"path_len"`
	Steps     int       `json:"steps"`
	IsError   bool      `json:"is_error,omitempty"`
}

// Phase tells whether a tick replays exploration or walks the path.
type Phase string

const (
	PhaseExplore Phase = "explore"
	PhasePath    Phase = "path"
)

// TickEvent reports one rendered playback tick.
type TickEvent struct {
	EventBase
	Tick  int    `json:"tick"`
	Phase Phase  `json:"phase"`
	Node  string `json:"node"`
}

// PlaybackEvent reports the end of a playback, by completion, abort or reset.
type PlaybackEvent struct {
	EventBase
	Ticks int   `json:"ticks"`
	Err   error `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
// Playback hooks run on the timer goroutine and must not call back into the scheduler.
type LifecycleHooks struct {
	OnSolve    func(context.Context, *SolveEvent)
	OnTick     func(*TickEvent)
	OnComplete func(*PlaybackEvent)
	OnReset    func(*PlaybackEvent)
	OnError    func(error)
}

// MergeHooks returns hooks that call every non-nil callback of each set in order.
func MergeHooks(sets ...LifecycleHooks) LifecycleHooks {
	var out LifecycleHooks
	for _, h := range sets {
		h := h
		if h.OnSolve != nil {
			prev := out.OnSolve
			out.OnSolve = func(ctx context.Context, e *SolveEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnSolve(ctx, e)
			}
		}
		if h.OnTick != nil {
			prev := out.OnTick
			out.OnTick = func(e *TickEvent) {
				if prev != nil {
					prev(e)
				}
				h.OnTick(e)
			}
		}
		if h.OnComplete != nil {
			prev := out.OnComplete
			out.OnComplete = func(e *PlaybackEvent) {
				if prev != nil {
					prev(e)
				}
				h.OnComplete(e)
			}
		}
		if h.OnReset != nil {
			prev := out.OnReset
			out.OnReset = func(e *PlaybackEvent) {
				if prev != nil {
					prev(e)
				}
				h.OnReset(e)
			}
		}
		if h.OnError != nil {
			prev := out.OnError
			out.OnError = func(err error) {
				if prev != nil {
					prev(err)
				}
				h.OnError(err)
			}
		}
	}
	return out
}
