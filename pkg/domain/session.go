package domain

import "time"

// PlaybackStatus is the lifecycle of a playback.
type PlaybackStatus string

const (
	StatusIdle     PlaybackStatus = "idle"
	StatusRunning  PlaybackStatus = "running"
	StatusComplete PlaybackStatus = "complete"
)

// Session is a named search run.
type Session struct {
	ID        string         `json:"id"`
	Maze      string         `json:"maze,omitempty"`
	Algorithm Algorithm      `json:"algorithm,omitempty"`
	Start     string         `json:"start,omitempty"`
	Goal      string         `json:"goal,omitempty"`
	Trace     *Trace         `json:"trace,omitempty"`
	Status    PlaybackStatus `json:"status"`
	Error     string         `json:"error,omitempty"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewSession creates an idle session with no trace.
func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		Status:    StatusIdle,
		UpdatedAt: time.Now(),
	}
}

// Clear drops the trace and returns the session to idle.
func (s *Session) Clear() {
	s.Trace = nil
	s.Status = StatusIdle
	s.Error = ""
	s.UpdatedAt = time.Now()
}

// Request returns the solve request the session was last solved with.
func (s *Session) Request() SolveRequest {
	return SolveRequest{Algorithm: s.Algorithm, Start: s.Start, Goal: s.Goal}
}

// Clone returns a deep copy.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	if s.Trace != nil {
		t := s.Trace.Clone()
		out.Trace = &t
	}
	return &out
}
