package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/frontier/internal/logging"
	"github.com/aretw0/frontier/pkg/domain"
)

// SubscriberBuffer is how many instructions a client may fall behind before
// messages are dropped. A tick emits at most 4 instructions, so a client can
// lag 16 ticks.
const SubscriberBuffer = 64

// StreamManager handles active SSE connections
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan<- string]struct{} // SessionID -> Set of Channels
	logger      *slog.Logger
}

func NewStreamManager(logger *slog.Logger) *StreamManager {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &StreamManager{
		subscribers: make(map[string]map[chan<- string]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a buffered channel for the session. The returned
// func unregisters and closes it.
func (sm *StreamManager) Subscribe(sessionID string) (chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, SubscriberBuffer)
	if _, ok := sm.subscribers[sessionID]; !ok {
		sm.subscribers[sessionID] = make(map[chan<- string]struct{})
	}
	sm.subscribers[sessionID][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if subs, ok := sm.subscribers[sessionID]; ok {
			if _, ok := subs[ch]; !ok {
				return
			}
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(sm.subscribers, sessionID)
			}
		}
	}
}

// Subscribers returns how many clients listen on the session.
func (sm *StreamManager) Subscribers(sessionID string) int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.subscribers[sessionID])
}

// Broadcast sends msg to every subscriber of the session without blocking.
func (sm *StreamManager) Broadcast(sessionID string, msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch := range sm.subscribers[sessionID] {
		select {
		case ch <- msg:
		default:
			// Drop message if channel is full (slow client)
			sm.logger.Warn("SSE: Client buffer full, dropping message", "session_id", sessionID)
		}
	}
}

// StreamRenderer is a ports.Renderer that broadcasts every instruction as
// JSON to the SSE subscribers of one session.
type StreamRenderer struct {
	Streams   *StreamManager
	SessionID string
}

func (r *StreamRenderer) send(in domain.Instruction) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode instruction: %w", err)
	}
	r.Streams.Broadcast(r.SessionID, string(payload))
	return nil
}

func (r *StreamRenderer) HighlightNode(node, style string) error {
	return r.send(domain.Instruction{Type: domain.InstructionHighlightNode, Node: node, Style: style})
}

func (r *StreamRenderer) MoveToken(node string) error {
	return r.send(domain.Instruction{Type: domain.InstructionMoveToken, Node: node})
}

func (r *StreamRenderer) ShowNarration(lines []string) error {
	return r.send(domain.Instruction{Type: domain.InstructionShowNarration, Lines: lines})
}

func (r *StreamRenderer) ShowFrontier(tokens []string) error {
	return r.send(domain.Instruction{Type: domain.InstructionShowFrontier, Tokens: tokens})
}

func (r *StreamRenderer) ClearVisuals() error {
	return r.send(domain.Instruction{Type: domain.InstructionClearVisuals})
}

// pending counts buffered messages not yet consumed by the session's clients.
func (sm *StreamManager) pending(sessionID string) int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	n := 0
	for ch := range sm.subscribers[sessionID] {
		n += len(ch)
	}
	return n
}
