package memory

import (
	"sync"

	"github.com/aretw0/frontier/pkg/domain"
)

// Recorder implements ports.Renderer by keeping every instruction it receives.
// Safe for concurrent use.
type Recorder struct {
	mu           sync.Mutex
	instructions []domain.Instruction

	// FailOn makes the renderer return Err for that instruction type.
	FailOn domain.InstructionType
	Err    error
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(in domain.Instruction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailOn != "" && r.FailOn == in.Type {
		return r.Err
	}
	r.instructions = append(r.instructions, in)
	return nil
}

func (r *Recorder) HighlightNode(node, style string) error {
	return r.record(domain.Instruction{Type: domain.InstructionHighlightNode, Node: node, Style: style})
}

func (r *Recorder) MoveToken(node string) error {
	return r.record(domain.Instruction{Type: domain.InstructionMoveToken, Node: node})
}

func (r *Recorder) ShowNarration(lines []string) error {
	return r.record(domain.Instruction{Type: domain.InstructionShowNarration, Lines: append([]string(nil), lines...)})
}

func (r *Recorder) ShowFrontier(tokens []string) error {
	return r.record(domain.Instruction{Type: domain.InstructionShowFrontier, Tokens: append([]string(nil), tokens...)})
}

func (r *Recorder) ClearVisuals() error {
	return r.record(domain.Instruction{Type: domain.InstructionClearVisuals})
}

// Instructions returns a copy of everything recorded so far.
func (r *Recorder) Instructions() []domain.Instruction {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Instruction(nil), r.instructions...)
}

// Count returns how many instructions of type t were recorded.
func (r *Recorder) Count(t domain.InstructionType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, in := range r.instructions {
		if in.Type == t {
			n++
		}
	}
	return n
}

// Reset forgets all recorded instructions.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instructions = nil
}
