package domain

// StepKind classifies a narrated action.
type StepKind string

const (
	StepInit    StepKind = "init"
	StepPop     StepKind = "pop"
	StepCost    StepKind = "cost"
	StepExpand  StepKind = "expand"
	StepGoal    StepKind = "goal"
	StepSummary StepKind = "summary"
	StepMove    StepKind = "move"
)

// Step is one narrated action of a search.
// Snapshot holds the frontier tokens after the action: queue front first,
// stack bottom first, priority queue lowest f first.
type Step struct {
	Tick      int      `json:"tick"`
	Kind      StepKind `json:"kind"`
	Node      string   `json:"node,omitempty"`
	Narration string   `json:"narration"`
	Snapshot  []string `json:"snapshot"`
}

// Trace is the reconstructed execution of a search.
type Trace struct {
	Algorithm Algorithm `json:"algorithm"`
	Start     string    `json:"start"`
	Goal      string    `json:"goal"`
	Explored  []string  `json:"explored"`
	Path      []string  `json:"path"`
	Steps     []Step    `json:"steps"`
}

// Ticks is the number of playback ticks the trace needs: one per explored node
// and one per path node.
func (t Trace) Ticks() int {
	return len(t.Explored) + len(t.Path)
}

// StepsAt returns the steps tagged with tick, in order.
func (t Trace) StepsAt(tick int) []Step {
	var out []Step
	for _, s := range t.Steps {
		if s.Tick == tick {
			out = append(out, s)
		}
	}
	return out
}

// Narration flattens the trace into its narration lines.
func (t Trace) Narration() []string {
	lines := make([]string, 0, len(t.Steps))
	for _, s := range t.Steps {
		lines = append(lines, s.Narration)
	}
	return lines
}

// LastSnapshot returns the snapshot of the final step, or nil for an empty trace.
func (t Trace) LastSnapshot() []string {
	if len(t.Steps) == 0 {
		return nil
	}
	return t.Steps[len(t.Steps)-1].Snapshot
}

// Clone returns a deep copy.
func (t Trace) Clone() Trace {
	out := t
	out.Explored = cloneStrings(t.Explored)
	out.Path = cloneStrings(t.Path)
	out.Steps = make([]Step, len(t.Steps))
	for i, s := range t.Steps {
		s.Snapshot = cloneStrings(s.Snapshot)
		out.Steps[i] = s
	}
	return out
}

// cloneStrings copies src, keeping an empty list empty rather than nil.
func cloneStrings(src []string) []string {
	if src == nil {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
