package domain

// InstructionType is the kind of render command.
type InstructionType string

const (
	InstructionHighlightNode InstructionType = "highlight_node"
	InstructionMoveToken     InstructionType = "move_token"
	InstructionShowNarration InstructionType = "show_narration"
	InstructionShowFrontier  InstructionType = "show_frontier"
	InstructionClearVisuals  InstructionType = "clear_visuals"
)

// Highlight styles.
const (
	StyleExplored = "explored"
	StylePath     = "path"
)

// Instruction is a single render command, the wire form used by the SSE stream
// and the recorder used in tests.
type Instruction struct {
	Type   InstructionType `json:"type"`
	Node   string          `json:"node,omitempty"`
	Style  string          `json:"style,omitempty"`
	Lines  []string        `json:"lines,omitempty"`
	Tokens []string        `json:"tokens,omitempty"`
}
