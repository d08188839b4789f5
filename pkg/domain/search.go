package domain

import "strconv"

// SolveRequest is what a solver receives.
// Empty Start or Goal are filled with the maze defaults by the engine.
type SolveRequest struct {
	Algorithm Algorithm `json:"algorithm" mapstructure:"algorithm"`
	Start     string    `json:"start" mapstructure:"start"`
	Goal      string    `json:"goal" mapstructure:"goal"`
}

// SolveResult is what a solver returns.
// Explored is ordered by first discovery. Path is empty when the goal is unreachable.
type SolveResult struct {
	Path     []string `json:"path"`
	Explored []string `json:"explored"`
}

// FrontierItem is one entry of the frontier.
// G, H and F are only meaningful for astar.
type FrontierItem struct {
	Node string  `json:"node"`
	G    float64 `json:"g"`
	H    float64 `json:"h"`
	F    float64 `json:"f"`
}

// Token renders the item as it appears in a snapshot: "B" for bfs and dfs,
// "B(f=2)" for astar.
func (i FrontierItem) Token(a Algorithm) string {
	if a != AlgorithmAStar {
		return i.Node
	}
	return i.Node + "(f=" + FormatCost(i.F) + ")"
}

// FormatCost prints a cost without trailing zeros: 2, 2.5, 0.25.
func FormatCost(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
