package domain

import (
	"fmt"
	"strings"
)

// Algorithm names a search strategy.
type Algorithm string

const (
	AlgorithmBFS   Algorithm = "bfs"
	AlgorithmDFS   Algorithm = "dfs"
	AlgorithmAStar Algorithm = "astar"
)

// Algorithms lists the supported strategies in display order.
var Algorithms = []Algorithm{AlgorithmBFS, AlgorithmDFS, AlgorithmAStar}

// ParseAlgorithm accepts a case-insensitive algorithm name.
// "a*" and "a_star" are accepted as aliases of astar.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return AlgorithmBFS, nil
	case "dfs":
		return AlgorithmDFS, nil
	case "astar", "a*", "a_star":
		return AlgorithmAStar, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Valid reports whether a is one of the supported strategies.
func (a Algorithm) Valid() bool {
	switch a {
	case AlgorithmBFS, AlgorithmDFS, AlgorithmAStar:
		return true
	}
	return false
}

// FrontierName is the word used in narration for the structure the algorithm drives.
func (a Algorithm) FrontierName() string {
	switch a {
	case AlgorithmDFS:
		return "stack"
	case AlgorithmAStar:
		return "priority queue"
	default:
		return "queue"
	}
}

func (a Algorithm) String() string {
	return string(a)
}
