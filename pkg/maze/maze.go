package maze

import (
	"errors"
	"fmt"
)

// CellKind classifies a grid cell.
type CellKind int

const (
	CellWall CellKind = iota
	CellOpen
	CellNode
)

// Cell is one square of the grid. Node is set for CellNode only.
type Cell struct {
	Kind CellKind `json:"kind"`
	Node string   `json:"node,omitempty"`
}

// Grid is the drawable layout of the maze, row by row.
type Grid [][]Cell

// Dims returns the number of rows and the width of the widest row.
func (g Grid) Dims() (rows, cols int) {
	for _, r := range g {
		if len(r) > cols {
			cols = len(r)
		}
	}
	return len(g), cols
}

// Locate finds the cell holding node.
func (g Grid) Locate(node string) (row, col int, ok bool) {
	for r, cells := range g {
		for c, cell := range cells {
			if cell.Kind == CellNode && cell.Node == node {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Position is a screen coordinate used by graphical front-ends.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Maze is a graph plus everything needed to draw it.
type Maze struct {
	Name      string              `json:"name"`
	Start     string              `json:"start"`
	Goal      string              `json:"goal"`
	Graph     *Graph              `json:"-"`
	Grid      Grid                `json:"grid"`
	Positions map[string]Position `json:"positions"`
}

// Validate reports structural problems: missing start or goal, neighbors
// without an adjacency entry and grid nodes unknown to the graph.
// All problems are joined into one error.
func (m *Maze) Validate() error {
	if m == nil || m.Graph == nil {
		return errors.New("maze has no graph")
	}
	var errs []error
	if m.Start == "" || !m.Graph.Has(m.Start) {
		errs = append(errs, fmt.Errorf("start %q is not a node", m.Start))
	}
	if m.Goal == "" || !m.Graph.Has(m.Goal) {
		errs = append(errs, fmt.Errorf("goal %q is not a node", m.Goal))
	}
	for _, n := range m.Graph.Nodes() {
		for _, e := range m.Graph.Neighbors(n) {
			if !m.Graph.Has(e.To) {
				errs = append(errs, fmt.Errorf("node %q links to undeclared node %q", n, e.To))
			}
		}
	}
	for _, row := range m.Grid {
		for _, cell := range row {
			if cell.Kind == CellNode && !m.Graph.Has(cell.Node) {
				errs = append(errs, fmt.Errorf("grid cell %q is not a node", cell.Node))
			}
		}
	}
	return errors.Join(errs...)
}

// Adjacency returns the graph as node -> neighbor -> weight for JSON clients.
// Go maps do not keep order; use Graph.Neighbors when order matters.
func (m *Maze) Adjacency() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, m.Graph.Len())
	for _, n := range m.Graph.Nodes() {
		edges := make(map[string]float64)
		for _, e := range m.Graph.Neighbors(n) {
			edges[e.To] = e.Weight
		}
		out[n] = edges
	}
	return out
}

// Heuristics returns the declared heuristic table.
func (m *Maze) Heuristics() map[string]float64 {
	out := make(map[string]float64)
	for _, n := range m.Graph.Nodes() {
		if m.Graph.HasHeuristic(n) {
			out[n] = m.Graph.Heuristic(n)
		}
	}
	return out
}

// Unreachable lists, in declaration order, the nodes no walk from Start reaches.
func (m *Maze) Unreachable() []string {
	seen := map[string]bool{m.Start: true}
	queue := []string{m.Start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, e := range m.Graph.Neighbors(n) {
			if !seen[e.To] {
				seen[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}

	var out []string
	for _, n := range m.Graph.Nodes() {
		if !seen[n] {
			out = append(out, n)
		}
	}
	return out
}
