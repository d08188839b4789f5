package maze

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Grid markers used by maze files.
const (
	wallMarker = "99"
	openMarker = "0"
)

//go:embed default.yaml
var defaultMaze []byte

// Default returns the built-in classroom maze (A to B through 21 junctions).
func Default() *Maze {
	m, err := Parse(defaultMaze)
	if err != nil {
		panic(fmt.Sprintf("maze: built-in maze is invalid: %v", err))
	}
	return m
}

// Load reads a maze file. YAML and JSON are both accepted.
// The maze name defaults to the file name without extension.
func Load(path string) (*Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read maze file: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

// Parse decodes a maze document.
//
// Neighbors may be written as a mapping of weights ({B: 1, C: 2}), a mapping
// whose weights are left empty ({B, C}) or a plain list ([B, C]). Missing weights are 1.
// When start or goal are omitted, the first and last declared nodes are used.
func Parse(data []byte) (*Maze, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("invalid maze document: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("invalid maze document: empty")
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("invalid maze document: expected a mapping at line %d", doc.Line)
	}

	m := &Maze{Positions: make(map[string]Position)}
	b := NewBuilder()

	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]
		var err error
		switch key.Value {
		case "name":
			m.Name = value.Value
		case "start":
			m.Start = value.Value
		case "goal":
			m.Goal = value.Value
		case "graph":
			err = parseGraph(b, value)
		case "heuristic":
			err = parseHeuristic(b, value)
		case "grid":
			m.Grid, err = parseGrid(value)
		case "positions":
			err = parsePositions(m.Positions, value)
		}
		if err != nil {
			return nil, err
		}
	}

	m.Graph = b.Build()
	nodes := m.Graph.Nodes()
	if len(nodes) > 0 {
		if m.Start == "" {
			m.Start = nodes[0]
		}
		if m.Goal == "" {
			m.Goal = nodes[len(nodes)-1]
		}
	}
	return m, nil
}

func parseGraph(b *Builder, n *yaml.Node) error {
	if isNull(n) {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("graph: expected a mapping at line %d", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		from, neighbors := n.Content[i].Value, n.Content[i+1]
		b.AddNode(from)

		switch {
		case isNull(neighbors):
		case neighbors.Kind == yaml.MappingNode:
			for j := 0; j+1 < len(neighbors.Content); j += 2 {
				to, w := neighbors.Content[j].Value, neighbors.Content[j+1]
				weight := DefaultWeight
				if !isNull(w) {
					if err := w.Decode(&weight); err != nil {
						return fmt.Errorf("graph.%s.%s: invalid weight at line %d: %w", from, to, w.Line, err)
					}
				}
				b.AddEdge(from, to, weight)
			}
		case neighbors.Kind == yaml.SequenceNode:
			for _, to := range neighbors.Content {
				b.AddEdge(from, to.Value, DefaultWeight)
			}
		default:
			return fmt.Errorf("graph.%s: expected a mapping or a list at line %d", from, neighbors.Line)
		}
	}
	return nil
}

func parseHeuristic(b *Builder, n *yaml.Node) error {
	if isNull(n) {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("heuristic: expected a mapping at line %d", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		node, v := n.Content[i].Value, n.Content[i+1]
		var h float64
		if err := v.Decode(&h); err != nil {
			return fmt.Errorf("heuristic.%s: %w", node, err)
		}
		b.SetHeuristic(node, h)
	}
	return nil
}

func parseGrid(n *yaml.Node) (Grid, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("grid: expected a list of rows at line %d", n.Line)
	}
	grid := make(Grid, 0, len(n.Content))
	for r, row := range n.Content {
		if row.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("grid row %d: expected a list at line %d", r, row.Line)
		}
		cells := make([]Cell, 0, len(row.Content))
		for _, c := range row.Content {
			switch c.Value {
			case wallMarker:
				cells = append(cells, Cell{Kind: CellWall})
			case openMarker, "":
				cells = append(cells, Cell{Kind: CellOpen})
			default:
				cells = append(cells, Cell{Kind: CellNode, Node: c.Value})
			}
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

func parsePositions(dst map[string]Position, n *yaml.Node) error {
	if isNull(n) {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("positions: expected a mapping at line %d", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		var p Position
		if err := n.Content[i+1].Decode(&p); err != nil {
			return fmt.Errorf("positions.%s: %w", n.Content[i].Value, err)
		}
		dst[n.Content[i].Value] = p
	}
	return nil
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}
