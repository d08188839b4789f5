package maze

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	b := NewBuilder().
		AddEdge("A", "C", 2).
		AddEdge("A", "B", 0).
		AddEdge("A", "C", 3).
		SetHeuristic("A", 4).
		SetHeuristic("B", -1)
	g := b.Build()

	// Later builder changes must not leak into a built graph.
	b.AddEdge("A", "D", 1)

	assert.Equal(t, []Edge{{To: "C", Weight: 3}, {To: "B", Weight: 1}}, g.Neighbors("A"))
	assert.Empty(t, g.Neighbors("Z"))
	assert.Equal(t, 4.0, g.Heuristic("A"))
	assert.Equal(t, 0.0, g.Heuristic("B"))
	assert.Equal(t, 0.0, g.Heuristic("unknown"))
	assert.True(t, g.HasHeuristic("B"))
	assert.False(t, g.HasHeuristic("C"))

	w, ok := g.Weight("A", "B")
	assert.True(t, ok)
	assert.Equal(t, 1.0, w)
	_, ok = g.Weight("B", "A")
	assert.False(t, ok)

	assert.Equal(t, []string{"A"}, g.Nodes())
	assert.True(t, g.Has("A"))
	assert.False(t, g.Has("C"), "a neighbor without its own entry is not a declared node")
}

func TestGraph_NeighborsReturnsCopy(t *testing.T) {
	g := NewBuilder().AddEdge("A", "B", 1).Build()
	n := g.Neighbors("A")
	n[0].To = "X"
	assert.Equal(t, "B", g.Neighbors("A")[0].To)
}

func TestGraph_NilIsEmpty(t *testing.T) {
	var g *Graph
	assert.Nil(t, g.Neighbors("A"))
	assert.Equal(t, 0.0, g.Heuristic("A"))
	assert.False(t, g.Has("A"))
	assert.Zero(t, g.Len())
}

func TestParse_PreservesNeighborOrder(t *testing.T) {
	doc := `
graph:
  A: {Z: 1, B: 2, M: 1}
  B: [M, A]
  M:
    A:
    Z: 0.5
  Z:
`
	m, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []Edge{{"Z", 1}, {"B", 2}, {"M", 1}}, m.Graph.Neighbors("A"))
	assert.Equal(t, []Edge{{"M", 1}, {"A", 1}}, m.Graph.Neighbors("B"))
	assert.Equal(t, []Edge{{"A", 1}, {"Z", 0.5}}, m.Graph.Neighbors("M"))
	assert.Empty(t, m.Graph.Neighbors("Z"))
	assert.Equal(t, []string{"A", "B", "M", "Z"}, m.Graph.Nodes())

	assert.Equal(t, "A", m.Start, "start defaults to the first node")
	assert.Equal(t, "Z", m.Goal, "goal defaults to the last node")
}

func TestParse_JSON(t *testing.T) {
	doc := `{"start": "A", "goal": "C", "graph": {"A": {"2": 1, "1": 1}, "1": {}, "2": {}, "C": {}}, "heuristic": {"A": 2}}`
	m, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []Edge{{"2", 1}, {"1", 1}}, m.Graph.Neighbors("A"))
	assert.Equal(t, 2.0, m.Graph.Heuristic("A"))
	assert.Equal(t, "C", m.Goal)
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"not a mapping":  `- a`,
		"bad weight":     "graph:\n  A: {B: heavy}\n",
		"bad neighbors":  "graph:\n  A: 3\n",
		"bad heuristic":  "heuristic:\n  A: far\n",
		"bad grid":       "grid: 3\n",
		"bad grid row":   "grid:\n  - 3\n",
		"bad positions":  "positions: [1]\n",
		"broken yaml":    "graph: {A: [",
		"empty document": "",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte("graph:\n  A: [B]\n  B: [A]\n"), 0644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", m.Name)
	assert.NoError(t, m.Validate())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	m := Default()

	assert.Equal(t, "classroom", m.Name)
	assert.Equal(t, "A", m.Start)
	assert.Equal(t, "B", m.Goal)
	assert.Equal(t, 23, m.Graph.Len())
	require.NoError(t, m.Validate())

	assert.Equal(t, []Edge{{"3", 1}, {"6", 1}, {"7", 1}}, m.Graph.Neighbors("5"))
	assert.Equal(t, []Edge{{"13", 1}, {"17", 1}, {"15", 1}}, m.Graph.Neighbors("14"))
	assert.Equal(t, 8.0, m.Graph.Heuristic("A"))
	assert.Equal(t, 0.0, m.Graph.Heuristic("B"))
	assert.Len(t, m.Heuristics(), 23)

	rows, cols := m.Grid.Dims()
	assert.Equal(t, 7, rows)
	assert.Equal(t, 12, cols)

	r, c, ok := m.Grid.Locate("A")
	require.True(t, ok)
	assert.Equal(t, 6, r)
	assert.Equal(t, 0, c)

	r, c, ok = m.Grid.Locate("B")
	require.True(t, ok)
	assert.Equal(t, 0, r)
	assert.Equal(t, 11, c)

	_, _, ok = m.Grid.Locate("nowhere")
	assert.False(t, ok)

	assert.Equal(t, Position{X: 275, Y: 420}, m.Positions["A"])
	assert.Equal(t, map[string]float64{"20": 1, "B": 1}, m.Adjacency()["21"])
}

func TestValidate(t *testing.T) {
	m, err := Parse([]byte("start: A\ngoal: Q\ngraph:\n  A: [B]\ngrid:\n  - [A, 0, 99, X]\n"))
	require.NoError(t, err)

	err = m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `goal "Q" is not a node`)
	assert.Contains(t, err.Error(), `node "A" links to undeclared node "B"`)
	assert.Contains(t, err.Error(), `grid cell "X" is not a node`)

	var nilMaze *Maze
	assert.Error(t, nilMaze.Validate())
}

func TestUnreachable(t *testing.T) {
	g := NewBuilder().
		AddEdge("S", "A", 1).
		AddEdge("A", "G", 1).
		AddEdge("X", "S", 1).
		AddNode("G").
		AddNode("Y").
		Build()
	m := &Maze{Start: "S", Goal: "G", Graph: g}
	assert.Equal(t, []string{"X", "Y"}, m.Unreachable())

	assert.Empty(t, Default().Unreachable())
}
