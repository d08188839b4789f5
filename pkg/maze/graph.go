package maze

// DefaultWeight is used for edges declared without a positive weight.
const DefaultWeight = 1.0

// Edge is a directed, weighted link to a neighbor.
type Edge struct {
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// Graph is an adjacency list with ordered neighbors and a heuristic table.
// A Graph is read-only once built and safe for concurrent use.
type Graph struct {
	order     []string
	adj       map[string][]Edge
	heuristic map[string]float64
}

// Neighbors returns the outgoing edges of node in declaration order.
// An unknown node has no neighbors.
func (g *Graph) Neighbors(node string) []Edge {
	if g == nil {
		return nil
	}
	edges := g.adj[node]
	if len(edges) == 0 {
		return nil
	}
	return append([]Edge(nil), edges...)
}

// Heuristic returns the estimate for node, or 0 when none was declared.
func (g *Graph) Heuristic(node string) float64 {
	if g == nil {
		return 0
	}
	return g.heuristic[node]
}

// HasHeuristic reports whether an estimate was declared for node.
func (g *Graph) HasHeuristic(node string) bool {
	if g == nil {
		return false
	}
	_, ok := g.heuristic[node]
	return ok
}

// Weight returns the weight of the edge from -> to.
func (g *Graph) Weight(from, to string) (float64, bool) {
	for _, e := range g.Neighbors(from) {
		if e.To == to {
			return e.Weight, true
		}
	}
	return 0, false
}

// Nodes lists every node that has an adjacency entry, in declaration order.
func (g *Graph) Nodes() []string {
	if g == nil {
		return nil
	}
	return append([]string(nil), g.order...)
}

// Has reports whether node has an adjacency entry.
func (g *Graph) Has(node string) bool {
	if g == nil {
		return false
	}
	_, ok := g.adj[node]
	return ok
}

// Len is the number of nodes with an adjacency entry.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.order)
}

// Builder assembles a Graph.
type Builder struct {
	order     []string
	adj       map[string][]Edge
	heuristic map[string]float64
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		adj:       make(map[string][]Edge),
		heuristic: make(map[string]float64),
	}
}

// AddNode declares node with no edges. Declaring it again is a no-op.
func (b *Builder) AddNode(node string) *Builder {
	if _, ok := b.adj[node]; !ok {
		b.adj[node] = nil
		b.order = append(b.order, node)
	}
	return b
}

// AddEdge appends a directed edge. A non-positive weight becomes DefaultWeight.
// Adding the same edge twice updates its weight in place.
func (b *Builder) AddEdge(from, to string, weight float64) *Builder {
	if weight <= 0 {
		weight = DefaultWeight
	}
	b.AddNode(from)
	edges := b.adj[from]
	for i := range edges {
		if edges[i].To == to {
			edges[i].Weight = weight
			return b
		}
	}
	b.adj[from] = append(edges, Edge{To: to, Weight: weight})
	return b
}

// SetHeuristic records the estimate for node. Negative values are stored as 0.
func (b *Builder) SetHeuristic(node string, h float64) *Builder {
	if h < 0 {
		h = 0
	}
	b.heuristic[node] = h
	return b
}

// Build returns an independent Graph. The Builder can keep being used.
func (b *Builder) Build() *Graph {
	g := &Graph{
		order:     append([]string(nil), b.order...),
		adj:       make(map[string][]Edge, len(b.adj)),
		heuristic: make(map[string]float64, len(b.heuristic)),
	}
	for k, v := range b.adj {
		g.adj[k] = append([]Edge(nil), v...)
	}
	for k, v := range b.heuristic {
		g.heuristic[k] = v
	}
	return g
}
