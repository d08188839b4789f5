package solver

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/aretw0/frontier/pkg/domain"
	"github.com/aretw0/frontier/pkg/maze"
)

// Local solves requests against a single graph.
type Local struct {
	graph *maze.Graph
}

// NewLocal returns a solver for g.
func NewLocal(g *maze.Graph) *Local {
	return &Local{graph: g}
}

// Solve implements ports.Solver.
func (l *Local) Solve(ctx context.Context, req domain.SolveRequest) (domain.SolveResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.SolveResult{}, err
	}
	if !l.graph.Has(req.Start) {
		return domain.SolveResult{}, fmt.Errorf("%w: start %q", domain.ErrUnknownNode, req.Start)
	}
	if !l.graph.Has(req.Goal) {
		return domain.SolveResult{}, fmt.Errorf("%w: goal %q", domain.ErrUnknownNode, req.Goal)
	}

	switch req.Algorithm {
	case domain.AlgorithmBFS:
		return l.bfs(req.Start, req.Goal), nil
	case domain.AlgorithmDFS:
		return l.dfs(req.Start, req.Goal), nil
	case domain.AlgorithmAStar:
		return l.astar(req.Start, req.Goal), nil
	}
	return domain.SolveResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownAlgorithm, req.Algorithm)
}

type entry struct {
	node string
	path []string
}

func extend(path []string, node string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = node
	return out
}

func (l *Local) bfs(start, goal string) domain.SolveResult {
	queue := []entry{{node: start, path: []string{start}}}
	visited := map[string]bool{start: true}
	explored := []string{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.node == goal {
			return domain.SolveResult{Path: cur.path, Explored: explored}
		}
		for _, e := range l.graph.Neighbors(cur.node) {
			if visited[e.To] {
				continue
			}
			visited[e.To] = true
			explored = append(explored, e.To)
			queue = append(queue, entry{node: e.To, path: extend(cur.path, e.To)})
		}
	}
	return domain.SolveResult{Path: []string{}, Explored: explored}
}

func (l *Local) dfs(start, goal string) domain.SolveResult {
	stack := []entry{{node: start, path: []string{start}}}
	visited := map[string]bool{start: true}
	explored := []string{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.node == goal {
			return domain.SolveResult{Path: cur.path, Explored: explored}
		}
		edges := l.graph.Neighbors(cur.node)
		for i := len(edges) - 1; i >= 0; i-- {
			to := edges[i].To
			if visited[to] {
				continue
			}
			visited[to] = true
			explored = append(explored, to)
			stack = append(stack, entry{node: to, path: extend(cur.path, to)})
		}
	}
	return domain.SolveResult{Path: []string{}, Explored: explored}
}

func (l *Local) astar(start, goal string) domain.SolveResult {
	open := &openSet{}
	heap.Init(open)
	heap.Push(open, &item{node: start, g: 0, f: l.graph.Heuristic(start), path: []string{start}})

	closed := make(map[string]bool)
	seen := map[string]bool{start: true}
	explored := []string{start}

	for open.Len() > 0 {
		cur := heap.Pop(open).(*item)
		if cur.node == goal {
			return domain.SolveResult{Path: cur.path, Explored: explored}
		}
		if closed[cur.node] {
			continue
		}
		closed[cur.node] = true

		for _, e := range l.graph.Neighbors(cur.node) {
			if closed[e.To] {
				continue
			}
			if !seen[e.To] {
				seen[e.To] = true
				explored = append(explored, e.To)
			}
			g := cur.g + e.Weight
			heap.Push(open, &item{
				node: e.To,
				g:    g,
				f:    g + l.graph.Heuristic(e.To),
				path: extend(cur.path, e.To),
			})
		}
	}
	return domain.SolveResult{Path: []string{}, Explored: explored}
}

type item struct {
	node  string
	g, f  float64
	path  []string
	index int
}

// openSet orders by f, then g, then node id.
type openSet []*item

func (q openSet) Len() int { return len(q) }
func (q openSet) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].g != q[j].g {
		return q[i].g < q[j].g
	}
	return q[i].node < q[j].node
}
func (q openSet) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *openSet) Push(x any) {
	it := x.(*item)
	it.index = len(*q)
	*q = append(*q, it)
}

func (q *openSet) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return it
}
