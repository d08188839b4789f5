package trace

import (
	"github.com/aretw0/frontier/pkg/domain"
	"github.com/aretw0/frontier/pkg/maze"
)

// queue is the BFS frontier. Nodes are marked visited when enqueued.
type queue struct {
	list    []domain.FrontierItem
	visited map[string]bool
}

func newQueue() *queue {
	return &queue{visited: make(map[string]bool)}
}

func (q *queue) seed(node string) {
	q.visited[node] = true
	q.list = append(q.list, domain.FrontierItem{Node: node})
}

func (q *queue) take(node string) domain.FrontierItem {
	for i, it := range q.list {
		if it.Node == node {
			q.list = remove(q.list, i)
			return it
		}
	}
	return domain.FrontierItem{Node: node}
}

func (q *queue) expand(_ domain.FrontierItem, edges []maze.Edge) []domain.FrontierItem {
	var added []domain.FrontierItem
	for _, e := range edges {
		if q.visited[e.To] {
			continue
		}
		q.visited[e.To] = true
		it := domain.FrontierItem{Node: e.To}
		q.list = append(q.list, it)
		added = append(added, it)
	}
	return added
}

func (q *queue) items() []domain.FrontierItem { return q.list }

// stack is the DFS frontier, stored bottom first. Neighbors are pushed in
// reverse so the first declared neighbor ends on top.
type stack struct {
	list    []domain.FrontierItem
	visited map[string]bool
}

func newStack() *stack {
	return &stack{visited: make(map[string]bool)}
}

func (s *stack) seed(node string) {
	s.visited[node] = true
	s.list = append(s.list, domain.FrontierItem{Node: node})
}

func (s *stack) take(node string) domain.FrontierItem {
	for i := len(s.list) - 1; i >= 0; i-- {
		if s.list[i].Node == node {
			it := s.list[i]
			s.list = remove(s.list, i)
			return it
		}
	}
	return domain.FrontierItem{Node: node}
}

func (s *stack) expand(_ domain.FrontierItem, edges []maze.Edge) []domain.FrontierItem {
	var added []domain.FrontierItem
	for i := len(edges) - 1; i >= 0; i-- {
		to := edges[i].To
		if s.visited[to] {
			continue
		}
		s.visited[to] = true
		it := domain.FrontierItem{Node: to}
		s.list = append(s.list, it)
		added = append(added, it)
	}
	return added
}

func (s *stack) items() []domain.FrontierItem { return s.list }

// priorityQueue is the A* frontier, kept sorted by f with ties in insertion
// order. Nodes are marked visited when popped and re-inserted whenever a
// cheaper g is found, so a node may appear more than once.
type priorityQueue struct {
	graph   Graph
	list    []domain.FrontierItem
	g       map[string]float64
	visited map[string]bool
}

func newPriorityQueue(g Graph) *priorityQueue {
	return &priorityQueue{
		graph:   g,
		g:       make(map[string]float64),
		visited: make(map[string]bool),
	}
}

func (pq *priorityQueue) heuristic(node string) float64 {
	if pq.graph == nil {
		return 0
	}
	return pq.graph.Heuristic(node)
}

func (pq *priorityQueue) seed(node string) {
	h := pq.heuristic(node)
	pq.g[node] = 0
	pq.insert(domain.FrontierItem{Node: node, G: 0, H: h, F: h})
}

func (pq *priorityQueue) take(node string) domain.FrontierItem {
	pq.visited[node] = true
	for i, it := range pq.list {
		if it.Node == node {
			pq.list = remove(pq.list, i)
			return it
		}
	}
	// Not in the frontier: cost it from the best g seen so far.
	g := pq.g[node]
	h := pq.heuristic(node)
	return domain.FrontierItem{Node: node, G: g, H: h, F: g + h}
}

func (pq *priorityQueue) expand(from domain.FrontierItem, edges []maze.Edge) []domain.FrontierItem {
	var added []domain.FrontierItem
	for _, e := range edges {
		if pq.visited[e.To] {
			continue
		}
		tentative := from.G + e.Weight
		if best, ok := pq.g[e.To]; ok && tentative >= best {
			continue
		}
		pq.g[e.To] = tentative
		h := pq.heuristic(e.To)
		it := domain.FrontierItem{Node: e.To, G: tentative, H: h, F: tentative + h}
		pq.insert(it)
		added = append(added, it)
	}
	return added
}

// insert places it after every item with f <= it.F.
func (pq *priorityQueue) insert(it domain.FrontierItem) {
	i := len(pq.list)
	for j, other := range pq.list {
		if other.F > it.F {
			i = j
			break
		}
	}
	pq.list = append(pq.list, domain.FrontierItem{})
	copy(pq.list[i+1:], pq.list[i:])
	pq.list[i] = it
}

func (pq *priorityQueue) items() []domain.FrontierItem { return pq.list }

func remove(list []domain.FrontierItem, i int) []domain.FrontierItem {
	return append(list[:i:i], list[i+1:]...)
}
