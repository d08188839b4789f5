package trace

import (
	"fmt"
	"strings"

	"github.com/aretw0/frontier/pkg/domain"
	"github.com/aretw0/frontier/pkg/maze"
)

// Graph is the read-only view of a maze the simulator needs.
type Graph interface {
	Neighbors(node string) []maze.Edge
	Heuristic(node string) float64
}

// Request is a solver answer plus the question it answers.
type Request struct {
	Algorithm domain.Algorithm
	Start     string
	Goal      string
	Explored  []string
	Path      []string
}

// frontier is the data structure a search drives.
type frontier interface {
	// seed places the start node.
	seed(node string)
	// take removes node, preferring the end the discipline pops from.
	take(node string) domain.FrontierItem
	// expand inserts the neighbors of from and reports the items added.
	expand(from domain.FrontierItem, edges []maze.Edge) []domain.FrontierItem
	items() []domain.FrontierItem
}

// Simulate reconstructs the trace of req over g.
func Simulate(g Graph, req Request) domain.Trace {
	alg := req.Algorithm
	if !alg.Valid() {
		alg = domain.AlgorithmBFS
	}

	s := &simulator{
		alg:      alg,
		graph:    g,
		frontier: newFrontier(alg, g),
	}

	start := req.Start
	if len(req.Explored) > 0 {
		start = req.Explored[0]
	}
	s.initialize(start)

	last := 0
	for i, node := range req.Explored {
		last = i
		s.tick = i

		item := s.frontier.take(node)
		if i > 0 {
			s.record(domain.StepPop, node, s.popLine(item))
		}

		if node == req.Goal {
			s.record(domain.StepGoal, node, fmt.Sprintf("Goal %s reached", node))
			break
		}

		added := s.frontier.expand(item, neighbors(g, node))
		if len(added) == 0 {
			continue
		}
		if alg == domain.AlgorithmAStar {
			for _, a := range added {
				s.record(domain.StepCost, a.Node, costLine(a))
			}
		}
		s.record(domain.StepExpand, node, s.expandLine(node, added))
	}

	s.tick = last
	s.record(domain.StepSummary, "", pathLine(req.Path))
	s.record(domain.StepSummary, "", fmt.Sprintf("Path length: %d nodes", len(req.Path)))
	s.record(domain.StepSummary, "", fmt.Sprintf("Explored nodes: %d", len(req.Explored)))

	return domain.Trace{
		Algorithm: alg,
		Start:     start,
		Goal:      req.Goal,
		Explored:  append([]string{}, req.Explored...),
		Path:      append([]string{}, req.Path...),
		Steps:     s.steps,
	}
}

type simulator struct {
	alg      domain.Algorithm
	graph    Graph
	frontier frontier
	tick     int
	steps    []domain.Step
}

func newFrontier(alg domain.Algorithm, g Graph) frontier {
	switch alg {
	case domain.AlgorithmDFS:
		return newStack()
	case domain.AlgorithmAStar:
		return newPriorityQueue(g)
	default:
		return newQueue()
	}
}

func (s *simulator) initialize(start string) {
	if start == "" {
		s.record(domain.StepInit, "", fmt.Sprintf("Initialize empty %s", s.alg.FrontierName()))
		return
	}
	s.frontier.seed(start)
	s.record(domain.StepInit, start, fmt.Sprintf("Initialize %s with %s", s.alg.FrontierName(), s.tokens()[0]))
}

// record appends a step carrying the current frontier snapshot.
func (s *simulator) record(kind domain.StepKind, node, narration string) {
	s.steps = append(s.steps, domain.Step{
		Tick:      s.tick,
		Kind:      kind,
		Node:      node,
		Narration: narration,
		Snapshot:  s.tokens(),
	})
}

func (s *simulator) tokens() []string {
	items := s.frontier.items()
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Token(s.alg)
	}
	return out
}

func (s *simulator) popLine(item domain.FrontierItem) string {
	switch s.alg {
	case domain.AlgorithmDFS:
		return fmt.Sprintf("Pop %s from stack", item.Node)
	case domain.AlgorithmAStar:
		return fmt.Sprintf("Pop %s from priority queue", item.Token(s.alg))
	default:
		return fmt.Sprintf("Dequeue %s", item.Node)
	}
}

func (s *simulator) expandLine(node string, added []domain.FrontierItem) string {
	names := make([]string, len(added))
	for i, a := range added {
		names[i] = a.Token(s.alg)
	}
	verb := "enqueue"
	switch s.alg {
	case domain.AlgorithmDFS:
		verb = "push"
	case domain.AlgorithmAStar:
		verb = "add"
	}
	return fmt.Sprintf("Expand %s: %s %s", node, verb, strings.Join(names, ", "))
}

func costLine(it domain.FrontierItem) string {
	return "g(" + it.Node + ")=" + domain.FormatCost(it.G) +
		", h(" + it.Node + ")=" + domain.FormatCost(it.H) +
		", f(" + it.Node + ")=" + domain.FormatCost(it.F)
}

func pathLine(path []string) string {
	if len(path) == 0 {
		return "Path: none"
	}
	return "Path: " + strings.Join(path, " → ")
}

func neighbors(g Graph, node string) []maze.Edge {
	if g == nil {
		return nil
	}
	edges := append([]maze.Edge(nil), g.Neighbors(node)...)
	for i := range edges {
		if edges[i].Weight <= 0 {
			edges[i].Weight = maze.DefaultWeight
		}
	}
	return edges
}
