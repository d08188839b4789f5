package trace_test

import (
	"fmt"

	"github.com/aretw0/frontier/pkg/domain"
	"github.com/aretw0/frontier/pkg/maze"
	"github.com/aretw0/frontier/pkg/trace"
)

func ExampleSimulate() {
	g := maze.NewBuilder().
		AddEdge("A", "B", 1).
		AddEdge("A", "C", 1).
		AddEdge("B", "D", 1).
		Build()

	tr := trace.Simulate(g, trace.Request{
		Algorithm: domain.AlgorithmBFS,
		Start:     "A",
		Goal:      "D",
		Explored:  []string{"A", "B", "C", "D"},
		Path:      []string{"A", "B", "D"},
	})

	for _, s := range tr.Steps {
		fmt.Printf("%d %-30s %v\n", s.Tick, s.Narration, s.Snapshot)
	}
	// Output:
	// 0 Initialize queue with A        [A]
	// 0 Expand A: enqueue B, C         [B C]
	// 1 Dequeue B                      [C]
	// 1 Expand B: enqueue D            [C D]
	// 2 Dequeue C                      [D]
	// 3 Dequeue D                      []
	// 3 Goal D reached                 []
	// 3 Path: A → B → D                []
	// 3 Path length: 3 nodes           []
	// 3 Explored nodes: 4              []
}
