package domain_test

import (
	"context"
	"testing"

	"github.com/aretw0/frontier/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Algorithm
	}{
		{"bfs", domain.AlgorithmBFS},
		{"DFS", domain.AlgorithmDFS},
		{"astar", domain.AlgorithmAStar},
		{" a* ", domain.AlgorithmAStar},
	}
	for _, tt := range tests {
		got, err := domain.ParseAlgorithm(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
		assert.True(t, got.Valid())
	}

	_, err := domain.ParseAlgorithm("dijkstra")
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
	assert.False(t, domain.Algorithm("dijkstra").Valid())
}

func TestFrontierName(t *testing.T) {
	assert.Equal(t, "queue", domain.AlgorithmBFS.FrontierName())
	assert.Equal(t, "stack", domain.AlgorithmDFS.FrontierName())
	assert.Equal(t, "priority queue", domain.AlgorithmAStar.FrontierName())
}

func TestFrontierItemToken(t *testing.T) {
	item := domain.FrontierItem{Node: "B", G: 1, H: 1, F: 2}
	assert.Equal(t, "B", item.Token(domain.AlgorithmBFS))
	assert.Equal(t, "B", item.Token(domain.AlgorithmDFS))
	assert.Equal(t, "B(f=2)", item.Token(domain.AlgorithmAStar))
	assert.Equal(t, "C(f=2.5)", domain.FrontierItem{Node: "C", F: 2.5}.Token(domain.AlgorithmAStar))
}

func TestTrace_StepsAtAndClone(t *testing.T) {
	tr := domain.Trace{
		Explored: []string{"A", "B"},
		Path:     []string{"A", "B"},
		Steps: []domain.Step{
			{Tick: 0, Kind: domain.StepInit, Narration: "Initialize queue with A", Snapshot: []string{"A"}},
			{Tick: 0, Kind: domain.StepExpand, Narration: "Expand A: enqueue B", Snapshot: []string{"B"}},
			{Tick: 1, Kind: domain.StepPop, Narration: "Dequeue B", Snapshot: []string{}},
		},
	}

	assert.Equal(t, 4, tr.Ticks())
	assert.Len(t, tr.StepsAt(0), 2)
	assert.Len(t, tr.StepsAt(1), 1)
	assert.Empty(t, tr.StepsAt(2))
	assert.Equal(t, []string{}, tr.LastSnapshot())

	clone := tr.Clone()
	clone.Steps[1].Snapshot[0] = "Z"
	clone.Explored[0] = "Z"
	assert.Equal(t, "B", tr.Steps[1].Snapshot[0])
	assert.Equal(t, "A", tr.Explored[0])
	assert.Equal(t, []string{}, clone.Steps[2].Snapshot)

	empty := domain.Trace{Explored: []string{}, Path: []string{}}.Clone()
	assert.NotNil(t, empty.Explored)
	assert.NotNil(t, empty.Path)
}

func TestSession_ClearAndClone(t *testing.T) {
	s := domain.NewSession("s1")
	assert.Equal(t, domain.StatusIdle, s.Status)

	s.Trace = &domain.Trace{Explored: []string{"A"}}
	s.Status = domain.StatusComplete

	c := s.Clone()
	c.Trace.Explored[0] = "X"
	assert.Equal(t, "A", s.Trace.Explored[0])

	s.Clear()
	assert.Nil(t, s.Trace)
	assert.Equal(t, domain.StatusIdle, s.Status)
}

func TestMergeHooks(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{
		OnTick:  func(*domain.TickEvent) { calls = append(calls, "a.tick") },
		OnSolve: func(context.Context, *domain.SolveEvent) { calls = append(calls, "a.solve") },
	}
	b := domain.LifecycleHooks{
		OnTick: func(*domain.TickEvent) { calls = append(calls, "b.tick") },
	}

	h := domain.MergeHooks(a, b)
	h.OnTick(&domain.TickEvent{})
	h.OnSolve(context.Background(), &domain.SolveEvent{})

	assert.Equal(t, []string{"a.tick", "b.tick", "a.solve"}, calls)
	assert.Nil(t, h.OnComplete)
}
