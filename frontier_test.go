package frontier_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/frontier"
	"github.com/aretw0/frontier/pkg/adapters/memory"
	"github.com/aretw0/frontier/pkg/domain"
	"github.com/aretw0/frontier/pkg/maze"
	"github.com/aretw0/frontier/pkg/observability"
	"github.com/aretw0/frontier/pkg/playback"
	"github.com/aretw0/frontier/pkg/ports"
)

func newEngine(t *testing.T, opts ...frontier.Option) (*frontier.Engine, *playback.ManualClock) {
	t.Helper()
	clock := playback.NewManualClock()
	eng, err := frontier.New(nil, append([]frontier.Option{frontier.WithClock(clock)}, opts...)...)
	require.NoError(t, err)
	return eng, clock
}

func TestNew_Defaults(t *testing.T) {
	eng, err := frontier.New(nil)
	require.NoError(t, err)
	assert.Equal(t, "classroom", eng.Name)
	assert.Equal(t, "A", eng.Maze().Start)
	assert.Equal(t, "B", eng.Maze().Goal)
	assert.NotEmpty(t, frontier.Version)
}

func TestNew_InvalidMaze(t *testing.T) {
	b := maze.NewBuilder()
	b.AddNode("A")
	_, err := frontier.New(&maze.Maze{Name: "broken", Start: "A", Goal: "Z", Graph: b.Build()})
	assert.Error(t, err)
}

func TestEngine_Normalize(t *testing.T) {
	eng, _ := newEngine(t)

	req, err := eng.Normalize(domain.SolveRequest{})
	require.NoError(t, err)
	assert.Equal(t, domain.SolveRequest{Algorithm: domain.AlgorithmBFS, Start: "A", Goal: "B"}, req)

	req, err = eng.Normalize(domain.SolveRequest{Algorithm: "A*", Goal: "13"})
	require.NoError(t, err)
	assert.Equal(t, domain.AlgorithmAStar, req.Algorithm)
	assert.Equal(t, "13", req.Goal)

	_, err = eng.Normalize(domain.SolveRequest{Algorithm: "dijkstra"})
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}

func TestEngine_Trace(t *testing.T) {
	eng, _ := newEngine(t)

	tr, err := eng.Trace(context.Background(), domain.SolveRequest{Algorithm: domain.AlgorithmAStar})
	require.NoError(t, err)
	assert.Equal(t, domain.AlgorithmAStar, tr.Algorithm)
	assert.Equal(t, "A", tr.Explored[0])
	assert.Equal(t, "B", tr.Path[len(tr.Path)-1])
	assert.Equal(t, len(tr.Explored)+len(tr.Path), tr.Ticks())
	assert.Equal(t, "Explored nodes: 19", tr.Steps[len(tr.Steps)-1].Narration)
}

func TestEngine_SolveErrors(t *testing.T) {
	t.Run("Transport failure is wrapped", func(t *testing.T) {
		failing := ports.SolverFunc(func(context.Context, domain.SolveRequest) (domain.SolveResult, error) {
			return domain.SolveResult{}, errors.New("connection refused")
		})
		eng, _ := newEngine(t, frontier.WithSolver(failing))

		_, err := eng.Solve(context.Background(), domain.SolveRequest{})
		assert.ErrorIs(t, err, domain.ErrSolveRequestFailed)
	})

	t.Run("Unknown algorithm passes through", func(t *testing.T) {
		eng, _ := newEngine(t)
		_, err := eng.Solve(context.Background(), domain.SolveRequest{Algorithm: "greedy"})
		assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
		assert.NotErrorIs(t, err, domain.ErrSolveRequestFailed)
	})

	t.Run("Unknown node", func(t *testing.T) {
		eng, _ := newEngine(t)
		_, err := eng.Solve(context.Background(), domain.SolveRequest{Start: "nowhere"})
		assert.ErrorIs(t, err, domain.ErrUnknownNode)
	})
}

func TestEngine_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	eng, clock := newEngine(t)

	s, err := eng.SolveSession(ctx, "s1", domain.SolveRequest{Algorithm: domain.AlgorithmBFS})
	require.NoError(t, err)
	require.NotNil(t, s.Trace)
	assert.Equal(t, domain.StatusIdle, s.Status)
	assert.Equal(t, "classroom", s.Maze)

	rec := memory.NewRecorder()
	player, err := eng.Play(ctx, "s1", rec, 0)
	require.NoError(t, err)

	got, err := eng.Session(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRunning, got.Status)

	clock.AdvanceN(s.Trace.Ticks())
	assert.Equal(t, domain.StatusComplete, player.Status())
	assert.Equal(t, s.Trace.Ticks(), rec.Count(domain.InstructionHighlightNode))
	assert.Equal(t, len(s.Trace.Path), rec.Count(domain.InstructionMoveToken))

	got, err = eng.Session(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusComplete, got.Status)

	require.NoError(t, eng.Reset(ctx, "s1"))
	got, err = eng.Session(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got.Trace)
	assert.Equal(t, domain.StatusIdle, got.Status)
	assert.Equal(t, 0, clock.Active())

	_, err = eng.Play(ctx, "s1", rec, 0)
	assert.ErrorIs(t, err, domain.ErrNoTrace)
}

func TestEngine_SolveResetsRunningPlayback(t *testing.T) {
	ctx := context.Background()
	eng, clock := newEngine(t)

	_, err := eng.SolveSession(ctx, "s1", domain.SolveRequest{})
	require.NoError(t, err)
	rec := memory.NewRecorder()
	_, err = eng.Play(ctx, "s1", rec, 0)
	require.NoError(t, err)
	clock.AdvanceN(3)

	_, err = eng.SolveSession(ctx, "s1", domain.SolveRequest{Algorithm: domain.AlgorithmDFS})
	require.NoError(t, err)

	assert.Equal(t, 1, rec.Count(domain.InstructionClearVisuals))
	assert.Equal(t, 0, clock.Active())
	_, ok := eng.Player("s1")
	assert.False(t, ok)
}

func TestEngine_FailedSolveClearsSession(t *testing.T) {
	ctx := context.Background()
	calls := 0
	flaky := ports.SolverFunc(func(ctx context.Context, req domain.SolveRequest) (domain.SolveResult, error) {
		calls++
		if calls > 1 {
			return domain.SolveResult{}, errors.New("boom")
		}
		return domain.SolveResult{Explored: []string{"A", "B"}, Path: []string{"A", "B"}}, nil
	})
	eng, _ := newEngine(t, frontier.WithSolver(flaky))

	_, err := eng.SolveSession(ctx, "s1", domain.SolveRequest{})
	require.NoError(t, err)

	s, err := eng.SolveSession(ctx, "s1", domain.SolveRequest{})
	assert.ErrorIs(t, err, domain.ErrSolveRequestFailed)
	require.NotNil(t, s)
	assert.Nil(t, s.Trace)
	assert.Equal(t, domain.StatusIdle, s.Status)
	assert.Contains(t, s.Error, "boom")
}

func TestEngine_ResetUnknownSession(t *testing.T) {
	eng, _ := newEngine(t)
	err := eng.Reset(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestEngine_DeleteAndClose(t *testing.T) {
	ctx := context.Background()
	eng, clock := newEngine(t)

	for _, id := range []string{"a", "b"} {
		_, err := eng.SolveSession(ctx, id, domain.SolveRequest{})
		require.NoError(t, err)
		_, err = eng.Play(ctx, id, memory.NewRecorder(), 0)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, clock.Active())

	require.NoError(t, eng.Delete(ctx, "a"))
	assert.Equal(t, 1, clock.Active())
	_, err := eng.Session(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	eng.Close()
	assert.Equal(t, 0, clock.Active())
}

func TestEngine_Hooks(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	var solves []*domain.SolveEvent
	custom := domain.LifecycleHooks{
		OnSolve: func(_ context.Context, e *domain.SolveEvent) { solves = append(solves, e) },
	}
	eng, clock := newEngine(t, frontier.WithLifecycleHooks(domain.MergeHooks(metrics.Hooks(), custom)))

	s, err := eng.SolveSession(ctx, "s1", domain.SolveRequest{Algorithm: domain.AlgorithmDFS})
	require.NoError(t, err)
	require.Len(t, solves, 1)
	assert.Equal(t, "s1", solves[0].SessionID)
	assert.Equal(t, len(s.Trace.Steps), solves[0].Steps)

	_, err = eng.Play(ctx, "s1", memory.NewRecorder(), 0)
	require.NoError(t, err)
	clock.AdvanceN(s.Trace.Ticks())

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Solves.WithLabelValues("dfs", observability.OutcomeOK)))
	assert.Equal(t, float64(s.Trace.Ticks()), testutil.ToFloat64(metrics.PlaybackTicks))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Playbacks.WithLabelValues(observability.OutcomeOK)))
}
