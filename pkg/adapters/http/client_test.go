package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/frontier"
	"github.com/aretw0/frontier/pkg/domain"
)

func TestSolverClient_AgainstServer(t *testing.T) {
	f := newFixture(t)
	ts := httptest.NewServer(f.handler)
	defer ts.Close()

	client := NewSolverClient(ts.URL + "/")
	res, err := client.Solve(context.Background(), domain.SolveRequest{Algorithm: domain.AlgorithmAStar, Start: "A", Goal: "B"})
	require.NoError(t, err)
	assert.Len(t, res.Explored, 19)
	assert.Equal(t, "B", res.Path[len(res.Path)-1])
}

func TestSolverClient_RemoteEngine(t *testing.T) {
	f := newFixture(t)
	ts := httptest.NewServer(f.handler)
	defer ts.Close()

	eng, err := frontier.New(nil, frontier.WithSolver(NewSolverClient(ts.URL)))
	require.NoError(t, err)

	tr, err := eng.Trace(context.Background(), domain.SolveRequest{Algorithm: domain.AlgorithmBFS})
	require.NoError(t, err)
	assert.Equal(t, "Explored nodes: 23", tr.Steps[len(tr.Steps)-1].Narration)
}

func TestSolverClient_Errors(t *testing.T) {
	t.Run("Non-2xx", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"Invalid algorithm"}`, http.StatusBadRequest)
		}))
		defer ts.Close()

		_, err := NewSolverClient(ts.URL).Solve(context.Background(), domain.SolveRequest{Algorithm: "nope"})
		assert.ErrorIs(t, err, domain.ErrSolveRequestFailed)
		assert.Contains(t, err.Error(), "status 400")
	})

	t.Run("Malformed body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>"))
		}))
		defer ts.Close()

		_, err := NewSolverClient(ts.URL).Solve(context.Background(), domain.SolveRequest{})
		assert.ErrorIs(t, err, domain.ErrSolveRequestFailed)
	})

	t.Run("Unreachable", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		url := ts.URL
		ts.Close()

		_, err := NewSolverClient(url).Solve(context.Background(), domain.SolveRequest{})
		assert.ErrorIs(t, err, domain.ErrSolveRequestFailed)
	})

	t.Run("Null path becomes empty", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"explored":["A"],"path":null}`))
		}))
		defer ts.Close()

		res, err := NewSolverClient(ts.URL).Solve(context.Background(), domain.SolveRequest{})
		require.NoError(t, err)
		assert.NotNil(t, res.Path)
		assert.Empty(t, res.Path)
	})
}
