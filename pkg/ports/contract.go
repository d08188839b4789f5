package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/frontier/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSessionStoreContract runs a suite of tests to verify that a SessionStore
// implementation adheres to the interface contract.
func RunSessionStoreContract(t *testing.T, store SessionStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		session := domain.NewSession(sessionID)
		session.Algorithm = domain.AlgorithmAStar
		session.Start = "A"
		session.Goal = "B"
		session.Status = domain.StatusComplete
		session.Trace = &domain.Trace{
			Algorithm: domain.AlgorithmAStar,
			Explored:  []string{"A", "B"},
			Path:      []string{"A", "B"},
			Steps: []domain.Step{
				{Tick: 0, Kind: domain.StepInit, Node: "A", Narration: "Initialize priority queue with A(f=1)", Snapshot: []string{"A(f=1)"}},
			},
		}

		err := store.Save(ctx, sessionID, session)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, domain.AlgorithmAStar, loaded.Algorithm)
		assert.Equal(t, domain.StatusComplete, loaded.Status)
		require.NotNil(t, loaded.Trace)
		assert.Equal(t, []string{"A", "B"}, loaded.Trace.Path)
		require.Len(t, loaded.Trace.Steps, 1)
		assert.Equal(t, []string{"A(f=1)"}, loaded.Trace.Steps[0].Snapshot)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sessionID, domain.NewSession(sessionID))
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")

		assert.NoError(t, store.Delete(ctx, sessionID), "deleting twice is not an error")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		_ = store.Save(ctx, id1, domain.NewSession(id1))
		_ = store.Save(ctx, id2, domain.NewSession(id2))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
