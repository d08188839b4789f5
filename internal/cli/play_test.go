package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/frontier"
	"github.com/aretw0/frontier/pkg/adapters/memory"
	"github.com/aretw0/frontier/pkg/domain"
	"github.com/aretw0/frontier/pkg/playback"
)

func TestPlay_RunsToCompletion(t *testing.T) {
	eng, err := frontier.New(nil)
	require.NoError(t, err)

	rec := memory.NewRecorder()
	err = Play(context.Background(), eng, PlaySessionID, domain.SolveRequest{Algorithm: domain.AlgorithmBFS}, rec, time.Millisecond)
	require.NoError(t, err)

	s, err := eng.Session(context.Background(), PlaySessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusComplete, s.Status)
	assert.Equal(t, len(s.Trace.Path), rec.Count(domain.InstructionMoveToken))
}

func TestPlay_CancelResets(t *testing.T) {
	clock := playback.NewManualClock()
	eng, err := frontier.New(nil, frontier.WithClock(clock))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	rec := memory.NewRecorder()

	go func() {
		for clock.Active() == 0 {
			time.Sleep(time.Millisecond)
		}
		clock.AdvanceN(2)
		cancel()
	}()

	err = Play(ctx, eng, "s1", domain.SolveRequest{}, rec, time.Second)
	require.NoError(t, err)

	assert.Equal(t, 1, rec.Count(domain.InstructionClearVisuals))
	assert.Zero(t, clock.Active())
	s, err := eng.Session(context.Background(), "s1")
	require.NoError(t, err)
	assert.Nil(t, s.Trace)
}

func TestPlay_SolveError(t *testing.T) {
	eng, err := frontier.New(nil)
	require.NoError(t, err)

	err = Play(context.Background(), eng, "s1", domain.SolveRequest{Algorithm: "bogo"}, memory.NewRecorder(), time.Millisecond)
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}

func TestPrintTrace(t *testing.T) {
	eng, err := frontier.New(nil)
	require.NoError(t, err)
	tr, err := eng.Trace(context.Background(), domain.SolveRequest{Algorithm: domain.AlgorithmBFS})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PrintTrace(&buf, tr, false))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, len(tr.Steps))
	assert.True(t, strings.HasPrefix(lines[0], "0   Initialize queue with A"), lines[0])

	buf.Reset()
	require.NoError(t, PrintTrace(&buf, tr, true))
	var decoded domain.Trace
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, tr.Explored, decoded.Explored)
}
