package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aretw0/frontier"
	"github.com/aretw0/frontier/pkg/domain"
	"github.com/aretw0/frontier/pkg/ports"
)

// PlaySessionID is the session used by one-shot terminal playbacks.
const PlaySessionID = "cli"

// Play solves req on a session and animates it on r until the playback
// completes or ctx is cancelled. Cancellation resets the playback and is not
// reported as an error.
func Play(ctx context.Context, eng *frontier.Engine, sessionID string, req domain.SolveRequest, r ports.Renderer, interval time.Duration) error {
	if _, err := eng.SolveSession(ctx, sessionID, req); err != nil {
		return err
	}
	player, err := eng.Play(ctx, sessionID, r, interval)
	if err != nil {
		return err
	}

	if err := player.Wait(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			// ctx is gone; the reset only needs the session lock.
			return eng.Reset(context.WithoutCancel(ctx), sessionID)
		}
		return err
	}
	return nil
}

// PrintTrace writes the narration, one step per line with its frontier, or
// the whole trace as indented JSON.
func PrintTrace(w io.Writer, tr domain.Trace, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tr)
	}
	for _, st := range tr.Steps {
		if _, err := fmt.Fprintf(w, "%-3d %-40s %v\n", st.Tick, st.Narration, st.Snapshot); err != nil {
			return err
		}
	}
	return nil
}
