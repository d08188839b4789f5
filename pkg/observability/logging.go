package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/frontier/pkg/domain"
)

// LoggingHooks logs solves at Info and playback ticks at Debug.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSolve: func(ctx context.Context, e *domain.SolveEvent) {
			level := slog.LevelInfo
			if e.IsError {
				level = slog.LevelWarn
			}
			logger.Log(ctx, level, "solve",
				"session_id", e.SessionID,
				"algorithm", e.Algorithm,
				"explored", e.Explored,
				"path_len", e.PathLen,
				"is_error", e.IsError,
			)
		},
		OnTick: func(e *domain.TickEvent) {
			logger.Debug("tick",
				"session_id", e.SessionID,
				"tick", e.Tick,
				"phase", e.Phase,
				"node", e.Node,
			)
		},
		OnComplete: func(e *domain.PlaybackEvent) {
			logger.Info("playback_complete", "session_id", e.SessionID, "ticks", e.Ticks)
		},
		OnReset: func(e *domain.PlaybackEvent) {
			logger.Info("playback_reset", "session_id", e.SessionID, "ticks", e.Ticks)
		},
		OnError: func(err error) {
			logger.Error("playback_error", "error", err)
		},
	}
}
