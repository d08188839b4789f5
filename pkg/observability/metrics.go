package observability

import (
	"context"

	"github.com/aretw0/frontier/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeAborted = "aborted"
)

// Metrics holds the engine collectors.
type Metrics struct {
	Solves        *prometheus.CounterVec
	TraceSteps    prometheus.Histogram
	PlaybackTicks prometheus.Counter
	Playbacks     *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "frontier_solves_total",
				Help: "Total number of solve requests",
			},
			[]string{"algorithm", "outcome"},
		),
		TraceSteps: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "frontier_trace_steps",
				Help:    "Number of narrated steps per reconstructed trace",
				Buckets: prometheus.ExponentialBuckets(4, 2, 8),
			},
		),
		PlaybackTicks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "frontier_playback_ticks_total",
				Help: "Total number of rendered playback ticks",
			},
		),
		Playbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "frontier_playbacks_total",
				Help: "Total number of finished playbacks",
			},
			[]string{"outcome"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Solves, m.TraceSteps, m.PlaybackTicks, m.Playbacks)
	}
	return m
}

// Hooks records metrics from engine events.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSolve: func(_ context.Context, e *domain.SolveEvent) {
			outcome := OutcomeOK
			if e.IsError {
				outcome = OutcomeError
			} else {
				m.TraceSteps.Observe(float64(e.Steps))
			}
			m.Solves.WithLabelValues(string(e.Algorithm), outcome).Inc()
		},
		OnTick: func(*domain.TickEvent) {
			m.PlaybackTicks.Inc()
		},
		OnComplete: func(e *domain.PlaybackEvent) {
			outcome := OutcomeOK
			if e.Err != nil {
				outcome = OutcomeAborted
			}
			m.Playbacks.WithLabelValues(outcome).Inc()
		},
	}
}
