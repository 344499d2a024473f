// Package metrics exposes compilation metrics as prometheus collectors.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/manualfsm/pkg/compiler"
)

const namespace = "manualfsm"

// Registry owns the collectors for one process.
// Each Registry has its own prometheus registry so tests never collide.
type Registry struct {
	reg          *prometheus.Registry
	compilations *prometheus.CounterVec
	diagnostics  *prometheus.CounterVec
	graphStates  prometheus.Histogram
	duration     *prometheus.HistogramVec
}

// New creates and registers the collectors.
func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		compilations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "compilations_total",
				Help:      "Total number of manual compilations by strategy and outcome.",
			},
			[]string{"strategy", "outcome"},
		),
		diagnostics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "diagnostics_total",
				Help:      "Structural defects found by kind.",
			},
			[]string{"kind"},
		),
		graphStates: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "graph_states",
				Help:      "Number of states per synthesized graph.",
				Buckets:   prometheus.ExponentialBuckets(2, 2, 10),
			},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "compile_duration_seconds",
				Help:      "Duration of manual compilations.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"strategy"},
		),
	}
	r.reg.MustRegister(r.compilations, r.diagnostics, r.graphStates, r.duration)
	return r
}

// Hooks returns compiler hooks that record into this registry.
func (r *Registry) Hooks(strategy string) compiler.Hooks {
	return compiler.Hooks{
		OnCompiled: func(ctx context.Context, res *compiler.Result, elapsed time.Duration) {
			outcome := "valid"
			if !res.Valid() {
				outcome = "invalid"
			}
			r.compilations.WithLabelValues(string(res.Strategy), outcome).Inc()
			for _, d := range res.Diagnostics {
				r.diagnostics.WithLabelValues(string(d.Kind)).Inc()
			}
			r.graphStates.Observe(float64(res.Stats.States))
			r.duration.WithLabelValues(string(res.Strategy)).Observe(elapsed.Seconds())
		},
		OnRejected: func(ctx context.Context, err error) {
			outcome := "rejected"
			if errors.Is(err, compiler.ErrInputTooLarge) {
				outcome = "too_large"
			}
			r.compilations.WithLabelValues(strategy, outcome).Inc()
		},
	}
}

// Handler serves the registry in the prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer exposes the underlying registry for tests and federation.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}
