// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus counters for votes, proposals and
// budget calculations.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Vote outcomes
const (
	VoteAccepted  = "accepted"
	VoteDuplicate = "duplicate"
	VoteNotFound  = "not_found"
	VoteError     = "error"
)

// Metrics groups the service's collectors on one registry.
type Metrics struct {
	registry *prometheus.Registry

	Votes              *prometheus.CounterVec
	ProposalsCreated   *prometheus.CounterVec
	BudgetCalculations *prometheus.CounterVec
	SimulationsLogged  prometheus.Counter
	SimulationFailures prometheus.Counter
}

// New registers the collectors on a fresh registry, so tests can create
// as many instances as they like.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Votes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "civic_pulse",
			Name:      "votes_total",
			Help:      "Vote attempts by outcome.",
		}, []string{"outcome"}),
		ProposalsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "civic_pulse",
			Name:      "proposals_created_total",
			Help:      "Proposals created by facility kind.",
		}, []string{"facility_kind"}),
		BudgetCalculations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "civic_pulse",
			Name:      "budget_calculations_total",
			Help:      "Budget calculations by resulting status.",
		}, []string{"status"}),
		SimulationsLogged: f.NewCounter(prometheus.CounterOpts{
			Namespace: "civic_pulse",
			Name:      "budget_simulations_logged_total",
			Help:      "Budget simulations written to the log.",
		}),
		SimulationFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: "civic_pulse",
			Name:      "budget_simulation_failures_total",
			Help:      "Budget simulations that could not be written.",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
