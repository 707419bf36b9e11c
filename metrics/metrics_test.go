// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()

	m.Votes.WithLabelValues(VoteAccepted).Inc()
	m.Votes.WithLabelValues(VoteAccepted).Inc()
	m.Votes.WithLabelValues(VoteDuplicate).Inc()
	m.BudgetCalculations.WithLabelValues("feasible").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Votes.WithLabelValues(VoteAccepted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Votes.WithLabelValues(VoteDuplicate)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BudgetCalculations.WithLabelValues("feasible")))
}

func TestNewIsolated(t *testing.T) {
	a, b := New(), New()
	a.SimulationsLogged.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.SimulationsLogged))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.SimulationsLogged))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ProposalsCreated.WithLabelValues("school").Inc()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `civic_pulse_proposals_created_total{facility_kind="school"} 1`), body)
}

func TestRegistry(t *testing.T) {
	m := New()
	m.SimulationFailures.Inc()

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["civic_pulse_budget_simulation_failures_total"])
	assert.True(t, names["go_goroutines"])

	n, err := testutil.GatherAndCount(m.Registry(), "civic_pulse_budget_simulation_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
