// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/civic-pulse/budget"
	"github.com/danielhkuo/civic-pulse/identity"
	"github.com/danielhkuo/civic-pulse/metrics"
	"github.com/danielhkuo/civic-pulse/middleware"
	"github.com/danielhkuo/civic-pulse/store"
)

const budgetFailed = "budget calculation failed"

type BudgetHandler struct {
	store    *store.Store
	catalog  *budget.Catalog
	resolver identity.Resolver
	metrics  *metrics.Metrics
}

func NewBudgetHandler(st *store.Store, catalog *budget.Catalog, resolver identity.Resolver, m *metrics.Metrics) *BudgetHandler {
	return &BudgetHandler{store: st, catalog: catalog, resolver: resolver, metrics: m}
}

// Facilities handles GET /budget/facilities
func (h *BudgetHandler) Facilities(w http.ResponseWriter, r *http.Request) {
	entries := h.catalog.Entries()
	middleware.ListResponse(w, entries, len(entries))
}

// Calculate handles POST /budget/calculate
func (h *BudgetHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	req, err := budget.DecodeRequest(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		slog.Warn("budget request rejected", "error", err)
		h.metrics.BudgetCalculations.WithLabelValues("failed").Inc()
		middleware.ErrorResponse(w, http.StatusBadRequest, budgetFailed)
		return
	}

	res := budget.Compute(h.catalog, req.FacilityCounts, req.AnnualBudget)
	h.metrics.BudgetCalculations.WithLabelValues(res.BudgetStatus).Inc()

	slog.Info("budget calculated",
		"status", res.BudgetStatus,
		"annual_cost", budget.FormatAmount(res.TotalAnnualCost),
		"remaining", budget.FormatAmount(res.RemainingBudget),
		"municipality_id", req.MunicipalityID,
	)

	if req.MunicipalityID != "" {
		h.recordSimulation(r, req)
	}

	middleware.DataResponse(w, http.StatusOK, res, "")
}

// recordSimulation appends to the simulation log. Failures are logged and
// never reach the caller.
func (h *BudgetHandler) recordSimulation(r *http.Request, req budget.Request) {
	rec, err := h.store.RecordSimulation(r.Context(), store.NewSimulation{
		MunicipalityID: req.MunicipalityID,
		TotalBudget:    req.AnnualBudget,
		FacilityCounts: req.FacilityCounts.Map(),
		Requester:      h.resolver.Resolve(r, ""),
	})
	if err != nil {
		h.metrics.SimulationFailures.Inc()
		slog.Warn("failed to record budget simulation", "municipality_id", req.MunicipalityID, "error", err)
		return
	}
	h.metrics.SimulationsLogged.Inc()
	slog.Debug("budget simulation recorded", "simulation_id", rec.ID)
}

// Simulations handles GET /budget/simulations?municipalityId=&limit=
func (h *BudgetHandler) Simulations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	municipalityID := strings.TrimSpace(q.Get("municipalityId"))
	if municipalityID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "municipalityId is required")
		return
	}

	limit := 0
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	sims, err := h.store.ListSimulations(r.Context(), municipalityID, limit)
	if err != nil {
		writeError(w, err, "list simulations")
		return
	}

	middleware.ListResponse(w, sims, len(sims))
}
