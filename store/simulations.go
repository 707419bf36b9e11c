// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/danielhkuo/civic-pulse/models"
)

const (
	DefaultSimulationLimit = 20
	MaxSimulationLimit     = 200
)

// NewSimulation is a budget calculation to be logged.
type NewSimulation struct {
	MunicipalityID string
	TotalBudget    decimal.Decimal
	FacilityCounts map[string]int
	Requester      string
}

// RecordSimulation appends a simulation record. Records are never updated.
func (s *Store) RecordSimulation(ctx context.Context, in NewSimulation) (models.BudgetSimulation, error) {
	municipalityID := strings.TrimSpace(in.MunicipalityID)
	if municipalityID == "" {
		return models.BudgetSimulation{}, models.Invalid("municipalityId", "is required")
	}
	counts := in.FacilityCounts
	if counts == nil {
		counts = map[string]int{}
	}
	snapshot, err := json.Marshal(counts)
	if err != nil {
		return models.BudgetSimulation{}, models.Invalid("facilityCounts", "cannot be encoded")
	}
	requester := strings.TrimSpace(in.Requester)
	if requester == "" {
		requester = models.UnknownVoter
	}

	rec := models.BudgetSimulation{
		ID:                  s.newID(),
		MunicipalityID:      municipalityID,
		TotalBudget:         in.TotalBudget,
		FacilityCounts:      counts,
		RequesterIdentifier: requester,
		CreatedAt:           s.now(),
	}

	_, err = s.conn.ExecContext(ctx, s.q(`
		INSERT INTO budget_simulation (id, municipality_id, total_budget, facility_counts, requester, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`), rec.ID, rec.MunicipalityID, rec.TotalBudget, string(snapshot), rec.RequesterIdentifier, rec.CreatedAt)
	if err != nil {
		return models.BudgetSimulation{}, models.Persistence("insert simulation", err)
	}
	return rec, nil
}

// ListSimulations returns the newest records for a municipality. A limit
// outside 1..MaxSimulationLimit falls back to DefaultSimulationLimit.
func (s *Store) ListSimulations(ctx context.Context, municipalityID string, limit int) ([]models.BudgetSimulation, error) {
	if limit <= 0 || limit > MaxSimulationLimit {
		limit = DefaultSimulationLimit
	}

	rows, err := s.conn.QueryContext(ctx, s.q(`
		SELECT id, municipality_id, total_budget, facility_counts, requester, created_at
		FROM budget_simulation
		WHERE municipality_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`), strings.TrimSpace(municipalityID), limit)
	if err != nil {
		return nil, models.Persistence("list simulations", err)
	}
	defer rows.Close()

	sims := []models.BudgetSimulation{}
	for rows.Next() {
		var (
			rec      models.BudgetSimulation
			snapshot []byte
		)
		if err := rows.Scan(&rec.ID, &rec.MunicipalityID, &rec.TotalBudget, &snapshot, &rec.RequesterIdentifier, &rec.CreatedAt); err != nil {
			return nil, models.Persistence("scan simulation", err)
		}
		if err := json.Unmarshal(snapshot, &rec.FacilityCounts); err != nil {
			return nil, models.Persistence("decode simulation", err)
		}
		sims = append(sims, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, models.Persistence("list simulations", err)
	}
	return sims, nil
}
