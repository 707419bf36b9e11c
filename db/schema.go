// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(conn *sql.DB, d Dialect) error {
	schema := postgresSchema
	if d == SQLite {
		schema = sqliteSchema
	}

	_, err := conn.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const postgresSchema = `
-- Proposals
CREATE TABLE IF NOT EXISTS proposal (
    seq BIGSERIAL PRIMARY KEY,
    id TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    province TEXT NOT NULL DEFAULT '',
    municipality_id TEXT NOT NULL DEFAULT '',
    municipality_name TEXT NOT NULL DEFAULT '',
    facility_kind TEXT NOT NULL,
    action TEXT NOT NULL CHECK (action IN ('add', 'remove')),
    estimated_cost NUMERIC NOT NULL DEFAULT 0,
    annual_maintenance NUMERIC NOT NULL DEFAULT 0,
    votes_count INTEGER NOT NULL DEFAULT 0 CHECK (votes_count >= 0),
    status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'archived', 'implemented')),
    created_by TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_proposal_rank ON proposal(votes_count DESC, seq);
CREATE INDEX IF NOT EXISTS idx_proposal_municipality ON proposal(municipality_id);
CREATE INDEX IF NOT EXISTS idx_proposal_facility ON proposal(facility_kind);

-- Votes
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    proposal_id TEXT NOT NULL REFERENCES proposal(id),
    voter_identifier TEXT NOT NULL,
    vote_value SMALLINT NOT NULL DEFAULT 1 CHECK (vote_value = 1),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (proposal_id, voter_identifier)
);

CREATE INDEX IF NOT EXISTS idx_vote_proposal_id ON vote(proposal_id);

-- Budget simulations
CREATE TABLE IF NOT EXISTS budget_simulation (
    id TEXT PRIMARY KEY,
    municipality_id TEXT NOT NULL,
    total_budget NUMERIC NOT NULL,
    facility_counts JSONB NOT NULL,
    requester TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_budget_simulation_municipality ON budget_simulation(municipality_id, created_at);
`

// Amounts are stored as TEXT to keep decimal values exact.
const sqliteSchema = `
-- Proposals
CREATE TABLE IF NOT EXISTS proposal (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    province TEXT NOT NULL DEFAULT '',
    municipality_id TEXT NOT NULL DEFAULT '',
    municipality_name TEXT NOT NULL DEFAULT '',
    facility_kind TEXT NOT NULL,
    action TEXT NOT NULL CHECK (action IN ('add', 'remove')),
    estimated_cost TEXT NOT NULL DEFAULT '0',
    annual_maintenance TEXT NOT NULL DEFAULT '0',
    votes_count INTEGER NOT NULL DEFAULT 0 CHECK (votes_count >= 0),
    status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'archived', 'implemented')),
    created_by TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_proposal_rank ON proposal(votes_count DESC, seq);
CREATE INDEX IF NOT EXISTS idx_proposal_municipality ON proposal(municipality_id);
CREATE INDEX IF NOT EXISTS idx_proposal_facility ON proposal(facility_kind);

-- Votes
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    proposal_id TEXT NOT NULL REFERENCES proposal(id),
    voter_identifier TEXT NOT NULL,
    vote_value INTEGER NOT NULL DEFAULT 1 CHECK (vote_value = 1),
    created_at TIMESTAMP NOT NULL,
    UNIQUE (proposal_id, voter_identifier)
);

CREATE INDEX IF NOT EXISTS idx_vote_proposal_id ON vote(proposal_id);

-- Budget simulations
CREATE TABLE IF NOT EXISTS budget_simulation (
    id TEXT PRIMARY KEY,
    municipality_id TEXT NOT NULL,
    total_budget TEXT NOT NULL,
    facility_counts TEXT NOT NULL,
    requester TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_budget_simulation_municipality ON budget_simulation(municipality_id, created_at);
`
