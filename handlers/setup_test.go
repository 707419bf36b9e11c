// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"testing"

	"github.com/danielhkuo/civic-pulse/identity"
	"github.com/danielhkuo/civic-pulse/metrics"
	"github.com/danielhkuo/civic-pulse/store"
	"github.com/danielhkuo/civic-pulse/testutil"
)

type testEnv struct {
	db      *sql.DB
	store   *store.Store
	metrics *metrics.Metrics

	budget         *BudgetHandler
	proposals      *ProposalHandler
	votes          *VoteHandler
	municipalities *MunicipalityHandler
}

// setupTestEnv wires every handler to a fresh in-memory database
func setupTestEnv(t *testing.T, salt string) *testEnv {
	t.Helper()

	st, conn := testutil.SetupTestStore(t)
	m := metrics.New()
	resolver := identity.Resolver{Salt: salt}
	catalog := testutil.Catalog(t)
	dir := testutil.Directory(t)

	return &testEnv{
		db:             conn,
		store:          st,
		metrics:        m,
		budget:         NewBudgetHandler(st, catalog, resolver, m),
		proposals:      NewProposalHandler(st, catalog, dir, resolver, m),
		votes:          NewVoteHandler(st, resolver, m),
		municipalities: NewMunicipalityHandler(dir),
	}
}
