// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the civic-pulse API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(router.Services{
		Store:     st,
		Catalog:   catalog,
		Directory: directory,
		Metrics:   metrics.New(),
	}, cfg)

# Endpoints

Operations:

	GET /health  - Liveness probe
	GET /metrics - Prometheus exposition

Budget simulation:

	GET  /budget/facilities  - Facility cost table
	POST /budget/calculate   - Feasibility of a facility plan
	GET  /budget/simulations - Logged simulations for a municipality

Proposals and voting:

	GET  /proposals            - List, most votes first
	POST /proposals            - Submit a proposal
	GET  /proposals/{id}       - Proposal details
	POST /proposals/{id}/vote  - Cast one vote
	GET  /proposals/{id}/votes - Counter and stored vote rows

Reference data:

	GET /municipalities        - Known municipalities
	GET /municipalities/{slug} - Municipality profile

# Handler Initialization

Handlers share the store, the facility catalog, the municipality
directory and the metrics. Voter identifiers are hashed when
cfg.VoterHashSalt is set.
*/
package router
