// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the civic-pulse API.

# Handler Types

Each handler is a struct with its dependencies:

  - BudgetHandler: Cost table, feasibility calculation, simulation log
  - ProposalHandler: Proposal submission, listing and lookup
  - VoteHandler: Vote casting and tallies
  - MunicipalityHandler: Municipality reference data

Handlers are created via constructor functions:

	voteHandler := handlers.NewVoteHandler(st, resolver, m)

# Budget Calculation

	POST /budget/calculate → Calculate

Malformed input yields 400 with the message "budget calculation failed",
never a partial result. When the request names a municipalityId the
calculation is appended to the simulation log; a failed write is logged
and does not affect the response.

# Proposals

	POST /proposals      → CreateProposal
	GET  /proposals      → ListProposals
	GET  /proposals/{id} → GetProposal

Omitted costs on an "add" proposal for a known facility kind default to
the catalog's setup and annual cost.

# Voting

	POST /proposals/{id}/vote  → CastVote
	GET  /proposals/{id}/votes → GetTally

A second vote from the same voter is answered with 409 Conflict; an
unknown proposal with 404.

# Error Mapping

	*models.ValidationError → 400
	models.ErrNotFound      → 404
	models.ErrAlreadyVoted  → 409
	anything else           → 500
*/
package handlers
