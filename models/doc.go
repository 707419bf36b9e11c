// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, domain and error types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateProposalRequest: title, description, province, municipality, facilityKind, action, costs
  - CastVoteRequest: optional voterIdentifier

Budget requests are decoded by the budget package, which preserves facility order.

# Response Types

  - Envelope: success, message, data, total
  - VoteTally: proposalId, votesCount, voteRecords
  - ErrorResponse: success (always false), error, message

# Domain Types

  - Proposal: citizen facility proposal with its vote counter
  - Vote: one +1 from one voter identifier on one proposal
  - BudgetSimulation: logged budget calculation for a municipality

Money fields use decimal.Decimal and are expressed in thousands of euros.
They encode as JSON numbers.

# Errors

  - ValidationError: missing or malformed input (400)
  - ErrNotFound: proposal or municipality absent (404)
  - ErrAlreadyVoted: duplicate vote for (proposal, voter) (409)
  - PersistenceError: storage failure (500)

# Constants

Proposal status:

	StatusActive      = "active"
	StatusArchived    = "archived"
	StatusImplemented = "implemented"

Proposal action:

	ActionAdd    = "add"
	ActionRemove = "remove"

Budget status:

	BudgetFeasible   = "feasible"
	BudgetOverBudget = "over_budget"
*/
package models
