// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Proposal status constants
const (
	StatusActive      = "active"
	StatusArchived    = "archived"
	StatusImplemented = "implemented"
)

// Proposal action constants
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// Budget status constants
const (
	BudgetFeasible   = "feasible"
	BudgetOverBudget = "over_budget"
)

// VoteValue is the only value a vote can carry.
const VoteValue = 1

// UnknownVoter is the identity used when no forwarding header is present.
// Every anonymous client shares it, so it can vote once per proposal.
const UnknownVoter = "unknown"

// Request types

type CreateProposalRequest struct {
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	Province          string           `json:"province"`
	MunicipalityID    string           `json:"municipalityId"`
	MunicipalityName  string           `json:"municipalityName"`
	FacilityKind      string           `json:"facilityKind"`
	Action            string           `json:"action"`
	EstimatedCost     *decimal.Decimal `json:"estimatedCost,omitempty"`
	AnnualMaintenance *decimal.Decimal `json:"annualMaintenance,omitempty"`

	// Field names sent by the first version of the map client.
	FacilityType string `json:"facilityType,omitempty"`
	Municipality string `json:"municipality,omitempty"`
}

type CastVoteRequest struct {
	VoterIdentifier string `json:"voterIdentifier,omitempty"`
	UserID          string `json:"userId,omitempty"`
}

// Response types

// Envelope wraps every successful response body.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
	Total   *int   `json:"total,omitempty"`
}

type VoteTally struct {
	ProposalID  string `json:"proposalId"`
	VotesCount  int    `json:"votesCount"`
	VoteRecords int    `json:"voteRecords"`
	Votes       []Vote `json:"votes"`
}

// Domain types

type Proposal struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	Province            string          `json:"province"`
	MunicipalityID      string          `json:"municipalityId"`
	MunicipalityName    string          `json:"municipalityName"`
	FacilityKind        string          `json:"facilityKind"`
	Action              string          `json:"action"`
	EstimatedCost       decimal.Decimal `json:"estimatedCost"`
	AnnualMaintenance   decimal.Decimal `json:"annualMaintenance"`
	VotesCount          int             `json:"votesCount"`
	Status              string          `json:"status"`
	CreatedByIdentifier string          `json:"-"` // Never expose in JSON
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

type Vote struct {
	ID              string    `json:"id"`
	ProposalID      string    `json:"proposalId"`
	VoterIdentifier string    `json:"-"` // Never expose in JSON
	VoteValue       int       `json:"voteValue"`
	CreatedAt       time.Time `json:"createdAt"`
}

// BudgetSimulation is the log entry written for a municipality-scoped calculation.
type BudgetSimulation struct {
	ID                  string          `json:"id"`
	MunicipalityID      string          `json:"municipalityId"`
	TotalBudget         decimal.Decimal `json:"totalBudget"`
	FacilityCounts      map[string]int  `json:"facilityCounts"`
	RequesterIdentifier string          `json:"-"` // Never expose in JSON
	CreatedAt           time.Time       `json:"createdAt"`
}

// Error response

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
