// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/civic-pulse/identity"
	"github.com/danielhkuo/civic-pulse/metrics"
	"github.com/danielhkuo/civic-pulse/middleware"
	"github.com/danielhkuo/civic-pulse/models"
	"github.com/danielhkuo/civic-pulse/store"
)

type VoteHandler struct {
	store    *store.Store
	resolver identity.Resolver
	metrics  *metrics.Metrics
}

func NewVoteHandler(st *store.Store, resolver identity.Resolver, m *metrics.Metrics) *VoteHandler {
	return &VoteHandler{store: st, resolver: resolver, metrics: m}
}

// CastVote handles POST /proposals/{id}/vote
//
// The body is optional. Without a voterIdentifier the voter is identified
// by the forwarding headers.
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	proposalID := r.PathValue("id")
	if proposalID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "proposal id is required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	voter := h.resolver.Resolve(r, firstNonEmpty(req.VoterIdentifier, req.UserID))

	p, err := h.store.CastVote(r.Context(), proposalID, voter)
	switch {
	case err == nil:
		h.metrics.Votes.WithLabelValues(metrics.VoteAccepted).Inc()
	case errors.Is(err, models.ErrAlreadyVoted):
		h.metrics.Votes.WithLabelValues(metrics.VoteDuplicate).Inc()
	case errors.Is(err, models.ErrNotFound):
		h.metrics.Votes.WithLabelValues(metrics.VoteNotFound).Inc()
	default:
		h.metrics.Votes.WithLabelValues(metrics.VoteError).Inc()
	}
	if err != nil {
		writeError(w, err, "record vote")
		return
	}

	slog.Info("vote recorded", "proposal_id", p.ID, "votes_count", p.VotesCount)

	middleware.DataResponse(w, http.StatusOK, p, "Vote recorded")
}

// GetTally handles GET /proposals/{id}/votes
func (h *VoteHandler) GetTally(w http.ResponseWriter, r *http.Request) {
	tally, err := h.store.Tally(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err, "count votes")
		return
	}

	if tally.VotesCount != tally.VoteRecords {
		slog.Warn("vote counter out of sync",
			"proposal_id", tally.ProposalID,
			"votes_count", tally.VotesCount,
			"vote_records", tally.VoteRecords,
		)
	}

	middleware.DataResponse(w, http.StatusOK, tally, "")
}
