// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/danielhkuo/civic-pulse/models"
)

// CastVote records one vote from voter on the proposal and returns the
// proposal with its new count.
//
// The counter increment and the vote insert share a transaction. The
// increment is evaluated by the database against the stored value, and the
// UNIQUE (proposal_id, voter_identifier) constraint rejects a second vote
// from the same voter, rolling the increment back.
func (s *Store) CastVote(ctx context.Context, proposalID, voter string) (models.Proposal, error) {
	voter = strings.TrimSpace(voter)
	if voter == "" {
		return models.Proposal{}, models.Invalid("voterIdentifier", "is required")
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return models.Proposal{}, models.Persistence("begin vote", err)
	}
	defer tx.Rollback()

	now := s.now()
	row := tx.QueryRowContext(ctx, s.q(`
		UPDATE proposal
		SET votes_count = votes_count + 1, updated_at = ?
		WHERE id = ?
		RETURNING `+proposalColumns), now, proposalID)

	p, err := scanProposal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Proposal{}, models.ErrNotFound
	}
	if err != nil {
		return models.Proposal{}, models.Persistence("increment votes", err)
	}

	res, err := tx.ExecContext(ctx, s.q(`
		INSERT INTO vote (id, proposal_id, voter_identifier, vote_value, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (proposal_id, voter_identifier) DO NOTHING
	`), s.newID(), proposalID, voter, models.VoteValue, now)
	if err != nil {
		return models.Proposal{}, models.Persistence("insert vote", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return models.Proposal{}, models.Persistence("insert vote", err)
	}
	if inserted == 0 {
		return models.Proposal{}, models.ErrAlreadyVoted
	}

	if err := tx.Commit(); err != nil {
		return models.Proposal{}, models.Persistence("commit vote", err)
	}
	return p, nil
}

// Tally reports a proposal's counter next to the number of stored votes and
// the votes themselves.
// The two are equal unless the ledger has been tampered with.
func (s *Store) Tally(ctx context.Context, proposalID string) (models.VoteTally, error) {
	p, err := s.GetProposal(ctx, proposalID)
	if err != nil {
		return models.VoteTally{}, err
	}

	records, err := s.CountVotes(ctx, proposalID)
	if err != nil {
		return models.VoteTally{}, err
	}

	votes, err := s.Votes(ctx, proposalID)
	if err != nil {
		return models.VoteTally{}, err
	}

	return models.VoteTally{
		ProposalID:  p.ID,
		VotesCount:  p.VotesCount,
		VoteRecords: records,
		Votes:       votes,
	}, nil
}

// CountVotes returns the number of vote rows stored for a proposal.
func (s *Store) CountVotes(ctx context.Context, proposalID string) (int, error) {
	var n int
	err := s.conn.QueryRowContext(ctx, s.q(`
		SELECT COUNT(*) FROM vote WHERE proposal_id = ?
	`), proposalID).Scan(&n)
	if err != nil {
		return 0, models.Persistence("count votes", err)
	}
	return n, nil
}

// Votes lists the votes on a proposal in the order they were cast.
func (s *Store) Votes(ctx context.Context, proposalID string) ([]models.Vote, error) {
	rows, err := s.conn.QueryContext(ctx, s.q(`
		SELECT id, proposal_id, voter_identifier, vote_value, created_at
		FROM vote
		WHERE proposal_id = ?
		ORDER BY created_at, id
	`), proposalID)
	if err != nil {
		return nil, models.Persistence("list votes", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.ProposalID, &v.VoterIdentifier, &v.VoteValue, &v.CreatedAt); err != nil {
			return nil, models.Persistence("scan vote", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, models.Persistence("list votes", err)
	}
	return votes, nil
}
