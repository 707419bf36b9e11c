// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/danielhkuo/civic-pulse/models"
)

const proposalColumns = `id, title, description, province, municipality_id, municipality_name,
	facility_kind, action, estimated_cost, annual_maintenance, votes_count, status,
	created_by, created_at, updated_at`

// NewProposal carries the caller-supplied fields of a proposal.
type NewProposal struct {
	Title             string
	Description       string
	Province          string
	MunicipalityID    string
	MunicipalityName  string
	FacilityKind      string
	Action            string
	EstimatedCost     decimal.Decimal
	AnnualMaintenance decimal.Decimal
	CreatedBy         string
}

// Normalize trims the input, applies defaults and reports the first
// missing or malformed field as a *models.ValidationError.
func (n *NewProposal) Normalize() error {
	n.Title = strings.TrimSpace(n.Title)
	n.Description = strings.TrimSpace(n.Description)
	n.Province = strings.TrimSpace(n.Province)
	n.MunicipalityID = strings.TrimSpace(n.MunicipalityID)
	n.MunicipalityName = strings.TrimSpace(n.MunicipalityName)
	n.FacilityKind = strings.TrimSpace(n.FacilityKind)
	n.Action = strings.ToLower(strings.TrimSpace(n.Action))

	switch {
	case n.Title == "":
		return models.Invalid("title", "is required")
	case n.Description == "":
		return models.Invalid("description", "is required")
	case n.Province == "":
		return models.Invalid("province", "is required")
	case n.MunicipalityID == "" && n.MunicipalityName == "":
		return models.Invalid("municipality", "is required")
	case n.FacilityKind == "":
		return models.Invalid("facilityKind", "is required")
	}

	if n.Action == "" {
		n.Action = models.ActionAdd
	}
	if n.Action != models.ActionAdd && n.Action != models.ActionRemove {
		return models.Invalid("action", "must be add or remove")
	}
	if n.EstimatedCost.IsNegative() {
		return models.Invalid("estimatedCost", "must not be negative")
	}
	if n.AnnualMaintenance.IsNegative() {
		return models.Invalid("annualMaintenance", "must not be negative")
	}
	if strings.TrimSpace(n.CreatedBy) == "" {
		n.CreatedBy = models.UnknownVoter
	}
	return nil
}

// ProposalFilter narrows ListProposals. Empty fields match everything.
type ProposalFilter struct {
	MunicipalityID string
	FacilityKind   string
	Province       string
}

// CreateProposal stores a new active proposal with no votes.
func (s *Store) CreateProposal(ctx context.Context, in NewProposal) (models.Proposal, error) {
	if err := in.Normalize(); err != nil {
		return models.Proposal{}, err
	}

	now := s.now()
	p := models.Proposal{
		ID:                  s.newID(),
		Title:               in.Title,
		Description:         in.Description,
		Province:            in.Province,
		MunicipalityID:      in.MunicipalityID,
		MunicipalityName:    in.MunicipalityName,
		FacilityKind:        in.FacilityKind,
		Action:              in.Action,
		EstimatedCost:       in.EstimatedCost,
		AnnualMaintenance:   in.AnnualMaintenance,
		VotesCount:          0,
		Status:              models.StatusActive,
		CreatedByIdentifier: in.CreatedBy,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	_, err := s.conn.ExecContext(ctx, s.q(`
		INSERT INTO proposal (`+proposalColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), p.ID, p.Title, p.Description, p.Province, p.MunicipalityID, p.MunicipalityName,
		p.FacilityKind, p.Action, p.EstimatedCost, p.AnnualMaintenance, p.VotesCount, p.Status,
		p.CreatedByIdentifier, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return models.Proposal{}, models.Persistence("insert proposal", err)
	}

	return p, nil
}

// GetProposal returns models.ErrNotFound for an unknown id.
func (s *Store) GetProposal(ctx context.Context, id string) (models.Proposal, error) {
	row := s.conn.QueryRowContext(ctx, s.q(`
		SELECT `+proposalColumns+`
		FROM proposal
		WHERE id = ?
	`), id)

	p, err := scanProposal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Proposal{}, models.ErrNotFound
	}
	if err != nil {
		return models.Proposal{}, models.Persistence("select proposal", err)
	}
	return p, nil
}

// ListProposals returns matching proposals, most votes first. Equal vote
// counts keep insertion order.
func (s *Store) ListProposals(ctx context.Context, f ProposalFilter) ([]models.Proposal, error) {
	var (
		where []string
		args  []any
	)
	if v := strings.TrimSpace(f.MunicipalityID); v != "" {
		where = append(where, "municipality_id = ?")
		args = append(args, v)
	}
	if v := strings.TrimSpace(f.FacilityKind); v != "" {
		where = append(where, "facility_kind = ?")
		args = append(args, v)
	}
	if v := strings.TrimSpace(f.Province); v != "" {
		where = append(where, "province = ?")
		args = append(args, v)
	}

	query := `SELECT ` + proposalColumns + ` FROM proposal`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY votes_count DESC, seq ASC`

	rows, err := s.conn.QueryContext(ctx, s.q(query), args...)
	if err != nil {
		return nil, models.Persistence("list proposals", err)
	}
	defer rows.Close()

	proposals := []models.Proposal{}
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, models.Persistence("scan proposal", err)
		}
		proposals = append(proposals, p)
	}
	if err := rows.Err(); err != nil {
		return nil, models.Persistence("list proposals", err)
	}
	return proposals, nil
}

func scanProposal(row scanner) (models.Proposal, error) {
	var p models.Proposal
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Province, &p.MunicipalityID, &p.MunicipalityName,
		&p.FacilityKind, &p.Action, &p.EstimatedCost, &p.AnnualMaintenance, &p.VotesCount, &p.Status,
		&p.CreatedByIdentifier, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}
