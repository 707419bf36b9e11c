// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/danielhkuo/civic-pulse/budget"
	"github.com/danielhkuo/civic-pulse/identity"
	"github.com/danielhkuo/civic-pulse/metrics"
	"github.com/danielhkuo/civic-pulse/middleware"
	"github.com/danielhkuo/civic-pulse/models"
	"github.com/danielhkuo/civic-pulse/municipality"
	"github.com/danielhkuo/civic-pulse/store"
)

type ProposalHandler struct {
	store     *store.Store
	catalog   *budget.Catalog
	directory *municipality.Directory
	resolver  identity.Resolver
	metrics   *metrics.Metrics
}

func NewProposalHandler(st *store.Store, catalog *budget.Catalog, dir *municipality.Directory, resolver identity.Resolver, m *metrics.Metrics) *ProposalHandler {
	return &ProposalHandler{store: st, catalog: catalog, directory: dir, resolver: resolver, metrics: m}
}

// ListProposals handles GET /proposals?municipalityId=&facilityKind=&province=
func (h *ProposalHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.ProposalFilter{
		MunicipalityID: q.Get("municipalityId"),
		FacilityKind:   firstNonEmpty(q.Get("facilityKind"), q.Get("facility")),
		Province:       q.Get("province"),
	}

	proposals, err := h.store.ListProposals(r.Context(), filter)
	if err != nil {
		writeError(w, err, "list proposals")
		return
	}

	middleware.ListResponse(w, proposals, len(proposals))
}

// CreateProposal handles POST /proposals
func (h *ProposalHandler) CreateProposal(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req models.CreateProposalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	p, err := h.store.CreateProposal(r.Context(), h.newProposal(r, req))
	if err != nil {
		writeError(w, err, "create proposal")
		return
	}

	h.metrics.ProposalsCreated.WithLabelValues(p.FacilityKind).Inc()
	slog.Info("proposal created",
		"proposal_id", p.ID,
		"municipality_id", p.MunicipalityID,
		"facility_kind", p.FacilityKind,
		"action", p.Action,
	)

	middleware.DataResponse(w, http.StatusCreated, p, "Proposal created successfully")
}

// GetProposal handles GET /proposals/{id}
func (h *ProposalHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.GetProposal(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err, "get proposal")
		return
	}

	middleware.DataResponse(w, http.StatusOK, p, "")
}

// newProposal fills in what the request leaves out: the municipality from
// the directory and, for additions of a known facility kind, the catalog
// costs.
func (h *ProposalHandler) newProposal(r *http.Request, req models.CreateProposalRequest) store.NewProposal {
	in := store.NewProposal{
		Title:            req.Title,
		Description:      req.Description,
		Province:         req.Province,
		MunicipalityID:   strings.TrimSpace(req.MunicipalityID),
		MunicipalityName: strings.TrimSpace(firstNonEmpty(req.MunicipalityName, req.Municipality)),
		FacilityKind:     strings.TrimSpace(firstNonEmpty(req.FacilityKind, req.FacilityType)),
		Action:           req.Action,
		CreatedBy:        h.resolver.Resolve(r, ""),
	}

	switch {
	case in.MunicipalityID != "":
		if m, ok := h.directory.BySlug(in.MunicipalityID); ok && in.MunicipalityName == "" {
			in.MunicipalityName = m.Name
		}
	case in.MunicipalityName != "":
		if m, ok := h.directory.ByName(in.MunicipalityName); ok {
			in.MunicipalityID = m.Slug
		}
	}

	facility, known := h.catalog.Lookup(in.FacilityKind)
	isAdd := in.Action == "" || strings.EqualFold(strings.TrimSpace(in.Action), models.ActionAdd)

	in.EstimatedCost = costOrDefault(req.EstimatedCost, facility.SetupCost, known && isAdd)
	in.AnnualMaintenance = costOrDefault(req.AnnualMaintenance, facility.AnnualCost, known && isAdd)
	return in
}

func costOrDefault(v *decimal.Decimal, fallback decimal.Decimal, useFallback bool) decimal.Decimal {
	switch {
	case v != nil:
		return *v
	case useFallback:
		return fallback
	default:
		return decimal.Zero
	}
}
