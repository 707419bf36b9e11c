// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/civic-pulse/budget"
	"github.com/danielhkuo/civic-pulse/cliparse"
	"github.com/danielhkuo/civic-pulse/handlers"
	"github.com/danielhkuo/civic-pulse/identity"
	"github.com/danielhkuo/civic-pulse/metrics"
	"github.com/danielhkuo/civic-pulse/middleware"
	"github.com/danielhkuo/civic-pulse/municipality"
	"github.com/danielhkuo/civic-pulse/store"
)

// Services are the long-lived dependencies shared by all handlers.
type Services struct {
	Store     *store.Store
	Catalog   *budget.Catalog
	Directory *municipality.Directory
	Metrics   *metrics.Metrics
}

func NewRouter(svc Services, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	resolver := identity.Resolver{Salt: cfg.VoterHashSalt}

	// Initialize handlers
	budgetHandler := handlers.NewBudgetHandler(svc.Store, svc.Catalog, resolver, svc.Metrics)
	proposalHandler := handlers.NewProposalHandler(svc.Store, svc.Catalog, svc.Directory, resolver, svc.Metrics)
	voteHandler := handlers.NewVoteHandler(svc.Store, resolver, svc.Metrics)
	municipalityHandler := handlers.NewMunicipalityHandler(svc.Directory)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", svc.Metrics.Handler())

	// Budget simulation
	mux.HandleFunc("GET /budget/facilities", middleware.WithLogging(budgetHandler.Facilities))
	mux.HandleFunc("POST /budget/calculate", middleware.WithLogging(budgetHandler.Calculate))
	mux.HandleFunc("GET /budget/simulations", middleware.WithLogging(budgetHandler.Simulations))

	// Proposals
	mux.HandleFunc("GET /proposals", middleware.WithLogging(proposalHandler.ListProposals))
	mux.HandleFunc("POST /proposals", middleware.WithLogging(proposalHandler.CreateProposal))
	mux.HandleFunc("GET /proposals/{id}", middleware.WithLogging(proposalHandler.GetProposal))

	// Voting
	mux.HandleFunc("POST /proposals/{id}/vote", middleware.WithLogging(voteHandler.CastVote))
	mux.HandleFunc("GET /proposals/{id}/votes", middleware.WithLogging(voteHandler.GetTally))

	// Municipality reference data
	mux.HandleFunc("GET /municipalities", middleware.WithLogging(municipalityHandler.ListMunicipalities))
	mux.HandleFunc("GET /municipalities/{slug}", middleware.WithLogging(municipalityHandler.GetMunicipality))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("civic-pulse API v1"))
	})

	return mux
}
