// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/civic-pulse/budget"
	"github.com/danielhkuo/civic-pulse/models"
	"github.com/danielhkuo/civic-pulse/testutil"
)

// TestCitizenWorkflow tests the complete end-to-end workflow:
// 1. Look up a municipality
// 2. Run a budget simulation for it
// 3. Submit a proposal
// 4. Two citizens vote, one tries twice
// 5. Verify ranking and tally
func TestCitizenWorkflow(t *testing.T) {
	env := setupTestEnv(t, "")

	// Step 1: Look up the municipality
	req := httptest.NewRequest("GET", "/municipalities/utrecht", nil)
	req.SetPathValue("slug", "utrecht")
	w := httptest.NewRecorder()
	env.municipalities.GetMunicipality(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Step 2: Simulate adding two schools
	w = postBudget(env, `{"facilityCounts":{"school":2},"annualBudget":3000,"municipalityId":"utrecht"}`, nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var res budget.Result
	testutil.AssertEnvelope(t, w, &res)
	if res.IsFeasible {
		t.Fatal("Step 2 - Expected two schools to exceed a 3000 budget")
	}
	t.Logf("Step 2 - Budget status: %s", res.BudgetStatus)

	// Step 3: Submit a proposal
	req = httptest.NewRequest("POST", "/proposals", strings.NewReader(
		`{"title":"Extra basisschool","description":"Leidsche Rijn is growing","province":"Utrecht","municipalityId":"utrecht","facilityKind":"school","action":"add"}`))
	w = httptest.NewRecorder()
	env.proposals.CreateProposal(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var p models.Proposal
	testutil.AssertEnvelope(t, w, &p)
	if p.VotesCount != 0 || p.Status != models.StatusActive {
		t.Fatalf("Step 3 - Unexpected new proposal %+v", p)
	}
	other := testutil.CreateTestProposal(t, env.store, "Clinic", "utrecht", "doctorClinic")
	t.Logf("Step 3 - Created proposal: %s", p.ID)

	// Step 4: Votes
	alice := map[string]string{"X-Forwarded-For": "203.0.113.10"}
	bob := map[string]string{"X-Forwarded-For": "203.0.113.11"}

	testutil.AssertStatus(t, castVote(env, p.ID, "", alice), http.StatusOK)
	testutil.AssertStatus(t, castVote(env, p.ID, "", alice), http.StatusConflict)
	testutil.AssertStatus(t, castVote(env, p.ID, "", bob), http.StatusOK)
	testutil.AssertStatus(t, castVote(env, other, "", bob), http.StatusOK)

	// Step 5: Ranking and tally
	w = httptest.NewRecorder()
	env.proposals.ListProposals(w, httptest.NewRequest("GET", "/proposals?municipalityId=utrecht", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var list []models.Proposal
	testutil.AssertEnvelope(t, w, &list)
	if len(list) != 2 || list[0].ID != p.ID || list[0].VotesCount != 2 || list[1].VotesCount != 1 {
		t.Fatalf("Step 5 - Unexpected ranking %+v", list)
	}

	req = httptest.NewRequest("GET", "/proposals/"+p.ID+"/votes", nil)
	req.SetPathValue("id", p.ID)
	w = httptest.NewRecorder()
	env.votes.GetTally(w, req)
	var tally models.VoteTally
	testutil.AssertEnvelope(t, w, &tally)
	if tally.VotesCount != 2 || tally.VoteRecords != 2 {
		t.Errorf("Step 5 - Unexpected tally %+v", tally)
	}

	w = httptest.NewRecorder()
	env.budget.Simulations(w, httptest.NewRequest("GET", "/budget/simulations?municipalityId=utrecht", nil))
	var sims []models.BudgetSimulation
	testutil.AssertEnvelope(t, w, &sims)
	if len(sims) != 1 || sims[0].FacilityCounts["school"] != 2 {
		t.Errorf("Step 5 - Unexpected simulation log %+v", sims)
	}
}
