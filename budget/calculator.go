// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package budget

import (
	"github.com/shopspring/decimal"

	"github.com/danielhkuo/civic-pulse/models"
)

// Line is the contribution of one facility kind to a Result.
type Line struct {
	FacilityKind string          `json:"facilityKind"`
	Count        int             `json:"count"`
	SetupCost    decimal.Decimal `json:"setupCost"`
	AnnualCost   decimal.Decimal `json:"annualCost"`
	DisplayLabel string          `json:"displayLabel"`
}

// Result is the outcome of a feasibility calculation.
type Result struct {
	TotalSetupCost  decimal.Decimal `json:"totalSetupCost"`
	TotalAnnualCost decimal.Decimal `json:"totalAnnualCost"`
	RemainingBudget decimal.Decimal `json:"remainingBudget"`
	IsFeasible      bool            `json:"isFeasible"`
	Breakdown       []Line          `json:"breakdown"`
	BudgetStatus    string          `json:"budgetStatus"`
}

// Compute totals the setup and annual costs of the requested facilities and
// compares the annual total against annualBudget.
//
// Kinds missing from the catalog and counts that are not positive integers
// contribute nothing and are left out of the breakdown. Breakdown lines follow
// the order of counts.
func Compute(catalog *Catalog, counts FacilityCounts, annualBudget decimal.Decimal) Result {
	res := Result{
		TotalSetupCost:  decimal.Zero,
		TotalAnnualCost: decimal.Zero,
		Breakdown:       []Line{},
	}

	for _, c := range counts {
		if !c.Valid || c.Count <= 0 {
			continue
		}
		f, ok := catalog.Lookup(c.Kind)
		if !ok {
			continue
		}

		n := decimal.NewFromInt(int64(c.Count))
		setup := f.SetupCost.Mul(n)
		annual := f.AnnualCost.Mul(n)
		res.TotalSetupCost = res.TotalSetupCost.Add(setup)
		res.TotalAnnualCost = res.TotalAnnualCost.Add(annual)

		res.Breakdown = append(res.Breakdown, Line{
			FacilityKind: c.Kind,
			Count:        c.Count,
			SetupCost:    setup,
			AnnualCost:   annual,
			DisplayLabel: f.Label,
		})
	}

	res.RemainingBudget = annualBudget.Sub(res.TotalAnnualCost)
	res.IsFeasible = !res.RemainingBudget.IsNegative()
	res.BudgetStatus = models.BudgetOverBudget
	if res.IsFeasible {
		res.BudgetStatus = models.BudgetFeasible
	}
	return res
}
