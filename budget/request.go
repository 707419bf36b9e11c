// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package budget

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/danielhkuo/civic-pulse/models"
)

// Request is a decoded budget calculation request.
type Request struct {
	FacilityCounts FacilityCounts
	AnnualBudget   decimal.Decimal
	MunicipalityID string
}

// facilities and baseBudget are the names older clients send.
type wireRequest struct {
	FacilityCounts *FacilityCounts `json:"facilityCounts"`
	Facilities     *FacilityCounts `json:"facilities"`
	AnnualBudget   json.RawMessage `json:"annualBudget"`
	BaseBudget     json.RawMessage `json:"baseBudget"`
	MunicipalityID string          `json:"municipalityId"`
}

// DecodeRequest parses a calculation request. Every failure is a
// *models.ValidationError.
func DecodeRequest(r io.Reader) (Request, error) {
	var w wireRequest
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		if errors.Is(err, errCountsNotObject) {
			return Request{}, models.Invalid("facilityCounts", "must be an object")
		}
		return Request{}, &models.ValidationError{Reason: "malformed request body"}
	}

	counts := w.FacilityCounts
	if counts == nil {
		counts = w.Facilities
	}
	if counts == nil {
		return Request{}, models.Invalid("facilityCounts", "is required")
	}

	raw := w.AnnualBudget
	if isAbsent(raw) {
		raw = w.BaseBudget
	}
	if isAbsent(raw) {
		return Request{}, models.Invalid("annualBudget", "is required")
	}
	var budget decimal.Decimal
	if err := budget.UnmarshalJSON(raw); err != nil {
		return Request{}, models.Invalid("annualBudget", "must be a number")
	}

	return Request{
		FacilityCounts: *counts,
		AnnualBudget:   budget,
		MunicipalityID: strings.TrimSpace(w.MunicipalityID),
	}, nil
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
