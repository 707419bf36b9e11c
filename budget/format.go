// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package budget

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var thousand = decimal.NewFromInt(1000)

// FormatAmount renders an amount in thousands of euros as whole euros,
// e.g. 45700 -> "€45,700,000".
func FormatAmount(d decimal.Decimal) string {
	euros := d.Mul(thousand).Round(0)
	if euros.IsNegative() {
		return "-€" + humanize.Comma(euros.Neg().IntPart())
	}
	return "€" + humanize.Comma(euros.IntPart())
}
