package inference

import (
	"github.com/shopspring/decimal"

	"github.com/simulatax/fiscalprofile/record"
)

var one = decimal.NewFromInt(1)

// OperatingMargin estimates the operating margin from the income-statement
// subtotals when both are present, clamped to [0, 1]. Without a usable
// statement the default assumption applies.
func OperatingMargin(res *record.ExtractionResult) decimal.Decimal {
	tiers := []tier[decimal.Decimal]{
		{name: "income-statement", run: func() (decimal.Decimal, bool) {
			agg := res.Aggregates
			if !agg.RevenueSubtotal.IsPositive() || agg.OperatingResult.IsZero() {
				return decimal.Zero, false
			}
			margin := agg.OperatingResult.DivRound(agg.RevenueSubtotal, 4)
			if margin.IsNegative() {
				margin = decimal.Zero
			}
			if margin.GreaterThan(one) {
				margin = one
			}
			return margin, true
		}},
	}

	return firstHit(tiers, DefaultOperatingMargin)
}
