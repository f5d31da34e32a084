package linker

import (
	"github.com/shopspring/decimal"

	"github.com/simulatax/fiscalprofile/record"
)

// deriveEffectiveRates computes the corporate-tax family aggregates: declared
// annual gross revenue, observed effective IRPJ/CSLL rates (tax due ÷ base)
// and the exported share of revenue. A zero base yields a zero rate rather
// than a division error.
func deriveEffectiveRates(res *record.ExtractionResult) {
	if len(res.DiscriminatedRevenue) == 0 && len(res.Taxes["irpj"]) == 0 && len(res.Taxes["csll"]) == 0 {
		return
	}

	agg := &res.Aggregates

	var gross, exported decimal.Decimal
	for _, rev := range res.DiscriminatedRevenue {
		gross = gross.Add(rev.Value)
		exported = exported.Add(rev.Exported)
	}
	agg.AnnualGrossRevenue = gross
	if gross.IsPositive() {
		agg.ExportShare = exported.DivRound(gross, 6)
	}

	agg.EffectiveIRPJRate = effectiveRate(res.Taxes["irpj"])
	agg.EffectiveCSLLRate = effectiveRate(res.Taxes["csll"])
	agg.HasEffectiveRates = true
}

func effectiveRate(entries []*record.TaxEntry) decimal.Decimal {
	var base, due decimal.Decimal
	for _, e := range entries {
		base = base.Add(e.Base)
		due = due.Add(e.Debits)
	}
	if !base.IsPositive() {
		return decimal.Zero
	}
	return due.DivRound(base, 6)
}
