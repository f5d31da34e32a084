package inference

import (
	"github.com/shopspring/decimal"

	"github.com/simulatax/fiscalprofile/record"
)

// TaxNames lists the five taxes the composition covers, in report order.
var TaxNames = []string{"icms", "ipi", "pis", "cofins", "iss"}

// TaxFigures is the debit/credit pair for one tax plus the provenance of the
// numbers.
type TaxFigures struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
	Source string
}

// TaxComposition aggregates monthly debits and credits per tax. Explicit
// ledger records win; when a tax has none, the figures are estimated from
// monthly revenue with the default rate and base-share assumptions. The
// estimates are activity- and regime-conditional: IPI only exists for
// industry, ISS only for services, and Simples filers report zero PIS/COFINS
// debits because those are embedded in the unified rate.
func TaxComposition(res *record.ExtractionResult, revenue decimal.Decimal, activity, regime string) map[string]TaxFigures {
	out := make(map[string]TaxFigures, len(TaxNames))

	out["icms"] = taxFigures(
		ledgerSums(res, "icms"),
		estimate(revenue, ICMSDebitBaseShare, ICMSDefaultRate),
		estimate(revenue, ICMSCreditBaseShare, ICMSDefaultRate),
	)

	ipiDebit, ipiCredit := decimal.Zero, decimal.Zero
	if activity == ActivityIndustry {
		ipiDebit = estimate(revenue, IPIDebitBaseShare, IPIDefaultRate)
		ipiCredit = estimate(revenue, IPICreditBaseShare, IPIDefaultRate)
	}
	out["ipi"] = taxFigures(ledgerSums(res, "ipi"), ipiDebit, ipiCredit)

	pisRate, cofinsRate := contributionRates(regime)
	pisDebit := estimate(revenue, decimal.NewFromInt(1), pisRate)
	cofinsDebit := estimate(revenue, decimal.NewFromInt(1), cofinsRate)
	pisCredit, cofinsCredit := decimal.Zero, decimal.Zero
	if regime == RegimeReal {
		pisCredit = estimate(revenue, PISCofinsCreditBaseShare, pisRate)
		cofinsCredit = estimate(revenue, PISCofinsCreditBaseShare, cofinsRate)
	}
	if regime == RegimeSimples {
		pisDebit, cofinsDebit = decimal.Zero, decimal.Zero
	}
	out["pis"] = taxFigures(contributionSums(res, "pis"), pisDebit, pisCredit)
	out["cofins"] = taxFigures(contributionSums(res, "cofins"), cofinsDebit, cofinsCredit)

	issDebit := decimal.Zero
	if activity == ActivityServices {
		issDebit = estimate(revenue, decimal.NewFromInt(1), ISSDefaultRate)
	}
	out["iss"] = taxFigures(ledgerSums(res, "iss"), issDebit, decimal.Zero)

	return out
}

// ledgerPair carries explicit sums from tax-ledger entries.
type ledgerPair struct {
	debit  decimal.Decimal
	credit decimal.Decimal
}

// ledgerSums totals the explicit tax-ledger records for one category.
func ledgerSums(res *record.ExtractionResult, category string) ledgerPair {
	var p ledgerPair
	for _, entry := range res.Taxes[category] {
		p.debit = p.debit.Add(entry.Debits)
		p.credit = p.credit.Add(entry.Credits)
	}
	return p
}

// contributionSums totals the explicit contribution debit/credit records.
func contributionSums(res *record.ExtractionResult, category string) ledgerPair {
	var p ledgerPair
	for _, d := range res.Debits[category] {
		p.debit = p.debit.Add(d.Value)
	}
	for _, c := range res.Credits[category] {
		p.credit = p.credit.Add(c.Value)
	}
	return p
}

// taxFigures prefers the explicit sums; an exactly-zero pair means no
// records existed and triggers the estimate. Zero estimates (zero revenue or
// non-applicable tax) are tagged as having no source.
func taxFigures(explicit ledgerPair, estDebit, estCredit decimal.Decimal) TaxFigures {
	if !explicit.debit.IsZero() || !explicit.credit.IsZero() {
		return TaxFigures{Debit: explicit.debit, Credit: explicit.credit, Source: SourceLedger}
	}
	if estDebit.IsZero() && estCredit.IsZero() {
		return TaxFigures{Debit: decimal.Zero, Credit: decimal.Zero, Source: SourceNone}
	}
	return TaxFigures{Debit: estDebit, Credit: estCredit, Source: SourceEstimated}
}

// estimate computes base-share × rate over monthly revenue.
func estimate(revenue, baseShare, rate decimal.Decimal) decimal.Decimal {
	if !revenue.IsPositive() {
		return decimal.Zero
	}
	return revenue.Mul(baseShare).Mul(rate).Round(2)
}

// contributionRates picks the PIS and COFINS rates for the regime. Simples
// uses the cumulative rates as a neutral placeholder; its debits are zeroed
// by the caller anyway.
func contributionRates(regime string) (pis, cofins decimal.Decimal) {
	if regime == RegimeReal {
		return PISRateReal, COFINSRateReal
	}
	return PISRateCumulative, COFINSRateCumulative
}
