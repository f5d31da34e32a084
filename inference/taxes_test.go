package inference

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/simulatax/fiscalprofile/record"
)

func TestTaxCompositionLedgerWins(t *testing.T) {
	res := record.NewExtractionResult()
	res.Add(&record.TaxEntry{Category: "icms", Debits: decimal.NewFromInt(2000), Credits: decimal.NewFromInt(500)})
	res.Add(&record.Debit{Category: "pis", Value: decimal.NewFromInt(165)})
	res.Add(&record.Credit{Category: "pis", Value: decimal.NewFromInt(40)})

	revenue := decimal.NewFromInt(100000)
	taxes := TaxComposition(res, revenue, ActivityCommerce, RegimeReal)

	icms := taxes["icms"]
	assert.Equal(t, SourceLedger, icms.Source)
	assert.True(t, icms.Debit.Equal(decimal.NewFromInt(2000)))
	assert.True(t, icms.Credit.Equal(decimal.NewFromInt(500)))

	pis := taxes["pis"]
	assert.Equal(t, SourceLedger, pis.Source)
	assert.True(t, pis.Debit.Equal(decimal.NewFromInt(165)))
	assert.True(t, pis.Credit.Equal(decimal.NewFromInt(40)))

	// COFINS has no records and is estimated instead.
	assert.Equal(t, SourceEstimated, taxes["cofins"].Source)
}

func TestTaxCompositionEstimates(t *testing.T) {
	res := record.NewExtractionResult()
	revenue := decimal.NewFromInt(100000)

	t.Run("CommerceRealProfit", func(t *testing.T) {
		taxes := TaxComposition(res, revenue, ActivityCommerce, RegimeReal)

		// 18% over 60% of revenue debit, over 40% credit.
		assert.True(t, taxes["icms"].Debit.Equal(decimal.NewFromInt(10800)), "icms debit: %s", taxes["icms"].Debit)
		assert.True(t, taxes["icms"].Credit.Equal(decimal.NewFromInt(7200)))
		assert.Equal(t, SourceEstimated, taxes["icms"].Source)

		// No excise tax outside industry, no municipal service tax outside services.
		assert.Equal(t, SourceNone, taxes["ipi"].Source)
		assert.True(t, taxes["ipi"].Debit.IsZero())
		assert.Equal(t, SourceNone, taxes["iss"].Source)

		// Non-cumulative rates with credits over 40% of revenue.
		assert.True(t, taxes["pis"].Debit.Equal(decimal.NewFromInt(1650)), "pis debit: %s", taxes["pis"].Debit)
		assert.True(t, taxes["pis"].Credit.Equal(decimal.NewFromInt(660)), "pis credit: %s", taxes["pis"].Credit)
		assert.True(t, taxes["cofins"].Debit.Equal(decimal.NewFromInt(7600)))
		assert.True(t, taxes["cofins"].Credit.Equal(decimal.NewFromInt(3040)))
	})

	t.Run("IndustryGetsExciseEstimate", func(t *testing.T) {
		taxes := TaxComposition(res, revenue, ActivityIndustry, RegimeReal)

		// 10% over 40% of revenue debit, over 20% credit.
		assert.True(t, taxes["ipi"].Debit.Equal(decimal.NewFromInt(4000)))
		assert.True(t, taxes["ipi"].Credit.Equal(decimal.NewFromInt(2000)))
		assert.Equal(t, SourceEstimated, taxes["ipi"].Source)
	})

	t.Run("ServicesGetMunicipalEstimate", func(t *testing.T) {
		taxes := TaxComposition(res, revenue, ActivityServices, RegimePresumido)

		assert.True(t, taxes["iss"].Debit.Equal(decimal.NewFromInt(5000)))
		assert.Equal(t, SourceEstimated, taxes["iss"].Source)

		// Cumulative rates, no credits.
		assert.True(t, taxes["pis"].Debit.Equal(decimal.NewFromInt(650)))
		assert.True(t, taxes["pis"].Credit.IsZero())
		assert.True(t, taxes["cofins"].Debit.Equal(decimal.NewFromInt(3000)))
	})

	t.Run("SimplesZeroesContributionDebits", func(t *testing.T) {
		taxes := TaxComposition(res, revenue, ActivityCommerce, RegimeSimples)

		assert.True(t, taxes["pis"].Debit.IsZero())
		assert.True(t, taxes["cofins"].Debit.IsZero())
		assert.Equal(t, SourceNone, taxes["pis"].Source)
		assert.Equal(t, SourceNone, taxes["cofins"].Source)
	})

	t.Run("ZeroRevenueYieldsNoEstimates", func(t *testing.T) {
		taxes := TaxComposition(res, decimal.Zero, ActivityIndustry, RegimeReal)

		for _, name := range TaxNames {
			assert.Equal(t, SourceNone, taxes[name].Source, "tax %s", name)
			assert.True(t, taxes[name].Debit.IsZero())
			assert.True(t, taxes[name].Credit.IsZero())
		}
	})
}
