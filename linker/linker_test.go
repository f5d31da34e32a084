package linker

import (
	"context"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/simulatax/fiscalprofile/parser"
	"github.com/simulatax/fiscalprofile/record"
)

func TestLinkAttachesItems(t *testing.T) {
	res := record.NewExtractionResult()
	res.Add(&record.Document{Number: "1", Series: "A", ParticipantCode: "P1"})
	res.Add(&record.Document{Number: "2", Series: "A", ParticipantCode: "P1"})
	res.Add(&record.LineItem{DocNumber: "1", DocSeries: "A", ParticipantCode: "P1", ItemCode: "X"})
	res.Add(&record.LineItem{DocNumber: "1", DocSeries: "A", ParticipantCode: "P1", ItemCode: "Y"})
	res.Add(&record.LineItem{DocNumber: "9", DocSeries: "A", ParticipantCode: "P1", ItemCode: "Z"})

	Link(context.Background(), res, parser.FamilyFiscal)

	assert.Equal(t, 2, len(res.Documents[0].Items))
	assert.Equal(t, 0, len(res.Documents[1].Items))
}

func TestLinkAttachesParticipants(t *testing.T) {
	res := record.NewExtractionResult()
	res.Add(&record.Participant{Code: "P1", Name: "FORNECEDOR XYZ"})
	res.Add(&record.Document{Number: "1", ParticipantCode: "P1"})
	res.Add(&record.Document{Number: "2", ParticipantCode: "P9"})

	Link(context.Background(), res, parser.FamilyFiscal)

	assert.NotZero(t, res.Documents[0].Participant)
	assert.Equal(t, "FORNECEDOR XYZ", res.Documents[0].Participant.Name)
	assert.Zero(t, res.Documents[1].Participant)
}

func TestLinkEnrichesDescriptions(t *testing.T) {
	res := record.NewExtractionResult()
	res.Add(&record.ItemCatalog{Code: "ITEM01", Description: "PARAFUSO SEXTAVADO"})
	res.Add(&record.LineItem{ItemCode: "ITEM01"})
	res.Add(&record.LineItem{ItemCode: "ITEM01", Description: "ALREADY SET"})

	Link(context.Background(), res, parser.FamilyFiscal)

	assert.Equal(t, "PARAFUSO SEXTAVADO", res.LineItems[0].Description)
	assert.Equal(t, "ALREADY SET", res.LineItems[1].Description)
}

func TestLinkNilAndEmpty(t *testing.T) {
	Link(context.Background(), nil, parser.FamilyFiscal)

	res := record.NewExtractionResult()
	Link(context.Background(), res, parser.FamilyAccounting)
	assert.False(t, res.Aggregates.HasWorkingCapital)
}

func TestDeriveWorkingCapital(t *testing.T) {
	res := record.NewExtractionResult()
	res.Add(&record.BalanceSheetLine{AccountCode: "1.1.2.01", Balance: decimal.NewFromInt(5000), Nature: "D"})
	res.Add(&record.BalanceSheetLine{AccountCode: "11205", Balance: decimal.NewFromInt(1000), Nature: "C"})
	res.Add(&record.BalanceSheetLine{AccountCode: "1.1.3.01", Balance: decimal.NewFromInt(7000), Nature: "D"})
	res.Add(&record.BalanceSheetLine{AccountCode: "2.1.1.01", Balance: decimal.NewFromInt(3000), Nature: "C"})
	res.Add(&record.BalanceSheetLine{AccountCode: "9.9.9.99", Balance: decimal.NewFromInt(999), Nature: "D"})

	Link(context.Background(), res, parser.FamilyAccounting)

	agg := res.Aggregates
	assert.True(t, agg.HasWorkingCapital)
	// Contra-nature client balance reduces the group.
	assert.True(t, agg.ClientsBalance.Equal(decimal.NewFromInt(4000)), "clients: %s", agg.ClientsBalance)
	assert.True(t, agg.InventoryBalance.Equal(decimal.NewFromInt(7000)))
	assert.True(t, agg.SuppliersBalance.Equal(decimal.NewFromInt(3000)))
}

func TestDeriveStatementSubtotals(t *testing.T) {
	t.Run("NetRevenueWinsOverGross", func(t *testing.T) {
		res := record.NewExtractionResult()
		res.Add(&record.IncomeStatementLine{Description: "RECEITA LÍQUIDA", Value: decimal.NewFromInt(100000), Nature: "C"})
		res.Add(&record.IncomeStatementLine{Description: "RECEITA BRUTA", Value: decimal.NewFromInt(130000), Nature: "C"})
		res.Add(&record.IncomeStatementLine{Description: "RESULTADO OPERACIONAL", Value: decimal.NewFromInt(12000), Nature: "C"})

		Link(context.Background(), res, parser.FamilyAccounting)

		assert.True(t, res.Aggregates.RevenueSubtotal.Equal(decimal.NewFromInt(100000)),
			"revenue: %s", res.Aggregates.RevenueSubtotal)
		assert.True(t, res.Aggregates.OperatingResult.Equal(decimal.NewFromInt(12000)))
	})

	t.Run("NetRevenueWinsWhenGrossComesFirst", func(t *testing.T) {
		// Statements normally list the gross line before the net line; the
		// gross amount must not leak into the subtotal.
		res := record.NewExtractionResult()
		res.Add(&record.IncomeStatementLine{Description: "RECEITA BRUTA", Value: decimal.NewFromInt(130000), Nature: "C"})
		res.Add(&record.IncomeStatementLine{Description: "RECEITA LÍQUIDA", Value: decimal.NewFromInt(100000), Nature: "C"})

		Link(context.Background(), res, parser.FamilyAccounting)

		assert.True(t, res.Aggregates.RevenueSubtotal.Equal(decimal.NewFromInt(100000)),
			"revenue: %s", res.Aggregates.RevenueSubtotal)
	})

	t.Run("GrossRevenueWhenNoNetLine", func(t *testing.T) {
		res := record.NewExtractionResult()
		res.Add(&record.IncomeStatementLine{AccountCode: "3.1.1", Description: "VENDAS", Value: decimal.NewFromInt(80000), Nature: "C"})

		Link(context.Background(), res, parser.FamilyAccounting)

		assert.True(t, res.Aggregates.RevenueSubtotal.Equal(decimal.NewFromInt(80000)))
	})

	t.Run("DebitNatureRevenueNegates", func(t *testing.T) {
		res := record.NewExtractionResult()
		res.Add(&record.IncomeStatementLine{Description: "RECEITA LIQUIDA", Value: decimal.NewFromInt(100000), Nature: "C"})
		res.Add(&record.IncomeStatementLine{Description: "DEDUCOES DA RECEITA LIQUIDA", Value: decimal.NewFromInt(10000), Nature: "D"})

		Link(context.Background(), res, parser.FamilyAccounting)

		assert.True(t, res.Aggregates.RevenueSubtotal.Equal(decimal.NewFromInt(90000)),
			"revenue: %s", res.Aggregates.RevenueSubtotal)
	})
}

func TestDeriveEffectiveRates(t *testing.T) {
	res := record.NewExtractionResult()
	res.Add(&record.DiscriminatedRevenue{Value: decimal.NewFromInt(1000000), Exported: decimal.NewFromInt(100000)})
	res.Add(&record.DiscriminatedRevenue{Value: decimal.NewFromInt(200000)})
	res.Add(&record.TaxEntry{Category: "irpj", Base: decimal.NewFromInt(100000), Debits: decimal.NewFromInt(15000)})
	res.Add(&record.TaxEntry{Category: "csll", Base: decimal.NewFromInt(100000), Debits: decimal.NewFromInt(9000)})

	Link(context.Background(), res, parser.FamilyCorporateTax)

	agg := res.Aggregates
	assert.True(t, agg.HasEffectiveRates)
	assert.True(t, agg.AnnualGrossRevenue.Equal(decimal.NewFromInt(1200000)))
	assert.True(t, agg.ExportShare.Equal(decimal.RequireFromString("0.083333")), "export share: %s", agg.ExportShare)
	assert.True(t, agg.EffectiveIRPJRate.Equal(decimal.RequireFromString("0.15")), "irpj: %s", agg.EffectiveIRPJRate)
	assert.True(t, agg.EffectiveCSLLRate.Equal(decimal.RequireFromString("0.09")), "csll: %s", agg.EffectiveCSLLRate)
}

func TestDeriveEffectiveRatesZeroBase(t *testing.T) {
	res := record.NewExtractionResult()
	res.Add(&record.TaxEntry{Category: "irpj", Debits: decimal.NewFromInt(15000)})

	Link(context.Background(), res, parser.FamilyCorporateTax)

	assert.True(t, res.Aggregates.HasEffectiveRates)
	assert.True(t, res.Aggregates.EffectiveIRPJRate.IsZero())
}
