package inference

import (
	"github.com/shopspring/decimal"

	"github.com/simulatax/fiscalprofile/record"
)

var thirty = decimal.NewFromInt(30)

// FinancialCycle is the working-capital cycle estimate.
type FinancialCycle struct {
	ReceivableDays int // PMR
	PayableDays    int // PMP
	InventoryDays  int // PME
	CashShare      decimal.Decimal
	TermShare      decimal.Decimal
	// WorkingCapitalNeed is the estimated additional working capital for the
	// cycle gap, padded by the safety multiplier.
	WorkingCapitalNeed decimal.Decimal
}

// Cycle estimates the financial cycle. Every day figure defaults to 30 and
// is recomputed only when a positive working-capital balance and positive
// revenue exist; recomputed figures divide the balance by a proxy monthly
// flow (revenue for receivables, 60% of revenue for payables, 70% for
// inventory), scale to a 30-day month and clamp to [1, 180]. The cash/term
// split defaults to 30/70 and is recomputed from the receipt-style or
// cash-marked share of outbound document value, clamped to [5%, 95%].
func Cycle(res *record.ExtractionResult, revenue decimal.Decimal) FinancialCycle {
	cycle := FinancialCycle{
		ReceivableDays: DefaultCycleDays,
		PayableDays:    DefaultCycleDays,
		InventoryDays:  DefaultCycleDays,
		CashShare:      DefaultCashShare,
	}

	agg := res.Aggregates
	if revenue.IsPositive() {
		if days, ok := cycleDays(agg.ClientsBalance, revenue); ok {
			cycle.ReceivableDays = days
		}
		if days, ok := cycleDays(agg.SuppliersBalance, revenue.Mul(PayablesFlowShare)); ok {
			cycle.PayableDays = days
		}
		if days, ok := cycleDays(inventoryBalance(res), revenue.Mul(InventoryFlowShare)); ok {
			cycle.InventoryDays = days
		}
	}

	if share, ok := cashShare(res); ok {
		cycle.CashShare = share
	}
	cycle.TermShare = decimal.NewFromInt(1).Sub(cycle.CashShare)

	cycle.WorkingCapitalNeed = workingCapitalNeed(cycle, revenue)

	return cycle
}

// cycleDays converts a balance over a monthly flow into days, clamped.
func cycleDays(balance, monthlyFlow decimal.Decimal) (int, bool) {
	if !balance.IsPositive() || !monthlyFlow.IsPositive() {
		return 0, false
	}
	days := balance.Div(monthlyFlow).Mul(thirty).Round(0).IntPart()
	if days < int64(MinCycleDays) {
		days = int64(MinCycleDays)
	}
	if days > int64(MaxCycleDays) {
		days = int64(MaxCycleDays)
	}
	return int(days), true
}

// inventoryBalance prefers the accounting balance and falls back to the
// physical inventory valuation records.
func inventoryBalance(res *record.ExtractionResult) decimal.Decimal {
	if res.Aggregates.InventoryBalance.IsPositive() {
		return res.Aggregates.InventoryBalance
	}
	var total decimal.Decimal
	for _, line := range res.InventoryLines {
		total = total.Add(line.Value)
	}
	return total
}

// cashShare computes the fraction of outbound value sold for cash: receipt-
// style documents plus documents with the explicit cash payment marker.
func cashShare(res *record.ExtractionResult) (decimal.Decimal, bool) {
	var total, cash decimal.Decimal
	for _, doc := range outboundDocuments(res) {
		total = total.Add(doc.Total)
		if doc.Model == modelReceipt || doc.Model == modelPOSReceipt || doc.PaymentInd == paymentIndCash {
			cash = cash.Add(doc.Total)
		}
	}
	if !total.IsPositive() {
		return decimal.Zero, false
	}

	share := cash.DivRound(total, 4)
	if share.LessThan(MinCashShare) {
		share = MinCashShare
	}
	if share.GreaterThan(MaxCashShare) {
		share = MaxCashShare
	}
	return share, true
}

// workingCapitalNeed estimates the funding requirement of the cycle gap:
// (PMR + PME - PMP) in months of revenue, padded by the safety multiplier.
// A negative gap needs no funding and yields zero.
func workingCapitalNeed(cycle FinancialCycle, revenue decimal.Decimal) decimal.Decimal {
	gap := cycle.ReceivableDays + cycle.InventoryDays - cycle.PayableDays
	if gap <= 0 || !revenue.IsPositive() {
		return decimal.Zero
	}
	months := decimal.NewFromInt(int64(gap)).Div(thirty)
	return months.Mul(revenue).Mul(WorkingCapitalSafetyMultiplier).Round(2)
}
