package inference

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/simulatax/fiscalprofile/record"
)

// MonthlyRevenue estimates average monthly gross revenue. Cascade, most
// authoritative first:
//
//  1. declared annual gross revenue ÷ 12
//  2. income-statement net revenue ÷ 12
//  3. outbound document total ÷ observed month span (needs at least two dated
//     documents; span floors at one month)
//  4. outbound document total ÷ ceil(count/30), a crude density estimate for
//     thin document sets
//
// Default: zero.
func MonthlyRevenue(res *record.ExtractionResult) decimal.Decimal {
	outbound := outboundDocuments(res)

	tiers := []tier[decimal.Decimal]{
		{name: "declared-annual-revenue", run: func() (decimal.Decimal, bool) {
			if !res.Aggregates.AnnualGrossRevenue.IsPositive() {
				return decimal.Zero, false
			}
			return res.Aggregates.AnnualGrossRevenue.DivRound(MonthsPerYear, 2), true
		}},
		{name: "income-statement-revenue", run: func() (decimal.Decimal, bool) {
			if !res.Aggregates.RevenueSubtotal.IsPositive() {
				return decimal.Zero, false
			}
			return res.Aggregates.RevenueSubtotal.DivRound(MonthsPerYear, 2), true
		}},
		{name: "document-date-span", run: func() (decimal.Decimal, bool) {
			return revenueFromDateSpan(outbound)
		}},
		{name: "document-density", run: func() (decimal.Decimal, bool) {
			return revenueFromDensity(outbound)
		}},
	}

	return firstHit(tiers, decimal.Zero)
}

// revenueFromDateSpan divides the outbound total by the number of calendar
// months the documents span. Needs more than one dated document.
func revenueFromDateSpan(docs []*record.Document) (decimal.Decimal, bool) {
	var total decimal.Decimal
	var minIdx, maxIdx int
	dated := 0

	for _, doc := range docs {
		idx, ok := monthIndex(doc.Date)
		if !ok {
			continue
		}
		if dated == 0 || idx < minIdx {
			minIdx = idx
		}
		if dated == 0 || idx > maxIdx {
			maxIdx = idx
		}
		total = total.Add(doc.Total)
		dated++
	}

	if dated <= 1 || !total.IsPositive() {
		return decimal.Zero, false
	}

	span := maxIdx - minIdx
	if span < 1 {
		span = 1
	}
	return total.DivRound(decimal.NewFromInt(int64(span)), 2), true
}

// revenueFromDensity assumes roughly thirty documents per month.
func revenueFromDensity(docs []*record.Document) (decimal.Decimal, bool) {
	if len(docs) == 0 {
		return decimal.Zero, false
	}

	var total decimal.Decimal
	for _, doc := range docs {
		total = total.Add(doc.Total)
	}
	if !total.IsPositive() {
		return decimal.Zero, false
	}

	months := (len(docs) + 29) / 30
	return total.DivRound(decimal.NewFromInt(int64(months)), 2), true
}

// monthIndex converts an ISO date string to a linear year*12+month index.
func monthIndex(isoDate string) (int, bool) {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return 0, false
	}
	return t.Year()*12 + int(t.Month()), true
}

// outboundDocuments filters the emitted (revenue-side) documents.
func outboundDocuments(res *record.ExtractionResult) []*record.Document {
	var out []*record.Document
	for _, doc := range res.Documents {
		if doc.Direction == directionOutward {
			out = append(out, doc)
		}
	}
	return out
}
