package inference

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/simulatax/fiscalprofile/record"
)

func TestMonthlyRevenue(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*record.ExtractionResult)
		expected decimal.Decimal
	}{
		{
			name: "DeclaredAnnualRevenueWins",
			setup: func(res *record.ExtractionResult) {
				res.Aggregates.AnnualGrossRevenue = decimal.NewFromInt(1200000)
				res.Aggregates.RevenueSubtotal = decimal.NewFromInt(999999)
				res.Add(&record.Document{Direction: "0", Date: "2024-01-15", Total: decimal.NewFromInt(1)})
			},
			expected: decimal.NewFromInt(100000),
		},
		{
			name: "IncomeStatementSecond",
			setup: func(res *record.ExtractionResult) {
				res.Aggregates.RevenueSubtotal = decimal.NewFromInt(120000)
			},
			expected: decimal.NewFromInt(10000),
		},
		{
			name: "DateSpanThird",
			setup: func(res *record.ExtractionResult) {
				res.Add(&record.Document{Direction: "0", Date: "2024-01-15", Total: decimal.NewFromInt(30000)})
				res.Add(&record.Document{Direction: "0", Date: "2024-03-20", Total: decimal.NewFromInt(30000)})
			},
			// 60000 over a two-month span.
			expected: decimal.NewFromInt(30000),
		},
		{
			name: "DateSpanFloorsAtOneMonth",
			setup: func(res *record.ExtractionResult) {
				res.Add(&record.Document{Direction: "0", Date: "2024-01-05", Total: decimal.NewFromInt(20000)})
				res.Add(&record.Document{Direction: "0", Date: "2024-01-25", Total: decimal.NewFromInt(20000)})
			},
			expected: decimal.NewFromInt(40000),
		},
		{
			name: "DensityFallbackForUndatedDocs",
			setup: func(res *record.ExtractionResult) {
				for i := 0; i < 40; i++ {
					res.Add(&record.Document{Direction: "0", Total: decimal.NewFromInt(1000)})
				}
			},
			// 40 documents span two density months.
			expected: decimal.NewFromInt(20000),
		},
		{
			name: "InboundDocumentsIgnored",
			setup: func(res *record.ExtractionResult) {
				res.Add(&record.Document{Direction: "1", Date: "2024-01-15", Total: decimal.NewFromInt(50000)})
			},
			expected: decimal.Zero,
		},
		{
			name:     "EmptyResultDefaultsToZero",
			setup:    func(res *record.ExtractionResult) {},
			expected: decimal.Zero,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res := record.NewExtractionResult()
			test.setup(res)

			got := MonthlyRevenue(res)
			assert.True(t, test.expected.Equal(got), "expected %s, got %s", test.expected, got)
		})
	}
}

func TestMonthIndex(t *testing.T) {
	jan, ok := monthIndex("2024-01-15")
	assert.True(t, ok)
	mar, ok := monthIndex("2024-03-20")
	assert.True(t, ok)
	assert.Equal(t, 2, mar-jan)

	_, ok = monthIndex("")
	assert.False(t, ok)
	_, ok = monthIndex("15012024")
	assert.False(t, ok)
}
