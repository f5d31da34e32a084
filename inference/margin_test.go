package inference

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/simulatax/fiscalprofile/record"
)

func TestOperatingMargin(t *testing.T) {
	tests := []struct {
		name     string
		revenue  int64
		result   int64
		expected decimal.Decimal
	}{
		{"FromStatement", 100000, 12000, decimal.RequireFromString("0.12")},
		{"NegativeClampsToZero", 100000, -5000, decimal.Zero},
		{"AboveOneClampsToOne", 100000, 150000, decimal.NewFromInt(1)},
		{"NoRevenueUsesDefault", 0, 12000, DefaultOperatingMargin},
		{"NoResultUsesDefault", 100000, 0, DefaultOperatingMargin},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res := record.NewExtractionResult()
			res.Aggregates.RevenueSubtotal = decimal.NewFromInt(test.revenue)
			res.Aggregates.OperatingResult = decimal.NewFromInt(test.result)

			got := OperatingMargin(res)
			assert.True(t, test.expected.Equal(got), "expected %s, got %s", test.expected, got)
		})
	}
}

func TestFirstHit(t *testing.T) {
	t.Run("FirstSignalWins", func(t *testing.T) {
		got := firstHit([]tier[string]{
			{name: "miss", run: func() (string, bool) { return "", false }},
			{name: "hit", run: func() (string, bool) { return "first", true }},
			{name: "later", run: func() (string, bool) { return "second", true }},
		}, "fallback")
		assert.Equal(t, "first", got)
	})

	t.Run("FallbackWhenAllMiss", func(t *testing.T) {
		got := firstHit([]tier[int]{
			{name: "miss", run: func() (int, bool) { return 0, false }},
		}, 42)
		assert.Equal(t, 42, got)
	})
}
