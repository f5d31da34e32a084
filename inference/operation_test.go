package inference

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/simulatax/fiscalprofile/record"
)

func addOutbound(res *record.ExtractionResult, n int, model, taxID string) {
	for i := 0; i < n; i++ {
		doc := &record.Document{Direction: "0", Model: model}
		if taxID != "" {
			doc.Participant = &record.Participant{TaxID: taxID}
		}
		res.Add(doc)
	}
}

func TestOperationType(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*record.ExtractionResult)
		expected string
	}{
		{
			name: "ThinSampleDefaultsToB2B",
			setup: func(res *record.ExtractionResult) {
				addOutbound(res, 4, "65", "")
			},
			expected: OperationB2B,
		},
		{
			name: "AllInvoicesIsB2B",
			setup: func(res *record.ExtractionResult) {
				addOutbound(res, 10, "55", "")
			},
			expected: OperationB2B,
		},
		{
			name: "AllReceiptsIsB2C",
			setup: func(res *record.ExtractionResult) {
				addOutbound(res, 10, "65", "")
			},
			expected: OperationB2C,
		},
		{
			name: "CorporateTaxIDCountsAsB2B",
			setup: func(res *record.ExtractionResult) {
				addOutbound(res, 10, "", "11222333000181")
			},
			expected: OperationB2B,
		},
		{
			name: "PersonalTaxIDCountsAsB2C",
			setup: func(res *record.ExtractionResult) {
				addOutbound(res, 10, "", "12345678901")
			},
			expected: OperationB2C,
		},
		{
			name: "EvenSplitIsMixed",
			setup: func(res *record.ExtractionResult) {
				addOutbound(res, 5, "55", "")
				addOutbound(res, 5, "65", "")
			},
			expected: OperationMixed,
		},
		{
			name: "UnclassifiableDefaultsToB2B",
			setup: func(res *record.ExtractionResult) {
				addOutbound(res, 10, "99", "")
			},
			expected: OperationB2B,
		},
		{
			name: "InboundDocumentsIgnored",
			setup: func(res *record.ExtractionResult) {
				for i := 0; i < 10; i++ {
					res.Add(&record.Document{Direction: "1", Model: "65"})
				}
			},
			expected: OperationB2B,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res := record.NewExtractionResult()
			test.setup(res)

			assert.Equal(t, test.expected, OperationType(res))
		})
	}
}
