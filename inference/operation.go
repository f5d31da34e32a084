package inference

import (
	"github.com/shopspring/decimal"

	"github.com/simulatax/fiscalprofile/record"
)

// Tax-id lengths distinguishing corporate from personal counterparties.
const (
	corporateTaxIDLen = 14
	personalTaxIDLen  = 11
)

// OperationType classifies the sales mix as b2b, b2c or mixed. Fewer than
// five outbound documents is too thin a sample and defaults to b2b. Each
// outbound document is classified by its counterparty tax-id length or its
// document model; the split of classified documents decides:
// above 80% corporate → b2b, below 20% → b2c, otherwise mixed.
func OperationType(res *record.ExtractionResult) string {
	outbound := outboundDocuments(res)
	if len(outbound) < minOutboundDocsForOperation {
		return OperationB2B
	}

	var b2b, b2c int
	for _, doc := range outbound {
		switch classifyCounterparty(doc) {
		case OperationB2B:
			b2b++
		case OperationB2C:
			b2c++
		}
	}

	classified := b2b + b2c
	if classified == 0 {
		return OperationB2B
	}

	share := decimal.NewFromInt(int64(b2b)).DivRound(decimal.NewFromInt(int64(classified)), 4)
	switch {
	case share.GreaterThan(b2bShareFloor):
		return OperationB2B
	case share.LessThan(b2cShareCeiling):
		return OperationB2C
	}
	return OperationMixed
}

// classifyCounterparty returns b2b, b2c or "" when the document carries no
// usable signal.
func classifyCounterparty(doc *record.Document) string {
	var taxIDLen int
	if doc.Participant != nil {
		taxIDLen = len(doc.Participant.TaxID)
	}

	switch {
	case taxIDLen == corporateTaxIDLen || doc.Model == modelInvoice:
		return OperationB2B
	case taxIDLen == personalTaxIDLen || doc.Model == modelReceipt || doc.Model == modelPOSReceipt:
		return OperationB2C
	}
	return ""
}
