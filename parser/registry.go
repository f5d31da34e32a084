// Package parser turns raw ledger-export lines into typed records. It holds
// the per-family record schema registry, the ledger-family detector and the
// line parser itself.
//
// The registry is a static two-level mapping (family → record-type code →
// extractor) built once at package init and never mutated afterwards. Unknown
// record codes are not an error: government exports carry many record types
// that are irrelevant to profile inference, and those lines are skipped
// silently.
package parser

import "github.com/simulatax/fiscalprofile/record"

// Family identifies one of the supported bookkeeping export formats.
type Family string

const (
	// FamilyFiscal is the goods-tax bookkeeping export (ICMS/IPI).
	FamilyFiscal Family = "fiscal"
	// FamilyContributions is the PIS/COFINS contributions export.
	FamilyContributions Family = "contributions"
	// FamilyCorporateTax is the corporate income tax bookkeeping export.
	FamilyCorporateTax Family = "corporateTax"
	// FamilyAccounting is the commercial accounting bookkeeping export.
	FamilyAccounting Family = "accounting"
)

// Valid reports whether f names a supported family.
func (f Family) Valid() bool {
	switch f {
	case FamilyFiscal, FamilyContributions, FamilyCorporateTax, FamilyAccounting:
		return true
	}
	return false
}

// extractor converts the ordered fields of one line into a typed record.
// It returns false when mandatory fields are structurally missing (too few
// columns); the caller records a warning and moves on.
type extractor func(r row) (record.Typed, bool)

var schemas = map[Family]map[string]extractor{
	FamilyFiscal:        fiscalSchema,
	FamilyContributions: contributionsSchema,
	FamilyCorporateTax:  corporateTaxSchema,
	FamilyAccounting:    accountingSchema,
}

// lookup resolves the extractor for a record-type code within a family.
func lookup(family Family, code string) (extractor, bool) {
	table, ok := schemas[family]
	if !ok {
		return nil, false
	}
	fn, ok := table[code]
	return fn, ok
}
