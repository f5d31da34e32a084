package parser

import "strings"

// headerCode is the record-type code of the opening header every export
// format shares.
const headerCode = "0000"

// detectWindow bounds how many non-blank lines the detector inspects before
// giving up. The header is the first record in well-formed exports; the
// window only exists to tolerate leading garbage.
const detectWindow = 20

// Signature tokens carried in the header of the bookkeeping families that
// declare themselves explicitly.
const (
	sigAccounting   = "LECD"
	sigCorporateTax = "LECF"
)

// DetectFamily inspects the first lines of an export and decides which ledger
// family it belongs to. Detection order:
//
//  1. A header whose signature field carries one of the fixed tokens names the
//     accounting or corporate-tax family directly.
//  2. Otherwise a header carrying a bookkeeping-profile marker (A/B/C) at the
//     goods-tax layout position is the fiscal family.
//  3. A header shaped like the contributions layout (purpose flag 0/1, enough
//     fields) is the contributions family.
//
// Returns false when no header is found in the window or none of the markers
// match; the parser then falls back to its configured default family.
func DetectFamily(lines []string) (Family, bool) {
	seen := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		seen++
		if seen > detectWindow {
			break
		}

		fields := row(strings.Split(line, fieldDelimiter))
		if fields.at(1) != headerCode {
			continue
		}

		switch fields.at(2) {
		case sigAccounting:
			return FamilyAccounting, true
		case sigCorporateTax:
			return FamilyCorporateTax, true
		}

		if isProfileMarker(fields.at(14)) {
			return FamilyFiscal, true
		}
		if len(fields) >= 14 && isPurposeFlag(fields.at(3)) {
			return FamilyContributions, true
		}
		return "", false
	}
	return "", false
}

func isProfileMarker(s string) bool {
	return s == "A" || s == "B" || s == "C"
}

func isPurposeFlag(s string) bool {
	return s == "0" || s == "1"
}
