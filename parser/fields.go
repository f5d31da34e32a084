package parser

import (
	"strings"

	"github.com/shopspring/decimal"
)

// row wraps the split fields of one line. SPED-style lines are pipe-wrapped
// ("|C100|0|1|...|"), so after splitting on the delimiter the record-type code
// sits at index 1 and the layout positions below follow the official record
// layouts. Accessors are lenient: indexes past the end yield zero values so
// extractors only need to length-check their mandatory prefix.
type row []string

// at returns the trimmed field at position i, or "" when out of range.
func (r row) at(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[i])
}

// dec parses the field at position i as a locale decimal ("1.234,56").
// Absent or unparsable fields yield zero rather than an error; a dropped
// digit must not poison a whole extraction.
func (r row) dec(i int) decimal.Decimal {
	return parseDecimal(r.at(i))
}

// date converts a ddmmyyyy field to an ISO date string, or "" when the field
// does not look like a date.
func (r row) date(i int) string {
	return parseDate(r.at(i))
}

// parseDecimal converts decimal-comma notation to a decimal value. Thousands
// dots are stripped first, then the comma becomes the radix point.
func parseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseDate normalizes ddmmyyyy to 2006-01-02. Anything else comes back empty.
func parseDate(s string) string {
	if len(s) != 8 {
		return ""
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return ""
		}
	}
	return s[4:8] + "-" + s[2:4] + "-" + s[0:2]
}
