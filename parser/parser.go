package parser

import (
	"context"
	"fmt"
	"strings"

	"github.com/simulatax/fiscalprofile/record"
	"github.com/simulatax/fiscalprofile/telemetry"
)

// fieldDelimiter separates fields within a line.
const fieldDelimiter = "|"

// Options configure a parse pass.
type Options struct {
	// Family forces a ledger family, skipping detection.
	Family Family
	// DefaultFamily is used when detection fails. Defaults to FamilyFiscal.
	DefaultFamily Family
}

// Option mutates parse options.
type Option func(*Options)

// WithFamily pins the ledger family instead of auto-detecting it.
func WithFamily(f Family) Option {
	return func(o *Options) { o.Family = f }
}

// WithDefaultFamily sets the family used when detection yields nothing.
func WithDefaultFamily(f Family) Option {
	return func(o *Options) { o.DefaultFamily = f }
}

// Parse runs one linear pass over the export lines and accumulates every
// recognized record into a fresh ExtractionResult. A malformed line never
// aborts the pass: the record is dropped, a warning is collected and parsing
// continues. Empty input yields an empty but well-formed result.
func Parse(ctx context.Context, lines []string, opts ...Option) *record.ExtractionResult {
	options := Options{DefaultFamily: FamilyFiscal}
	for _, opt := range opts {
		opt(&options)
	}

	res := record.NewExtractionResult()

	family := options.Family
	if !family.Valid() {
		detected, ok := DetectFamily(lines)
		if ok {
			family = detected
		} else {
			family = options.DefaultFamily
			res.Warn(0, "family-fallback",
				fmt.Sprintf("ledger family not detected, assuming %q", family))
		}
	}

	timer := telemetry.StartTimer(ctx, fmt.Sprintf("parse (%s, %d lines)", family, len(lines)))
	defer timer.End()

	// Line items arrive as children of the preceding document record and
	// carry no owner identity of their own; the current document stamps them.
	var currentDoc *record.Document

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := row(strings.Split(line, fieldDelimiter))
		code := fields.at(1)
		if code == "" {
			res.Warn(i+1, "no-record-code", "line has no record-type code")
			continue
		}

		extract, ok := lookup(family, code)
		if !ok {
			// Unsupported record types are expected; skip without noise.
			continue
		}

		typed, ok := extract(fields)
		if !ok {
			res.Warn(i+1, "short-record",
				fmt.Sprintf("record %s has too few fields (%d)", code, len(fields)))
			continue
		}

		switch rec := typed.(type) {
		case *record.Document:
			currentDoc = rec
		case *record.LineItem:
			if rec.DocNumber == "" && currentDoc != nil {
				rec.DocNumber = currentDoc.Number
				rec.DocSeries = currentDoc.Series
				rec.ParticipantCode = currentDoc.ParticipantCode
			}
		}

		res.Add(typed)
	}

	return res
}
