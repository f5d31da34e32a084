// Package fiscalprofile extracts fiscal signals from government bookkeeping
// exports and infers a canonical company profile for tax simulation.
//
// The pipeline has three phases: parse (line records into an extraction
// result), link (cross-record joins and derived aggregates) and assemble
// (estimator cascades into the profile). Extract runs all three:
//
//	lines, _ := loader.New().Load("efd.txt")
//	p := fiscalprofile.Extract(context.Background(), lines)
package fiscalprofile

import (
	"context"

	"github.com/simulatax/fiscalprofile/inference"
	"github.com/simulatax/fiscalprofile/linker"
	"github.com/simulatax/fiscalprofile/parser"
	"github.com/simulatax/fiscalprofile/profile"
	"github.com/simulatax/fiscalprofile/record"
)

// Options configure an extraction run.
type Options struct {
	// Family pins the ledger family for every source, skipping detection.
	Family parser.Family

	// DefaultFamily is assumed when detection fails. Defaults to fiscal.
	DefaultFamily parser.Family

	// SectorRepository optionally resolves sector tags by classification code.
	SectorRepository inference.SectorRepository
}

// Option mutates extraction options.
type Option func(*Options)

// WithFamily pins the ledger family instead of auto-detecting it.
func WithFamily(f parser.Family) Option {
	return func(o *Options) { o.Family = f }
}

// WithDefaultFamily sets the family assumed when detection fails.
func WithDefaultFamily(f parser.Family) Option {
	return func(o *Options) { o.DefaultFamily = f }
}

// WithSectorRepository wires an external sector lookup into inference.
func WithSectorRepository(repo inference.SectorRepository) Option {
	return func(o *Options) { o.SectorRepository = repo }
}

// Extract runs the full pipeline over one export and returns the profile.
// It never fails: empty or unrecognizable input produces a profile built
// entirely from the documented defaults.
func Extract(ctx context.Context, lines []string, opts ...Option) *profile.FiscalProfile {
	return ExtractAll(ctx, [][]string{lines}, opts...)
}

// ExtractAll parses and links each source separately, merges the extraction
// results and assembles one combined profile. A company typically hands over
// several ledger families for the same period; merging lets each family
// contribute the records only it carries.
func ExtractAll(ctx context.Context, sources [][]string, opts ...Option) *profile.FiscalProfile {
	res := ParseAll(ctx, sources, opts...)

	options := Options{}
	for _, opt := range opts {
		opt(&options)
	}

	return profile.Assemble(ctx, res, profile.WithSectorRepository(options.SectorRepository))
}

// ParseAll runs the parse and link phases over every source and merges the
// results, without assembling a profile. Callers that want the raw extraction
// output (warnings included) stop here.
func ParseAll(ctx context.Context, sources [][]string, opts ...Option) *record.ExtractionResult {
	options := Options{}
	for _, opt := range opts {
		opt(&options)
	}

	merged := record.NewExtractionResult()
	for _, lines := range sources {
		res := parser.Parse(ctx, lines, parseOptions(options)...)
		linker.Link(ctx, res, resolveFamily(lines, options))
		merged.Merge(res)
	}

	return merged
}

func parseOptions(o Options) []parser.Option {
	var opts []parser.Option
	if o.Family.Valid() {
		opts = append(opts, parser.WithFamily(o.Family))
	}
	if o.DefaultFamily.Valid() {
		opts = append(opts, parser.WithDefaultFamily(o.DefaultFamily))
	}
	return opts
}

// resolveFamily mirrors the parser's family resolution so linking sees the
// same family the parse pass used.
func resolveFamily(lines []string, o Options) parser.Family {
	if o.Family.Valid() {
		return o.Family
	}
	if detected, ok := parser.DetectFamily(lines); ok {
		return detected
	}
	if o.DefaultFamily.Valid() {
		return o.DefaultFamily
	}
	return parser.FamilyFiscal
}
