package profile

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/simulatax/fiscalprofile/inference"
	"github.com/simulatax/fiscalprofile/record"
	"github.com/simulatax/fiscalprofile/telemetry"
)

// Options configure assembly.
type Options struct {
	// SectorRepository optionally resolves sector tags by classification code.
	SectorRepository inference.SectorRepository
}

// Option mutates assembly options.
type Option func(*Options)

// WithSectorRepository wires the optional sector lookup collaborator.
func WithSectorRepository(repo inference.SectorRepository) Option {
	return func(o *Options) { o.SectorRepository = repo }
}

// Assemble runs every estimator over a linked extraction result and composes
// the canonical profile. It never fails: an empty result produces a profile
// populated entirely with the documented defaults.
func Assemble(ctx context.Context, res *record.ExtractionResult, opts ...Option) *FiscalProfile {
	options := Options{}
	for _, opt := range opts {
		opt(&options)
	}

	timer := telemetry.StartTimer(ctx, "assemble")
	defer timer.End()

	if res == nil {
		res = record.NewExtractionResult()
	}

	revenue := inference.MonthlyRevenue(res)
	activity := inference.ActivityType(res)
	regime := inference.TaxRegime(res)
	sector := inference.Sector(res, activity, options.SectorRepository)
	operation := inference.OperationType(res)
	margin := inference.OperatingMargin(res)
	taxes := inference.TaxComposition(res, revenue, activity, regime)
	cycle := inference.Cycle(res, revenue)

	composition := make(map[string]TaxComposition, len(taxes))
	var burden decimal.Decimal
	for name, figures := range taxes {
		net := figures.Debit.Sub(figures.Credit)
		if net.IsNegative() {
			net = decimal.Zero
		}
		burden = burden.Add(net)
		composition[name] = TaxComposition{
			Debit:         figures.Debit,
			Credit:        figures.Credit,
			EffectiveRate: safeRate(figures.Debit, revenue),
			Source:        figures.Source,
		}
	}

	return &FiscalProfile{
		Company: Company{
			Name:            res.Company["name"],
			TaxID:           res.Company["taxId"],
			MonthlyRevenue:  revenue,
			OperatingMargin: margin,
			ActivityType:    activity,
			TaxRegime:       regime,
			IVASector:       sector,
		},
		FiscalParameters: FiscalParameters{
			OperationType:    operation,
			PISCofinsRegime:  pisCofinsRegimeNames[regime],
			TaxComposition:   composition,
			MonthlyTaxBurden: burden,
			BlendedRate:      safeRate(burden, revenue),
			ExportShare:      res.Aggregates.ExportShare,
		},
		FinancialCycle: FinancialCycle{
			ReceivableDays:     cycle.ReceivableDays,
			PayableDays:        cycle.PayableDays,
			InventoryDays:      cycle.InventoryDays,
			CashSalesShare:     cycle.CashShare,
			TermSalesShare:     cycle.TermShare,
			WorkingCapitalNeed: cycle.WorkingCapitalNeed,
		},
	}
}

// safeRate divides by monthly revenue, emitting zero instead of dividing by
// zero so a no-data profile stays well-formed.
func safeRate(value, revenue decimal.Decimal) decimal.Decimal {
	if !revenue.IsPositive() {
		return decimal.Zero
	}
	return value.DivRound(revenue, 6)
}
