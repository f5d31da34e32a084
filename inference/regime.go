package inference

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/simulatax/fiscalprofile/record"
)

// Computation-method codes from the corporate-tax declaration: 1-3 are the
// real-profit variants, 4 is presumed profit.
var computationMethodRegimes = map[string]string{
	"1": RegimeReal,
	"2": RegimeReal,
	"3": RegimeReal,
	"4": RegimePresumido,
}

// Incidence-method codes from the contributions declaration: 1 is the
// non-cumulative method (real), 2 the cumulative one (presumido). Code 3
// (both methods) carries no signal.
var incidenceMethodRegimes = map[string]string{
	"1": RegimeReal,
	"2": RegimePresumido,
}

// simplesSituationCodes are the transaction tax-situation codes only Simples
// filers emit.
var simplesSituationCodes = map[string]bool{
	"101": true, "102": true, "201": true, "202": true, "500": true, "900": true,
}

// TaxRegime classifies the taxation regime. Cascade:
//
//  1. explicit corporate-tax computation-method code
//  2. contributions incidence-method code
//  3. explicit company-level regime flag
//  4. presence of Simples-specific tax ledger entries
//  5. observed PIS/COFINS credit aliquot when credits exist for both taxes
//  6. Simples-typical tax-situation codes on analytic items
//
// Default: presumido.
func TaxRegime(res *record.ExtractionResult) string {
	tiers := []tier[string]{
		{name: "computation-method", run: func() (string, bool) {
			return regimeFromDeclarations(res.RegimeDeclarations["apuracao"], computationMethodRegimes)
		}},
		{name: "incidence-method", run: func() (string, bool) {
			return regimeFromDeclarations(res.RegimeDeclarations["incidencia"], incidenceMethodRegimes)
		}},
		{name: "company-flag", run: func() (string, bool) {
			return regimeFromCompanyFlag(res.Company["regimeFlag"])
		}},
		{name: "simples-ledger", run: func() (string, bool) {
			if len(res.Taxes["simples"]) > 0 {
				return RegimeSimples, true
			}
			return "", false
		}},
		{name: "credit-aliquot", run: func() (string, bool) {
			return regimeFromCreditRate(res)
		}},
		{name: "simples-situation-codes", run: func() (string, bool) {
			for _, item := range res.AnalyticItems {
				if simplesSituationCodes[item.TaxSituation] {
					return RegimeSimples, true
				}
			}
			return "", false
		}},
	}

	return firstHit(tiers, RegimePresumido)
}

func regimeFromDeclarations(decls []*record.RegimeDeclaration, mapping map[string]string) (string, bool) {
	for _, decl := range decls {
		if regime, ok := mapping[decl.Method]; ok {
			return regime, true
		}
	}
	return "", false
}

func regimeFromCompanyFlag(flag string) (string, bool) {
	switch strings.ToLower(flag) {
	case "1", "2", RegimeSimples:
		// Tax-regime codes 1 and 2 are the Simples brackets.
		return RegimeSimples, true
	case RegimePresumido:
		return RegimePresumido, true
	case "3", RegimeReal:
		return RegimeReal, true
	}
	return "", false
}

// regimeFromCreditRate infers the regime from the observed credit aliquot:
// non-cumulative-style credits above the threshold only exist under real.
// Needs credits for both contribution taxes to avoid reading a lone
// exceptional credit as a regime.
func regimeFromCreditRate(res *record.ExtractionResult) (string, bool) {
	pis := res.Credits["pis"]
	cofins := res.Credits["cofins"]
	if len(pis) == 0 || len(cofins) == 0 {
		return "", false
	}

	rate := observedCreditRate(pis)
	if rate.IsZero() {
		return "", false
	}
	if rate.GreaterThan(CreditRateRegimeThreshold) {
		return RegimeReal, true
	}
	return RegimePresumido, true
}

// observedCreditRate prefers the value/base ratio (in percent) and falls back
// to the average declared aliquot.
func observedCreditRate(credits []*record.Credit) decimal.Decimal {
	var base, value, rateSum decimal.Decimal
	rated := 0
	for _, c := range credits {
		base = base.Add(c.Base)
		value = value.Add(c.Value)
		if c.Rate.IsPositive() {
			rateSum = rateSum.Add(c.Rate)
			rated++
		}
	}
	if base.IsPositive() && value.IsPositive() {
		return value.DivRound(base, 6).Mul(decimal.NewFromInt(100))
	}
	if rated > 0 {
		return rateSum.DivRound(decimal.NewFromInt(int64(rated)), 6)
	}
	return decimal.Zero
}
