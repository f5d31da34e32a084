package parser

import "github.com/simulatax/fiscalprofile/record"

// contributionsSchema maps the PIS/COFINS contributions record codes. Credit
// and debit records exist twice (M1xx for PIS, M5xx/M6xx for COFINS) with
// identical layouts, so both share builders parameterized by tax category.
var contributionsSchema = map[string]extractor{
	// |0000|ver|tipoEscrit|indSitEsp|numRecAnt|dtIni|dtFin|name|cnpj|uf|mun|suframa|natPj|indAtiv|
	"0000": func(r row) (record.Typed, bool) {
		if len(r) < 10 {
			return nil, false
		}
		return record.Company{
			Name:  r.at(8),
			TaxID: r.at(9),
			State: r.at(10),
		}, true
	},

	// |0110|codIncTrib|indAproCred|codTipoCont|indRegCum|
	"0110": func(r row) (record.Typed, bool) {
		if len(r) < 3 {
			return nil, false
		}
		return &record.RegimeDeclaration{Category: "incidencia", Method: r.at(2)}, true
	},

	// |0140|codEst|name|cnpj|uf|ie|mun|im|suframa|
	"0140": func(r row) (record.Typed, bool) {
		if len(r) < 6 {
			return nil, false
		}
		return record.Company{
			Name:     r.at(3),
			TaxID:    r.at(4),
			State:    r.at(5),
			StateReg: r.at(6),
		}, true
	},

	// |A170|numItem|codItem|descr|vlItem|vlDesc|natBc|indOrig|cstPis|vlBcPis|aliqPis|vlPis|...|
	"A170": func(r row) (record.Typed, bool) {
		if len(r) < 10 {
			return nil, false
		}
		return &record.AnalyticItem{
			TaxSituation: r.at(9),
			Base:         r.dec(10),
			Rate:         r.dec(11),
			Tax:          r.dec(12),
		}, true
	},

	"M100": creditExtractor("pis"),
	"M105": creditDetailExtractor("pis"),
	"M200": debitExtractor("pis"),
	"M400": untaxedRevenueExtractor("pis"),
	"M500": creditExtractor("cofins"),
	"M505": creditDetailExtractor("cofins"),
	"M600": debitExtractor("cofins"),
	"M800": untaxedRevenueExtractor("cofins"),

	// |F600|indNatRet|dtRet|vlBcRet|vlRet|...|
	"F600": func(r row) (record.Typed, bool) {
		if len(r) < 6 {
			return nil, false
		}
		return &record.Adjustment{Category: "retencao", Code: r.at(2), Value: r.dec(5)}, true
	},
}

// creditExtractor builds the extractor for |Mx00|codCred|indOrig|vlBc|aliq|qtBc|aliqQuant|vlCred|...|
func creditExtractor(category string) extractor {
	return func(r row) (record.Typed, bool) {
		if len(r) < 9 {
			return nil, false
		}
		return &record.Credit{
			Category: category,
			Code:     r.at(2),
			Base:     r.dec(4),
			Rate:     r.dec(5),
			Value:    r.dec(8),
		}, true
	}
}

// creditDetailExtractor builds the extractor for |Mx05|natBcCred|cst|vlBcTot|vlBcCum|vlBcNc|vlBc|...|
func creditDetailExtractor(category string) extractor {
	return func(r row) (record.Typed, bool) {
		if len(r) < 5 {
			return nil, false
		}
		return &record.CreditDetail{
			Category: category,
			Origin:   r.at(2),
			Base:     r.dec(4),
			Value:    r.dec(7),
		}, true
	}
}

// debitExtractor builds the extractor for |Mx00|vlContNcPer|...| (contribution due).
func debitExtractor(category string) extractor {
	return func(r row) (record.Typed, bool) {
		if len(r) < 3 {
			return nil, false
		}
		return &record.Debit{Category: category, Value: r.dec(2)}, true
	}
}

// untaxedRevenueExtractor builds the extractor for |Mx00|cst|vlTotRec|conta|descr|.
func untaxedRevenueExtractor(category string) extractor {
	return func(r row) (record.Typed, bool) {
		if len(r) < 4 {
			return nil, false
		}
		return &record.UntaxedRevenue{Category: category, Value: r.dec(3)}, true
	}
}
