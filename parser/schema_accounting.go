package parser

import "github.com/simulatax/fiscalprofile/record"

// accountingSchema maps the commercial accounting bookkeeping record codes.
var accountingSchema = map[string]extractor{
	// |0000|LECD|dtIni|dtFin|name|cnpj|uf|ie|mun|im|indSitEsp|...|
	"0000": func(r row) (record.Typed, bool) {
		if len(r) < 7 {
			return nil, false
		}
		return record.Company{
			Name:     r.at(5),
			TaxID:    r.at(6),
			State:    r.at(7),
			StateReg: r.at(8),
		}, true
	},

	// |I050|dtAlt|codNat|indCta|nivel|codCta|codCtaSup|nome|
	"I050": func(r row) (record.Typed, bool) {
		if len(r) < 7 {
			return nil, false
		}
		return &record.ItemCatalog{Code: r.at(6), Description: r.at(8)}, true
	},

	// |I155|codCta|codCcus|sldIni|dcIni|vlDeb|vlCred|sldFin|dcFin|
	"I155": func(r row) (record.Typed, bool) {
		if len(r) < 10 {
			return nil, false
		}
		return &record.BalanceSheetLine{
			AccountCode: r.at(2),
			Balance:     r.dec(8),
			Nature:      r.at(9),
		}, true
	},

	// |I200|numLcto|dtLcto|vlLcto|indLcto|
	"I200": func(r row) (record.Typed, bool) {
		if len(r) < 5 {
			return nil, false
		}
		return &record.Posting{Number: r.at(2), Date: r.date(3), Value: r.dec(4)}, true
	},

	// |I250|codCta|codCcus|vlDc|indDc|numArq|codHist|hist|...|
	"I250": func(r row) (record.Typed, bool) {
		if len(r) < 6 {
			return nil, false
		}
		return &record.PostingEntry{AccountCode: r.at(2), Value: r.dec(4), Nature: r.at(5)}, true
	},

	// |J100|codAgl|nivel|grupo|descr|vlCta|indDc|
	"J100": func(r row) (record.Typed, bool) {
		if len(r) < 8 {
			return nil, false
		}
		return &record.BalanceSheetLine{
			AccountCode: r.at(2),
			Description: r.at(5),
			Balance:     r.dec(6),
			Nature:      r.at(7),
		}, true
	},

	// |J150|codAgl|nivel|descr|vlCta|indDc|
	"J150": func(r row) (record.Typed, bool) {
		if len(r) < 7 {
			return nil, false
		}
		return &record.IncomeStatementLine{
			AccountCode: r.at(2),
			Description: r.at(4),
			Value:       r.dec(5),
			Nature:      r.at(6),
		}, true
	},
}
