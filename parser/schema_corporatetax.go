package parser

import "github.com/simulatax/fiscalprofile/record"

// corporateTaxSchema maps the corporate income tax bookkeeping record codes.
var corporateTaxSchema = map[string]extractor{
	// |0000|LECF|ver|cnpj|name|indSitIni|...|
	"0000": func(r row) (record.Typed, bool) {
		if len(r) < 6 {
			return nil, false
		}
		return record.Company{
			TaxID: r.at(4),
			Name:  r.at(5),
		}, true
	},

	// |0010|hash|optRefis|optPaes|formaTrib|formaApur|...|
	// formaTrib is the computation-method code: 1-3 real variants, 4 presumido.
	"0010": func(r row) (record.Typed, bool) {
		if len(r) < 6 {
			return nil, false
		}
		return &record.RegimeDeclaration{Category: "apuracao", Method: r.at(5)}, true
	},

	// |0030|codNat|cnae|end...|
	"0030": func(r row) (record.Typed, bool) {
		if len(r) < 4 {
			return nil, false
		}
		return record.Company{SectorCode: r.at(3)}, true
	},

	// |N630|base|vlDevido|...|
	"N630": func(r row) (record.Typed, bool) {
		if len(r) < 4 {
			return nil, false
		}
		return &record.TaxEntry{Category: "irpj", Base: r.dec(2), Debits: r.dec(3)}, true
	},

	// |N660|base|vlDevido|...|
	"N660": func(r row) (record.Typed, bool) {
		if len(r) < 4 {
			return nil, false
		}
		return &record.TaxEntry{Category: "csll", Base: r.dec(2), Debits: r.dec(3)}, true
	},

	// |X280|codIncentivo|vlIncentivo|...|
	"X280": func(r row) (record.Typed, bool) {
		if len(r) < 4 {
			return nil, false
		}
		return &record.TaxIncentive{Code: r.at(2), Value: r.dec(3)}, true
	},

	// |Y540|cnpjEstab|vlRecBruta|cnae|vlRecExport|
	"Y540": func(r row) (record.Typed, bool) {
		if len(r) < 5 {
			return nil, false
		}
		return &record.DiscriminatedRevenue{
			Value:      r.dec(3),
			SectorCode: r.at(4),
			Exported:   r.dec(5),
		}, true
	},
}
