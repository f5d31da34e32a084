package parser

import "github.com/simulatax/fiscalprofile/record"

// fiscalSchema maps the goods-tax bookkeeping record codes. Field positions
// follow the published record layouts; only the fields the inference engine
// consumes are extracted.
var fiscalSchema = map[string]extractor{
	// |0000|ver|fin|dtIni|dtFin|name|cnpj|cpf|uf|ie|mun|im|suframa|perfil|indAtiv|
	"0000": func(r row) (record.Typed, bool) {
		if len(r) < 11 {
			return nil, false
		}
		return record.Company{
			Name:        r.at(6),
			TaxID:       firstNonEmpty(r.at(7), r.at(8)),
			State:       r.at(9),
			StateReg:    r.at(10),
			ActivityInd: r.at(15),
		}, true
	},

	// |0150|codPart|name|pais|cnpj|cpf|ie|mun|suframa|...|
	"0150": func(r row) (record.Typed, bool) {
		if len(r) < 4 {
			return nil, false
		}
		return &record.Participant{
			Code:  r.at(2),
			Name:  r.at(3),
			TaxID: firstNonEmpty(r.at(5), r.at(6)),
		}, true
	},

	// |0200|codItem|descr|...|
	"0200": func(r row) (record.Typed, bool) {
		if len(r) < 4 {
			return nil, false
		}
		return &record.ItemCatalog{Code: r.at(2), Description: r.at(3)}, true
	},

	// |C100|indOper|indEmit|codPart|mod|sit|ser|num|chave|dtDoc|dtES|vlDoc|indPgto|vlDesc|vlAbat|vlMerc|...|
	"C100": func(r row) (record.Typed, bool) {
		if len(r) < 13 {
			return nil, false
		}
		return &record.Document{
			Direction:       r.at(2),
			ParticipantCode: r.at(4),
			Model:           r.at(5),
			Situation:       r.at(6),
			Series:          r.at(7),
			Number:          r.at(8),
			Date:            r.date(10),
			Total:           r.dec(12),
			PaymentInd:      r.at(13),
			GoodsTotal:      r.dec(16),
		}, true
	},

	// |C170|numItem|codItem|descr|qtd|unid|vlItem|vlDesc|indMov|cstIcms|cfop|...|
	// Owning-document identity is stamped by the parser from the preceding C100.
	"C170": func(r row) (record.Typed, bool) {
		if len(r) < 8 {
			return nil, false
		}
		return &record.LineItem{
			ItemCode:     r.at(3),
			Description:  r.at(4),
			Quantity:     r.dec(5),
			Value:        r.dec(7),
			TaxSituation: r.at(10),
			CFOP:         r.at(11),
		}, true
	},

	// |C190|cstIcms|cfop|aliq|vlOpr|vlBc|vlIcms|...|
	"C190": func(r row) (record.Typed, bool) {
		if len(r) < 8 {
			return nil, false
		}
		return &record.AnalyticItem{
			TaxSituation: r.at(2),
			CFOP:         r.at(3),
			Rate:         r.dec(4),
			Operation:    r.dec(5),
			Base:         r.dec(6),
			Tax:          r.dec(7),
		}, true
	},

	// |E110|vlDebitos|ajDeb|totAjDeb|estCred|vlCreditos|ajCred|totAjCred|estDeb|sldAnt|sldApurado|...|
	"E110": func(r row) (record.Typed, bool) {
		if len(r) < 7 {
			return nil, false
		}
		return &record.TaxEntry{
			Category: "icms",
			Debits:   r.dec(2),
			Credits:  r.dec(6),
			Balance:  r.dec(11),
		}, true
	},

	// |E111|codAj|descr|vlAj|
	"E111": func(r row) (record.Typed, bool) {
		if len(r) < 5 {
			return nil, false
		}
		return &record.Adjustment{Category: "icms", Code: r.at(2), Value: r.dec(4)}, true
	},

	// |E520|sldAnt|vlDeb|vlCred|od|oc|sc|sd|
	"E520": func(r row) (record.Typed, bool) {
		if len(r) < 5 {
			return nil, false
		}
		return &record.TaxEntry{
			Category: "ipi",
			Debits:   r.dec(3),
			Credits:  r.dec(4),
			Balance:  r.dec(8),
		}, true
	},

	// |E530|indAj|vlAj|codAj|...|
	"E530": func(r row) (record.Typed, bool) {
		if len(r) < 5 {
			return nil, false
		}
		return &record.Adjustment{Category: "ipi", Code: r.at(4), Value: r.dec(3)}, true
	},

	// |H010|codItem|unid|qtd|vlUnit|vlItem|indProp|...|
	"H010": func(r row) (record.Typed, bool) {
		if len(r) < 7 {
			return nil, false
		}
		return &record.InventoryLine{
			ItemCode: r.at(2),
			Quantity: r.dec(4),
			Value:    r.dec(6),
		}, true
	},
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
