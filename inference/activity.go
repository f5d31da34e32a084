package inference

import (
	"strconv"
	"strings"

	"github.com/simulatax/fiscalprofile/record"
)

// CFOP codes that indicate the nature of an outbound transaction. Own-
// production sales point at industry, service-style codes at services;
// any other outbound code counts as generic commerce.
var (
	industryCFOPs = map[string]bool{
		"5101": true, "6101": true, // sale of own production
		"5105": true, "6105": true, // own production via third parties
		"5401": true, "6401": true, // own production under tax substitution
	}
	serviceCFOPs = map[string]bool{
		"5932": true, "6932": true,
		"5933": true, "6933": true, // service subject to municipal tax
	}
)

// manufacturingKeywords in item descriptions add weight to the industry vote.
var manufacturingKeywords = []string{
	"FABRICACAO",
	"FABRICADO",
	"PRODUCAO PROPRIA",
	"INDUSTRIALIZACAO",
	"MATERIA PRIMA",
	"MATERIA-PRIMA",
}

// Vote weights for the transaction-code classifier.
const (
	industryCFOPWeight  = 2
	serviceCFOPWeight   = 1
	commerceCFOPWeight  = 1
	manufacturingWeight = 2
)

// ActivityType classifies the company as commerce, industry or services.
// Cascade:
//
//  1. any excise-tax (IPI) ledger record decides industry immediately
//  2. sector-classification code prefix ranges
//  3. industrial-activity indicator from the export header
//  4. weighted vote over the observed transaction codes and item
//     descriptions; industry wins ties, services beats commerce only when
//     strictly greater
//
// Default: commerce.
func ActivityType(res *record.ExtractionResult) string {
	tiers := []tier[string]{
		{name: "ipi-ledger", run: func() (string, bool) {
			if len(res.Taxes["ipi"]) > 0 {
				return ActivityIndustry, true
			}
			return "", false
		}},
		{name: "sector-code", run: func() (string, bool) {
			return activityFromSectorCode(res.Company["sectorCode"])
		}},
		{name: "header-indicator", run: func() (string, bool) {
			// The goods-tax header flags industrial establishments with "0".
			if res.Company["activityInd"] == "0" {
				return ActivityIndustry, true
			}
			return "", false
		}},
		{name: "transaction-vote", run: func() (string, bool) {
			return activityFromVote(res)
		}},
	}

	return firstHit(tiers, ActivityCommerce)
}

// activityFromSectorCode buckets the two-digit sector-classification prefix.
// Extractive and manufacturing divisions (05-39, plus primary production
// 01-03) map to industry, retail/wholesale divisions (45-47) to commerce and
// everything above to services.
func activityFromSectorCode(code string) (string, bool) {
	prefix := sectorPrefix(code)
	if prefix == 0 {
		return "", false
	}
	switch {
	case prefix >= 1 && prefix <= 3:
		return ActivityIndustry, true
	case prefix >= 5 && prefix <= 39:
		return ActivityIndustry, true
	case prefix >= 45 && prefix <= 47:
		return ActivityCommerce, true
	case prefix >= 41:
		return ActivityServices, true
	}
	return "", false
}

// sectorPrefix parses the leading two digits of a sector code, 0 when absent.
func sectorPrefix(code string) int {
	digits := strings.TrimLeft(code, " ")
	if len(digits) < 2 {
		return 0
	}
	n, err := strconv.Atoi(digits[:2])
	if err != nil {
		return 0
	}
	return n
}

// activityFromVote tallies weighted votes over line items and analytic items.
func activityFromVote(res *record.ExtractionResult) (string, bool) {
	if len(res.LineItems) == 0 && len(res.AnalyticItems) == 0 {
		return "", false
	}

	var industry, services, commerce int

	countCFOP := func(cfop string) {
		switch {
		case industryCFOPs[cfop]:
			industry += industryCFOPWeight
		case serviceCFOPs[cfop]:
			services += serviceCFOPWeight
		case strings.HasPrefix(cfop, "5") || strings.HasPrefix(cfop, "6"):
			commerce += commerceCFOPWeight
		}
	}

	for _, item := range res.LineItems {
		countCFOP(item.CFOP)
		descr := normalizeKeywordText(item.Description)
		for _, kw := range manufacturingKeywords {
			if strings.Contains(descr, kw) {
				industry += manufacturingWeight
				break
			}
		}
	}
	for _, item := range res.AnalyticItems {
		countCFOP(item.CFOP)
	}

	other := services
	if commerce > other {
		other = commerce
	}

	switch {
	case industry > 0 && industry >= other:
		return ActivityIndustry, true
	case services > commerce:
		return ActivityServices, true
	case commerce > 0:
		return ActivityCommerce, true
	}
	return "", false
}

// normalizeKeywordText uppercases and strips the accented letters that
// appear in the keyword set.
func normalizeKeywordText(s string) string {
	s = strings.ToUpper(s)
	replacer := strings.NewReplacer("Ç", "C", "Ã", "A", "Á", "A", "É", "E", "Í", "I", "Ô", "O", "Õ", "O", "Ú", "U")
	return replacer.Replace(s)
}
