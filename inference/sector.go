package inference

import "github.com/simulatax/fiscalprofile/record"

// SectorRepository is an optional collaborator that resolves richer sector
// metadata by sector-classification code. The engine's fixed mapping is the
// fallback when the lookup is unavailable or misses.
type SectorRepository interface {
	SectorFor(code string) (string, bool)
}

// sectorByPrefix maps the leading two digits of the sector-classification
// code to the dual-VAT sector tag.
var sectorByPrefix = map[int]string{
	1: "agriculture", 2: "agriculture", 3: "agriculture",
	5: "industry", 6: "industry", 7: "industry", 8: "industry", 9: "industry",
	10: "food", 11: "food",
	19: "fuel",
	21: "pharma",
	35: "energy",
	41: "construction", 42: "construction", 43: "construction",
	45: "commerce", 46: "commerce", 47: "commerce",
	49: "transport", 50: "transport", 51: "transport", 52: "transport", 53: "transport",
	55: "hospitality", 56: "hospitality",
	58: "technology", 59: "technology", 60: "technology",
	61: "technology", 62: "technology", 63: "technology",
	64: "financial", 65: "financial", 66: "financial",
	85: "education",
	86: "health", 87: "health", 88: "health",
}

// Manufacturing divisions not listed above still map to the generic industry
// tag; see sectorFromPrefix.

// Sector resolves the dual-VAT sector tag. Cascade: the repository
// collaborator (when configured), the fixed prefix table, then a coarse
// mapping from the already-computed activity type. Default: commerce.
func Sector(res *record.ExtractionResult, activity string, repo SectorRepository) string {
	code := res.Company["sectorCode"]

	tiers := []tier[string]{
		{name: "repository", run: func() (string, bool) {
			if repo == nil || code == "" {
				return "", false
			}
			return repo.SectorFor(code)
		}},
		{name: "prefix-table", run: func() (string, bool) {
			return sectorFromPrefix(code)
		}},
		{name: "activity-fallback", run: func() (string, bool) {
			switch activity {
			case ActivityIndustry:
				return "industry", true
			case ActivityServices:
				return "services", true
			}
			return "", false
		}},
	}

	return firstHit(tiers, "commerce")
}

func sectorFromPrefix(code string) (string, bool) {
	prefix := sectorPrefix(code)
	if prefix == 0 {
		return "", false
	}
	if tag, ok := sectorByPrefix[prefix]; ok {
		return tag, true
	}
	if prefix >= 12 && prefix <= 33 {
		return "industry", true
	}
	return "", false
}
