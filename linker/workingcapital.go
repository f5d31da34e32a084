package linker

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/simulatax/fiscalprofile/record"
)

// Account-code prefixes of the working-capital groups in the standard
// commercial chart of accounts. Dots in the source codes are stripped before
// the prefix check, so both "1.1.2.01" and "11201" match.
const (
	clientsPrefix   = "112"
	inventoryPrefix = "113"
	suppliersPrefix = "211"
)

// deriveWorkingCapital sums the accounting family's balance collections into
// the working-capital and statement subtotals the financial-cycle and margin
// estimators consume. Asset balances count with debit nature, liability
// balances with credit nature; contra-nature balances reduce the group.
func deriveWorkingCapital(res *record.ExtractionResult) {
	if len(res.BalanceSheetLines) == 0 && len(res.IncomeStatementLines) == 0 {
		return
	}

	agg := &res.Aggregates

	for _, line := range res.BalanceSheetLines {
		code := strings.ReplaceAll(line.AccountCode, ".", "")
		switch {
		case strings.HasPrefix(code, clientsPrefix):
			agg.ClientsBalance = agg.ClientsBalance.Add(signed(line.Balance, line.Nature, "D"))
		case strings.HasPrefix(code, inventoryPrefix):
			agg.InventoryBalance = agg.InventoryBalance.Add(signed(line.Balance, line.Nature, "D"))
		case strings.HasPrefix(code, suppliersPrefix):
			agg.SuppliersBalance = agg.SuppliersBalance.Add(signed(line.Balance, line.Nature, "C"))
		}
	}

	// Net and gross revenue lines accumulate separately so their relative
	// order in the statement does not matter; net wins whenever present.
	var netRevenue, grossRevenue decimal.Decimal
	var sawNetRevenue bool

	for _, line := range res.IncomeStatementLines {
		descr := normalizeDescription(line.Description)
		code := strings.ReplaceAll(line.AccountCode, ".", "")

		switch {
		case strings.Contains(descr, "RECEITA LIQUIDA"):
			netRevenue = netRevenue.Add(signed(line.Value, line.Nature, "C"))
			sawNetRevenue = true
		case strings.Contains(descr, "RECEITA") || strings.HasPrefix(code, "31"):
			grossRevenue = grossRevenue.Add(signed(line.Value, line.Nature, "C"))
		case strings.Contains(descr, "RESULTADO OPERACIONAL"):
			agg.OperatingResult = agg.OperatingResult.Add(signed(line.Value, line.Nature, "C"))
		}
	}

	if sawNetRevenue {
		agg.RevenueSubtotal = netRevenue
	} else {
		agg.RevenueSubtotal = grossRevenue
	}
	agg.HasWorkingCapital = true
}

// signed returns the balance as positive when its nature matches the group's
// natural side and negative otherwise.
func signed(value decimal.Decimal, nature, natural string) decimal.Decimal {
	if nature == "" || strings.EqualFold(nature, natural) {
		return value
	}
	return value.Neg()
}

// normalizeDescription uppercases and strips the accents that matter for the
// statement-line keywords.
func normalizeDescription(s string) string {
	s = strings.ToUpper(s)
	replacer := strings.NewReplacer("Í", "I", "É", "E", "Ã", "A", "Á", "A", "Ç", "C", "Ô", "O", "Õ", "O", "Ú", "U")
	return replacer.Replace(s)
}
