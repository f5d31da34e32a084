// Package profile defines the canonical fiscal profile the engine hands to
// the downstream normalization and simulation collaborators, and assembles
// it from the estimator outputs.
//
// Every field of the profile is always present with a defined value; the
// consumer never needs to guard against missing leaves.
package profile

import (
	"github.com/shopspring/decimal"

	"github.com/simulatax/fiscalprofile/inference"
)

// Company identifies the business and its inferred classification.
type Company struct {
	Name            string          `json:"name"`
	TaxID           string          `json:"taxId"`
	MonthlyRevenue  decimal.Decimal `json:"monthlyRevenue"`
	OperatingMargin decimal.Decimal `json:"operatingMargin"`
	ActivityType    string          `json:"activityType"`
	TaxRegime       string          `json:"taxRegime"`
	IVASector       string          `json:"ivaSector"`
}

// TaxComposition is the debit/credit breakdown for one tax with the
// effective rate over monthly revenue and the provenance of the figures.
type TaxComposition struct {
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"`
	Source        string          `json:"source"`
}

// FiscalParameters groups the simulation inputs derived from the tax records.
type FiscalParameters struct {
	OperationType    string                    `json:"operationType"`
	PISCofinsRegime  string                    `json:"pisCofinsRegime"` // cumulative or nonCumulative
	TaxComposition   map[string]TaxComposition `json:"taxComposition"`
	MonthlyTaxBurden decimal.Decimal           `json:"monthlyTaxBurden"`
	BlendedRate      decimal.Decimal           `json:"blendedRate"`
	ExportShare      decimal.Decimal           `json:"exportShare"`
}

// FinancialCycle carries the working-capital cycle estimates in days plus
// the sales payment split.
type FinancialCycle struct {
	ReceivableDays     int             `json:"receivableDays"`
	PayableDays        int             `json:"payableDays"`
	InventoryDays      int             `json:"inventoryDays"`
	CashSalesShare     decimal.Decimal `json:"cashSalesShare"`
	TermSalesShare     decimal.Decimal `json:"termSalesShare"`
	WorkingCapitalNeed decimal.Decimal `json:"workingCapitalNeed"`
}

// FiscalProfile is the engine's single canonical output.
type FiscalProfile struct {
	Company          Company          `json:"company"`
	FiscalParameters FiscalParameters `json:"fiscalParameters"`
	FinancialCycle   FinancialCycle   `json:"financialCycle"`
}

// regimeNames maps the regime classification to the PIS/COFINS method name.
var pisCofinsRegimeNames = map[string]string{
	inference.RegimeReal:      "nonCumulative",
	inference.RegimePresumido: "cumulative",
	inference.RegimeSimples:   "unified",
}
