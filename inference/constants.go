package inference

import "github.com/shopspring/decimal"

// Classification values emitted by the estimators. The downstream simulation
// consumes these exact strings.
const (
	ActivityCommerce = "commerce"
	ActivityIndustry = "industry"
	ActivityServices = "services"

	RegimeSimples   = "simples"
	RegimePresumido = "presumido"
	RegimeReal      = "real"

	OperationB2B   = "b2b"
	OperationB2C   = "b2c"
	OperationMixed = "mixed"
)

// Provenance tags for per-tax figures.
const (
	SourceLedger    = "ledger"    // summed from explicit ledger records
	SourceEstimated = "estimated" // estimated from revenue and default rates
	SourceNone      = "none"      // no records and no revenue to estimate from
)

// Business default assumptions. These are hard-coded estimates without a
// cited source in the tax literature; they exist to pre-populate a simulation
// with plausible figures when the export carries no authoritative ones. Keep
// them named and in one place so a domain correction touches exactly one
// line.
var (
	// MonthsPerYear divides annual figures into monthly ones.
	MonthsPerYear = decimal.NewFromInt(12)

	// DefaultOperatingMargin is assumed when no income statement is present.
	DefaultOperatingMargin = decimal.RequireFromString("0.15")

	// ICMSDefaultRate and ICMSDebitBaseShare estimate the goods-tax debit as
	// 18% over 60% of revenue; ICMSCreditBaseShare assumes inputs at 40%.
	ICMSDefaultRate     = decimal.RequireFromString("0.18")
	ICMSDebitBaseShare  = decimal.RequireFromString("0.60")
	ICMSCreditBaseShare = decimal.RequireFromString("0.40")

	// IPIDefaultRate over IPIDebitBaseShare of revenue, industry only.
	IPIDefaultRate     = decimal.RequireFromString("0.10")
	IPIDebitBaseShare  = decimal.RequireFromString("0.40")
	IPICreditBaseShare = decimal.RequireFromString("0.20")

	// ISSDefaultRate applies over full revenue, services only.
	ISSDefaultRate = decimal.RequireFromString("0.05")

	// PIS/COFINS default rates per regime. Non-cumulative credits are assumed
	// over PISCofinsCreditBaseShare of revenue.
	PISRateReal              = decimal.RequireFromString("0.0165")
	PISRateCumulative        = decimal.RequireFromString("0.0065")
	COFINSRateReal           = decimal.RequireFromString("0.076")
	COFINSRateCumulative     = decimal.RequireFromString("0.03")
	PISCofinsCreditBaseShare = decimal.RequireFromString("0.40")

	// CreditRateRegimeThreshold splits real from presumido when only credit
	// aliquots are observable (percent units, as carried by the records).
	CreditRateRegimeThreshold = decimal.RequireFromString("1.0")

	// Financial-cycle defaults and clamps. Day estimates stay inside
	// [MinCycleDays, MaxCycleDays]; the cash share inside
	// [MinCashShare, MaxCashShare].
	DefaultCycleDays = 30
	MinCycleDays     = 1
	MaxCycleDays     = 180

	DefaultCashShare = decimal.RequireFromString("0.30")
	MinCashShare     = decimal.RequireFromString("0.05")
	MaxCashShare     = decimal.RequireFromString("0.95")

	// Payables and inventory flows are proxied as shares of monthly revenue.
	PayablesFlowShare  = decimal.RequireFromString("0.60")
	InventoryFlowShare = decimal.RequireFromString("0.70")

	// WorkingCapitalSafetyMultiplier pads the computed additional
	// working-capital need.
	WorkingCapitalSafetyMultiplier = decimal.RequireFromString("1.2")
)

// minOutboundDocsForOperation is how many outbound documents the operation
// classifier needs before trusting a percentage split.
const minOutboundDocsForOperation = 5

// Operation-type percentage cut points.
var (
	b2bShareFloor   = decimal.RequireFromString("0.80")
	b2cShareCeiling = decimal.RequireFromString("0.20")
)

// Document model codes. Model 55 is the invoice-style electronic document
// (corporate counterparties); 65 and 59 are the consumer receipt-style ones.
const (
	modelInvoice     = "55"
	modelReceipt     = "65"
	modelPOSReceipt  = "59"
	paymentIndCash   = "0"
	directionOutward = "0"
)
