package record

import "github.com/shopspring/decimal"

// Warning reports a structural problem with a single source line. Warnings are
// collected on the result rather than logged, so callers decide how to render
// them.
type Warning struct {
	Line    int // 1-based source line number
	Code    string
	Message string
}

// Aggregates holds the linker-derived figures the inference engine consumes.
// Fields stay at their zero value when the owning family collections carry no
// usable data; HasWorkingCapital and HasEffectiveRates flag which passes ran
// with signal so that legitimate zero balances are not mistaken for "missing".
type Aggregates struct {
	// Accounting family: working-capital balances and statement subtotals.
	ClientsBalance    decimal.Decimal
	SuppliersBalance  decimal.Decimal
	InventoryBalance  decimal.Decimal
	RevenueSubtotal   decimal.Decimal
	OperatingResult   decimal.Decimal
	HasWorkingCapital bool

	// Corporate-tax family: declared revenue and observed effective rates.
	AnnualGrossRevenue decimal.Decimal
	EffectiveIRPJRate  decimal.Decimal
	EffectiveCSLLRate  decimal.Decimal
	ExportShare        decimal.Decimal
	HasEffectiveRates  bool
}

// ExtractionResult accumulates every typed record of one parse pass. It is
// owned by a single parse invocation and must never be shared between
// concurrent parses.
type ExtractionResult struct {
	Company map[string]string

	Documents     []*Document
	LineItems     []*LineItem
	AnalyticItems []*AnalyticItem
	Participants  []*Participant

	Taxes              map[string][]*TaxEntry
	Credits            map[string][]*Credit
	CreditDetails      map[string][]*CreditDetail
	Debits             map[string][]*Debit
	Adjustments        map[string][]*Adjustment
	UntaxedRevenue     map[string][]*UntaxedRevenue
	RegimeDeclarations map[string][]*RegimeDeclaration

	BalanceSheetLines    []*BalanceSheetLine
	IncomeStatementLines []*IncomeStatementLine
	Postings             []*Posting
	PostingEntries       []*PostingEntry
	InventoryLines       []*InventoryLine
	Incentives           []*TaxIncentive
	DiscriminatedRevenue []*DiscriminatedRevenue
	ItemCatalog          []*ItemCatalog

	Aggregates Aggregates
	Warnings   []Warning
}

// NewExtractionResult returns an empty, well-formed result. All maps are
// allocated so that an empty file still yields a usable structure.
func NewExtractionResult() *ExtractionResult {
	return &ExtractionResult{
		Company:            make(map[string]string),
		Taxes:              make(map[string][]*TaxEntry),
		Credits:            make(map[string][]*Credit),
		CreditDetails:      make(map[string][]*CreditDetail),
		Debits:             make(map[string][]*Debit),
		Adjustments:        make(map[string][]*Adjustment),
		UntaxedRevenue:     make(map[string][]*UntaxedRevenue),
		RegimeDeclarations: make(map[string][]*RegimeDeclaration),
	}
}

// Add routes a typed record into its destination collection. Company records
// are shallow-merged so later sources can add fields without erasing earlier
// ones; category records create their bucket lazily.
func (r *ExtractionResult) Add(t Typed) {
	switch rec := t.(type) {
	case Company:
		r.mergeCompany(rec)
	case *Document:
		r.Documents = append(r.Documents, rec)
	case *LineItem:
		r.LineItems = append(r.LineItems, rec)
	case *AnalyticItem:
		r.AnalyticItems = append(r.AnalyticItems, rec)
	case *Participant:
		r.Participants = append(r.Participants, rec)
	case *TaxEntry:
		r.Taxes[rec.Category] = append(r.Taxes[rec.Category], rec)
	case *Credit:
		r.Credits[rec.Category] = append(r.Credits[rec.Category], rec)
	case *CreditDetail:
		r.CreditDetails[rec.Category] = append(r.CreditDetails[rec.Category], rec)
	case *Debit:
		r.Debits[rec.Category] = append(r.Debits[rec.Category], rec)
	case *Adjustment:
		r.Adjustments[rec.Category] = append(r.Adjustments[rec.Category], rec)
	case *UntaxedRevenue:
		r.UntaxedRevenue[rec.Category] = append(r.UntaxedRevenue[rec.Category], rec)
	case *RegimeDeclaration:
		r.RegimeDeclarations[rec.Category] = append(r.RegimeDeclarations[rec.Category], rec)
	case *BalanceSheetLine:
		r.BalanceSheetLines = append(r.BalanceSheetLines, rec)
	case *IncomeStatementLine:
		r.IncomeStatementLines = append(r.IncomeStatementLines, rec)
	case *Posting:
		r.Postings = append(r.Postings, rec)
	case *PostingEntry:
		r.PostingEntries = append(r.PostingEntries, rec)
	case *InventoryLine:
		r.InventoryLines = append(r.InventoryLines, rec)
	case *TaxIncentive:
		r.Incentives = append(r.Incentives, rec)
	case *DiscriminatedRevenue:
		r.DiscriminatedRevenue = append(r.DiscriminatedRevenue, rec)
	case *ItemCatalog:
		r.ItemCatalog = append(r.ItemCatalog, rec)
	}
}

// mergeCompany applies last-writer-wins per field, skipping empty values.
func (r *ExtractionResult) mergeCompany(c Company) {
	set := func(key, val string) {
		if val != "" {
			r.Company[key] = val
		}
	}
	set("name", c.Name)
	set("taxId", c.TaxID)
	set("stateReg", c.StateReg)
	set("state", c.State)
	set("sectorCode", c.SectorCode)
	set("regimeFlag", c.RegimeFlag)
	set("activityInd", c.ActivityInd)
}

// Warn records a structural warning for one source line.
func (r *ExtractionResult) Warn(line int, code, message string) {
	r.Warnings = append(r.Warnings, Warning{Line: line, Code: code, Message: message})
}

// Merge combines another result into r: collections are concatenated and
// company fields follow first-non-empty-wins, so the file parsed first keeps
// authority over identification data. Aggregates follow the same rule per
// family pass.
func (r *ExtractionResult) Merge(other *ExtractionResult) {
	if other == nil {
		return
	}

	for k, v := range other.Company {
		if _, ok := r.Company[k]; !ok && v != "" {
			r.Company[k] = v
		}
	}

	r.Documents = append(r.Documents, other.Documents...)
	r.LineItems = append(r.LineItems, other.LineItems...)
	r.AnalyticItems = append(r.AnalyticItems, other.AnalyticItems...)
	r.Participants = append(r.Participants, other.Participants...)
	r.BalanceSheetLines = append(r.BalanceSheetLines, other.BalanceSheetLines...)
	r.IncomeStatementLines = append(r.IncomeStatementLines, other.IncomeStatementLines...)
	r.Postings = append(r.Postings, other.Postings...)
	r.PostingEntries = append(r.PostingEntries, other.PostingEntries...)
	r.InventoryLines = append(r.InventoryLines, other.InventoryLines...)
	r.Incentives = append(r.Incentives, other.Incentives...)
	r.DiscriminatedRevenue = append(r.DiscriminatedRevenue, other.DiscriminatedRevenue...)
	r.ItemCatalog = append(r.ItemCatalog, other.ItemCatalog...)
	r.Warnings = append(r.Warnings, other.Warnings...)

	mergeCat(r.Taxes, other.Taxes)
	mergeCat(r.Credits, other.Credits)
	mergeCat(r.CreditDetails, other.CreditDetails)
	mergeCat(r.Debits, other.Debits)
	mergeCat(r.Adjustments, other.Adjustments)
	mergeCat(r.UntaxedRevenue, other.UntaxedRevenue)
	mergeCat(r.RegimeDeclarations, other.RegimeDeclarations)

	if !r.Aggregates.HasWorkingCapital && other.Aggregates.HasWorkingCapital {
		r.Aggregates.ClientsBalance = other.Aggregates.ClientsBalance
		r.Aggregates.SuppliersBalance = other.Aggregates.SuppliersBalance
		r.Aggregates.InventoryBalance = other.Aggregates.InventoryBalance
		r.Aggregates.RevenueSubtotal = other.Aggregates.RevenueSubtotal
		r.Aggregates.OperatingResult = other.Aggregates.OperatingResult
		r.Aggregates.HasWorkingCapital = true
	}
	if !r.Aggregates.HasEffectiveRates && other.Aggregates.HasEffectiveRates {
		r.Aggregates.AnnualGrossRevenue = other.Aggregates.AnnualGrossRevenue
		r.Aggregates.EffectiveIRPJRate = other.Aggregates.EffectiveIRPJRate
		r.Aggregates.EffectiveCSLLRate = other.Aggregates.EffectiveCSLLRate
		r.Aggregates.ExportShare = other.Aggregates.ExportShare
		r.Aggregates.HasEffectiveRates = true
	}
}

func mergeCat[T any](dst, src map[string][]*T) {
	for k, v := range src {
		dst[k] = append(dst[k], v...)
	}
}
