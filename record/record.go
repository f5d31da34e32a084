// Package record defines the typed records produced by the line parser and the
// accumulator they are collected into. Each SPED-style line that matches a
// registered record-type code is converted into exactly one of the variants
// below; the Kind tag determines which collection of the ExtractionResult the
// record lands in.
//
// All monetary values use decimal arithmetic to avoid floating point precision
// issues. Dates are carried as ISO strings ("2006-01-02") once parsed; codes
// stay as strings exactly as they appear in the source file.
package record

import "github.com/shopspring/decimal"

// Kind tags a typed record with its destination collection.
type Kind int

const (
	KindCompany Kind = iota
	KindDocument
	KindLineItem
	KindAnalyticItem
	KindTaxEntry
	KindCredit
	KindCreditDetail
	KindDebit
	KindAdjustment
	KindUntaxedRevenue
	KindRegimeDeclaration
	KindParticipant
	KindTaxIncentive
	KindIncomeStatementLine
	KindPosting
	KindPostingEntry
	KindBalanceSheetLine
	KindInventoryLine
	KindItemCatalog
	KindDiscriminatedRevenue
)

// Typed is implemented by every record variant.
type Typed interface {
	RecordKind() Kind
}

// Raw is one split line before extraction: the record-type code at field
// position 1 plus the ordered field sequence. Raws are ephemeral; they are
// consumed by the matching extractor and discarded.
type Raw struct {
	TypeCode string
	Fields   []string
}

// Company carries identification fields merged into the running company map.
// Later, more specific sources may add fields; empty values never erase
// previously seen ones.
type Company struct {
	Name        string
	TaxID       string
	StateReg    string
	State       string
	SectorCode  string // CNAE classification, when the family carries one
	RegimeFlag  string // explicit regime marker, when the family carries one
	ActivityInd string // industrial-activity indicator from the file header
}

func (Company) RecordKind() Kind { return KindCompany }

// Document is one fiscal document (invoice, receipt) header.
type Document struct {
	Direction       string // "0" outbound (emitted), "1" inbound
	ParticipantCode string
	Model           string // document model code; 55 invoice-style, 65/59 receipt-style
	Situation       string
	Number          string
	Series          string
	Date            string // ISO
	Total           decimal.Decimal
	GoodsTotal      decimal.Decimal
	PaymentInd      string // "0" cash, "1" term

	// Derived by the linker; nil until Link runs.
	Items       []*LineItem
	Participant *Participant
}

func (Document) RecordKind() Kind { return KindDocument }

// OwnerKey identifies the document a line item belongs to within one file.
func (d *Document) OwnerKey() string {
	return d.Number + "|" + d.Series + "|" + d.ParticipantCode
}

// LineItem is one item row of a document.
type LineItem struct {
	DocNumber       string
	DocSeries       string
	ParticipantCode string
	ItemCode        string
	Description     string
	Quantity        decimal.Decimal
	Value           decimal.Decimal
	CFOP            string
	TaxSituation    string
}

func (LineItem) RecordKind() Kind { return KindLineItem }

// OwnerKey mirrors Document.OwnerKey for the item→document join.
func (li *LineItem) OwnerKey() string {
	return li.DocNumber + "|" + li.DocSeries + "|" + li.ParticipantCode
}

// AnalyticItem is an analytic (per tax situation/CFOP/rate) consolidation row.
type AnalyticItem struct {
	TaxSituation string
	CFOP         string
	Rate         decimal.Decimal
	Operation    decimal.Decimal
	Base         decimal.Decimal
	Tax          decimal.Decimal
}

func (AnalyticItem) RecordKind() Kind { return KindAnalyticItem }

// TaxEntry is a per-tax ledger totals record (apuração). Category names the
// tax: icms, ipi, irpj, csll, simples.
type TaxEntry struct {
	Category string
	Base     decimal.Decimal
	Debits   decimal.Decimal
	Credits  decimal.Decimal
	Balance  decimal.Decimal
}

func (TaxEntry) RecordKind() Kind { return KindTaxEntry }

// Credit is an explicit tax credit record. Category names the tax (pis, cofins).
type Credit struct {
	Category string
	Code     string
	Base     decimal.Decimal
	Rate     decimal.Decimal
	Value    decimal.Decimal
}

func (Credit) RecordKind() Kind { return KindCredit }

// CreditDetail is a per-origin breakdown row under a credit record.
type CreditDetail struct {
	Category string
	Origin   string
	Base     decimal.Decimal
	Value    decimal.Decimal
}

func (CreditDetail) RecordKind() Kind { return KindCreditDetail }

// Debit is an explicit tax debit (contribution due) record.
type Debit struct {
	Category string
	Base     decimal.Decimal
	Value    decimal.Decimal
}

func (Debit) RecordKind() Kind { return KindDebit }

// Adjustment is a ledger adjustment row (additions or deductions to a tax).
type Adjustment struct {
	Category string
	Code     string
	Value    decimal.Decimal
}

func (Adjustment) RecordKind() Kind { return KindAdjustment }

// UntaxedRevenue is revenue declared exempt, suspended or zero-rated.
type UntaxedRevenue struct {
	Category string
	Value    decimal.Decimal
}

func (UntaxedRevenue) RecordKind() Kind { return KindUntaxedRevenue }

// RegimeDeclaration is an explicit taxation-method declaration. Method
// semantics depend on the category: "apuracao" carries the corporate
// computation-method code, "incidencia" the PIS/COFINS incidence method.
type RegimeDeclaration struct {
	Category string
	Method   string
}

func (RegimeDeclaration) RecordKind() Kind { return KindRegimeDeclaration }

// Participant is a counterparty (customer or supplier) registration row.
type Participant struct {
	Code  string
	Name  string
	TaxID string
	State string
}

func (Participant) RecordKind() Kind { return KindParticipant }

// TaxIncentive is a declared fiscal incentive row.
type TaxIncentive struct {
	Code  string
	Value decimal.Decimal
}

func (TaxIncentive) RecordKind() Kind { return KindTaxIncentive }

// IncomeStatementLine is one income-statement (DRE) row.
type IncomeStatementLine struct {
	AccountCode string
	Description string
	Value       decimal.Decimal
	Nature      string // "D" or "C"
}

func (IncomeStatementLine) RecordKind() Kind { return KindIncomeStatementLine }

// Posting is an accounting journal posting header.
type Posting struct {
	Number string
	Date   string
	Value  decimal.Decimal
}

func (Posting) RecordKind() Kind { return KindPosting }

// PostingEntry is one leg of a journal posting.
type PostingEntry struct {
	AccountCode string
	Value       decimal.Decimal
	Nature      string // "D" or "C"
}

func (PostingEntry) RecordKind() Kind { return KindPostingEntry }

// BalanceSheetLine is a periodic account balance row.
type BalanceSheetLine struct {
	AccountCode string
	Description string
	Balance     decimal.Decimal
	Nature      string // "D" or "C"
}

func (BalanceSheetLine) RecordKind() Kind { return KindBalanceSheetLine }

// InventoryLine is one physical inventory valuation row.
type InventoryLine struct {
	ItemCode string
	Quantity decimal.Decimal
	Value    decimal.Decimal
}

func (InventoryLine) RecordKind() Kind { return KindInventoryLine }

// ItemCatalog is an item registration row used to enrich line-item
// descriptions when the document rows carry only item codes.
type ItemCatalog struct {
	Code        string
	Description string
}

func (ItemCatalog) RecordKind() Kind { return KindItemCatalog }

// DiscriminatedRevenue is a per-activity gross revenue row from the
// corporate-tax bookkeeping family.
type DiscriminatedRevenue struct {
	SectorCode string
	Value      decimal.Decimal
	Exported   decimal.Decimal
}

func (DiscriminatedRevenue) RecordKind() Kind { return KindDiscriminatedRevenue }
