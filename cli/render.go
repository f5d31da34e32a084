package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/term"

	"github.com/simulatax/fiscalprofile/profile"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	// labelColumn aligns the value column across sections.
	labelColumn = 22

	// fallbackWidth is used when stdout is not a terminal.
	fallbackWidth = 80
)

// renderProfile writes a human-readable summary of the profile.
func renderProfile(w io.Writer, p *profile.FiscalProfile) {
	width := outputWidth()

	section(w, "Company")
	renderRow(w, width, "Name", p.Company.Name)
	renderRow(w, width, "Tax ID", p.Company.TaxID)
	renderRow(w, width, "Monthly revenue", money(p.Company.MonthlyRevenue))
	renderRow(w, width, "Operating margin", percent(p.Company.OperatingMargin))
	renderRow(w, width, "Activity", p.Company.ActivityType)
	renderRow(w, width, "Tax regime", p.Company.TaxRegime)
	renderRow(w, width, "Sector", p.Company.IVASector)

	section(w, "Fiscal parameters")
	renderRow(w, width, "Operation type", p.FiscalParameters.OperationType)
	renderRow(w, width, "PIS/COFINS method", p.FiscalParameters.PISCofinsRegime)
	renderRow(w, width, "Monthly tax burden", money(p.FiscalParameters.MonthlyTaxBurden))
	renderRow(w, width, "Blended rate", percent(p.FiscalParameters.BlendedRate))
	renderRow(w, width, "Export share", percent(p.FiscalParameters.ExportShare))

	names := maps.Keys(p.FiscalParameters.TaxComposition)
	slices.Sort(names)
	for _, name := range names {
		tc := p.FiscalParameters.TaxComposition[name]
		renderRow(w, width, "  "+name,
			fmt.Sprintf("%s debit / %s credit (%s)", money(tc.Debit), money(tc.Credit), tc.Source))
	}

	section(w, "Financial cycle")
	renderRow(w, width, "Receivable days", fmt.Sprintf("%d", p.FinancialCycle.ReceivableDays))
	renderRow(w, width, "Payable days", fmt.Sprintf("%d", p.FinancialCycle.PayableDays))
	renderRow(w, width, "Inventory days", fmt.Sprintf("%d", p.FinancialCycle.InventoryDays))
	renderRow(w, width, "Cash sales share", percent(p.FinancialCycle.CashSalesShare))
	renderRow(w, width, "Term sales share", percent(p.FinancialCycle.TermSalesShare))
	renderRow(w, width, "Working capital need", money(p.FinancialCycle.WorkingCapitalNeed))
}

func section(w io.Writer, title string) {
	_, _ = fmt.Fprintf(w, "%s\n", titleStyle.Render(title))
}

func renderRow(w io.Writer, width int, label, value string) {
	if value == "" {
		value = "-"
	}

	max := width - labelColumn - 1
	if max > 0 {
		value = runewidth.Truncate(value, max, "…")
	}

	_, _ = fmt.Fprintf(w, "%s %s\n",
		labelStyle.Render(runewidth.FillRight(label, labelColumn)),
		value,
	)
}

func outputWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return fallbackWidth
}

func money(v decimal.Decimal) string {
	return v.StringFixed(2)
}

func percent(v decimal.Decimal) string {
	return v.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
