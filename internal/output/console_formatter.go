package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/homecalc/homeownership-calculator/internal/domain"
)

// ConsoleFormatter provides a plain text report for terminals.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(p *domain.Projection) ([]byte, error) {
	var buf bytes.Buffer
	title := "HOME OWNERSHIP PROJECTION"
	if p.Name != "" {
		title += ": " + p.Name
	}
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, strings.Repeat("=", len(title)))
	in := p.Input
	fmt.Fprintf(&buf, "Price %s, down %s, %d years at %s\n",
		FormatCurrency(in.Price), FormatCurrency(in.DownPayment), in.LoanYears, FormatPercentage(in.MortgageRatePct))
	fmt.Fprintf(&buf, "Rent %s/mo growing %s/yr, appreciation %s/yr, cap gains %s\n",
		FormatCurrency(in.InitialMonthlyRent), FormatPercentage(in.RentGrowthPct),
		FormatPercentage(in.AppreciationPct), FormatPercentage(p.CapGainsTotalPct))
	writeSummary(&buf, p.Summary)
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%4s %16s %16s %16s %14s %14s %16s %16s\n",
		"Year", "Home Price", "Balance", "Equity", "Interest", "Principal", "Net Cashflow", "Net Proceeds")
	for _, r := range p.Rows {
		fmt.Fprintf(&buf, "%4d %16s %16s %16s %14s %14s %16s %16s\n",
			r.Year,
			FormatCurrency(r.HomePrice),
			FormatCurrency(r.MortgageBalance),
			FormatCurrency(r.Equity),
			FormatCurrency(r.InterestPaid),
			FormatCurrency(r.PrincipalPaid),
			FormatCurrency(r.NetCashflow),
			FormatCurrency(r.NetProceeds),
		)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Assumptions:")
	for _, a := range GenerateAssumptions(in) {
		fmt.Fprintf(&buf, "  - %s\n", a)
	}
	return buf.Bytes(), nil
}

func writeSummary(buf *bytes.Buffer, s domain.ScheduleSummary) {
	fmt.Fprintf(buf, "Loan %s, monthly payment %s, total interest %s\n",
		FormatCurrency(s.LoanAmount), FormatCurrency(s.MonthlyPayment), FormatCurrency(s.TotalInterest))
	fmt.Fprintf(buf, "Payoff year: %s  Break-even year: %s\n", yearOrDash(s.PayoffYear), yearOrDash(s.BreakEvenYear))
}

func yearOrDash(y int) string {
	if y == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", y)
}

// FormatComparison renders one line per scenario followed by the rankings.
func (c ConsoleFormatter) FormatComparison(cmp *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "HOME OWNERSHIP SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "===============================")
	for _, p := range cmp.Projections {
		fmt.Fprintf(&buf, "%s: Payment=%s TotalInterest=%s FinalProceeds=%s Payoff=%s BreakEven=%s\n",
			p.Name,
			FormatCurrency(p.Summary.MonthlyPayment),
			FormatCurrency(p.Summary.TotalInterest),
			FormatCurrency(p.Summary.FinalNetProceeds),
			yearOrDash(p.Summary.PayoffYear),
			yearOrDash(p.Summary.BreakEvenYear),
		)
	}
	if cmp.BestByProceeds != "" || cmp.EarliestBreakEven != "" {
		fmt.Fprintln(&buf)
	}
	if cmp.BestByProceeds != "" {
		fmt.Fprintf(&buf, "Highest final net proceeds: %s\n", cmp.BestByProceeds)
	}
	if cmp.EarliestBreakEven != "" {
		fmt.Fprintf(&buf, "Earliest break-even: %s\n", cmp.EarliestBreakEven)
	}
	return buf.Bytes(), nil
}

// FormatInstallments renders a month-by-month amortization trail.
func FormatInstallments(installments []domain.Installment) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%5s %14s %14s %14s %16s\n", "Month", "Payment", "Interest", "Principal", "Balance")
	for _, m := range installments {
		fmt.Fprintf(&buf, "%5d %14s %14s %14s %16s\n",
			m.Month, FormatCurrency(m.Payment), FormatCurrency(m.Interest), FormatCurrency(m.Principal), FormatCurrency(m.Balance))
	}
	return buf.Bytes()
}
