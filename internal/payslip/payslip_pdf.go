package payslip

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

const (
	pdfMargin    = 15.0
	pdfLineH     = 6.0
	pdfColumnW   = 90.0
	pdfAmountW   = 35.0
	pdfLabelW    = pdfColumnW - pdfAmountW
	pdfDateShort = "02 Jan 2006"
)

// RenderPDF lays out p on a single A4 page. Amounts are prefixed with the
// currency code since the core PDF fonts lack most currency symbols.
func RenderPDF(p Payslip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	pdf.SetTextColor(33, 37, 41)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, tr(p.Organization.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, line := range organizationLines(p.Organization) {
		pdf.CellFormat(0, 4.5, tr(line), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	title := fmt.Sprintf("Payslip for %s %d", p.Period.StartDate.Format("January"), p.Period.Year)
	pdf.CellFormat(0, 8, title, "TB", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "", 9)
	details := [][2]string{
		{"Payslip No", p.PayslipNumber},
		{"Pay Period", p.Period.StartDate.Format(pdfDateShort) + " - " + p.Period.EndDate.Format(pdfDateShort)},
		{"Employee", p.Employee.Name},
		{"Employee ID", p.Employee.EmployeeID},
		{"Designation", p.Employee.Designation},
		{"Department", p.Employee.Department},
		{"Joining Date", p.Employee.JoiningDate},
		{"Bank", joinNonEmpty(" / ", p.Employee.BankName, p.Employee.BankAccountNumber)},
		{"PAN", p.Employee.PANNumber},
		{"PF No", p.Employee.PFNumber},
	}
	for _, d := range details {
		if d[1] == "" {
			continue
		}
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(35, 5, d[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 5, tr(d[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	top := pdf.GetY()
	drawComponentTable(pdf, tr, pdfMargin, top, "Earnings", p.Earnings, p.TotalEarnings, p.Currency.Code)
	leftBottom := pdf.GetY()
	drawComponentTable(pdf, tr, pdfMargin+pdfColumnW, top, "Deductions", p.Deductions, p.TotalDeductions, p.Currency.Code)
	pdf.SetY(max(leftBottom, pdf.GetY()) + 4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(pdfLabelW*2+pdfAmountW, 8, "Net Pay", "1", 0, "L", true, 0, "")
	pdf.CellFormat(pdfAmountW, 8, formatMoney(p.NetPay, p.Currency.Code), "1", 1, "R", true, 0, "")
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, tr(p.NetPayInWords), "", "L", false)

	if p.Remarks != "" {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(0, 5, "Remarks", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, tr(p.Remarks), "", "L", false)
	}

	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 9)
	if p.AuthorizedSignatory != "" {
		pdf.CellFormat(0, 5, tr(p.AuthorizedSignatory), "", 1, "R", false, 0, "")
	}
	pdf.CellFormat(0, 5, "Authorized Signatory", "T", 1, "R", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 4, "This is a computer generated payslip. Generated on "+p.GeneratedAt.Format(pdfDateShort), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawComponentTable(
	pdf *gofpdf.Fpdf,
	tr func(string) string,
	x, y float64,
	title string,
	items []Component,
	total decimal.Decimal,
	currencyCode string,
) {
	pdf.SetXY(x, y)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(pdfLabelW, 7, title, "1", 0, "L", true, 0, "")
	pdf.CellFormat(pdfAmountW, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, c := range items {
		label := c.Name
		if c.IsPercentage && c.Percentage != nil {
			label = fmt.Sprintf("%s (%s%% of %s)", c.Name, c.Percentage.String(), c.PercentageOf)
		}
		pdf.SetX(x)
		pdf.CellFormat(pdfLabelW, pdfLineH, tr(label), "LR", 0, "L", false, 0, "")
		pdf.CellFormat(pdfAmountW, pdfLineH, formatMoney(c.Amount, currencyCode), "LR", 1, "R", false, 0, "")
	}

	pdf.SetX(x)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(pdfLabelW, 7, "Total "+title, "1", 0, "L", false, 0, "")
	pdf.CellFormat(pdfAmountW, 7, formatMoney(total, currencyCode), "1", 1, "R", false, 0, "")
}

func organizationLines(o Organization) []string {
	lines := []string{
		joinNonEmpty(", ", o.Address, o.City, o.State, o.PostalCode, o.Country),
		joinNonEmpty(" | ", o.Phone, o.Email, o.Website),
	}
	if o.RegistrationNumber != "" || o.TaxID != "" {
		lines = append(lines, joinNonEmpty(" | ", prefixed("Reg No: ", o.RegistrationNumber), prefixed("Tax ID: ", o.TaxID)))
	}
	return lines
}

// formatMoney renders 64000 as "INR 64,000.00".
func formatMoney(amount decimal.Decimal, currencyCode string) string {
	fixed := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return currencyCode + " " + sign + b.String() + "." + frac
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func prefixed(prefix, v string) string {
	if v == "" {
		return ""
	}
	return prefix + v
}
