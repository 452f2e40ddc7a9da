package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts go out as JSON numbers, matching what batch files carry.
	decimal.MarshalJSONWithoutQuotes = true
}

type Organization struct {
	Name               string `json:"name" validate:"required"`
	Address            string `json:"address" validate:"required"`
	City               string `json:"city,omitempty"`
	State              string `json:"state,omitempty"`
	PostalCode         string `json:"postalCode,omitempty"`
	Country            string `json:"country,omitempty"`
	Phone              string `json:"phone,omitempty"`
	Email              string `json:"email,omitempty"`
	Website            string `json:"website,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	TaxID              string `json:"taxId,omitempty"`
}

type Employee struct {
	EmployeeID        string `json:"employeeId" validate:"required"`
	Name              string `json:"name" validate:"required"`
	Email             string `json:"email,omitempty"`
	Designation       string `json:"designation,omitempty"`
	Department        string `json:"department,omitempty"`
	JoiningDate       string `json:"joiningDate,omitempty"`
	BankAccountNumber string `json:"bankAccountNumber,omitempty"`
	BankName          string `json:"bankName,omitempty"`
	PANNumber         string `json:"panNumber,omitempty"`
	PFNumber          string `json:"pfNumber,omitempty"`
}

type Period struct {
	Month int `json:"month" validate:"required,min=1,max=12"`
	Year  int `json:"year" validate:"required,min=1900,max=9999"`
}

// PayPeriod is a month with its first and last calendar day.
type PayPeriod struct {
	Month     int       `json:"month"`
	Year      int       `json:"year"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

func NewPayPeriod(month, year int) PayPeriod {
	return PayPeriod{
		Month:     month,
		Year:      year,
		StartDate: time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC),
	}
}

// Component is one earning or deduction line. Percentage and PercentageOf
// are set only for lines resolved from a percentage.
type Component struct {
	Name         string           `json:"name"`
	Amount       decimal.Decimal  `json:"amount"`
	IsPercentage bool             `json:"isPercentage"`
	Percentage   *decimal.Decimal `json:"percentage,omitempty"`
	PercentageOf string           `json:"percentageOf,omitempty"`
}

// Payslip is a computed pay document for one employee and period. It is
// built once and never edited; organization and employee are private copies.
type Payslip struct {
	ID                  string          `json:"id"`
	PayslipNumber       string          `json:"payslipNumber"`
	Organization        Organization    `json:"organization"`
	Employee            Employee        `json:"employee"`
	Period              PayPeriod       `json:"period"`
	Earnings            []Component     `json:"earnings"`
	Deductions          []Component     `json:"deductions"`
	TotalEarnings       decimal.Decimal `json:"totalEarnings"`
	TotalDeductions     decimal.Decimal `json:"totalDeductions"`
	NetPay              decimal.Decimal `json:"netPay"`
	NetPayInWords       string          `json:"netPayInWords"`
	Currency            Currency        `json:"currency"`
	GeneratedAt         time.Time       `json:"generatedAt"`
	AuthorizedSignatory string          `json:"authorizedSignatory,omitempty"`
	Remarks             string          `json:"remarks,omitempty"`
}

// Totals returns the earning and deduction sums and the net pay, floored at
// zero.
func Totals(earnings, deductions []Component) (totalEarnings, totalDeductions, netPay decimal.Decimal) {
	totalEarnings, totalDeductions = decimal.Zero, decimal.Zero
	for _, c := range earnings {
		totalEarnings = totalEarnings.Add(c.Amount)
	}
	for _, c := range deductions {
		totalDeductions = totalDeductions.Add(c.Amount)
	}
	netPay = decimal.Max(decimal.Zero, totalEarnings.Sub(totalDeductions))
	return totalEarnings, totalDeductions, netPay
}
