package payslip

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type BatchResult struct {
	Payslips []Payslip `json:"payslips"`
	Errors   []string  `json:"errors,omitempty"`
}

func (r BatchResult) OK() bool { return len(r.Errors) == 0 }

// Generator turns validated input into payslips. Clock, ids and number
// suffixes are injectable so output can be pinned in tests.
type Generator struct {
	now    func() time.Time
	newID  func() string
	suffix func() string
}

type GeneratorOption func(*Generator)

func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) { g.now = now }
}

func WithIDFunc(newID func() string) GeneratorOption {
	return func(g *Generator) { g.newID = newID }
}

func WithSuffixFunc(suffix func() string) GeneratorOption {
	return func(g *Generator) { g.suffix = suffix }
}

func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		now:    time.Now,
		newID:  uuid.NewString,
		suffix: RandomSuffix,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateBatch checks the whole document first and returns every problem
// found with no payslips. Otherwise it returns one payslip per employee and
// period, in input order.
func (g *Generator) GenerateBatch(doc BatchDocument) BatchResult {
	if errs := ValidateStructure(doc); len(errs) > 0 {
		return BatchResult{Payslips: []Payslip{}, Errors: errs}
	}

	currency := ResolveCurrency(doc.Currency)
	generatedAt := g.now().UTC()

	var payslips []Payslip
	for _, entry := range doc.Employees {
		for _, pe := range entry.Periods {
			payslips = append(payslips, g.build(buildInput{
				organization: *doc.Organization,
				employee:     *entry.Employee,
				period:       *pe.Period,
				earnings:     literalComponents(pe.Earnings),
				deductions:   literalComponents(pe.Deductions),
				currency:     currency,
				signatory:    doc.AuthorizedSignatory,
				remarks:      pe.Remarks,
				generatedAt:  generatedAt,
			}))
		}
	}
	return BatchResult{Payslips: payslips}
}

// ComponentInput is a form line: either a literal Amount, or Percentage of
// the earning named by PercentageOf.
type ComponentInput struct {
	Name         string          `json:"name" validate:"required"`
	Amount       decimal.Decimal `json:"amount"`
	IsPercentage bool            `json:"isPercentage"`
	Percentage   decimal.Decimal `json:"percentage"`
	PercentageOf string          `json:"percentageOf,omitempty"`
}

// SingleInput is the one-payslip form.
type SingleInput struct {
	Organization        *Organization    `json:"organization" validate:"required"`
	Employee            *Employee        `json:"employee" validate:"required"`
	Period              *Period          `json:"period" validate:"required"`
	Earnings            []ComponentInput `json:"earnings" validate:"dive"`
	Deductions          []ComponentInput `json:"deductions" validate:"dive"`
	Currency            string           `json:"currency,omitempty"`
	AuthorizedSignatory string           `json:"authorizedSignatory,omitempty"`
	Remarks             string           `json:"remarks,omitempty"`
}

// GenerateSingle builds one payslip from the form. Percentage lines are
// resolved against a fixed earning: the one named by PercentageOf, or the
// first fixed earning when none is named.
func (g *Generator) GenerateSingle(in SingleInput) (Payslip, []string) {
	if errs := ValidateStructure(in); len(errs) > 0 {
		return Payslip{}, errs
	}

	fixed := make(map[string]decimal.Decimal)
	defaultBase := ""
	for _, c := range in.Earnings {
		if c.IsPercentage {
			continue
		}
		if _, seen := fixed[c.Name]; !seen {
			fixed[c.Name] = c.Amount
		}
		if defaultBase == "" {
			defaultBase = c.Name
		}
	}

	var errs []string
	resolve := func(field string, items []ComponentInput) []Component {
		out := make([]Component, 0, len(items))
		for i, c := range items {
			if !c.IsPercentage {
				out = append(out, Component{Name: c.Name, Amount: c.Amount})
				continue
			}
			base := c.PercentageOf
			if base == "" {
				base = defaultBase
			}
			baseAmount, ok := fixed[base]
			if !ok {
				errs = append(errs, fmt.Sprintf("%s[%d].percentageOf must name a fixed earning", field, i))
				continue
			}
			pct := c.Percentage
			out = append(out, Component{
				Name:         c.Name,
				Amount:       baseAmount.Mul(pct).Div(hundred).Round(2),
				IsPercentage: true,
				Percentage:   &pct,
				PercentageOf: base,
			})
		}
		return out
	}

	earnings := resolve("earnings", in.Earnings)
	deductions := resolve("deductions", in.Deductions)
	if len(errs) > 0 {
		return Payslip{}, errs
	}

	return g.build(buildInput{
		organization: *in.Organization,
		employee:     *in.Employee,
		period:       *in.Period,
		earnings:     earnings,
		deductions:   deductions,
		currency:     ResolveCurrency(in.Currency),
		signatory:    in.AuthorizedSignatory,
		remarks:      in.Remarks,
		generatedAt:  g.now().UTC(),
	}), nil
}

type buildInput struct {
	organization Organization
	employee     Employee
	period       Period
	earnings     []Component
	deductions   []Component
	currency     Currency
	signatory    string
	remarks      string
	generatedAt  time.Time
}

func (g *Generator) build(in buildInput) Payslip {
	totalEarnings, totalDeductions, netPay := Totals(in.earnings, in.deductions)

	return Payslip{
		ID:                  g.newID(),
		PayslipNumber:       FormatPayslipNumber(in.period.Year, in.period.Month, in.employee.EmployeeID, g.suffix()),
		Organization:        in.organization,
		Employee:            in.employee,
		Period:              NewPayPeriod(in.period.Month, in.period.Year),
		Earnings:            in.earnings,
		Deductions:          in.deductions,
		TotalEarnings:       totalEarnings,
		TotalDeductions:     totalDeductions,
		NetPay:              netPay,
		NetPayInWords:       AmountInWords(netPay, in.currency.Code),
		Currency:            in.currency,
		GeneratedAt:         in.generatedAt,
		AuthorizedSignatory: in.signatory,
		Remarks:             in.remarks,
	}
}

func literalComponents(items []LineItem) []Component {
	out := make([]Component, len(items))
	for i, it := range items {
		out[i] = Component{Name: it.Name, Amount: it.Amount}
	}
	return out
}
