package payslip

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayslipRecord is a stored payslip. The document parts are kept as JSON so
// a record reads back exactly as it was generated.
type PayslipRecord struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID           uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:uq_payslip_number,priority:1"`
	BatchID             *uuid.UUID      `gorm:"type:uuid;index"`
	PayslipNumber       string          `gorm:"type:varchar(64);not null;uniqueIndex:uq_payslip_number,priority:2"`
	EmployeeCode        string          `gorm:"type:varchar(64);not null;index"`
	EmployeeName        string          `gorm:"not null"`
	PeriodMonth         int             `gorm:"not null"`
	PeriodYear          int             `gorm:"not null"`
	PeriodStart         time.Time       `gorm:"type:date;not null"`
	PeriodEnd           time.Time       `gorm:"type:date;not null"`
	Organization        Organization    `gorm:"type:jsonb;serializer:json"`
	Employee            Employee        `gorm:"type:jsonb;serializer:json"`
	Earnings            []Component     `gorm:"type:jsonb;serializer:json"`
	Deductions          []Component     `gorm:"type:jsonb;serializer:json"`
	TotalEarnings       decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	TotalDeductions     decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	NetPay              decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	NetPayInWords       string
	CurrencyCode        string `gorm:"type:varchar(3);not null"`
	AuthorizedSignatory string
	Remarks             string
	GeneratedAt         time.Time
	CreatedBy           uuid.UUID `gorm:"type:uuid"`
	PDFObjectKey        *string
	PDFURL              *string
	PDFGeneratedAt      *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (PayslipRecord) TableName() string { return "payslips" }

func (r PayslipRecord) Rendered() bool {
	return r.PDFObjectKey != nil && *r.PDFObjectKey != ""
}

func newRecord(p Payslip, companyID, createdBy uuid.UUID, batchID *uuid.UUID) PayslipRecord {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		id = uuid.New()
	}
	return PayslipRecord{
		ID:                  id,
		CompanyID:           companyID,
		BatchID:             batchID,
		PayslipNumber:       p.PayslipNumber,
		EmployeeCode:        p.Employee.EmployeeID,
		EmployeeName:        p.Employee.Name,
		PeriodMonth:         p.Period.Month,
		PeriodYear:          p.Period.Year,
		PeriodStart:         p.Period.StartDate,
		PeriodEnd:           p.Period.EndDate,
		Organization:        p.Organization,
		Employee:            p.Employee,
		Earnings:            p.Earnings,
		Deductions:          p.Deductions,
		TotalEarnings:       p.TotalEarnings,
		TotalDeductions:     p.TotalDeductions,
		NetPay:              p.NetPay,
		NetPayInWords:       p.NetPayInWords,
		CurrencyCode:        p.Currency.Code,
		AuthorizedSignatory: p.AuthorizedSignatory,
		Remarks:             p.Remarks,
		GeneratedAt:         p.GeneratedAt,
		CreatedBy:           createdBy,
	}
}

// Payslip rebuilds the document the record was stored from.
func (r PayslipRecord) Payslip() Payslip {
	return Payslip{
		ID:                  r.ID.String(),
		PayslipNumber:       r.PayslipNumber,
		Organization:        r.Organization,
		Employee:            r.Employee,
		Period:              NewPayPeriod(r.PeriodMonth, r.PeriodYear),
		Earnings:            r.Earnings,
		Deductions:          r.Deductions,
		TotalEarnings:       r.TotalEarnings,
		TotalDeductions:     r.TotalDeductions,
		NetPay:              r.NetPay,
		NetPayInWords:       r.NetPayInWords,
		Currency:            ResolveCurrency(r.CurrencyCode),
		GeneratedAt:         r.GeneratedAt,
		AuthorizedSignatory: r.AuthorizedSignatory,
		Remarks:             r.Remarks,
	}
}
