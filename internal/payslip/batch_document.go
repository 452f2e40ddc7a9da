package payslip

import (
	"bytes"
	"encoding/json"

	paysliperrors "go-payslip/internal/payslip/errors"
	"go-payslip/internal/shared/apperror"

	"github.com/shopspring/decimal"
)

// LineItem is an earning or deduction as written in a batch file.
type LineItem struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type PeriodEntry struct {
	Period     *Period    `json:"period" validate:"required"`
	Earnings   []LineItem `json:"earnings"`
	Deductions []LineItem `json:"deductions"`
	Remarks    string     `json:"remarks,omitempty"`
}

type EmployeeEntry struct {
	Employee *Employee     `json:"employee" validate:"required"`
	Periods  []PeriodEntry `json:"periods" validate:"required,min=1,dive"`
}

// BatchDocument is the JSON payslip batch upload.
type BatchDocument struct {
	Organization        *Organization   `json:"organization" validate:"required"`
	Employees           []EmployeeEntry `json:"employees" validate:"required,min=1,dive"`
	Currency            string          `json:"currency,omitempty"`
	AuthorizedSignatory string          `json:"authorizedSignatory,omitempty"`
}

// ParseBatch decodes raw into a document without checking required fields.
func ParseBatch(raw []byte) (BatchDocument, error) {
	var doc BatchDocument
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&doc); err != nil {
		return BatchDocument{}, apperror.Wrap(
			err,
			paysliperrors.ErrInvalidBatchJSON.Code,
			paysliperrors.ErrInvalidBatchJSON.Message,
			paysliperrors.ErrInvalidBatchJSON.HTTPStatus,
		)
	}
	return doc, nil
}
