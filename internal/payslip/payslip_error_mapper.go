package payslip

import (
	"errors"
	"strings"

	paysliperrors "go-payslip/internal/payslip/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return paysliperrors.ErrPayslipNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return paysliperrors.ErrPayslipNumberTaken
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_payslip_number") {
		return paysliperrors.ErrPayslipNumberTaken
	}

	return err
}
