package personerrors

import (
	"net/http"

	"go-payslip/internal/shared/apperror"
)

var (
	ErrPersonAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A record with the same email already exists",
		http.StatusConflict,
	)
	ErrUnknownKind = apperror.New(
		apperror.CodeInvalidInput,
		"kind must be one of employee, client, firm",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrStoreUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"People store is unavailable",
		http.StatusServiceUnavailable,
	)
)
