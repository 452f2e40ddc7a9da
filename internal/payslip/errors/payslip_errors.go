package paysliperrors

import (
	"net/http"

	"go-payslip/internal/shared/apperror"
)

var (
	ErrInvalidBatchJSON = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid JSON file. Please check the format and try again",
		http.StatusBadRequest,
	)
	ErrBatchFileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Please upload a JSON file",
		http.StatusBadRequest,
	)
	ErrBatchTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"The payslip file is too large",
		http.StatusRequestEntityTooLarge,
	)
	ErrBatchInvalid = apperror.New(
		apperror.CodeValidation,
		"The payslip data has missing or invalid fields",
		http.StatusUnprocessableEntity,
	)
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payslip not found",
		http.StatusNotFound,
	)
	ErrPDFNotReady = apperror.New(
		apperror.CodeInvalidState,
		"Payslip PDF has not been generated yet",
		http.StatusConflict,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid actor ID",
		http.StatusBadRequest,
	)
	ErrPayslipNumberTaken = apperror.New(
		apperror.CodeConflict,
		"A payslip with this number already exists",
		http.StatusConflict,
	)
	ErrRenderFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to render payslip PDF",
		http.StatusInternalServerError,
	)
)
