package bulkimporterrors

import (
	"net/http"

	"go-payslip/internal/shared/apperror"
)

var (
	ErrNotEnoughRows = apperror.New(
		apperror.CodeValidation,
		"CSV file must contain a header row and at least one data row",
		http.StatusBadRequest,
	)
	ErrSingleFileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Please upload exactly one file",
		http.StatusBadRequest,
	)
	ErrSpreadsheetUnsupported = apperror.New(
		apperror.CodeUnsupported,
		"Excel files are not supported. Please save the sheet as CSV and upload it again",
		http.StatusUnsupportedMediaType,
	)
	ErrInvalidFileType = apperror.New(
		apperror.CodeUnsupported,
		"Invalid file type. Please upload a CSV file",
		http.StatusUnsupportedMediaType,
	)
	ErrFileTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"The uploaded file is too large",
		http.StatusRequestEntityTooLarge,
	)
	ErrFileUnreadable = apperror.New(
		apperror.CodeInvalidInput,
		"The uploaded file could not be read",
		http.StatusBadRequest,
	)
	ErrInvalidStep = apperror.New(
		apperror.CodeInvalidState,
		"This action is not available at the current import step",
		http.StatusConflict,
	)
	ErrUnknownColumn = apperror.New(
		apperror.CodeInvalidInput,
		"column index is out of range",
		http.StatusBadRequest,
	)
	ErrUnknownTargetField = apperror.New(
		apperror.CodeInvalidInput,
		"target field is not part of this import",
		http.StatusBadRequest,
	)
	ErrNothingToImport = apperror.New(
		apperror.CodeInvalidState,
		"There are no valid rows to import",
		http.StatusBadRequest,
	)
	ErrCommitFailed = apperror.New(
		apperror.CodeBadGateway,
		"Import failed. Please try again",
		http.StatusBadGateway,
	)
	ErrImportInProgress = apperror.New(
		apperror.CodeConflict,
		"An import for this file is already running",
		http.StatusConflict,
	)
	ErrSessionNotFound = apperror.New(
		apperror.CodeNotFound,
		"import session not found or expired",
		http.StatusNotFound,
	)
	ErrUnknownKind = apperror.New(
		apperror.CodeInvalidInput,
		"unknown import kind",
		http.StatusBadRequest,
	)
)
