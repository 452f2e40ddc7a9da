package middleware

import (
	"net/http"

	"go-payslip/internal/shared/apperror"
	"go-payslip/internal/shared/response"

	"github.com/gin-gonic/gin"
)

var (
	ErrTokenMissing = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrTooManyRequests = apperror.New(
		apperror.CodeTooManyRequest,
		"Too many requests, please slow down",
		http.StatusTooManyRequests,
	)
	ErrRequestInProgress = apperror.New(
		apperror.CodeConflict,
		"This request is already being processed",
		http.StatusConflict,
	)
)

func abort(c *gin.Context, err error) {
	response.FromError(c, err)
	c.Abort()
}
