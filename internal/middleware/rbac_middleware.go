package middleware

import (
	"go-payslip/internal/domain"
	"go-payslip/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// RBACService is anything that can answer an EnforceRequest.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get("role")
		if !ok {
			abort(c, apperror.ErrUnauthorized)
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     role.(string),
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			abort(c, apperror.Wrap(err, apperror.CodeInternalError, apperror.ErrInternal.Message, apperror.ErrInternal.HTTPStatus))
			return
		}

		if !allowed {
			abort(c, apperror.ErrForbidden.WithDetails(map[string]string{
				"required": resource + ":" + action,
			}))
			return
		}
		c.Next()
	}
}
