package person

import (
	"go-payslip/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	jwtSecret string,
	logger *zap.Logger,
) {
	people := r.Group("/people")
	people.Use(middleware.AuthMiddleware(jwtSecret))
	people.Use(middleware.ContextLogger(logger))
	{
		people.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "person", "read"),
			handler.List,
		)
	}
}
