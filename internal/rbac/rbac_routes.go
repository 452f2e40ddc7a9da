package rbac

import (
	"go-payslip/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string, logger *zap.Logger) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware(jwtSecret))
	group.Use(middleware.ContextLogger(logger))
	{
		group.POST("/enforce", handler.Enforce)
		group.GET("/permissions", handler.MyPermissions)
	}
}
