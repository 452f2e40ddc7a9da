package bulkimport

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
	imports := r.Group("/imports")
	imports.Use(middleware.AuthMiddleware(jwtSecret))
	imports.Use(middleware.ContextLogger(logger))
	imports.Use(middleware.RBACAuthorize(rbacService, "import", "write"))
	{
		imports.POST("", middleware.RateLimitByUser(1, 5), handler.Open)
		imports.GET("/:id", middleware.RateLimitByUser(5, 20), handler.Get)
		imports.POST("/:id/file", middleware.RateLimitByUser(1, 3), handler.Upload)
		imports.PUT("/:id/mapping", middleware.RateLimitByUser(5, 20), handler.UpdateMapping)
		imports.POST("/:id/validate", middleware.RateLimitByUser(2, 5), handler.Validate)
		imports.POST("/:id/back", middleware.RateLimitByUser(5, 20), handler.Back)
		imports.POST("/:id/commit", middleware.RateLimitByUser(0.2, 1), handler.Commit)
		imports.DELETE("/:id", middleware.RateLimitByUser(5, 20), handler.Close)
	}
}
