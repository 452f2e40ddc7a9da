package payslip

import (
	"slices"

	"go-payslip/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	jwtSecret string,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	writeGuard := []gin.HandlerFunc{middleware.RBACAuthorize(rbacService, "payslip", "write")}
	if rdb != nil {
		writeGuard = append(writeGuard, middleware.Idempotency(rdb, logger))
	}

	guarded := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(slices.Clone(writeGuard), h)
	}

	payslips := r.Group("/payslips")
	payslips.Use(middleware.AuthMiddleware(jwtSecret))
	payslips.Use(middleware.ContextLogger(logger))
	{
		payslips.GET("/sample", handler.Sample)
		payslips.GET("/currencies", handler.Currencies)
		payslips.POST("/batch/preview",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "payslip", "write"),
			handler.PreviewBatch,
		)
		payslips.POST("/batch", guarded(handler.CreateBatch)...)
		payslips.POST("", guarded(handler.Create)...)

		payslips.GET("", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.GetAll)
		payslips.GET("/:id", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.GetByID)
		payslips.GET("/:id/pdf", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.PDF)
		payslips.GET("/:id/download", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.Download)
	}
}
