package app

import (
	"database/sql"

	"go-payslip/internal/bootstrap"
	"go-payslip/internal/bulkimport"
	"go-payslip/internal/config"
	"go-payslip/internal/messaging/kafka"
	"go-payslip/internal/payslip"
	"go-payslip/internal/person"
	"go-payslip/internal/rbac"
	"go-payslip/internal/rbac/infra"
	"go-payslip/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type moduleDeps struct {
	cfg     config.Config
	db      *sql.DB
	gormDB  *gorm.DB
	rdb     *redis.Client
	objects storage.ObjectStorage
	logger  *zap.Logger
}

func registerModules(router *gin.Engine, d moduleDeps) error {
	// --- Repositories ---
	personRepo := person.NewRepository(d.gormDB)
	payslipRepo := payslip.NewRepository(d.gormDB)
	outboxRepo := kafka.NewOutboxRepository(d.db)
	sessionStore := bulkimport.NewRedisSessionStore(d.rdb, d.cfg.ImportSessionTTL)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(d.cfg.RBACModelPath, d.cfg.RBACPolicyPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, d.logger)

	// --- Services ---
	auditLogger := bootstrap.NewStdoutAuditLogger(d.logger)
	personService := person.NewService(d.db, personRepo, d.rdb, d.logger)
	importService := bulkimport.NewService(sessionStore, personService, auditLogger, d.logger)
	payslipService := payslip.NewService(d.db, payslipRepo, outboxRepo, d.objects, payslip.NewGenerator(), d.logger)

	// --- Handlers ---
	personHandler := person.NewHandler(personService, d.logger)
	importHandler := bulkimport.NewHandler(importService, d.logger)
	payslipHandler := payslip.NewHandler(payslipService, d.logger)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		person.RegisterRoutes(api, personHandler, rbacService, d.cfg.JWTSecret, d.logger)
		bulkimport.RegisterRoutes(api, importHandler, rbacService, d.cfg.JWTSecret, d.logger)
		payslip.RegisterRoutes(api, payslipHandler, rbacService, d.cfg.JWTSecret, d.rdb, d.logger)
		rbac.RegisterRoutes(api, rbacHandler, d.cfg.JWTSecret, d.logger)
	}

	return nil
}
