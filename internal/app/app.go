package app

import (
	"errors"

	"go-payslip/internal/config"
	"go-payslip/internal/messaging/kafka"
	"go-payslip/internal/payslip"
	"go-payslip/internal/person"
	"go-payslip/internal/shared/connection"
	"go-payslip/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildApp(router *gin.Engine, cfg config.Config) error {
	logger := zap.L().Named("app")

	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, cfg.MaxRetries)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	if err := migrate(gormDB); err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.MaxRetries)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	// Object storage is optional for the API; without it downloads use the
	// URL recorded when the PDF was rendered.
	var objects storage.ObjectStorage
	if cfg.Minio.Endpoint != "" {
		minioClient, err := connection.ConnectMinioWithRetry(cfg.Minio, cfg.MaxRetries)
		if err != nil {
			return err
		}
		objects = storage.NewObjectStorage(minioClient, cfg.Minio.Bucket, cfg.Minio.PublicBaseURL)
	}

	// 2. Register Modules & Routes
	return registerModules(router, moduleDeps{
		cfg:     cfg,
		db:      sqlDB,
		gormDB:  gormDB,
		rdb:     redisClient,
		objects: objects,
		logger:  zap.L(),
	})
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&person.Person{},
		&payslip.PayslipRecord{},
		&kafka.OutboxModel{},
	)
}
