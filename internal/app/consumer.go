package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-payslip/internal/config"
	"go-payslip/internal/events"
	"go-payslip/internal/messaging/kafka/consumer"
	"go-payslip/internal/payslip"
	"go-payslip/internal/shared/connection"
	"go-payslip/internal/storage"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const renderConsumerGroup = "go-payslip-render"

func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, cfg.MaxRetries)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	if cfg.Minio.Endpoint == "" {
		return fmt.Errorf("MINIO_ENDPOINT is required")
	}

	minioClient, err := connection.ConnectMinioWithRetry(cfg.Minio, cfg.MaxRetries)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	objects := storage.NewObjectStorage(minioClient, cfg.Minio.Bucket, cfg.Minio.PublicBaseURL)
	if err := objects.EnsureBucket(ctx); err != nil {
		return err
	}

	payslipRepo := payslip.NewRepository(gormDB)
	payslipService := payslip.NewService(sqlDB, payslipRepo, nil, objects, nil)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.PayslipRenderRequestedTopic,
		GroupID:        renderConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	go consumer.ConsumePayslipRenderRequested(ctx, reader, payslipService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
