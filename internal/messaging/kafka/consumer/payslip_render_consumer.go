package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-payslip/internal/events"
	"go-payslip/internal/payslip"
	paysliperrors "go-payslip/internal/payslip/errors"
	"go-payslip/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// PayslipRenderer renders and stores the PDF of one payslip.
type PayslipRenderer interface {
	ProcessRenderRequest(ctx context.Context, companyID, id string) (payslip.PayslipResponse, error)
}

func ConsumePayslipRenderRequested(
	ctx context.Context,
	reader MessageReader,
	renderer PayslipRenderer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payslip_render")
	log.Info("payslip render consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payslip render consumer stopped")
				return
			}
			log.Error("fetch payslip render message failed", zap.Error(err))
			continue
		}

		if !HandlePayslipRenderMessage(ctx, msg, renderer, log) {
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payslip render message failed", zap.Error(err))
		}
	}
}

// HandlePayslipRenderMessage processes one message and reports whether it
// should be committed. Undecodable messages and payslips that no longer
// exist are committed so they are not retried.
func HandlePayslipRenderMessage(
	ctx context.Context,
	msg kafkago.Message,
	renderer PayslipRenderer,
	log *zap.Logger,
) bool {
	var event events.PayslipRenderRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode payslip render event failed", zap.Error(err))
		return true
	}
	if event.EventType != "" && event.EventType != events.PayslipRenderRequestedType {
		log.Warn("unexpected event type on payslip render topic, skipping",
			zap.String("event_type", event.EventType),
		)
		return true
	}

	requestID := event.RequestID
	if requestID == "" {
		requestID = headerValue(msg, "request_id")
	}
	ctx = contextutil.WithRequestID(ctx, requestID)

	res, err := renderer.ProcessRenderRequest(ctx, event.CompanyID, event.PayslipID)
	if err != nil {
		if errors.Is(err, paysliperrors.ErrPayslipNotFound) {
			log.Warn("payslip for render event not found, skipping",
				zap.String("payslip_id", event.PayslipID),
				zap.String("company_id", event.CompanyID),
			)
			return true
		}

		log.Error("render payslip failed",
			zap.String("request_id", requestID),
			zap.String("payslip_id", event.PayslipID),
			zap.String("company_id", event.CompanyID),
			zap.Error(err),
		)
		return false
	}

	log.Info("payslip pdf ready",
		zap.String("request_id", requestID),
		zap.String("payslip_id", event.PayslipID),
		zap.String("company_id", event.CompanyID),
		zap.String("payslip_number", res.PayslipNumber),
	)
	return true
}
