package payslip

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-payslip/internal/events"
	"go-payslip/internal/messaging/kafka"
	paysliperrors "go-payslip/internal/payslip/errors"
	"go-payslip/internal/shared/apperror"
	"go-payslip/internal/shared/contextutil"
	"go-payslip/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const aggregateType = "payslip"

//go:generate mockgen -source=payslip_service.go -destination=mock/payslip_service_mock.go -package=mock
type Service interface {
	Preview(ctx context.Context, raw []byte) (BatchPreviewResponse, error)
	CreateBatch(ctx context.Context, companyID, actorID string, raw []byte) (BatchCreatedResponse, error)
	CreateSingle(ctx context.Context, companyID, actorID string, in SingleInput) (PayslipResponse, error)
	GetAll(ctx context.Context, companyID string) ([]PayslipResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PayslipResponse, error)
	RenderPDF(ctx context.Context, companyID, id string) (PDFDocument, error)
	DownloadURL(ctx context.Context, companyID, id string) (string, error)
	ProcessRenderRequest(ctx context.Context, companyID, id string) (PayslipResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	outbox    kafka.OutboxRepository
	objects   storage.ObjectStorage
	generator *Generator
	now       func() time.Time
	logger    *zap.Logger
}

// NewService wires the payslip service. outbox and objects may be nil: the
// API does not need object storage and tests may skip the outbox.
func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	objects storage.ObjectStorage,
	generator *Generator,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payslip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.service")
	}
	if generator == nil {
		generator = NewGenerator()
	}
	return &service{
		db:        db,
		repo:      repo,
		outbox:    outbox,
		objects:   objects,
		generator: generator,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Preview(ctx context.Context, raw []byte) (BatchPreviewResponse, error) {
	payslips, err := s.generateBatch(ctx, raw)
	if err != nil {
		return BatchPreviewResponse{}, err
	}
	return BatchPreviewResponse{Count: len(payslips), Payslips: payslips}, nil
}

func (s *service) generateBatch(ctx context.Context, raw []byte) ([]Payslip, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	doc, err := ParseBatch(raw)
	if err != nil {
		log.Warn("payslip batch decode failed", zap.Error(err))
		return nil, err
	}

	result := s.generator.GenerateBatch(doc)
	if !result.OK() {
		log.Warn("payslip batch rejected", zap.Int("errors", len(result.Errors)))
		return nil, paysliperrors.ErrBatchInvalid.WithDetails(result.Errors)
	}

	log.Debug("payslip batch generated", zap.Int("payslips", len(result.Payslips)))
	return result.Payslips, nil
}

func (s *service) CreateBatch(
	ctx context.Context,
	companyID, actorID string,
	raw []byte,
) (BatchCreatedResponse, error) {
	companyUUID, actorUUID, err := parseOwner(companyID, actorID)
	if err != nil {
		return BatchCreatedResponse{}, err
	}

	payslips, err := s.generateBatch(ctx, raw)
	if err != nil {
		return BatchCreatedResponse{}, err
	}

	batchID := uuid.New()
	records, err := s.persist(ctx, companyUUID, actorUUID, &batchID, payslips)
	if err != nil {
		return BatchCreatedResponse{}, err
	}

	s.logger.Info("payslip batch stored",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("company_id", companyID),
		zap.String("batch_id", batchID.String()),
		zap.Int("payslips", len(records)),
	)
	return BatchCreatedResponse{
		BatchID:  batchID.String(),
		Count:    len(records),
		Payslips: mapToListResponse(records),
	}, nil
}

func (s *service) CreateSingle(
	ctx context.Context,
	companyID, actorID string,
	in SingleInput,
) (PayslipResponse, error) {
	companyUUID, actorUUID, err := parseOwner(companyID, actorID)
	if err != nil {
		return PayslipResponse{}, err
	}

	p, errs := s.generator.GenerateSingle(in)
	if len(errs) > 0 {
		contextutil.GetLogger(ctx, s.logger).Warn("payslip form rejected", zap.Strings("errors", errs))
		return PayslipResponse{}, paysliperrors.ErrBatchInvalid.WithDetails(errs)
	}

	records, err := s.persist(ctx, companyUUID, actorUUID, nil, []Payslip{p})
	if err != nil {
		return PayslipResponse{}, err
	}

	s.logger.Info("payslip stored",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("company_id", companyID),
		zap.String("payslip_id", records[0].ID.String()),
		zap.String("payslip_number", records[0].PayslipNumber),
	)
	return mapToResponse(records[0]), nil
}

// persist stores payslips and queues one render request per payslip in the
// same transaction.
func (s *service) persist(
	ctx context.Context,
	companyID, actorID uuid.UUID,
	batchID *uuid.UUID,
	payslips []Payslip,
) ([]PayslipRecord, error) {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("store payslips begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	records := make([]PayslipRecord, len(payslips))
	for i, p := range payslips {
		records[i] = newRecord(p, companyID, actorID, batchID)
	}

	if err := s.repo.WithTx(tx).CreateMany(ctx, records); err != nil {
		s.logger.Error("store payslips persist failed", zap.String("request_id", rid), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	if s.outbox != nil {
		outboxRepo := s.outbox.WithTx(tx)
		for _, r := range records {
			event, err := renderRequestedEvent(r, rid, s.now())
			if err != nil {
				return nil, err
			}
			if err := outboxRepo.Create(ctx, event); err != nil {
				s.logger.Error("store payslips outbox persist failed",
					zap.String("payslip_id", r.ID.String()),
					zap.Error(err),
				)
				return nil, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("store payslips commit failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}

	now := s.now().UTC()
	for i := range records {
		if records[i].CreatedAt.IsZero() {
			records[i].CreatedAt = now
		}
	}
	return records, nil
}

func renderRequestedEvent(r PayslipRecord, requestID string, at time.Time) (kafka.OutboxEvent, error) {
	payload := events.PayslipRenderRequestedEvent{
		EventType:   events.PayslipRenderRequestedType,
		RequestID:   requestID,
		PayslipID:   r.ID.String(),
		CompanyID:   r.CompanyID.String(),
		RequestedBy: r.CreatedBy.String(),
		OccurredAt:  at.UTC(),
	}
	if r.BatchID != nil {
		payload.BatchID = r.BatchID.String()
	}
	return kafka.NewOutboxEvent(
		aggregateType,
		r.ID.String(),
		events.PayslipRenderRequestedType,
		events.PayslipRenderRequestedTopic,
		requestID,
		payload,
	)
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]PayslipResponse, error) {
	records, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("list payslips failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(records), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (PayslipResponse, error) {
	record, err := s.find(ctx, companyID, id)
	if err != nil {
		return PayslipResponse{}, err
	}
	return mapToResponse(*record), nil
}

func (s *service) find(ctx context.Context, companyID, id string) (*PayslipRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, paysliperrors.ErrPayslipNotFound
	}
	record, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return record, nil
}

func (s *service) RenderPDF(ctx context.Context, companyID, id string) (PDFDocument, error) {
	record, err := s.find(ctx, companyID, id)
	if err != nil {
		return PDFDocument{}, err
	}

	content, err := RenderPDF(record.Payslip())
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("render payslip pdf failed",
			zap.String("payslip_id", id),
			zap.Error(err),
		)
		return PDFDocument{}, wrapRenderError(err)
	}
	return PDFDocument{FileName: record.PayslipNumber + ".pdf", Content: content}, nil
}

func (s *service) DownloadURL(ctx context.Context, companyID, id string) (string, error) {
	record, err := s.find(ctx, companyID, id)
	if err != nil {
		return "", err
	}
	if !record.Rendered() {
		return "", paysliperrors.ErrPDFNotReady
	}
	if s.objects != nil {
		return s.objects.URL(ctx, *record.PDFObjectKey)
	}
	if record.PDFURL == nil || *record.PDFURL == "" {
		return "", paysliperrors.ErrPDFNotReady
	}
	return *record.PDFURL, nil
}

// ProcessRenderRequest renders a stored payslip and uploads the PDF. A
// payslip that already has a PDF is returned as is, so redelivered events
// are harmless.
func (s *service) ProcessRenderRequest(ctx context.Context, companyID, id string) (PayslipResponse, error) {
	if s.objects == nil {
		return PayslipResponse{}, errors.New("object storage is not configured")
	}

	record, err := s.find(ctx, companyID, id)
	if err != nil {
		return PayslipResponse{}, err
	}
	if record.Rendered() {
		s.logger.Info("payslip pdf already rendered, skipping",
			zap.String("payslip_id", id),
			zap.String("object_key", *record.PDFObjectKey),
		)
		return mapToResponse(*record), nil
	}

	content, err := RenderPDF(record.Payslip())
	if err != nil {
		return PayslipResponse{}, wrapRenderError(err)
	}

	key := ObjectKey(*record)
	url, err := s.objects.Upload(ctx, key, pdfContentType, content)
	if err != nil {
		return PayslipResponse{}, err
	}

	renderedAt := s.now().UTC()
	if err := s.repo.MarkRendered(ctx, companyID, id, key, url, renderedAt); err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}

	record.PDFObjectKey = &key
	record.PDFURL = &url
	record.PDFGeneratedAt = &renderedAt

	s.logger.Info("payslip pdf rendered",
		zap.String("payslip_id", id),
		zap.String("company_id", companyID),
		zap.String("object_key", key),
		zap.Int("bytes", len(content)),
	)
	return mapToResponse(*record), nil
}

// ObjectKey is where a payslip PDF is stored: company/yyyy-mm/id.pdf. The
// payslip number carries the caller's employee id, so it stays out of the key.
func ObjectKey(r PayslipRecord) string {
	return fmt.Sprintf("%s/%04d-%02d/%s.pdf", r.CompanyID, r.PeriodYear, r.PeriodMonth, r.ID)
}

func parseOwner(companyID, actorID string) (uuid.UUID, uuid.UUID, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return uuid.Nil, uuid.Nil, paysliperrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return uuid.Nil, uuid.Nil, paysliperrors.ErrInvalidActorID
	}
	return companyUUID, actorUUID, nil
}

func wrapRenderError(err error) error {
	return apperror.Wrap(
		err,
		paysliperrors.ErrRenderFailed.Code,
		paysliperrors.ErrRenderFailed.Message,
		paysliperrors.ErrRenderFailed.HTTPStatus,
	)
}
