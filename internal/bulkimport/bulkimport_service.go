package bulkimport

import (
	"context"
	"fmt"
	"time"

	"go-payslip/internal/bootstrap"
	bulkimporterrors "go-payslip/internal/bulkimport/errors"
	"go-payslip/internal/person"
	"go-payslip/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is one open import dialog.
type Session struct {
	ID        string
	CompanyID string
	Kind      string
	CreatedAt time.Time
	Workflow  *Workflow
}

// PeopleImporter stores the valid rows of a committed import.
type PeopleImporter interface {
	ImportRows(ctx context.Context, companyID string, kind person.Kind, rows []map[string]string) (person.ImportResult, error)
}

//go:generate mockgen -source=bulkimport_service.go -destination=mock/bulkimport_service_mock.go -package=mock
type Service interface {
	Open(ctx context.Context, companyID string, req OpenSessionRequest) (SessionResponse, error)
	Get(ctx context.Context, companyID, id string) (SessionResponse, error)
	Upload(ctx context.Context, companyID, id string, files []File) (SessionResponse, error)
	UpdateMapping(ctx context.Context, companyID, id string, req UpdateMappingRequest) (SessionResponse, error)
	Validate(ctx context.Context, companyID, id string) (SessionResponse, error)
	Back(ctx context.Context, companyID, id string) (SessionResponse, error)
	Commit(ctx context.Context, companyID, id string) (SessionResponse, error)
	Close(ctx context.Context, companyID, id string) error
}

type service struct {
	store  SessionStore
	people PeopleImporter
	audit  bootstrap.AuditLogger
	logger *zap.Logger
	now    func() time.Time
}

func NewService(store SessionStore, people PeopleImporter, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("bulkimport.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bulkimport.service")
	}
	if audit == nil {
		audit = bootstrap.NopAuditLogger{}
	}
	return &service{
		store:  store,
		people: people,
		audit:  audit,
		logger: l,
		now:    time.Now,
	}
}

func schemaFor(kind string) (Schema, bool) {
	k, ok := person.ParseKind(kind)
	if !ok {
		return Schema{}, false
	}
	fields, _ := person.FieldsFor(k)
	return Schema{Required: fields.Required, Optional: fields.Optional}, true
}

func (s *service) Open(ctx context.Context, companyID string, req OpenSessionRequest) (SessionResponse, error) {
	schema, ok := schemaFor(req.Kind)
	if !ok {
		return SessionResponse{}, bulkimporterrors.ErrUnknownKind
	}

	sess := &Session{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		Kind:      req.Kind,
		CreatedAt: s.now().UTC(),
		Workflow:  NewWorkflow(schema),
	}
	if err := s.store.Save(ctx, snapshotOf(sess)); err != nil {
		s.logger.Error("open import session persist failed", zap.Error(err))
		return SessionResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("import session opened",
		zap.String("session_id", sess.ID),
		zap.String("company_id", companyID),
		zap.String("kind", req.Kind),
	)
	return toResponse(sess), nil
}

func (s *service) Get(ctx context.Context, companyID, id string) (SessionResponse, error) {
	sess, err := s.load(ctx, companyID, id)
	if err != nil {
		return SessionResponse{}, err
	}
	return toResponse(sess), nil
}

func (s *service) Upload(ctx context.Context, companyID, id string, files []File) (SessionResponse, error) {
	return s.mutate(ctx, companyID, id, "upload", func(w *Workflow) error {
		return w.Upload(files)
	})
}

func (s *service) UpdateMapping(ctx context.Context, companyID, id string, req UpdateMappingRequest) (SessionResponse, error) {
	return s.mutate(ctx, companyID, id, "update mapping", func(w *Workflow) error {
		for _, col := range req.Columns {
			if err := w.SetTarget(*col.Column, col.Target); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *service) Validate(ctx context.Context, companyID, id string) (SessionResponse, error) {
	return s.mutate(ctx, companyID, id, "validate", func(w *Workflow) error {
		return w.Validate()
	})
}

func (s *service) Back(ctx context.Context, companyID, id string) (SessionResponse, error) {
	return s.mutate(ctx, companyID, id, "back", func(w *Workflow) error {
		return w.Back()
	})
}

// mutate loads the session, applies op and saves only when op succeeds, so a
// rejected action leaves the stored step untouched.
func (s *service) mutate(ctx context.Context, companyID, id, action string, op func(*Workflow) error) (SessionResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	sess, err := s.load(ctx, companyID, id)
	if err != nil {
		return SessionResponse{}, err
	}

	if err := op(sess.Workflow); err != nil {
		log.Warn("import session action rejected",
			zap.String("session_id", id),
			zap.String("action", action),
			zap.String("step", string(sess.Workflow.Step())),
			zap.Error(err),
		)
		return SessionResponse{}, err
	}

	if err := s.store.Save(ctx, snapshotOf(sess)); err != nil {
		log.Error("import session persist failed", zap.String("session_id", id), zap.Error(err))
		return SessionResponse{}, err
	}

	log.Debug("import session advanced",
		zap.String("session_id", id),
		zap.String("action", action),
		zap.String("step", string(sess.Workflow.Step())),
	)
	return toResponse(sess), nil
}

// Commit runs the import. The commit lock keeps a second commit of the same
// session out while one is in flight, and the step is read again once the
// lock is held so a commit that finished meanwhile is not repeated.
func (s *service) Commit(ctx context.Context, companyID, id string) (SessionResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	sess, err := s.load(ctx, companyID, id)
	if err != nil {
		return SessionResponse{}, err
	}
	if step := sess.Workflow.Step(); step != StepPreview && step != StepImporting {
		return SessionResponse{}, bulkimporterrors.ErrInvalidStep
	}

	acquired, err := s.store.AcquireCommitLock(ctx, companyID, id)
	if err != nil {
		log.Error("import commit lock failed", zap.String("session_id", id), zap.Error(err))
		return SessionResponse{}, err
	}
	if !acquired {
		return SessionResponse{}, bulkimporterrors.ErrImportInProgress
	}
	defer func() {
		if err := s.store.ReleaseCommitLock(context.WithoutCancel(ctx), companyID, id); err != nil {
			log.Error("import commit unlock failed", zap.String("session_id", id), zap.Error(err))
		}
	}()

	sess, err = s.load(ctx, companyID, id)
	if err != nil {
		return SessionResponse{}, err
	}
	switch sess.Workflow.Step() {
	case StepPreview:
	case StepImporting:
		// The lock is free, so the commit that saved this step is gone.
		log.Warn("import commit resumed after an unfinished commit", zap.String("session_id", id))
		if err := sess.Workflow.ResumePreview(); err != nil {
			return SessionResponse{}, err
		}
	default:
		return SessionResponse{}, bulkimporterrors.ErrInvalidStep
	}

	kind, _ := person.ParseKind(sess.Kind)
	commit := func(ctx context.Context, rows []map[string]string) (ImportResult, error) {
		if err := s.store.Save(ctx, snapshotOf(sess)); err != nil {
			return ImportResult{}, fmt.Errorf("persist importing step: %w", err)
		}
		res, err := s.people.ImportRows(ctx, companyID, kind, rows)
		if err != nil {
			return ImportResult{}, err
		}
		return ImportResult{Success: res.Success, Errors: res.Errors}, nil
	}

	result, importErr := sess.Workflow.Import(ctx, commit)

	if err := s.store.Save(context.WithoutCancel(ctx), snapshotOf(sess)); err != nil {
		log.Error("import session persist failed", zap.String("session_id", id), zap.Error(err))
		if importErr == nil {
			return SessionResponse{}, err
		}
	}

	if importErr != nil {
		log.Error("import commit failed",
			zap.String("session_id", id),
			zap.String("step", string(sess.Workflow.Step())),
			zap.Error(importErr),
		)
		return SessionResponse{}, importErr
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "PEOPLE_IMPORTED",
		Message: "bulk import committed",
		Meta: map[string]any{
			"session_id": id,
			"kind":       sess.Kind,
			"success":    result.Success,
			"failed":     len(result.Errors),
		},
	})
	log.Info("import commit finished",
		zap.String("session_id", id),
		zap.Int("success", result.Success),
		zap.Int("failed", len(result.Errors)),
	)
	return toResponse(sess), nil
}

func (s *service) Close(ctx context.Context, companyID, id string) error {
	if err := s.store.Delete(ctx, companyID, id); err != nil {
		s.logger.Error("close import session failed", zap.String("session_id", id), zap.Error(err))
		return err
	}
	contextutil.GetLogger(ctx, s.logger).Info("import session closed", zap.String("session_id", id))
	return nil
}

func (s *service) load(ctx context.Context, companyID, id string) (*Session, error) {
	snap, err := s.store.Load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	schema, ok := schemaFor(snap.Kind)
	if !ok {
		return nil, bulkimporterrors.ErrUnknownKind
	}
	state, err := stateOf(snap)
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:        snap.ID,
		CompanyID: snap.CompanyID,
		Kind:      snap.Kind,
		CreatedAt: snap.CreatedAt,
		Workflow:  RestoreWorkflow(schema, state),
	}, nil
}

func toResponse(sess *Session) SessionResponse {
	schema := sess.Workflow.Schema()
	resp := SessionResponse{
		ID:   sess.ID,
		Kind: sess.Kind,
		Step: sess.Workflow.Step(),
		Fields: FieldsResponse{
			Required: schema.Required,
			Optional: schema.Optional,
		},
		CreatedAt: sess.CreatedAt,
	}

	var mapping *MappingState
	switch st := sess.Workflow.State().(type) {
	case MappingState:
		mapping = &st
	case PreviewState:
		mapping = &st.MappingState
		resp.Preview = previewOf(st.Rows)
	case ImportingState:
		mapping = &st.MappingState
		resp.Preview = previewOf(st.Rows)
	case CompleteState:
		summary := Summarize(st.Result, DisplayedErrorLimit)
		resp.FileName = st.FileName
		resp.Submitted = st.Submitted
		resp.Result = &summary
	}

	if mapping != nil {
		data := mapping.Grid.DataRows()
		resp.FileName = mapping.FileName
		resp.Headers = mapping.Grid.Header()
		resp.SampleRows = data[:min(len(data), previewSampleRows)]
		resp.TotalRows = len(data)
		resp.Mapping = mapping.Mapping
		if len(data) > RowLimitHint {
			resp.Warnings = append(resp.Warnings,
				fmt.Sprintf("File has %d rows; imports of up to %d rows are recommended", len(data), RowLimitHint))
		}
	}
	return resp
}

func previewOf(rows []ParsedRow) *PreviewResponse {
	valid, invalid := Partition(rows)
	return &PreviewResponse{
		Total:   len(rows),
		Valid:   len(valid),
		Invalid: len(invalid),
		Rows:    rows,
	}
}
