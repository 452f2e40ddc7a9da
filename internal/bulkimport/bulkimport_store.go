package bulkimport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bulkimporterrors "go-payslip/internal/bulkimport/errors"

	"github.com/redis/go-redis/v9"
)

const (
	SessionKeyPrefix   = "bulkimport:session:"
	DefaultCommitLease = 5 * time.Minute
)

func GetSessionKey(companyID, id string) string {
	return SessionKeyPrefix + companyID + ":" + id
}

func GetCommitLockKey(companyID, id string) string {
	return GetSessionKey(companyID, id) + ":commit"
}

// SessionSnapshot is the stored form of a session. Fields that do not exist
// at Step are left zero.
type SessionSnapshot struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	Kind      string          `json:"kind"`
	Step      Step            `json:"step"`
	FileName  string          `json:"file_name,omitempty"`
	Grid      Grid            `json:"grid,omitempty"`
	Mapping   []ColumnMapping `json:"mapping,omitempty"`
	Rows      []ParsedRow     `json:"rows,omitempty"`
	Submitted int             `json:"submitted,omitempty"`
	Result    *ImportResult   `json:"result,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

//go:generate mockgen -source=bulkimport_store.go -destination=mock/bulkimport_store_mock.go -package=mock
type SessionStore interface {
	Save(ctx context.Context, snap SessionSnapshot) error
	Load(ctx context.Context, companyID, id string) (SessionSnapshot, error)
	Delete(ctx context.Context, companyID, id string) error
	AcquireCommitLock(ctx context.Context, companyID, id string) (bool, error)
	ReleaseCommitLock(ctx context.Context, companyID, id string) error
}

type redisSessionStore struct {
	rdb   *redis.Client
	ttl   time.Duration
	lease time.Duration
}

func NewRedisSessionStore(rdb *redis.Client, ttl time.Duration) SessionStore {
	return &redisSessionStore{rdb: rdb, ttl: ttl, lease: DefaultCommitLease}
}

func (s *redisSessionStore) Save(ctx context.Context, snap SessionSnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal import session: %w", err)
	}
	return s.rdb.Set(ctx, GetSessionKey(snap.CompanyID, snap.ID), payload, s.ttl).Err()
}

func (s *redisSessionStore) Load(ctx context.Context, companyID, id string) (SessionSnapshot, error) {
	raw, err := s.rdb.Get(ctx, GetSessionKey(companyID, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return SessionSnapshot{}, bulkimporterrors.ErrSessionNotFound
	}
	if err != nil {
		return SessionSnapshot{}, err
	}

	var snap SessionSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return SessionSnapshot{}, fmt.Errorf("unmarshal import session: %w", err)
	}
	return snap, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, companyID, id string) error {
	return s.rdb.Del(ctx, GetSessionKey(companyID, id), GetCommitLockKey(companyID, id)).Err()
}

// AcquireCommitLock reports false when another commit already holds the lock.
// The lease expires on its own if the holder dies.
func (s *redisSessionStore) AcquireCommitLock(ctx context.Context, companyID, id string) (bool, error) {
	return s.rdb.SetNX(ctx, GetCommitLockKey(companyID, id), "locked", s.lease).Result()
}

func (s *redisSessionStore) ReleaseCommitLock(ctx context.Context, companyID, id string) error {
	return s.rdb.Del(ctx, GetCommitLockKey(companyID, id)).Err()
}

func snapshotOf(sess *Session) SessionSnapshot {
	snap := SessionSnapshot{
		ID:        sess.ID,
		CompanyID: sess.CompanyID,
		Kind:      sess.Kind,
		Step:      sess.Workflow.Step(),
		CreatedAt: sess.CreatedAt,
	}

	switch st := sess.Workflow.State().(type) {
	case MappingState:
		snap.FileName, snap.Grid, snap.Mapping = st.FileName, st.Grid, st.Mapping
	case PreviewState:
		snap.FileName, snap.Grid, snap.Mapping = st.FileName, st.Grid, st.Mapping
		snap.Rows = st.Rows
	case ImportingState:
		snap.FileName, snap.Grid, snap.Mapping = st.FileName, st.Grid, st.Mapping
		snap.Rows = st.Rows
	case CompleteState:
		result := st.Result
		snap.FileName = st.FileName
		snap.Submitted = st.Submitted
		snap.Result = &result
	}
	return snap
}

func stateOf(snap SessionSnapshot) (State, error) {
	mapping := MappingState{FileName: snap.FileName, Grid: snap.Grid, Mapping: snap.Mapping}

	switch snap.Step {
	case StepUpload, "":
		return UploadState{}, nil
	case StepMapping:
		return mapping, nil
	case StepPreview:
		return PreviewState{MappingState: mapping, Rows: snap.Rows}, nil
	case StepImporting:
		return ImportingState{PreviewState: PreviewState{MappingState: mapping, Rows: snap.Rows}}, nil
	case StepComplete:
		var result ImportResult
		if snap.Result != nil {
			result = *snap.Result
		}
		return CompleteState{FileName: snap.FileName, Submitted: snap.Submitted, Result: result}, nil
	default:
		return nil, fmt.Errorf("unknown import step %q", snap.Step)
	}
}
