package bulkimport_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-payslip/internal/bulkimport"
	bulkimporterrors "go-payslip/internal/bulkimport/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisSessionStore(t *testing.T) {
	ctx := context.Background()
	ttl := 30 * time.Minute

	snap := bulkimport.SessionSnapshot{
		ID:        "sess-1",
		CompanyID: "company-1",
		Kind:      "employee",
		Step:      bulkimport.StepMapping,
		FileName:  "people.csv",
		Grid:      bulkimport.Grid{{"name", "email"}, {"Alice", "a@x.com"}},
		Mapping:   []bulkimport.ColumnMapping{{Source: "name", Target: "name"}, {Source: "email", Target: "email"}},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	payload, _ := json.Marshal(snap)
	key := bulkimport.GetSessionKey("company-1", "sess-1")

	t.Run("save with ttl", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := bulkimport.NewRedisSessionStore(rdb, ttl)

		mock.ExpectSet(key, payload, ttl).SetVal("OK")

		assert.NoError(t, store.Save(ctx, snap))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("load", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := bulkimport.NewRedisSessionStore(rdb, ttl)

		mock.ExpectGet(key).SetVal(string(payload))

		got, err := store.Load(ctx, "company-1", "sess-1")

		assert.NoError(t, err)
		assert.Equal(t, snap, got)
	})

	t.Run("load expired", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := bulkimport.NewRedisSessionStore(rdb, ttl)

		mock.ExpectGet(key).RedisNil()

		_, err := store.Load(ctx, "company-1", "sess-1")
		assert.ErrorIs(t, err, bulkimporterrors.ErrSessionNotFound)
	})

	t.Run("commit lock is exclusive", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := bulkimport.NewRedisSessionStore(rdb, ttl)
		lockKey := bulkimport.GetCommitLockKey("company-1", "sess-1")

		mock.ExpectSetNX(lockKey, "locked", bulkimport.DefaultCommitLease).SetVal(true)
		mock.ExpectSetNX(lockKey, "locked", bulkimport.DefaultCommitLease).SetVal(false)
		mock.ExpectDel(lockKey).SetVal(1)

		first, err := store.AcquireCommitLock(ctx, "company-1", "sess-1")
		assert.NoError(t, err)
		assert.True(t, first)

		second, err := store.AcquireCommitLock(ctx, "company-1", "sess-1")
		assert.NoError(t, err)
		assert.False(t, second)

		assert.NoError(t, store.ReleaseCommitLock(ctx, "company-1", "sess-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete drops session and lock", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := bulkimport.NewRedisSessionStore(rdb, ttl)

		mock.ExpectDel(key, bulkimport.GetCommitLockKey("company-1", "sess-1")).SetVal(1)

		assert.NoError(t, store.Delete(ctx, "company-1", "sess-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
