package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-payslip/internal/events"
	"go-payslip/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestNewOutboxEvent(t *testing.T) {
	event, err := kafka.NewOutboxEvent(
		"payslip",
		"7b0c5f1e-4c44-4c44-9c2c-5b1f0a8e9d10",
		events.PayslipRenderRequestedType,
		events.PayslipRenderRequestedTopic,
		"req-1",
		events.PayslipRenderRequestedEvent{PayslipID: "p1", CompanyID: "c1"},
	)

	assert.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)
	assert.Equal(t, "req-1", event.RequestID)
	assert.Contains(t, string(event.Payload), `"payslip_id":"p1"`)
}

func TestNewOutboxEvent_MissingTopic(t *testing.T) {
	_, err := kafka.NewOutboxEvent("payslip", "id", "type", "", "", map[string]string{"a": "b"})

	assert.EqualError(t, err, "outbox topic is required")
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{ID: "1", Topic: "t", Payload: []byte("{}"), Status: kafka.OutboxStatusPending}

	tests := []struct {
		name    string
		mutate  func(e *kafka.OutboxEvent)
		wantErr string
	}{
		{name: "valid", mutate: func(*kafka.OutboxEvent) {}},
		{name: "no id", mutate: func(e *kafka.OutboxEvent) { e.ID = "" }, wantErr: "outbox id is required"},
		{name: "no payload", mutate: func(e *kafka.OutboxEvent) { e.Payload = nil }, wantErr: "outbox payload is required"},
		{name: "bad status", mutate: func(e *kafka.OutboxEvent) { e.Status = "queued" }, wantErr: "invalid outbox status: queued"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			err := kafka.ValidateOutboxEvent(e)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestOutboxRepository_CreateInTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	event := kafka.OutboxEvent{
		ID:            "e1",
		AggregateType: "payslip",
		AggregateID:   "p1",
		EventType:     events.PayslipRenderRequestedType,
		Topic:         events.PayslipRenderRequestedTopic,
		Payload:       []byte(`{"payslip_id":"p1"}`),
		Status:        kafka.OutboxStatusPending,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(event.ID, event.RequestID, event.AggregateType, event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	repo := kafka.NewOutboxRepository(db).WithTx(tx)
	assert.NoError(t, repo.Create(context.Background(), event))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow("e1", "req-1", "payslip", "p1", events.PayslipRenderRequestedType, events.PayslipRenderRequestedTopic, []byte(`{}`), kafka.OutboxStatusFailed, 2, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM outbox_events")).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
		WillReturnRows(rows)

	got, err := kafka.NewOutboxRepository(db).ListPending(context.Background(), 50)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "req-1", got[0].RequestID)
	assert.Equal(t, 2, got[0].RetryCount)
	assert.Equal(t, now, got[0].NextRetryAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs("e1", kafka.OutboxStatusFailed, "broker down").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, kafka.NewOutboxRepository(db).MarkFailed(context.Background(), "e1", "broker down"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
