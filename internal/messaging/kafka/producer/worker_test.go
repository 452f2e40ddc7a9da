package producer_test

import (
	"context"
	"errors"
	"testing"

	"go-payslip/internal/events"
	"go-payslip/internal/messaging/kafka"
	kafkaMock "go-payslip/internal/messaging/kafka/mock"
	"go-payslip/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failFor  map[string]bool
	messages []kafkago.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if w.failFor[string(m.Key)] {
			return errors.New("leader not available")
		}
		w.messages = append(w.messages, m)
	}
	return nil
}

func pendingEvent(id, aggregateID string) kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            id,
		RequestID:     "req-" + id,
		AggregateType: "payslip",
		AggregateID:   aggregateID,
		EventType:     events.PayslipRenderRequestedType,
		Topic:         events.PayslipRenderRequestedTopic,
		Payload:       []byte(`{}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func header(m kafkago.Message, key string) string {
	for _, h := range m.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestPublishPending(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{pendingEvent("e1", "p1"), pendingEvent("e2", "p2")}, nil)
		repo.EXPECT().MarkSent(ctx, "e1").Return(nil)
		repo.EXPECT().MarkSent(ctx, "e2").Return(nil)

		sent, err := producer.PublishPending(ctx, repo, writer, zap.NewNop(), 50)

		assert.NoError(t, err)
		assert.Equal(t, 2, sent)
		assert.Len(t, writer.messages, 2)
		assert.Equal(t, events.PayslipRenderRequestedTopic, writer.messages[0].Topic)
		assert.Equal(t, "p1", string(writer.messages[0].Key))
		assert.Equal(t, events.PayslipRenderRequestedType, header(writer.messages[0], "event_type"))
		assert.Equal(t, "req-e1", header(writer.messages[0], "request_id"))
	})

	t.Run("failed publish is rescheduled and the batch continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failFor: map[string]bool{"p1": true}}

		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{pendingEvent("e1", "p1"), pendingEvent("e2", "p2")}, nil)
		repo.EXPECT().MarkFailed(ctx, "e1", "leader not available").Return(nil)
		repo.EXPECT().MarkSent(ctx, "e2").Return(nil)

		sent, err := producer.PublishPending(ctx, repo, writer, zap.NewNop(), 50)

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(ctx, 50).Return(nil, errors.New("db down"))

		sent, err := producer.PublishPending(ctx, repo, &fakeWriter{}, zap.NewNop(), 50)

		assert.EqualError(t, err, "db down")
		assert.Zero(t, sent)
	})
}
