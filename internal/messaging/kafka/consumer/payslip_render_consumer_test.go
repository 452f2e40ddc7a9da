package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"go-payslip/internal/events"
	"go-payslip/internal/messaging/kafka/consumer"
	"go-payslip/internal/payslip"
	paysliperrors "go-payslip/internal/payslip/errors"
	"go-payslip/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeReader struct {
	mu        sync.Mutex
	messages  []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.messages) == 0 {
		f.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := f.messages[0]
	f.messages = f.messages[1:]
	return msg, nil
}

func (f *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.committed = append(f.committed, msgs...)
	return nil
}

type fakeRenderer struct {
	ProcessFn func(ctx context.Context, companyID, id string) (payslip.PayslipResponse, error)
}

func (f *fakeRenderer) ProcessRenderRequest(ctx context.Context, companyID, id string) (payslip.PayslipResponse, error) {
	return f.ProcessFn(ctx, companyID, id)
}

func renderMessage(t *testing.T, offset int64, payslipID string) kafkago.Message {
	t.Helper()
	value, err := json.Marshal(events.PayslipRenderRequestedEvent{
		EventType: events.PayslipRenderRequestedType,
		RequestID: "req-1",
		PayslipID: payslipID,
		CompanyID: "company-1",
	})
	assert.NoError(t, err)
	return kafkago.Message{Topic: events.PayslipRenderRequestedTopic, Offset: offset, Value: value}
}

func TestConsumePayslipRenderRequested(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		messages: []kafkago.Message{
			renderMessage(t, 1, "ok"),
			renderMessage(t, 2, "gone"),
			renderMessage(t, 3, "broken"),
			{Offset: 4, Value: []byte("{")},
		},
		cancel: cancel,
	}

	var seen []string
	renderer := &fakeRenderer{
		ProcessFn: func(ctx context.Context, companyID, id string) (payslip.PayslipResponse, error) {
			assert.Equal(t, "company-1", companyID)
			assert.Equal(t, "req-1", contextutil.GetRequestID(ctx))
			seen = append(seen, id)
			switch id {
			case "gone":
				return payslip.PayslipResponse{}, paysliperrors.ErrPayslipNotFound
			case "broken":
				return payslip.PayslipResponse{}, errors.New("bucket offline")
			}
			return payslip.PayslipResponse{}, nil
		},
	}

	consumer.ConsumePayslipRenderRequested(ctx, reader, renderer, zap.NewNop())

	assert.Equal(t, []string{"ok", "gone", "broken"}, seen)

	var offsets []int64
	for _, m := range reader.committed {
		offsets = append(offsets, m.Offset)
	}
	assert.Equal(t, []int64{1, 2, 4}, offsets)
}

func TestHandlePayslipRenderMessage_OtherEventType(t *testing.T) {
	value, _ := json.Marshal(map[string]string{"event_type": "something.else"})
	renderer := &fakeRenderer{
		ProcessFn: func(context.Context, string, string) (payslip.PayslipResponse, error) {
			t.Fatal("renderer must not be called")
			return payslip.PayslipResponse{}, nil
		},
	}

	commit := consumer.HandlePayslipRenderMessage(context.Background(), kafkago.Message{Value: value}, renderer, zap.NewNop())

	assert.True(t, commit)
}

func TestHandlePayslipRenderMessage_RequestIDFromHeader(t *testing.T) {
	value, _ := json.Marshal(events.PayslipRenderRequestedEvent{PayslipID: "p-1", CompanyID: "c-1"})
	msg := kafkago.Message{
		Value:   value,
		Headers: []kafkago.Header{{Key: "request_id", Value: []byte("hdr-req")}},
	}
	renderer := &fakeRenderer{
		ProcessFn: func(ctx context.Context, _, _ string) (payslip.PayslipResponse, error) {
			assert.Equal(t, "hdr-req", contextutil.GetRequestID(ctx))
			return payslip.PayslipResponse{}, nil
		},
	}

	assert.True(t, consumer.HandlePayslipRenderMessage(context.Background(), msg, renderer, zap.NewNop()))
}
