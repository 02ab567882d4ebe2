package kafka

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/boutique-bouquet/go-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLog struct{}

func (stubLog) Debugf(format string, args ...any)            {}
func (stubLog) Infof(format string, args ...any)             {}
func (stubLog) Warnf(format string, args ...any)             {}
func (stubLog) Errorf(err error, format string, args ...any) {}

type memOutboxRepo struct {
	mu        sync.Mutex
	pending   []*usecase.OutboxEvent
	processed []int64
}

func (m *memOutboxRepo) Create(ctx context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, event)
	return event, nil
}

func (m *memOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.pending) == 0 {
		return nil, nil
	}
	n := min(limit, len(m.pending))
	batch := m.pending[:n]
	m.pending = m.pending[n:]
	return batch, nil
}

func (m *memOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processed = append(m.processed, id)
	return nil
}

func (m *memOutboxRepo) processedIDs() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int64(nil), m.processed...)
}

type memProducer struct {
	mu   sync.Mutex
	sent []*usecase.WriteRawMessageReq
}

func (m *memProducer) WriteRawMessage(ctx context.Context, req *usecase.WriteRawMessageReq) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, req)
	return nil
}

func (m *memProducer) sentReqs() []*usecase.WriteRawMessageReq {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*usecase.WriteRawMessageReq(nil), m.sent...)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestOutboxWorkerDrainsOnStartup(t *testing.T) {
	t.Parallel()

	repo := &memOutboxRepo{pending: []*usecase.OutboxEvent{
		{ID: 1, OrderID: "order-1", Payload: []byte(`{"event":"order.created"}`)},
	}}
	producer := &memProducer{}

	w := NewOutboxWorker(repo, stubLog{}, producer, "://invalid")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w.Start(ctx)
	defer w.Stop()

	waitFor(t, func() bool { return len(producer.sentReqs()) == 1 })

	sent := producer.sentReqs()[0]
	assert.Equal(t, "order-1", sent.OrderID)
	assert.JSONEq(t, `{"event":"order.created"}`, string(sent.Payload))
	waitFor(t, func() bool { return len(repo.processedIDs()) == 1 })
	assert.Equal(t, []int64{1}, repo.processedIDs())
}

func TestOutboxWorkerPeriodicDrain(t *testing.T) {
	t.Parallel()

	repo := &memOutboxRepo{}
	producer := &memProducer{}

	w := NewOutboxWorker(repo, stubLog{}, producer, "://invalid")
	w.drainInterval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w.Start(ctx)
	defer w.Stop()

	// Событие ложится в очередь после стартового прохода: так выглядит
	// NOTIFY, потерянный во время переподключения слушателя
	_, err := repo.Create(ctx, &usecase.OutboxEvent{ID: 7, OrderID: "order-7", Payload: []byte(`{}`)})
	require.NoError(t, err)

	waitFor(t, func() bool { return len(producer.sentReqs()) == 1 })
	assert.Equal(t, "order-7", producer.sentReqs()[0].OrderID)
	waitFor(t, func() bool { return len(repo.processedIDs()) == 1 })
}
