package queue_test

import (
	"context"
	"testing"
	"time"

	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPaymentQueue_deliversInOrder(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := queue.NewMemoryPaymentQueue(4)
	require.NoError(t, q.PublishPayment(ctx, &model.PaymentEvent{OrderCode: "tx-1", Success: true}))
	require.NoError(t, q.PublishPayment(ctx, &model.PaymentEvent{OrderCode: "tx-2", Success: false}))

	delCh, err := q.SubscribePayments(ctx)
	require.NoError(t, err)

	for _, want := range []string{"tx-1", "tx-2"} {
		select {
		case d := <-delCh:
			require.NotNil(t, d.Data)
			assert.Equal(t, want, d.Data.OrderCode)
			d.Ack()
		case <-ctx.Done():
			t.Fatalf("timeout waiting for %s", want)
		}
	}
}

func TestMemoryPaymentQueue_NackRequeue_redelivers(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := queue.NewMemoryPaymentQueue(4)
	require.NoError(t, q.PublishPayment(ctx, &model.PaymentEvent{OrderCode: "tx-retry"}))

	delCh, err := q.SubscribePayments(ctx)
	require.NoError(t, err)

	first := <-delCh
	first.Nack(true)

	select {
	case d := <-delCh:
		assert.Equal(t, "tx-retry", d.Data.OrderCode)
	case <-ctx.Done():
		t.Fatal("requeued message not redelivered")
	}
}

func TestMemoryPaymentQueue_NackDiscard(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := queue.NewMemoryPaymentQueue(4)
	require.NoError(t, q.PublishPayment(ctx, &model.PaymentEvent{OrderCode: "tx-drop"}))

	delCh, err := q.SubscribePayments(ctx)
	require.NoError(t, err)

	(<-delCh).Nack(false)

	select {
	case d := <-delCh:
		t.Fatalf("unexpected redelivery: %s", d.Data.OrderCode)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestMemoryPaymentQueue_Publish_respectsContext(t *testing.T) {
	q := queue.NewMemoryPaymentQueue(1)
	require.NoError(t, q.PublishPayment(context.Background(), &model.PaymentEvent{OrderCode: "fill"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := q.PublishPayment(ctx, &model.PaymentEvent{OrderCode: "blocked"})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryPaymentQueue_Subscribe_ctxCancel_closesChannel(t *testing.T) {
	q := queue.NewMemoryPaymentQueue(1)

	ctx, cancel := context.WithCancel(context.Background())
	delCh, err := q.SubscribePayments(ctx)
	require.NoError(t, err)

	cancel()
	select {
	case _, ok := <-delCh:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
